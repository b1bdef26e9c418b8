package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"barberbook/internal/handler/api"
	"barberbook/internal/handler/middleware"
	"barberbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	checkoutHandler *api.CheckoutHandler,
	reportHandler *api.ReportHandler,
	ownerHandler *api.OwnerHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bookingHandler, checkoutHandler, reportHandler, ownerHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	checkoutHandler *api.CheckoutHandler,
	reportHandler *api.ReportHandler,
	ownerHandler *api.OwnerHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			bookings := authed.Group("/bookings")
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: bookingHandler.Availability},
				{Method: http.MethodGet, Path: "/pending", Handler: bookingHandler.PendingQueue},
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListByDate},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
				{Method: http.MethodPost, Path: "/:id/checkout", Handler: checkoutHandler.Checkout},
			})

			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/services", Handler: checkoutHandler.ListServices},
				{Method: http.MethodPost, Path: "/walkins", Handler: checkoutHandler.CheckoutWalkIn},
				{Method: http.MethodPost, Path: "/expenses", Handler: checkoutHandler.RecordExpense},
				{Method: http.MethodPost, Path: "/sales", Handler: checkoutHandler.RecordSale},
				{Method: http.MethodGet, Path: "/customers/:phone", Handler: checkoutHandler.FindCustomer},
				{Method: http.MethodGet, Path: "/reports/daily", Handler: reportHandler.Daily},
				{Method: http.MethodGet, Path: "/invoices/:id/lines", Handler: reportHandler.InvoiceLines},
			})

			owner := authed.Group("/owner")
			owner.Use(authMiddleware.RequireOwner())
			addRoutes(owner, []route{
				{Method: http.MethodGet, Path: "/discount-policy", Handler: ownerHandler.GetDiscountPolicy},
				{Method: http.MethodPut, Path: "/discount-policy", Handler: ownerHandler.SetDiscountPolicy},
				{Method: http.MethodPost, Path: "/expenses", Handler: ownerHandler.RecordOwnerExpense},
			})

			reports := authed.Group("/reports")
			reports.Use(authMiddleware.RequireOwner())
			addRoutes(reports, []route{
				{Method: http.MethodGet, Path: "/range", Handler: reportHandler.Range},
				{Method: http.MethodGet, Path: "/profit", Handler: reportHandler.MonthlyProfit},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(group *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		handlers := append(r.Mw, r.Handler)
		group.Handle(r.Method, r.Path, handlers...)
	}
}
