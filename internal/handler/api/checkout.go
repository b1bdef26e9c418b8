package api

import (
	"errors"
	"net/http"

	reqdto "barberbook/internal/handler/dto/request"
	resdto "barberbook/internal/handler/dto/response"
	"barberbook/internal/usecase/commands"
	"barberbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
	financeCommands  commands.FinanceCommands
	catalogQueries   queries.CatalogQueries
	customerQueries  queries.CustomerQueries
}

func NewCheckoutHandler(
	checkoutCommands commands.CheckoutCommands,
	financeCommands commands.FinanceCommands,
	catalogQueries queries.CatalogQueries,
	customerQueries queries.CustomerQueries,
) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
		financeCommands:  financeCommands,
		catalogQueries:   catalogQueries,
		customerQueries:  customerQueries,
	}
}

// @Summary Service catalog
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ServiceView
// @Router /services [get]
func (h *CheckoutHandler) ListServices(c *gin.Context) {
	views, err := h.catalogQueries.Services(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Service catalog unavailable",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Checkout booking
// @Description Settle a pending booking: allocate an invoice and write ledger lines
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking id"
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking id",
		})
		return
	}
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.checkoutCommands.Checkout(c.Request.Context(), id, req)
	if err != nil {
		h.renderCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkoutResponse(result))
}

// @Summary Walk-in checkout
// @Description Record and settle an off-schedule customer in one step
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.WalkInCheckoutRequest true "Walk-in request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /walkins [post]
func (h *CheckoutHandler) CheckoutWalkIn(c *gin.Context) {
	var req reqdto.WalkInCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.checkoutCommands.CheckoutWalkIn(c.Request.Context(), req)
	if err != nil {
		h.renderCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, checkoutResponse(result))
}

// @Summary Record expense
// @Tags finance
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.ExpenseRequest true "Expense"
// @Success 201
// @Failure 400 {object} map[string]string
// @Router /expenses [post]
func (h *CheckoutHandler) RecordExpense(c *gin.Context) {
	var req reqdto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	if err := h.financeCommands.RecordExpense(c.Request.Context(), req); err != nil {
		if errors.Is(err, commands.ErrInvalidEntry) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid expense entry",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary Record product sale
// @Tags finance
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.ProductSaleRequest true "Product sale"
// @Success 201
// @Failure 400 {object} map[string]string
// @Router /sales [post]
func (h *CheckoutHandler) RecordSale(c *gin.Context) {
	var req reqdto.ProductSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	if err := h.financeCommands.RecordSale(c.Request.Context(), req); err != nil {
		if errors.Is(err, commands.ErrInvalidEntry) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid sale entry",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary Customer lookup
// @Description Find a returning customer by phone number in any format
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param phone path string true "Phone number"
// @Success 200 {object} queries.CustomerView
// @Failure 404 {object} map[string]string
// @Router /customers/{phone} [get]
func (h *CheckoutHandler) FindCustomer(c *gin.Context) {
	view, err := h.customerQueries.FindByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid phone number",
			})
		case errors.Is(err, queries.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CheckoutHandler) renderCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, commands.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service not found",
		})
	case errors.Is(err, commands.ErrAlreadySettled):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking already settled",
		})
	case errors.Is(err, commands.ErrDiscountLocked):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Discounts are locked by the owner",
		})
	case errors.Is(err, commands.ErrDowngradeNotAllowed):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Service downgrade not allowed",
		})
	case errors.Is(err, commands.ErrInvalidPaymentMethod):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment method",
		})
	case errors.Is(err, commands.ErrInvalidLineItem):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid line item",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid checkout data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func checkoutResponse(result *commands.CheckoutResult) resdto.CheckoutResponse {
	return resdto.CheckoutResponse{
		InvoiceID:     result.InvoiceID,
		GrossMinor:    result.GrossMinor,
		DiscountMinor: result.DiscountMinor,
		FinalMinor:    result.FinalMinor,
		Booking:       result.Booking,
	}
}
