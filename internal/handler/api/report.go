package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"barberbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportQueries queries.ReportQueries
}

func NewReportHandler(reportQueries queries.ReportQueries) *ReportHandler {
	return &ReportHandler{reportQueries: reportQueries}
}

// @Summary Range report
// @Description Per-barber and shop-wide totals reconstructed from the ledger
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD), inclusive"
// @Success 200 {object} queries.RangeReportView
// @Failure 400 {object} map[string]string
// @Router /reports/range [get]
func (h *ReportHandler) Range(c *gin.Context) {
	view, err := h.reportQueries.Range(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid report range",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Daily cash report
// @Description End-of-day drawer count: revenue split by payment method, expenses and net cash
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} queries.DailyReportView
// @Failure 400 {object} map[string]string
// @Router /reports/daily [get]
func (h *ReportHandler) Daily(c *gin.Context) {
	view, err := h.reportQueries.Daily(c.Request.Context(), c.Query("date"))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Monthly profit
// @Description Month result with the configured profit share applied
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} queries.ProfitReportView
// @Failure 400 {object} map[string]string
// @Router /reports/profit [get]
func (h *ReportHandler) MonthlyProfit(c *gin.Context) {
	year, errYear := strconv.Atoi(c.Query("year"))
	month, errMonth := strconv.Atoi(c.Query("month"))
	if errYear != nil || errMonth != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "year and month are required",
		})
		return
	}

	view, err := h.reportQueries.MonthlyProfit(c.Request.Context(), year, time.Month(month))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid month",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Invoice lines
// @Description Raw ledger lines of one invoice
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice id (YYMM###)"
// @Success 200 {array} queries.LineItemView
// @Failure 400 {object} map[string]string
// @Router /invoices/{id}/lines [get]
func (h *ReportHandler) InvoiceLines(c *gin.Context) {
	views, err := h.reportQueries.LinesByInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidInvoiceID) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid invoice id",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}
