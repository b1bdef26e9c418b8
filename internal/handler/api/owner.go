package api

import (
	"errors"
	"net/http"

	"barberbook/internal/domain/policy"
	reqdto "barberbook/internal/handler/dto/request"
	resdto "barberbook/internal/handler/dto/response"
	"barberbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// OwnerHandler serves the owner-only controls: the discount lock and owner
// expense entries.
type OwnerHandler struct {
	policyCommands  commands.PolicyCommands
	financeCommands commands.FinanceCommands
}

func NewOwnerHandler(policyCommands commands.PolicyCommands, financeCommands commands.FinanceCommands) *OwnerHandler {
	return &OwnerHandler{
		policyCommands:  policyCommands,
		financeCommands: financeCommands,
	}
}

// @Summary Discount policy
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DiscountPolicyResponse
// @Router /owner/discount-policy [get]
func (h *OwnerHandler) GetDiscountPolicy(c *gin.Context) {
	current := h.policyCommands.DiscountLock(c.Request.Context())
	c.JSON(http.StatusOK, policyResponse(current))
}

// @Summary Set discount policy
// @Description Lock or unlock cashier discounts; the setting persists until toggled again
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DiscountPolicyRequest true "Policy"
// @Success 200 {object} resdto.DiscountPolicyResponse
// @Failure 400 {object} map[string]string
// @Router /owner/discount-policy [put]
func (h *OwnerHandler) SetDiscountPolicy(c *gin.Context) {
	var req reqdto.DiscountPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Locked == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	next, err := h.policyCommands.SetDiscountLock(c.Request.Context(), *req.Locked)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, policyResponse(next))
}

// @Summary Record owner expense
// @Description Expense entered by the owner, tagged apart from the cashier drawer
// @Tags owner
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.ExpenseRequest true "Expense"
// @Success 201
// @Failure 400 {object} map[string]string
// @Router /owner/expenses [post]
func (h *OwnerHandler) RecordOwnerExpense(c *gin.Context) {
	var req reqdto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	if err := h.financeCommands.RecordOwnerExpense(c.Request.Context(), req); err != nil {
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

func policyResponse(p policy.DiscountPolicy) resdto.DiscountPolicyResponse {
	return resdto.DiscountPolicyResponse{
		Policy: p.String(),
		Locked: !p.AllowsDiscount(),
	}
}
