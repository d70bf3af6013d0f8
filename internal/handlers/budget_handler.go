package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"luxeledger/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// SetBudgetRequest sets the monthly cap of a category. A limit <= 0 removes it.
type SetBudgetRequest struct {
	Limit *decimal.Decimal `json:"limit" binding:"required" swaggertype:"number"`
}

// EvaluateBudgetRequest describes a prospective expense.
type EvaluateBudgetRequest struct {
	Category string           `json:"category" binding:"required,max=100"`
	Amount   *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number"`
}

// ListBudgets returns every budget with its progress
// @Summary     List budgets
// @Description Budgets with spending over the current accounting month
// @Tags        budgets
// @Produce     json
// @Success     200 {object} services.BudgetOverview
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	overview, err := h.budgetService.ListBudgets()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// SetBudget creates, replaces or removes a category cap
// @Summary     Set a budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       category path string           true "Category name"
// @Param       request  body SetBudgetRequest true "New limit"
// @Success     200 {object} models.Budget "Budget stored"
// @Success     200 {object} MessageResponse "Budget removed"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{category} [put]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	category := c.Param("category")
	budget, err := h.budgetService.SetBudgetLimit(category, *req.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditSetBudget, "budget", category, c.ClientIP(),
		map[string]interface{}{"limit": req.Limit})

	if budget == nil {
		c.JSON(http.StatusOK, MessageResponse{Message: "Budget removed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// EvaluateBudget checks a prospective expense without recording it
// @Summary     Evaluate a budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       request body EvaluateBudgetRequest true "Prospective expense"
// @Success     200 {object} ledger.Evaluation
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/evaluate [post]
func (h *BudgetHandler) EvaluateBudget(c *gin.Context) {
	var req EvaluateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	ev, err := h.budgetService.EvaluateBudget(req.Category, *req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}
