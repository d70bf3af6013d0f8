package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"luxeledger/internal/ledger"
	"luxeledger/internal/models"
	"luxeledger/internal/pagination"
	"luxeledger/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// TransactionRequest is the payload for creating or editing a transaction.
type TransactionRequest struct {
	Type     models.TransactionType `json:"type" binding:"required,transaction_type"`
	Category string                 `json:"category" binding:"required,max=100"`
	Amount   *decimal.Decimal       `json:"amount" binding:"required" swaggertype:"number"`
	Note     string                 `json:"note" binding:"max=500"`
}

func (r TransactionRequest) input() services.TransactionInput {
	return services.TransactionInput{
		Type:     r.Type,
		Category: r.Category,
		Amount:   *r.Amount,
		Note:     r.Note,
	}
}

// JournalQuery holds the query parameters of the journal listing.
type JournalQuery struct {
	Period string `form:"period" binding:"omitempty,period_type"`
	Anchor string `form:"anchor" binding:"omitempty,ledger_date"`
	pagination.PageRequest
}

// ListTransactions returns the period-filtered journal
// @Summary     List transactions
// @Description List the journal for the period around an anchor date, most recent first. Without a period every transaction is listed.
// @Tags        transactions
// @Produce     json
// @Param       period    query string false "day, week, month or year"
// @Param       anchor    query string false "Anchor date (YYYY-MM-DD), defaults to today"
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size (max 100)"
// @Success     200 {object} services.JournalPage
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var q JournalQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindingError(err))
		return
	}
	anchor, err := parseAnchor(q.Anchor)
	if err != nil {
		respondWithError(c, err)
		return
	}

	page, err := h.transactionService.ListJournal(ledger.PeriodType(q.Period), anchor, q.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// CreateTransaction records a manual entry
// @Summary     Create a transaction
// @Description Record an income or expense dated today. Expenses are checked against their category budget.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body TransactionRequest true "Transaction details"
// @Success     201 {object} services.TransactionResult "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	result, err := h.transactionService.CreateTransaction(c.Request.Context(), req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditCreateTransaction, "transaction", result.Transaction.ID, c.ClientIP(),
		map[string]interface{}{"type": req.Type, "category": req.Category, "amount": req.Amount})

	c.JSON(http.StatusCreated, result)
}

// CreateParsedTransaction records an entry produced by the parsing assistant
// @Summary     Create a parsed transaction
// @Description Record an entry extracted from free text by the parsing assistant. The amount must be positive.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body TransactionRequest true "Parsed transaction"
// @Success     201 {object} services.TransactionResult "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/parsed [post]
func (h *TransactionHandler) CreateParsedTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	result, err := h.transactionService.CreateFromParsed(c.Request.Context(), req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditCreateTransaction, "transaction", result.Transaction.ID, c.ClientIP(),
		map[string]interface{}{"type": req.Type, "category": req.Category, "amount": req.Amount, "source": "parsed"})

	c.JSON(http.StatusCreated, result)
}

// GetTransactionByID returns a single transaction
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	tx, err := h.transactionService.GetTransactionByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// UpdateTransaction edits a transaction
// @Summary     Update a transaction
// @Description Replace type, category, amount and note. The date and timestamp are kept.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path string             true "Transaction ID"
// @Param       request body TransactionRequest true "New values"
// @Success     200 {object} services.TransactionResult
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	id := c.Param("id")
	result, err := h.transactionService.UpdateTransaction(c.Request.Context(), id, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditUpdateTransaction, "transaction", id, c.ClientIP(),
		map[string]interface{}{"type": req.Type, "category": req.Category, "amount": req.Amount, "note": req.Note})

	c.JSON(http.StatusOK, result)
}

// DeleteTransaction removes a transaction
// @Summary     Delete a transaction
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id := c.Param("id")
	if err := h.transactionService.DeleteTransaction(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditDeleteTransaction, "transaction", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Transaction deleted successfully"})
}
