package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxeledger/internal/services"
)

// ImportHandler handles bulk migration of pasted rows.
type ImportHandler struct {
	importService services.ImportServicer
	auditService  services.AuditServicer
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService services.ImportServicer, auditService services.AuditServicer) *ImportHandler {
	return &ImportHandler{importService: importService, auditService: auditService}
}

// ImportRequest carries rows copied from a spreadsheet or bank export.
type ImportRequest struct {
	Text string `json:"text" binding:"required"`
}

// Import stores every valid pasted row
// @Summary     Import transactions
// @Description Parse tab or space separated rows (date, category, note, amount, type) and store the valid ones in one batch.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body ImportRequest true "Pasted rows"
// @Success     201 {object} services.ImportResult
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     422 {object} ErrorResponse "No valid rows"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/import [post]
func (h *ImportHandler) Import(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	result, err := h.importService.Import(c.Request.Context(), req.Text)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditImport, "transaction", "", c.ClientIP(),
		map[string]interface{}{"imported": result.Imported, "skipped": result.Skipped})

	c.JSON(http.StatusCreated, result)
}
