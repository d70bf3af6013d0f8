package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "luxeledger/internal/errors"
	"luxeledger/internal/services"
)

func setupImportRouter(handler *ImportHandler) *gin.Engine {
	r := gin.New()
	r.POST("/transactions/import", handler.Import)
	return r
}

func TestImportHandler_Import(t *testing.T) {
	t.Run("returns 201 with counts", func(t *testing.T) {
		var gotText string
		importSvc := &mockImportService{
			importFn: func(_ context.Context, text string) (*services.ImportResult, error) {
				gotText = text
				return &services.ImportResult{Imported: 3, Skipped: 1}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupImportRouter(NewImportHandler(importSvc, audit))

		rec := doRequest(r, "POST", "/transactions/import", `{"text":"15/03/2024\tFood\tLunch\t100\tExpense"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotText != "15/03/2024\tFood\tLunch\t100\tExpense" {
			t.Errorf("unexpected text %q", gotText)
		}
		result := parseJSON(t, rec)
		if result["imported"] != float64(3) || result["skipped"] != float64(1) {
			t.Errorf("unexpected counts %v", result)
		}
		if len(audit.calls) != 1 || audit.calls[0].action != services.AuditImport {
			t.Errorf("unexpected audit calls %+v", audit.calls)
		}
	})

	t.Run("returns 422 when nothing parses", func(t *testing.T) {
		importSvc := &mockImportService{
			importFn: func(context.Context, string) (*services.ImportResult, error) {
				return nil, apperrors.ErrNoValidRows
			},
		}
		r := setupImportRouter(NewImportHandler(importSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions/import", `{"text":"garbage"}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "NO_VALID_ROWS")
	})

	t.Run("returns 400 on empty body", func(t *testing.T) {
		r := setupImportRouter(NewImportHandler(&mockImportService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions/import", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
