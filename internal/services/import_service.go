package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "luxeledger/internal/errors"
	"luxeledger/internal/importer"
	"luxeledger/internal/logger"
)

const importBatchSize = 100

// importService handles bulk migration of pasted spreadsheet rows.
type importService struct {
	db *gorm.DB
}

// NewImportService creates a new ImportServicer.
func NewImportService(db *gorm.DB) ImportServicer {
	return &importService{db: db}
}

// Import parses text and stores every valid row in one database
// transaction. Malformed rows are skipped; a paste with no valid row at all
// is rejected.
func (s *importService) Import(ctx context.Context, text string) (*ImportResult, error) {
	parsed := importer.Parse(text)
	if len(parsed.Rows) == 0 {
		return nil, apperrors.ErrNoValidRows
	}

	txs := importer.Transactions(parsed.Rows)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&txs, importBatchSize).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("imported transactions",
		"imported", len(txs),
		"skipped", parsed.Skipped,
	)
	return &ImportResult{Imported: len(txs), Skipped: parsed.Skipped}, nil
}
