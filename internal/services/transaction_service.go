package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "luxeledger/internal/errors"
	"luxeledger/internal/ledger"
	"luxeledger/internal/models"
	"luxeledger/internal/notify"
	"luxeledger/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db       *gorm.DB
	clock    Clock
	notifier notify.Notifier
}

// NewTransactionService creates a new TransactionServicer. notifier may be
// nil, in which case exceeded budgets are reported but never alerted.
func NewTransactionService(db *gorm.DB, clock Clock, notifier notify.Notifier) TransactionServicer {
	return &transactionService{db: db, clock: clock, notifier: notifier}
}

func validateInput(input *TransactionInput) error {
	if !input.Type.Valid() {
		return apperrors.ErrInvalidTransactionType
	}
	input.Category = strings.TrimSpace(input.Category)
	if input.Category == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if input.Amount.IsNegative() {
		return apperrors.ErrInvalidAmount
	}
	input.Note = strings.TrimSpace(input.Note)
	return nil
}

// CreateTransaction records a manual entry dated today and stamped now.
// Expenses are checked against their budget before they are stored.
func (s *transactionService) CreateTransaction(ctx context.Context, input TransactionInput) (*TransactionResult, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}
	return s.create(ctx, input)
}

// CreateFromParsed records an entry produced by the parsing collaborator.
// It differs from a manual entry only in requiring a positive amount.
func (s *transactionService) CreateFromParsed(ctx context.Context, input TransactionInput) (*TransactionResult, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}
	if !input.Amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	return s.create(ctx, input)
}

func (s *transactionService) create(ctx context.Context, input TransactionInput) (*TransactionResult, error) {
	tx := &models.Transaction{
		Type:      input.Type,
		Category:  input.Category,
		Amount:    input.Amount,
		Note:      input.Note,
		Date:      s.clock.Today(),
		Timestamp: s.clock.NowMillis(),
	}

	result := &TransactionResult{Transaction: tx}
	var settings *models.Settings
	if tx.Type == models.TransactionTypeExpense {
		ev, st, err := evaluateCurrent(s.db, s.clock, tx.Category, tx.Amount)
		if err != nil {
			return nil, err
		}
		result.Budget = &ev
		settings = st
	}

	if err := s.db.Create(tx).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if result.Budget != nil {
		result.AlertSent = dispatchAlert(ctx, s.notifier, *result.Budget, settings, tx.ID)
	}
	return result, nil
}

// UpdateTransaction replaces the type, category, amount and note of a
// transaction. Its id, date and timestamp are preserved.
func (s *transactionService) UpdateTransaction(ctx context.Context, id string, input TransactionInput) (*TransactionResult, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	tx, err := s.GetTransactionByID(id)
	if err != nil {
		return nil, err
	}

	result := &TransactionResult{Transaction: tx}
	var settings *models.Settings
	if input.Type == models.TransactionTypeExpense {
		ev, st, err := evaluateCurrent(s.db, s.clock, input.Category, input.Amount)
		if err != nil {
			return nil, err
		}
		result.Budget = &ev
		settings = st
	}

	tx.Type = input.Type
	tx.Category = input.Category
	tx.Amount = input.Amount
	tx.Note = input.Note
	if err := s.db.Model(tx).Select("type", "category", "amount", "note").Updates(tx).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if result.Budget != nil {
		result.AlertSent = dispatchAlert(ctx, s.notifier, *result.Budget, settings, tx.ID)
	}
	return result, nil
}

// DeleteTransaction soft-deletes a transaction.
func (s *transactionService) DeleteTransaction(id string) error {
	res := s.db.Where("id = ?", id).Delete(&models.Transaction{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// GetTransactionByID returns a live transaction by ID.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.db.Where("id = ?", id).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &tx, nil
}

// ListJournal returns one page of the journal filtered to the period around
// anchor, most recent first. An empty period lists everything; a zero anchor
// means today.
func (s *transactionService) ListJournal(period ledger.PeriodType, anchor models.Date, page pagination.PageRequest) (*JournalPage, error) {
	if period != "" && !period.Valid() {
		return nil, apperrors.ErrInvalidPeriod
	}
	if anchor.IsZero() {
		anchor = s.clock.Today()
	}

	settings, err := loadSettings(s.db)
	if err != nil {
		return nil, err
	}
	all, err := loadTransactions(s.db)
	if err != nil {
		return nil, err
	}
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	filtered := ledger.FilterByPeriod(all, period, anchor, settings.MonthStartDay)
	entries := make([]JournalEntry, len(filtered))
	for i, tx := range filtered {
		icon, color := IconFor(categories, tx.Category, tx.Type)
		entries[i] = JournalEntry{Transaction: tx, Icon: icon, Color: color}
	}

	result := &JournalPage{
		PageResponse: pagination.PageSlice(entries, page),
		Period:       period,
	}
	if r, ok := ledger.PeriodRange(period, anchor, settings.MonthStartDay); ok {
		result.Range = &r
	}
	return result, nil
}
