package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "luxeledger/internal/errors"
	"luxeledger/internal/insight"
	"luxeledger/internal/ledger"
	"luxeledger/internal/models"
)

// statsService derives the statistics views from the stored snapshot.
type statsService struct {
	db        *gorm.DB
	clock     Clock
	generator *insight.Generator
}

// NewStatsService creates a new StatsServicer. A nil generator disables
// insights.
func NewStatsService(db *gorm.DB, clock Clock, generator *insight.Generator) StatsServicer {
	if generator == nil {
		generator = insight.NewGenerator(nil)
	}
	return &statsService{db: db, clock: clock, generator: generator}
}

func (s *statsService) resolveAnchor(anchor models.Date) models.Date {
	if anchor.IsZero() {
		return s.clock.Today()
	}
	return anchor
}

// PeriodRange lists the range of every period type around anchor.
func (s *statsService) PeriodRange(anchor models.Date) (*PeriodInfo, error) {
	settings, err := loadSettings(s.db)
	if err != nil {
		return nil, err
	}
	anchor = s.resolveAnchor(anchor)

	return &PeriodInfo{
		Anchor:        anchor,
		MonthStartDay: settings.MonthStartDay,
		Day:           ledger.DayRange(anchor),
		Week:          ledger.WeekRange(anchor),
		Month:         ledger.MonthRange(anchor, settings.MonthStartDay),
		Year:          ledger.YearRange(anchor),
	}, nil
}

// Summary computes totals, breakdowns and the chart series of one period,
// together with today's headline position.
func (s *statsService) Summary(period ledger.PeriodType, anchor models.Date) (*Summary, error) {
	if !period.Valid() {
		return nil, apperrors.ErrInvalidPeriod
	}
	settings, err := loadSettings(s.db)
	if err != nil {
		return nil, err
	}
	all, err := loadTransactions(s.db)
	if err != nil {
		return nil, err
	}
	anchor = s.resolveAnchor(anchor)

	txs := ledger.FilterByPeriod(all, period, anchor, settings.MonthStartDay)
	r, _ := ledger.PeriodRange(period, anchor, settings.MonthStartDay)
	totals := ledger.SumByType(txs)

	summary := &Summary{
		Period:   period,
		Range:    r,
		Count:    len(txs),
		Totals:   totals,
		Net:      totals.Net(),
		Surplus:  totals.Surplus(),
		Income:   make([]ledger.CategoryTotal, 0),
		Expense:  make([]ledger.CategoryTotal, 0),
		Series:   ledger.Series(txs, period),
		Position: ledger.NetPosition(all, *settings, s.clock.Today()),
	}
	for _, ct := range ledger.SumByCategory(txs) {
		if ct.Type == models.TransactionTypeIncome {
			summary.Income = append(summary.Income, ct)
		} else {
			summary.Expense = append(summary.Expense, ct)
		}
	}
	return summary, nil
}

// Recent returns the activity of the last two days by creation time.
func (s *statsService) Recent() ([]models.Transaction, error) {
	all, err := loadTransactions(s.db)
	if err != nil {
		return nil, err
	}
	return ledger.Recent(all, s.clock.Now()), nil
}

// Insight asks the generator about the transactions of one period.
func (s *statsService) Insight(ctx context.Context, period ledger.PeriodType, anchor models.Date) (*insight.Insight, error) {
	if !period.Valid() {
		return nil, apperrors.ErrInvalidPeriod
	}
	settings, err := loadSettings(s.db)
	if err != nil {
		return nil, err
	}
	all, err := loadTransactions(s.db)
	if err != nil {
		return nil, err
	}
	anchor = s.resolveAnchor(anchor)

	txs := ledger.FilterByPeriod(all, period, anchor, settings.MonthStartDay)
	r, _ := ledger.PeriodRange(period, anchor, settings.MonthStartDay)
	result := s.generator.Insight(ctx, txs, periodName(period, anchor, r), currencyOf(settings))
	return &result, nil
}

// periodName is how a period is referred to in the insight prompt.
func periodName(period ledger.PeriodType, anchor models.Date, r ledger.Range) string {
	switch period {
	case ledger.PeriodDay:
		return anchor.Format("Jan 2, 2006")
	case ledger.PeriodWeek:
		return "the week of " + r.Start.Format("Jan 2")
	case ledger.PeriodYear:
		return anchor.Format("2006")
	default:
		return anchor.Month().String()
	}
}
