package ledger

import "luxeledger/internal/models"

// PeriodType selects the window a view is computed over.
type PeriodType string

const (
	PeriodDay   PeriodType = "day"
	PeriodWeek  PeriodType = "week"
	PeriodMonth PeriodType = "month"
	PeriodYear  PeriodType = "year"
)

// Valid reports whether p is one of the known period types.
func (p PeriodType) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// Range is an inclusive span of calendar dates.
type Range struct {
	Start models.Date `json:"start"`
	End   models.Date `json:"end"`
}

// Contains reports whether d lies within [Start, End].
func (r Range) Contains(d models.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// MonthRange returns the accounting month enclosing anchor. When the anchor's
// day is before monthStartDay the month began in the previous calendar month.
// The end is the day before the next occurrence of the start.
//
// monthStartDay must be in 1..31. Days past the end of a month are not
// clamped: they roll into the following month the way time.Date does.
func MonthRange(anchor models.Date, monthStartDay int) Range {
	start := models.NewDate(anchor.Year(), anchor.Month(), monthStartDay)
	if anchor.Day() < monthStartDay {
		start = start.AddMonths(-1)
	}
	return Range{Start: start, End: start.AddMonths(1).AddDays(-1)}
}

// DayRange is the single day of the anchor.
func DayRange(anchor models.Date) Range {
	return Range{Start: anchor, End: anchor}
}

// WeekRange is the Sunday to Saturday week containing anchor.
func WeekRange(anchor models.Date) Range {
	start := anchor.AddDays(-int(anchor.Weekday()))
	return Range{Start: start, End: start.AddDays(6)}
}

// YearRange is the calendar year of anchor.
func YearRange(anchor models.Date) Range {
	return Range{
		Start: models.NewDate(anchor.Year(), 1, 1),
		End:   models.NewDate(anchor.Year(), 12, 31),
	}
}

// PeriodRange dispatches on p. It returns false for an unknown period type.
func PeriodRange(p PeriodType, anchor models.Date, monthStartDay int) (Range, bool) {
	switch p {
	case PeriodDay:
		return DayRange(anchor), true
	case PeriodWeek:
		return WeekRange(anchor), true
	case PeriodMonth:
		return MonthRange(anchor, monthStartDay), true
	case PeriodYear:
		return YearRange(anchor), true
	}
	return Range{}, false
}
