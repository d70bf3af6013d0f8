// Package importer parses ledger rows pasted from a spreadsheet or a bank
// export.
//
// Input is line oriented. Each line is split on tabs, or on runs of two or
// more spaces when it has fewer than three tab-separated cells. Lines that do
// not resolve to a dated, priced row are skipped; parsing never fails as a
// whole.
package importer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"luxeledger/internal/models"
)

// TimestampStep is the gap in milliseconds between synthesized timestamps
// of consecutive imported rows.
const TimestampStep = 5

// bankLayoutCells is the cell count from which a row is read as a bank
// statement export rather than a plain sheet.
const bankLayoutCells = 7

var (
	multiSpace    = regexp.MustCompile(`\s{2,}`)
	dateSeparator = regexp.MustCompile(`[/\s,.-]+`)
	nonAmount     = regexp.MustCompile(`[^\d.]`)
)

// Row is one parsed line.
type Row struct {
	Line     int
	Type     models.TransactionType
	Category string
	Note     string
	Amount   decimal.Decimal
	Date     models.Date
}

// Result is the outcome of parsing a block of text.
type Result struct {
	Rows    []Row
	Skipped int
}

// Parse reads every non-blank line of text.
func Parse(text string) Result {
	var res Result
	for i, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, ok := ParseLine(line)
		if !ok {
			res.Skipped++
			continue
		}
		row.Line = i + 1
		res.Rows = append(res.Rows, row)
	}
	return res
}

// ParseLine parses a single row.
//
// Rows with seven or more cells use the bank layout: date, -, category, -,
// note, -, type, amount. Shorter rows are date, category, note, amount and an
// optional type.
func ParseLine(line string) (Row, bool) {
	cells := splitCells(line)
	if len(cells) < 3 {
		return Row{}, false
	}

	var dateCell, category, note, typeCell, amountCell string
	if len(cells) >= bankLayoutCells {
		dateCell, category, note, typeCell = cells[0], cells[2], cells[4], cells[6]
		amountCell = cell(cells, 7)
	} else {
		dateCell, category, note = cells[0], cells[1], cells[2]
		amountCell, typeCell = cell(cells, 3), cell(cells, 4)
	}

	amount, ok := parseAmount(amountCell)
	if !ok {
		return Row{}, false
	}
	date, ok := parseDate(dateCell)
	if !ok {
		return Row{}, false
	}
	if category == "" {
		return Row{}, false
	}

	return Row{
		Type:     parseType(typeCell),
		Category: category,
		Note:     note,
		Amount:   amount,
		Date:     date,
	}, true
}

// Transactions converts rows into transactions. Timestamps are the row date
// at UTC midnight plus TimestampStep per row index so rows sharing a date
// keep their order.
func Transactions(rows []Row) []models.Transaction {
	out := make([]models.Transaction, 0, len(rows))
	for i, r := range rows {
		out = append(out, models.Transaction{
			Type:      r.Type,
			Category:  r.Category,
			Note:      r.Note,
			Amount:    r.Amount,
			Date:      r.Date,
			Timestamp: r.Date.MidnightMillis() + int64(i*TimestampStep),
		})
	}
	return out
}

func splitCells(line string) []string {
	line = strings.TrimRight(line, "\r")
	parts := strings.Split(line, "\t")
	if len(parts) < 3 {
		parts = multiSpace.Split(line, -1)
	}
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cells = append(cells, p)
		}
	}
	return cells
}

func cell(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

func parseAmount(s string) (decimal.Decimal, bool) {
	clean := nonAmount.ReplaceAllString(s, "")
	if clean == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func parseType(s string) models.TransactionType {
	lower := strings.ToLower(s)
	if strings.Contains(lower, "income") || strings.Contains(lower, "salary") {
		return models.TransactionTypeIncome
	}
	return models.TransactionTypeExpense
}

// parseDate accepts Y/M/D when the first part has four digits and D/M/Y
// otherwise. Two digit years are taken as 20xx. The parts must name a real
// calendar day.
func parseDate(s string) (models.Date, bool) {
	parts := dateSeparator.Split(strings.TrimSpace(s), -1)
	if len(parts) < 3 {
		return models.Date{}, false
	}

	var y, m, d int
	var err error
	nums := make([]int, 3)
	for i := 0; i < 3; i++ {
		if nums[i], err = strconv.Atoi(parts[i]); err != nil {
			return models.Date{}, false
		}
	}
	if len(parts[0]) == 4 {
		y, m, d = nums[0], nums[1], nums[2]
	} else {
		d, m, y = nums[0], nums[1], nums[2]
	}
	if y < 100 {
		y += 2000
	}

	date := models.NewDate(y, time.Month(m), d)
	if date.Year() != y || int(date.Month()) != m || date.Day() != d {
		return models.Date{}, false
	}
	return date, true
}
