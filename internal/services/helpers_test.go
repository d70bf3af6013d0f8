package services

import (
	"context"
	"time"

	"luxeledger/internal/notify"
)

// testNow is 10:00 UTC on Friday 15 March 2024.
var testNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func testClock() Clock {
	return Clock{Now: func() time.Time { return testNow }, Location: time.UTC}
}

type recordingNotifier struct {
	alerts []notify.Alert
	err    error
}

func (n *recordingNotifier) BudgetExceeded(_ context.Context, alert notify.Alert) error {
	n.alerts = append(n.alerts, alert)
	return n.err
}

type stubModel struct {
	text   string
	err    error
	prompt string
}

func (m *stubModel) Generate(_ context.Context, prompt string) (string, error) {
	m.prompt = prompt
	return m.text, m.err
}
