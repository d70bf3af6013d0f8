package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"luxeledger/internal/ledger"
	"luxeledger/internal/models"
)

func foodAlert() Alert {
	return Alert{
		Evaluation: ledger.Evaluation{
			Category:       "Food",
			Capped:         true,
			Limit:          decimal.NewFromInt(500),
			SpentBeforeAdd: decimal.NewFromInt(450),
			WouldExceed:    true,
			OverBy:         decimal.NewFromInt(50),
		},
		Currency:      models.Currency{Code: "PKR", Symbol: "Rs", Name: "Pakistani Rupee"},
		TransactionID: "tx-1",
	}
}

func TestAlert_Text(t *testing.T) {
	a := foodAlert()
	if a.Title() != "Budget exceeded: Food" {
		t.Errorf("unexpected title %q", a.Title())
	}
	if want := "This expense puts Food Rs 50 over its Rs 500 limit."; a.Body() != want {
		t.Errorf("expected %q, got %q", want, a.Body())
	}
	data := a.Data()
	if data["over_by"] != "50" || data["transaction_id"] != "tx-1" || data["currency"] != "PKR" {
		t.Errorf("unexpected data %v", data)
	}
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core).Sugar())

	if err := n.BudgetExceeded(context.Background(), foodAlert()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Level != zap.WarnLevel || entry.ContextMap()["category"] != "Food" {
		t.Errorf("unexpected entry %+v", entry)
	}
}

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, m *messaging.Message) (string, error) {
	f.sent = append(f.sent, m)
	if f.err != nil {
		return "", f.err
	}
	return "projects/p/messages/1", nil
}

func TestFCMNotifier(t *testing.T) {
	t.Run("publishes to topic", func(t *testing.T) {
		sender := &fakeSender{}
		n := NewFCMNotifierWithSender(sender, "budget-alerts")

		if err := n.BudgetExceeded(context.Background(), foodAlert()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 message, got %d", len(sender.sent))
		}
		msg := sender.sent[0]
		if msg.Topic != "budget-alerts" || msg.Notification.Title != "Budget exceeded: Food" {
			t.Errorf("unexpected message %+v", msg)
		}
		if msg.Data["category"] != "Food" {
			t.Errorf("unexpected data %v", msg.Data)
		}
	})

	t.Run("wraps send errors", func(t *testing.T) {
		n := NewFCMNotifierWithSender(&fakeSender{err: errors.New("unavailable")}, "budget-alerts")
		err := n.BudgetExceeded(context.Background(), foodAlert())
		if err == nil || !strings.Contains(err.Error(), "unavailable") {
			t.Errorf("expected wrapped error, got %v", err)
		}
	})
}
