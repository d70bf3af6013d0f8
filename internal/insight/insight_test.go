package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"luxeledger/internal/models"
)

type fakeModel struct {
	prompt string
	answer string
	err    error
}

func (f *fakeModel) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.answer, f.err
}

var pkr = models.Currency{Code: "PKR", Symbol: "Rs", Name: "Pakistani Rupee"}

func sampleTxs() []models.Transaction {
	return []models.Transaction{
		{Type: models.TransactionTypeIncome, Category: "Salary", Amount: decimal.NewFromInt(1000)},
		{Type: models.TransactionTypeExpense, Category: "Food", Amount: decimal.RequireFromString("250.5")},
	}
}

func TestInsight(t *testing.T) {
	ctx := context.Background()

	t.Run("empty period", func(t *testing.T) {
		got := NewGenerator(&fakeModel{answer: "x"}).Insight(ctx, nil, "March", pkr)
		if got.Text != EmptyText || got.Source != SourceEmpty {
			t.Errorf("unexpected %+v", got)
		}
	})

	t.Run("gated without model", func(t *testing.T) {
		g := NewGenerator(nil)
		if g.Enabled() {
			t.Error("expected generator to be disabled")
		}
		got := g.Insight(ctx, sampleTxs(), "March", pkr)
		if got.Source != SourceGated {
			t.Errorf("unexpected %+v", got)
		}
	})

	t.Run("model answer", func(t *testing.T) {
		m := &fakeModel{answer: "  You saved 75% this month.  "}
		got := NewGenerator(m).Insight(ctx, sampleTxs(), "March", pkr)
		if got.Text != "You saved 75% this month." || got.Source != SourceModel {
			t.Errorf("unexpected %+v", got)
		}
		if !strings.Contains(m.prompt, "March") {
			t.Errorf("expected period name in prompt: %s", m.prompt)
		}
	})

	t.Run("blank model answer", func(t *testing.T) {
		got := NewGenerator(&fakeModel{answer: " "}).Insight(ctx, sampleTxs(), "March", pkr)
		if got.Text != EmptyModelAnswer {
			t.Errorf("unexpected %+v", got)
		}
	})

	t.Run("model error", func(t *testing.T) {
		got := NewGenerator(&fakeModel{err: errors.New("quota exceeded")}).Insight(ctx, sampleTxs(), "March", pkr)
		if got.Text != FallbackText || got.Source != SourceFallback {
			t.Errorf("unexpected %+v", got)
		}
	})

	t.Run("revoked key", func(t *testing.T) {
		got := NewGenerator(&fakeModel{err: errors.New("Requested entity was not found.")}).Insight(ctx, sampleTxs(), "March", pkr)
		if got.Text != ReauthorizeText {
			t.Errorf("unexpected %+v", got)
		}
	})
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleTxs(), "Week", pkr)
	for _, want := range []string{
		"summary for Week",
		"Total Income: Rs1000",
		"Total Expenses: Rs250.5",
		`{"cat":"Food","amt":250.5,"type":"expense"}`,
		"max 2 sentences",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %q:\n%s", want, prompt)
		}
	}
}
