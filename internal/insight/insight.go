// Package insight turns a period's transactions into a short narrative
// using a Gemini model.
package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"luxeledger/internal/ledger"
	"luxeledger/internal/logger"
	"luxeledger/internal/models"
)

// Fixed texts returned when the model is not consulted or fails.
const (
	EmptyText        = "Add some transactions to see smart insights!"
	GatedText        = "Connect an AI key to unlock smart insights."
	FallbackText     = "Your financial journey is looking solid. Keep it up!"
	ReauthorizeText  = "AI connection needs re-authorization in settings."
	EmptyModelAnswer = "Keep tracking to optimize your wealth."
)

// Source says where an insight's text came from.
type Source string

const (
	SourceEmpty    Source = "empty"
	SourceGated    Source = "gated"
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// Insight is the generated text for a period.
type Insight struct {
	Text   string `json:"text"`
	Source Source `json:"source"`
}

// Model generates text for a prompt.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Generator builds prompts and degrades to fixed texts when the model is
// unavailable. A Generator with a nil Model is gated.
type Generator struct {
	model Model
}

// NewGenerator returns a Generator over model, which may be nil.
func NewGenerator(model Model) *Generator {
	return &Generator{model: model}
}

// Enabled reports whether a model is configured.
func (g *Generator) Enabled() bool {
	return g.model != nil
}

// Insight summarises txs for the period called periodName.
func (g *Generator) Insight(ctx context.Context, txs []models.Transaction, periodName string, currency models.Currency) Insight {
	if len(txs) == 0 {
		return Insight{Text: EmptyText, Source: SourceEmpty}
	}
	if g.model == nil {
		return Insight{Text: GatedText, Source: SourceGated}
	}

	text, err := g.model.Generate(ctx, BuildPrompt(txs, periodName, currency))
	if err != nil {
		logger.Named("insight").Warnw("insight generation failed", "error", err, "period", periodName)
		if strings.Contains(err.Error(), "entity was not found") {
			return Insight{Text: ReauthorizeText, Source: SourceFallback}
		}
		return Insight{Text: FallbackText, Source: SourceFallback}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Insight{Text: EmptyModelAnswer, Source: SourceFallback}
	}
	return Insight{Text: text, Source: SourceModel}
}

type promptRow struct {
	Category string                 `json:"cat"`
	Amount   json.Number            `json:"amt"`
	Type     models.TransactionType `json:"type"`
}

// BuildPrompt renders the period summary the model is asked about.
func BuildPrompt(txs []models.Transaction, periodName string, currency models.Currency) string {
	totals := ledger.SumByType(txs)

	rows := make([]promptRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, promptRow{Category: tx.Category, Amount: json.Number(tx.Amount.String()), Type: tx.Type})
	}
	details, _ := json.Marshal(rows)

	var b strings.Builder
	fmt.Fprintf(&b, "Based on the following financial summary for %s:\n", periodName)
	fmt.Fprintf(&b, "Total Income: %s%s\n", currency.Symbol, totals.Income.String())
	fmt.Fprintf(&b, "Total Expenses: %s%s\n", currency.Symbol, totals.Expense.String())
	fmt.Fprintf(&b, "Transaction Details: %s\n\n", details)
	b.WriteString("Provide a concise, premium-style financial insight (max 2 sentences).\n")
	b.WriteString("Focus on savings potential or spending trends. Be encouraging but professional.\n")
	return b.String()
}

// GeminiModel calls the Gemini API through the genai SDK.
type GeminiModel struct {
	client *genai.Client
	name   string
}

// NewGeminiModel creates a genai client authenticated with apiKey.
func NewGeminiModel(ctx context.Context, apiKey, modelName string) (*GeminiModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiModel{client: client, name: modelName}, nil
}

// Generate sends prompt as a single user turn and returns the text answer.
func (m *GeminiModel) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.Models.GenerateContent(ctx, m.name, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}
