// Package enrich adds an optional AI commentary to the digest. The pipeline
// renders a complete report whether or not an analyzer is configured or
// succeeds; analysis text is opaque to everything else.
package enrich

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"newsbrief/internal/digest"
)

// Analyzer produces a free-form commentary for the collected items.
type Analyzer interface {
	AnalyzeDigest(ctx context.Context, items []digest.Item) (string, error)
}

// Gemini is the Google Generative AI backed analyzer.
type Gemini struct {
	client   *genai.Client
	model    string
	maxItems int
	budget   *Budget
}

// NewGemini builds the analyzer. maxItems caps how many items go into one
// prompt; budget caps requests per run.
func NewGemini(ctx context.Context, apiKey, model string, maxItems int, budget *Budget) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	if maxItems <= 0 {
		maxItems = 10
	}
	return &Gemini{client: client, model: model, maxItems: maxItems, budget: budget}, nil
}

// Close releases the underlying client.
func (g *Gemini) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

// AnalyzeDigest asks the model for a short commentary over the most important
// items. Errors are structured failures for the caller to log; they never
// carry partial output.
func (g *Gemini) AnalyzeDigest(ctx context.Context, items []digest.Item) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("no items to analyze")
	}
	if g.budget != nil && !g.budget.Allow() {
		return "", fmt.Errorf("ai request budget exhausted")
	}

	n := len(items)
	if n > g.maxItems {
		n = g.maxItems
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		item := items[i]
		fmt.Fprintf(&b, "%d. [%s] %s: %s (source: %s)\n",
			i+1, item.Category.Label(), item.Title, item.Summary, item.Source)
	}

	prompt := fmt.Sprintf(`You are an editor writing the analysis paragraph of a daily news digest.

Today's most important items:
%s
Write a concise commentary (at most 200 words) covering:
1. The dominant themes of the day.
2. The overall tone (positive, negative, mixed).
3. Anything a reader should watch in the coming days.

Plain text only, no headings, no lists.`, b.String())

	model := g.client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate analysis: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}

	analysis := strings.TrimSpace(out.String())
	if analysis == "" {
		return "", fmt.Errorf("model returned no text")
	}
	return analysis, nil
}
