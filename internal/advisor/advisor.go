// Package advisor builds a financial-context prompt and delegates to an
// external text-generation collaborator for advice.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Apology is returned verbatim whenever the generator fails, so the chat
// surface keeps working offline.
const Apology = "I'm sorry, I'm unable to offer advice right now. Please try again in a little while."

// Guidance is the structured object the generator must produce.
type Guidance struct {
	Message       string   `json:"message"`
	Actions       []string `json:"actions"`
	Encouragement string   `json:"encouragement"`
}

// Generator is the external text-generation collaborator.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*Guidance, error)
}

type Advisor struct {
	generator Generator
	logger    *zap.Logger
}

func New(generator Generator, logger *zap.Logger) *Advisor {
	return &Advisor{generator: generator, logger: logger}
}

// Advise builds the prompt from the user's context bundle and returns the
// rendered advice. Generator failures are swallowed: the caller always
// gets a usable response string.
func (a *Advisor) Advise(ctx context.Context, query string, summary Summary) string {
	prompt := BuildPrompt(query, summary)

	guidance, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		a.logger.Warn("advice generation failed", zap.Error(err))
		return Apology
	}
	return RenderHTML(guidance)
}

// BuildPrompt combines the query with the summarized context into the
// fixed prompt handed to the generator.
func BuildPrompt(query string, s Summary) string {
	var b strings.Builder
	b.WriteString("You are a supportive personal finance advisor.\n")
	b.WriteString("Answer the user's question using their financial context below.\n\n")

	fmt.Fprintf(&b, "Total balance across accounts: %s\n", s.TotalBalance.StringFixed(2))

	if len(s.TopCategories) > 0 {
		b.WriteString("Top spending categories:\n")
		for _, c := range s.TopCategories {
			fmt.Fprintf(&b, "- %s: %s\n", c.Category, c.Total.StringFixed(2))
		}
	}

	if len(s.Goals) > 0 {
		b.WriteString("Savings goal progress:\n")
		for _, g := range s.Goals {
			fmt.Fprintf(&b, "- %s: %s%%\n", g.Name, g.Percent.String())
		}
	}

	fmt.Fprintf(&b, "Recent dominant mood: %s\n\n", s.DominantMood)
	fmt.Fprintf(&b, "Question: %s\n", query)
	b.WriteString("Respond as JSON with fields \"message\", \"actions\" (a short list of suggested actions) and \"encouragement\" (one supportive sentence).")
	return b.String()
}
