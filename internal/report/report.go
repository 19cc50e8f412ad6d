// Package report turns a completed diagnostic into a learner-facing
// narrative: a short summary and concrete study recommendations. With an
// LLM provider configured the narrative is model-written and
// schema-validated; without one it falls back to a static rendering.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/abhisek/gauge/internal/diagnostic"
	"github.com/abhisek/gauge/internal/itembank"
	"github.com/abhisek/gauge/internal/llm"
)

// Purpose tags the event rows written by the logging decorator.
const Purpose = "report-narrative"

const (
	maxRecommendations = 5
	narrativeTokens    = 700
)

// Narrative is the generated report text.
type Narrative struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`

	// Generated is true when a model wrote the narrative, false for the
	// static fallback.
	Generated bool `json:"-"`
}

// Generator produces narratives for diagnostic results.
type Generator struct {
	provider llm.Provider
}

// NewGenerator builds a generator. A nil provider is valid and always
// yields the static fallback.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// Narrative writes the report for the results. Provider failures degrade
// to the static fallback with a warning rather than failing the report.
func (g *Generator) Narrative(ctx context.Context, results *diagnostic.Results) *Narrative {
	if g.provider == nil {
		return staticNarrative(results)
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(results),
		Schema:      narrativeSchema(),
		MaxTokens:   narrativeTokens,
		Temperature: 0.4,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: narrative generation failed, using static report: %v\n", err)
		return staticNarrative(results)
	}

	var narrative Narrative
	if err := json.Unmarshal(resp.Content, &narrative); err != nil {
		fmt.Fprintf(os.Stderr, "warning: narrative output unreadable, using static report: %v\n", err)
		return staticNarrative(results)
	}
	if len(narrative.Recommendations) > maxRecommendations {
		narrative.Recommendations = narrative.Recommendations[:maxRecommendations]
	}
	narrative.Generated = true
	return &narrative
}

const systemPrompt = `You write short placement-test reports for parents of grade 3-5 students.
Plain, encouraging language. No jargon, no ability scores, no percentages.
Ground every recommendation in the listed weak or strong areas.`

// buildPrompt renders the results as a compact context block.
func buildPrompt(results *diagnostic.Results) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Placement test finished: %d questions, %d correct.\n", results.QuestionsAnswered, results.CorrectAnswers)
	fmt.Fprintf(&b, "Overall ability %s (uncertainty %s).\n\n", abilityBand(results.Theta), precisionBand(results.SE))

	b.WriteString("Per-area results:\n")
	for _, d := range sortedDomains(results.Domains) {
		a := results.Domains[d]
		if a.NoData {
			fmt.Fprintf(&b, "- %s: not assessed\n", d)
			continue
		}
		fmt.Fprintf(&b, "- %s: %s (%d of %d correct)\n", d, abilityBand(a.Theta), a.Correct, a.Administered)
	}

	if len(results.Weak) > 0 {
		fmt.Fprintf(&b, "\nNeeds practice: %s\n", joinDomains(results.Weak))
	}
	if len(results.Strong) > 0 {
		fmt.Fprintf(&b, "Strengths: %s\n", joinDomains(results.Strong))
	}

	b.WriteString("\nWrite the summary and up to 5 study recommendations.")
	return b.String()
}

func narrativeSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "placement-narrative",
		Description: "Summary and study recommendations for a finished placement test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary": map[string]any{
					"type":        "string",
					"description": "Two to four sentences on how the student did",
				},
				"recommendations": map[string]any{
					"type":        "array",
					"description": "Concrete next practice steps",
					"items":       map[string]any{"type": "string"},
				},
			},
			"required":             []any{"summary", "recommendations"},
			"additionalProperties": false,
		},
	}
}

// staticNarrative is the no-provider rendering, built from the same bands
// the prompt uses.
func staticNarrative(results *diagnostic.Results) *Narrative {
	var summary strings.Builder
	fmt.Fprintf(&summary, "Answered %d of %d questions correctly; overall level: %s.",
		results.CorrectAnswers, results.QuestionsAnswered, abilityBand(results.Theta))
	if len(results.Strong) > 0 {
		fmt.Fprintf(&summary, " Strong areas: %s.", joinDomains(results.Strong))
	}
	if len(results.Weak) > 0 {
		fmt.Fprintf(&summary, " Areas needing practice: %s.", joinDomains(results.Weak))
	}

	var recs []string
	for _, d := range results.Weak {
		recs = append(recs, fmt.Sprintf("Practice %s with a short daily exercise set.", d))
	}
	if len(recs) == 0 {
		recs = append(recs, "Keep practicing across all areas to maintain the current level.")
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}

	return &Narrative{
		Summary:         summary.String(),
		Recommendations: recs,
	}
}

// abilityBand maps theta to a plain-language level.
func abilityBand(theta float64) string {
	switch {
	case theta < -1.5:
		return "well below grade level"
	case theta < -0.5:
		return "below grade level"
	case theta <= 0.5:
		return "at grade level"
	case theta <= 1.5:
		return "above grade level"
	default:
		return "well above grade level"
	}
}

// precisionBand maps the standard error to a confidence phrase.
func precisionBand(se float64) string {
	switch {
	case se <= 0.3:
		return "high confidence"
	case se <= 0.6:
		return "moderate confidence"
	default:
		return "low confidence"
	}
}

func sortedDomains(m map[itembank.Domain]diagnostic.DomainAbility) []itembank.Domain {
	rank := make(map[itembank.Domain]int)
	for i, d := range itembank.AllDomains() {
		rank[d] = i
	}
	out := make([]itembank.Domain, 0, len(m))
	for d := range m {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return rank[out[i]] < rank[out[j]] })
	return out
}

func joinDomains(domains []itembank.Domain) string {
	parts := make([]string, len(domains))
	for i, d := range domains {
		parts[i] = string(d)
	}
	return strings.Join(parts, ", ")
}
