package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/gauge/internal/diagnostic"
	"github.com/abhisek/gauge/internal/itembank"
	"github.com/abhisek/gauge/internal/llm"
)

func sampleResults() *diagnostic.Results {
	return &diagnostic.Results{
		SessionID: "s-1",
		OwnerID:   "learner-1",
		Theta:     -0.8,
		SE:        0.4,
		Domains: map[itembank.Domain]diagnostic.DomainAbility{
			itembank.DomainArithmetic: {Theta: 0.9, SE: 0.5, Administered: 3, Correct: 3},
			itembank.DomainFractions:  {Theta: -1.2, SE: 0.5, Administered: 3, Correct: 1},
			itembank.DomainGeometry:   {Theta: 0, SE: 1, NoData: true},
		},
		Weak:              []itembank.Domain{itembank.DomainFractions},
		Strong:            []itembank.Domain{itembank.DomainArithmetic},
		QuestionsAnswered: 6,
		CorrectAnswers:    4,
		Accuracy:          4.0 / 6.0,
		Reason:            diagnostic.ReasonMaxQuestions,
		StartedAt:         time.Now().Add(-10 * time.Minute),
		CompletedAt:       time.Now(),
	}
}

func TestNarrative_Generated(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResult{
		Content: json.RawMessage(`{"summary":"A solid run with room to grow in fractions.","recommendations":["Practice comparing fractions","Review equivalent fractions"]}`),
	})
	gen := NewGenerator(mock)

	narrative := gen.Narrative(t.Context(), sampleResults())
	if !narrative.Generated {
		t.Error("narrative not marked as generated")
	}
	if narrative.Summary == "" || len(narrative.Recommendations) != 2 {
		t.Errorf("narrative = %+v", narrative)
	}

	// The prompt grounds the model in the actual results.
	if mock.CallCount() != 1 {
		t.Fatalf("call count = %d, want 1", mock.CallCount())
	}
	prompt := mock.Calls[0].Prompt
	for _, want := range []string{"fractions", "arithmetic", "not assessed", "6 questions, 4 correct"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if mock.Calls[0].Schema == nil {
		t.Error("request carried no output schema")
	}
}

func TestNarrative_NilProviderFallsBack(t *testing.T) {
	gen := NewGenerator(nil)

	narrative := gen.Narrative(t.Context(), sampleResults())
	if narrative.Generated {
		t.Error("static narrative marked as generated")
	}
	if !strings.Contains(narrative.Summary, "below grade level") {
		t.Errorf("summary = %q, want the ability band", narrative.Summary)
	}
	if len(narrative.Recommendations) == 0 {
		t.Fatal("no recommendations in static narrative")
	}
	if !strings.Contains(narrative.Recommendations[0], "fractions") {
		t.Errorf("recommendation %q does not target the weak domain", narrative.Recommendations[0])
	}
}

func TestNarrative_ProviderFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: always unavailable
	gen := NewGenerator(mock)

	narrative := gen.Narrative(t.Context(), sampleResults())
	if narrative.Generated {
		t.Error("fallback narrative marked as generated")
	}
	if narrative.Summary == "" {
		t.Error("fallback produced an empty summary")
	}
}

func TestNarrative_CapsRecommendations(t *testing.T) {
	long := `{"summary":"s","recommendations":["a","b","c","d","e","f","g"]}`
	mock := llm.NewMockProvider(llm.MockResult{Content: json.RawMessage(long)})
	gen := NewGenerator(mock)

	narrative := gen.Narrative(t.Context(), sampleResults())
	if len(narrative.Recommendations) != maxRecommendations {
		t.Errorf("recommendations = %d, want capped at %d", len(narrative.Recommendations), maxRecommendations)
	}
}

func TestAbilityBands(t *testing.T) {
	tests := []struct {
		theta float64
		want  string
	}{
		{-3, "well below grade level"},
		{-1, "below grade level"},
		{0, "at grade level"},
		{1, "above grade level"},
		{3, "well above grade level"},
	}
	for _, tt := range tests {
		if got := abilityBand(tt.theta); got != tt.want {
			t.Errorf("abilityBand(%g) = %q, want %q", tt.theta, got, tt.want)
		}
	}
}

func TestStaticNarrative_NoWeakDomains(t *testing.T) {
	results := sampleResults()
	results.Weak = nil

	narrative := staticNarrative(results)
	if len(narrative.Recommendations) != 1 {
		t.Fatalf("recommendations = %v, want one general suggestion", narrative.Recommendations)
	}
}
