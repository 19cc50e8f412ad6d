package calibration

import (
	"math"
	"testing"

	"github.com/abhisek/gauge/internal/irt"
	"github.com/abhisek/gauge/internal/itembank"
)

func bankItem(id string, domain itembank.Domain, params irt.Params, sample int) itembank.Item {
	source := itembank.SourceDefault
	if sample > 0 {
		source = itembank.SourceEmpirical
	}
	return itembank.Item{
		ID:          id,
		Domain:      domain,
		Prompt:      "?",
		Options:     []string{"a", "b", "c", "d"},
		AnswerIndex: 0,
		Params:      params,
		Calibration: itembank.Calibration{Source: source, SampleSize: sample},
	}
}

func TestConfig_RequiredSampleSize(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want int
	}{
		{"default 95/10", Config{Confidence: 0.95, MarginOfError: 0.10}, 97},
		{"90/10", Config{Confidence: 0.90, MarginOfError: 0.10}, 68},
		{"95/5", Config{Confidence: 0.95, MarginOfError: 0.05}, 385},
		{"unknown confidence falls back to 95", Config{Confidence: 0.42, MarginOfError: 0.10}, 97},
		{"zero margin falls back to 10%", Config{Confidence: 0.95}, 97},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.RequiredSampleSize(); got != tt.want {
				t.Errorf("RequiredSampleSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestService_Resolve_Empirical(t *testing.T) {
	svc := NewService(DefaultConfig())
	params := irt.Params{Discrimination: 1.4, Difficulty: 0.8, Guessing: 0.25}
	it := bankItem("x", itembank.DomainFractions, params, 150)

	got, source := svc.Resolve(it, nil)
	if source != itembank.SourceEmpirical {
		t.Fatalf("source = %s, want empirical", source)
	}
	if got != params {
		t.Errorf("params = %+v, want item's own %+v", got, params)
	}
}

func TestService_Resolve_DomainAverage(t *testing.T) {
	svc := NewService(DefaultConfig())

	calibrated1 := bankItem("f-1", itembank.DomainFractions, irt.Params{Discrimination: 1.0, Difficulty: -1, Guessing: 0.2}, 200)
	calibrated2 := bankItem("f-2", itembank.DomainFractions, irt.Params{Discrimination: 2.0, Difficulty: 1, Guessing: 0.3}, 200)
	otherDomain := bankItem("g-1", itembank.DomainGeometry, irt.Params{Discrimination: 4, Difficulty: 4, Guessing: 0.5}, 200)
	uncalibrated := bankItem("f-3", itembank.DomainFractions, irt.Params{}, 0)

	bank, err := itembank.NewBank([]itembank.Item{calibrated1, calibrated2, otherDomain, uncalibrated})
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}

	got, source := svc.Resolve(uncalibrated, bank)
	if source != itembank.SourceDomainAverage {
		t.Fatalf("source = %s, want domain-average", source)
	}
	want := irt.Params{Discrimination: 1.5, Difficulty: 0, Guessing: 0.25}
	if math.Abs(got.Discrimination-want.Discrimination) > 1e-9 ||
		math.Abs(got.Difficulty-want.Difficulty) > 1e-9 ||
		math.Abs(got.Guessing-want.Guessing) > 1e-9 {
		t.Errorf("params = %+v, want average %+v (geometry item must be excluded)", got, want)
	}
}

func TestService_Resolve_GlobalDefault(t *testing.T) {
	svc := NewService(DefaultConfig())
	uncalibrated := bankItem("f-3", itembank.DomainFractions, irt.Params{}, 0)

	bank, err := itembank.NewBank([]itembank.Item{uncalibrated})
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}

	got, source := svc.Resolve(uncalibrated, bank)
	if source != itembank.SourceDefault {
		t.Fatalf("source = %s, want default", source)
	}
	if got != DefaultParams {
		t.Errorf("params = %+v, want global defaults %+v", got, DefaultParams)
	}
}

func TestService_Resolve_InsufficientSampleFallsThrough(t *testing.T) {
	svc := NewService(DefaultConfig())
	// 50 < the 97 required at 95%/10%: the item's own parameters are not trusted.
	it := bankItem("x", itembank.DomainData, irt.Params{Discrimination: 1.4, Difficulty: 2, Guessing: 0.25}, 50)

	bank, err := itembank.NewBank([]itembank.Item{it})
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}

	got, source := svc.Resolve(it, bank)
	if source != itembank.SourceDefault {
		t.Fatalf("source = %s, want default", source)
	}
	if got != DefaultParams {
		t.Errorf("params = %+v, want defaults", got)
	}
}

func TestService_Resolve_InvalidEmpiricalSkipped(t *testing.T) {
	svc := NewService(DefaultConfig())
	it := bankItem("x", itembank.DomainData, irt.Params{Discrimination: -1, Difficulty: 0, Guessing: 0.25}, 500)

	_, source := svc.Resolve(it, nil)
	if source != itembank.SourceDefault {
		t.Errorf("source = %s, want default (invalid empirical params must be skipped)", source)
	}
}

func TestEstimateParams(t *testing.T) {
	// Synthetic cohort: high-theta responders get it right, low-theta wrong.
	var points []ResponsePoint
	for i := 0; i < 60; i++ {
		theta := -2.0 + float64(i)*(4.0/59.0)
		points = append(points, ResponsePoint{Correct: theta > 0.5, Theta: theta})
	}

	params, ok := EstimateParams(points, 4, 50)
	if !ok {
		t.Fatal("expected estimation to succeed")
	}
	if !params.Valid() {
		t.Fatalf("invalid params %+v", params)
	}
	if params.Guessing != 0.25 {
		t.Errorf("guessing = %.3f, want 1/options = 0.25", params.Guessing)
	}
	// Fewer than half answered correctly, so the item is on the hard side.
	if params.Difficulty <= 0 {
		t.Errorf("difficulty = %.3f, want > 0 for a hard item", params.Difficulty)
	}
	// Correctness tracks theta strongly, so discrimination should be high.
	if params.Discrimination < 1.0 {
		t.Errorf("discrimination = %.3f, want >= 1 for a well-separating item", params.Discrimination)
	}
}

func TestEstimateParams_Degenerate(t *testing.T) {
	uniform := func(correct bool, n int) []ResponsePoint {
		pts := make([]ResponsePoint, n)
		for i := range pts {
			pts[i] = ResponsePoint{Correct: correct, Theta: float64(i % 5)}
		}
		return pts
	}

	if _, ok := EstimateParams(uniform(true, 100), 4, 50); ok {
		t.Error("all-correct sample must be rejected")
	}
	if _, ok := EstimateParams(uniform(false, 100), 4, 50); ok {
		t.Error("all-wrong sample must be rejected")
	}
	if _, ok := EstimateParams(nil, 4, 50); ok {
		t.Error("empty sample must be rejected")
	}

	// No ability variance: point-biserial undefined.
	flat := make([]ResponsePoint, 100)
	for i := range flat {
		flat[i] = ResponsePoint{Correct: i%2 == 0, Theta: 1.0}
	}
	if _, ok := EstimateParams(flat, 4, 50); ok {
		t.Error("zero-variance sample must be rejected")
	}
}
