package irt

import (
	"math"
	"testing"
)

func item(a, b, c float64) Params {
	return Params{Discrimination: a, Difficulty: b, Guessing: c}
}

func TestEstimateAbility_EmptyHistory(t *testing.T) {
	got := EstimateAbility(nil)
	if got.Theta != 0 || got.SE != 1 {
		t.Errorf("empty history = (%.4f, %.4f), want exactly (0, 1)", got.Theta, got.SE)
	}

	got = EstimateAbility([]Response{})
	if got.Theta != 0 || got.SE != 1 {
		t.Errorf("zero-length history = (%.4f, %.4f), want exactly (0, 1)", got.Theta, got.SE)
	}
}

func TestEstimateAbility_AllCorrectClampsAtBound(t *testing.T) {
	var history []Response
	for _, b := range []float64{-1, -0.5, 0, 0.5, 1} {
		history = append(history, Response{Params: item(1.5, b, 0.25), Correct: true})
	}

	got := EstimateAbility(history)
	if got.Theta != ThetaMax {
		t.Errorf("all-correct theta = %.4f, want clamp at %.1f", got.Theta, ThetaMax)
	}
	if got.SE <= 0 || got.SE > SEMax {
		t.Errorf("SE = %.4f outside (0, %.0f]", got.SE, SEMax)
	}
}

func TestEstimateAbility_AllWrongClampsAtLowerBound(t *testing.T) {
	var history []Response
	for _, b := range []float64{-1, 0, 1} {
		history = append(history, Response{Params: item(1.5, b, 0), Correct: false})
	}

	got := EstimateAbility(history)
	if got.Theta != ThetaMin {
		t.Errorf("all-wrong theta = %.4f, want clamp at %.1f", got.Theta, ThetaMin)
	}
}

func TestEstimateAbility_MixedHistoryTracksDifficulty(t *testing.T) {
	// Correct on easy items, wrong on hard ones: theta should land between.
	history := []Response{
		{Params: item(1.5, -2, 0.2), Correct: true},
		{Params: item(1.5, -1, 0.2), Correct: true},
		{Params: item(1.5, 0, 0.2), Correct: true},
		{Params: item(1.5, 1, 0.2), Correct: false},
		{Params: item(1.5, 2, 0.2), Correct: false},
	}

	got := EstimateAbility(history)
	if got.Fallback {
		t.Fatal("expected MLE convergence, got fallback")
	}
	if got.Theta < -1 || got.Theta > 2 {
		t.Errorf("theta = %.4f, want a mid-range estimate", got.Theta)
	}
	if got.SE <= 0 || got.SE > SEMax {
		t.Errorf("SE = %.4f outside (0, %.0f]", got.SE, SEMax)
	}
}

func TestEstimateAbility_Deterministic(t *testing.T) {
	history := []Response{
		{Params: item(1.2, -0.5, 0.25), Correct: true},
		{Params: item(0.8, 0.3, 0.2), Correct: false},
		{Params: item(2.0, 1.1, 0.25), Correct: true},
		{Params: item(1.5, -1.2, 0), Correct: true},
	}

	first := EstimateAbility(history)
	second := EstimateAbility(history)
	if first.Theta != second.Theta || first.SE != second.SE {
		t.Errorf("replay not bit-identical: (%v, %v) vs (%v, %v)",
			first.Theta, first.SE, second.Theta, second.SE)
	}
}

func TestEstimateAbility_InvalidItemsExcluded(t *testing.T) {
	// A history containing only an invalid item behaves like n=0.
	history := []Response{
		{Params: item(-1, 0, 0.25), Correct: true},
	}
	got := EstimateAbility(history)
	if got.Theta != 0 || got.SE != 1 {
		t.Errorf("invalid-only history = (%.4f, %.4f), want neutral prior (0, 1)", got.Theta, got.SE)
	}

	// Mixed valid/invalid: the invalid response must not move the estimate.
	valid := []Response{
		{Params: item(1.5, 0, 0.2), Correct: true},
		{Params: item(1.5, 0.5, 0.2), Correct: false},
	}
	mixed := append([]Response{{Params: item(0, 0, 2), Correct: false}}, valid...)

	if a, b := EstimateAbility(valid), EstimateAbility(mixed); a.Theta != b.Theta || a.SE != b.SE {
		t.Errorf("invalid response changed estimate: (%v, %v) vs (%v, %v)", a.Theta, a.SE, b.Theta, b.SE)
	}
}

func TestEstimateAbility_MoreEvidenceShrinksSE(t *testing.T) {
	short := []Response{
		{Params: item(1.5, 0, 0.2), Correct: true},
		{Params: item(1.5, 0.4, 0.2), Correct: false},
	}
	long := append(append([]Response{}, short...),
		Response{Params: item(1.5, -0.4, 0.2), Correct: true},
		Response{Params: item(1.5, 0.2, 0.2), Correct: false},
		Response{Params: item(1.5, -0.2, 0.2), Correct: true},
		Response{Params: item(1.5, 0.1, 0.2), Correct: false},
	)

	if a, b := EstimateAbility(short), EstimateAbility(long); b.SE >= a.SE {
		t.Errorf("SE did not shrink with evidence: %d responses -> %.4f, %d -> %.4f",
			len(short), a.SE, len(long), b.SE)
	}
}

func TestProportionEstimate(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		total     int
		wantTheta float64
	}{
		{"all correct", 4, 4, 1},
		{"none correct", 0, 4, -1},
		{"half", 2, 4, 0},
		{"three quarters", 3, 4, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var history []Response
			for i := 0; i < tt.total; i++ {
				history = append(history, Response{Params: item(1, 0, 0), Correct: i < tt.correct})
			}
			got := proportionEstimate(history)
			if math.Abs(got.Theta-tt.wantTheta) > 1e-9 {
				t.Errorf("theta = %.4f, want %.4f", got.Theta, tt.wantTheta)
			}
			wantSE := 1.0 / math.Sqrt(float64(tt.total))
			if math.Abs(got.SE-wantSE) > 1e-9 {
				t.Errorf("SE = %.4f, want %.4f", got.SE, wantSE)
			}
			if !got.Fallback {
				t.Error("Fallback flag not set")
			}
		})
	}
}
