package irt

import (
	"math"
	"testing"
)

func TestParams_Valid(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		want bool
	}{
		{"typical", Params{Discrimination: 1.2, Difficulty: 0.5, Guessing: 0.25}, true},
		{"zero guessing", Params{Discrimination: 0.5, Difficulty: -2, Guessing: 0}, true},
		{"zero discrimination", Params{Discrimination: 0, Difficulty: 0, Guessing: 0.25}, false},
		{"negative discrimination", Params{Discrimination: -1, Difficulty: 0, Guessing: 0.25}, false},
		{"guessing at one", Params{Discrimination: 1, Difficulty: 0, Guessing: 1}, false},
		{"negative guessing", Params{Discrimination: 1, Difficulty: 0, Guessing: -0.1}, false},
		{"nan difficulty", Params{Discrimination: 1, Difficulty: math.NaN(), Guessing: 0.2}, false},
		{"inf discrimination", Params{Discrimination: math.Inf(1), Difficulty: 0, Guessing: 0.2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParams_Probability_Monotonic(t *testing.T) {
	items := []Params{
		{Discrimination: 0.5, Difficulty: -1.5, Guessing: 0},
		{Discrimination: 1.0, Difficulty: 0, Guessing: 0.25},
		{Discrimination: 2.5, Difficulty: 2, Guessing: 0.2},
	}

	for _, p := range items {
		prev := -1.0
		for theta := -6.0; theta <= 6.0; theta += 0.25 {
			got := p.Probability(theta)
			if got < prev {
				t.Fatalf("P not monotonic for %+v: P(%.2f)=%.6f < P(prev)=%.6f", p, theta, got, prev)
			}
			prev = got
		}
	}
}

func TestParams_Probability_Asymptotes(t *testing.T) {
	p := Params{Discrimination: 1.5, Difficulty: 0.5, Guessing: 0.25}

	low := p.Probability(-50)
	if math.Abs(low-p.Guessing) > 1e-9 {
		t.Errorf("P(-inf) = %.9f, want guessing floor %.2f", low, p.Guessing)
	}

	high := p.Probability(50)
	if math.Abs(high-1.0) > 1e-9 {
		t.Errorf("P(+inf) = %.9f, want 1", high)
	}

	at := p.Probability(p.Difficulty)
	want := p.Guessing + (1-p.Guessing)/2
	if math.Abs(at-want) > 1e-9 {
		t.Errorf("P(b) = %.6f, want midpoint %.6f", at, want)
	}
}

func TestParams_Information_PeaksNearDifficulty(t *testing.T) {
	p := Params{Discrimination: 1.5, Difficulty: 1.0, Guessing: 0}

	// With c=0 information peaks exactly at b; far away it vanishes.
	atB := p.Information(1.0)
	if atB <= p.Information(-2) || atB <= p.Information(4) {
		t.Errorf("information does not peak near difficulty: I(b)=%.4f I(-2)=%.4f I(4)=%.4f",
			atB, p.Information(-2), p.Information(4))
	}

	if far := p.Information(-40); far > 1e-6 {
		t.Errorf("I(-40) = %.8f, want ~0", far)
	}
}

func TestParams_Information_NonNegative(t *testing.T) {
	items := []Params{
		{Discrimination: 0.3, Difficulty: -3, Guessing: 0.5},
		{Discrimination: 4, Difficulty: 3.5, Guessing: 0},
		{Discrimination: 1, Difficulty: 0, Guessing: 0.33},
	}
	for _, p := range items {
		for theta := -4.0; theta <= 4.0; theta += 0.5 {
			if got := p.Information(theta); got < 0 {
				t.Fatalf("I(%.1f) = %f < 0 for %+v", theta, got, p)
			}
		}
	}
}
