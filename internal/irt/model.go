// Package irt implements the three-parameter logistic (3PL) item response
// model: ability estimation by maximum likelihood and the item information
// function used for adaptive selection.
package irt

import "math"

// Theta is conventionally scaled to [-4, 4]; estimates are clamped to that
// range and the standard error is clamped to (0, 2].
const (
	ThetaMin = -4.0
	ThetaMax = 4.0
	SEMax    = 2.0
)

// Params holds the 3PL parameters of one item.
type Params struct {
	Discrimination float64 // a, must be > 0
	Difficulty     float64 // b, typically in [-4, 4]
	Guessing       float64 // c, in [0, 1)
}

// Valid reports whether the parameters satisfy the model invariants.
// Items with invalid parameters are excluded from both estimation and
// selection until repaired.
func (p Params) Valid() bool {
	if !isFinite(p.Discrimination) || !isFinite(p.Difficulty) || !isFinite(p.Guessing) {
		return false
	}
	return p.Discrimination > 0 && p.Guessing >= 0 && p.Guessing < 1
}

// Probability returns P(correct | theta) under the 3PL model:
//
//	P = c + (1-c) / (1 + exp(-a(theta-b)))
//
// P approaches c as theta -> -inf and 1 as theta -> +inf.
func (p Params) Probability(theta float64) float64 {
	logistic := 1.0 / (1.0 + math.Exp(-p.Discrimination*(theta-p.Difficulty)))
	return p.Guessing + (1.0-p.Guessing)*logistic
}

// Information returns the Fisher information the item carries at theta:
//
//	I = a^2 * (P-c)^2 * (1-P) / ((1-c)^2 * P)
//
// Higher information means answering this item shrinks the uncertainty
// about theta more.
func (p Params) Information(theta float64) float64 {
	prob := p.Probability(theta)
	if prob <= 0 || prob >= 1 {
		return 0
	}
	num := p.Discrimination * p.Discrimination * (prob - p.Guessing) * (prob - p.Guessing) * (1 - prob)
	den := (1 - p.Guessing) * (1 - p.Guessing) * prob
	return num / den
}

// Response is one graded answer: the parameters of the item that was
// administered and whether the learner got it right. Order matters to the
// estimator; histories are always replayed in administration order.
type Response struct {
	Params  Params
	Correct bool
}

func clampTheta(theta float64) float64 {
	return math.Min(ThetaMax, math.Max(ThetaMin, theta))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
