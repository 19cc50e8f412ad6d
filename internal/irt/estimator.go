package irt

import (
	"fmt"
	"math"
	"os"
)

const (
	maxIterations = 25
	maxStep       = 1.0  // per-iteration theta step cap, guards divergence
	tolerance     = 1e-4 // convergence threshold on |step|
)

// Estimate holds an ability estimate and its standard error.
type Estimate struct {
	Theta float64
	SE    float64

	// Fallback is true when Newton-Raphson failed and the estimate came
	// from the proportion-based formula instead.
	Fallback bool
}

// NeutralPrior is the estimate reported before any response has been
// recorded: theta 0 with maximal uncertainty.
func NeutralPrior() Estimate {
	return Estimate{Theta: 0, SE: 1}
}

// EstimateAbility computes the maximum-likelihood ability estimate for an
// ordered response history. Responses whose item parameters violate the
// model invariants are excluded; an empty (or fully excluded) history
// returns the neutral prior.
//
// The function is pure: identical histories always yield identical
// estimates.
func EstimateAbility(history []Response) Estimate {
	valid := history[:0:0]
	for _, r := range history {
		if r.Params.Valid() {
			valid = append(valid, r)
		}
	}
	if len(valid) < len(history) {
		fmt.Fprintf(os.Stderr, "warning: excluded %d response(s) with invalid item parameters from estimation\n", len(history)-len(valid))
	}
	if len(valid) == 0 {
		return NeutralPrior()
	}

	theta, ok := solveMLE(valid)
	if !ok {
		return proportionEstimate(valid)
	}

	info := totalInformation(valid, theta)
	se := SEMax
	if info > 0 {
		se = math.Min(SEMax, 1.0/math.Sqrt(info))
	}
	return Estimate{Theta: clampTheta(theta), SE: se}
}

// solveMLE runs Fisher-scoring iterations on the 3PL log-likelihood.
// Returns false when the iteration oscillates, produces non-finite values,
// or fails to settle within maxIterations.
func solveMLE(responses []Response) (float64, bool) {
	theta := 0.0

	for i := 0; i < maxIterations; i++ {
		score := scoreAt(responses, theta)
		info := totalInformation(responses, theta)
		if !isFinite(score) || !isFinite(info) {
			return 0, false
		}
		if info <= 0 {
			// Flat likelihood: no curvature to follow.
			return 0, false
		}

		step := score / info
		if step > maxStep {
			step = maxStep
		} else if step < -maxStep {
			step = -maxStep
		}

		theta = clampTheta(theta + step)

		if math.Abs(step) < tolerance {
			return theta, true
		}
		// A uniformly correct (or incorrect) history pushes theta past the
		// clamp forever; the bound itself is the estimate then.
		if (theta == ThetaMax && step > 0) || (theta == ThetaMin && step < 0) {
			return theta, true
		}
	}

	return 0, false
}

// scoreAt is the first derivative of the log-likelihood at theta.
func scoreAt(responses []Response, theta float64) float64 {
	score := 0.0
	for _, r := range responses {
		p := r.Params
		prob := p.Probability(theta)
		if prob <= 0 || prob >= 1 {
			continue
		}
		// dP/dtheta = a(1-c) * p2(1-p2) with p2 the 2PL kernel.
		p2 := (prob - p.Guessing) / (1 - p.Guessing)
		dP := p.Discrimination * (1 - p.Guessing) * p2 * (1 - p2)

		u := 0.0
		if r.Correct {
			u = 1.0
		}
		score += (u - prob) * dP / (prob * (1 - prob))
	}
	return score
}

// totalInformation sums the item information across responses at theta.
func totalInformation(responses []Response, theta float64) float64 {
	info := 0.0
	for _, r := range responses {
		info += r.Params.Information(theta)
	}
	return info
}

// proportionEstimate is the convergence-failure fallback: a crude linear
// map from accuracy to theta with a sample-size-driven standard error.
func proportionEstimate(responses []Response) Estimate {
	correct := 0
	for _, r := range responses {
		if r.Correct {
			correct++
		}
	}
	n := float64(len(responses))
	accuracy := float64(correct) / n

	theta := clampTheta(2 * (accuracy - 0.5))
	se := math.Min(SEMax, 1.0/math.Sqrt(n))
	return Estimate{Theta: theta, SE: se, Fallback: true}
}
