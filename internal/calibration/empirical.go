package calibration

import (
	"math"

	"github.com/abhisek/gauge/internal/irt"
)

// ResponsePoint pairs one historical response with the final ability of
// the session it came from. The calibrator uses these to re-derive item
// parameters from observed behavior.
type ResponsePoint struct {
	Correct bool
	Theta   float64
}

// Discrimination bounds for empirically derived parameters. Estimates from
// small or noisy samples are squeezed into a sane range instead of being
// rejected.
const (
	minDiscrimination = 0.3
	maxDiscrimination = 2.5
)

// EstimateParams derives 3PL parameters from response history:
//
//   - c: the random-guessing floor, 1/numOptions
//   - b: the logit of guessing-corrected accuracy, so that an average-ability
//     cohort answering at chance-corrected rate p sees difficulty -logit(p)
//   - a: the point-biserial correlation between correctness and session
//     ability, mapped through the normal-ogive scaling constant 1.702
//
// Returns false when the sample is smaller than minSample or degenerate
// (all correct, all wrong, or no ability variance).
func EstimateParams(points []ResponsePoint, numOptions int, minSample int) (irt.Params, bool) {
	n := len(points)
	if n < minSample || numOptions < 2 {
		return irt.Params{}, false
	}

	correct := 0
	for _, pt := range points {
		if pt.Correct {
			correct++
		}
	}
	if correct == 0 || correct == n {
		return irt.Params{}, false
	}

	c := 1.0 / float64(numOptions)
	p := float64(correct) / float64(n)

	// Guessing-corrected proportion. Items answered below chance carry no
	// usable difficulty signal.
	pStar := (p - c) / (1 - c)
	if pStar <= 0.01 {
		pStar = 0.01
	} else if pStar >= 0.99 {
		pStar = 0.99
	}
	b := -math.Log(pStar / (1 - pStar))

	r, ok := pointBiserial(points, p)
	if !ok {
		return irt.Params{}, false
	}
	a := discriminationFromCorrelation(r)

	params := irt.Params{Discrimination: a, Difficulty: clamp(b, irt.ThetaMin, irt.ThetaMax), Guessing: c}
	if !params.Valid() {
		return irt.Params{}, false
	}
	return params, true
}

// pointBiserial computes the correlation between correctness and theta.
func pointBiserial(points []ResponsePoint, p float64) (float64, bool) {
	n := float64(len(points))

	var sum, sumSq, sumCorrect float64
	for _, pt := range points {
		sum += pt.Theta
		sumSq += pt.Theta * pt.Theta
		if pt.Correct {
			sumCorrect += pt.Theta
		}
	}
	mean := sum / n
	variance := sumSq/n - mean*mean
	if variance <= 1e-9 {
		return 0, false
	}
	sd := math.Sqrt(variance)

	meanCorrect := sumCorrect / (p * n)
	r := (meanCorrect - mean) / sd * math.Sqrt(p/(1-p))
	return r, true
}

// discriminationFromCorrelation maps a point-biserial r into the 3PL a
// parameter via the normal-ogive relation a = 1.702 r / sqrt(1 - r^2).
func discriminationFromCorrelation(r float64) float64 {
	r = clamp(r, -0.95, 0.95)
	a := 1.702 * r / math.Sqrt(1-r*r)
	return clamp(a, minDiscrimination, maxDiscrimination)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
