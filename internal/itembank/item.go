// Package itembank defines bank items and their invariants, and loads
// banks from schema-validated JSON.
package itembank

import (
	"fmt"
	"time"

	"github.com/abhisek/gauge/internal/irt"
)

// Domain is a knowledge area tag. Domains drive balanced coverage during
// selection and per-area reporting afterwards.
type Domain string

const (
	DomainArithmetic  Domain = "arithmetic"
	DomainFractions   Domain = "fractions"
	DomainDecimals    Domain = "decimals"
	DomainGeometry    Domain = "geometry"
	DomainMeasurement Domain = "measurement"
	DomainData        Domain = "data"
)

// AllDomains returns the fixed domain set in canonical order.
func AllDomains() []Domain {
	return []Domain{
		DomainArithmetic,
		DomainFractions,
		DomainDecimals,
		DomainGeometry,
		DomainMeasurement,
		DomainData,
	}
}

// ValidDomain reports whether d is one of the known domains.
func ValidDomain(d Domain) bool {
	for _, known := range AllDomains() {
		if d == known {
			return true
		}
	}
	return false
}

// Calibration source labels, in decreasing order of trust.
const (
	SourceEmpirical     = "empirical"
	SourceDomainAverage = "domain-average"
	SourceDefault       = "default"
)

// Calibration records where an item's parameters came from.
type Calibration struct {
	Source       string
	SampleSize   int
	CalibratedAt *time.Time
}

// Item is one bank entry: the content shown to the learner plus the 3PL
// parameters the engine estimates and selects with.
type Item struct {
	ID          string
	Domain      Domain
	Prompt      string
	Options     []string
	AnswerIndex int
	Params      irt.Params
	Calibration Calibration
}

// Validate checks the content invariants. Parameter invariants are checked
// separately via Params.Valid so a content-valid item with broken
// parameters can still be repaired by calibration.
func (it Item) Validate() error {
	if it.ID == "" {
		return fmt.Errorf("item has empty id")
	}
	if !ValidDomain(it.Domain) {
		return fmt.Errorf("item %s: unknown domain %q", it.ID, it.Domain)
	}
	if it.Prompt == "" {
		return fmt.Errorf("item %s: empty prompt", it.ID)
	}
	if len(it.Options) < 2 {
		return fmt.Errorf("item %s: needs at least 2 options, got %d", it.ID, len(it.Options))
	}
	if it.AnswerIndex < 0 || it.AnswerIndex >= len(it.Options) {
		return fmt.Errorf("item %s: answer index %d out of range", it.ID, it.AnswerIndex)
	}
	return nil
}

// Eligible reports whether the item may be used for selection and
// estimation: valid content and valid parameters.
func (it Item) Eligible() bool {
	return it.Validate() == nil && it.Params.Valid()
}

// Grade reports whether the selected option index is the correct answer.
func (it Item) Grade(selected int) bool {
	return selected == it.AnswerIndex
}
