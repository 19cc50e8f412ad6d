// Package calibration resolves 3PL parameters for bank items. Items with a
// sufficient empirical sample use their own parameters; everything else
// falls back through an ordered chain of parameter sources.
package calibration

import (
	"fmt"
	"math"
	"os"

	"github.com/abhisek/gauge/internal/irt"
	"github.com/abhisek/gauge/internal/itembank"
)

// Default global parameters, used when neither the item nor its domain has
// any calibrated data.
var DefaultParams = irt.Params{Discrimination: 1.0, Difficulty: 0.0, Guessing: 0.25}

// Config controls how large an empirical sample must be before it is
// trusted. The required size is recomputed from these on demand; it is
// configuration, not a stored constant.
type Config struct {
	// Confidence is the target confidence level. Supported: 0.90, 0.95, 0.99.
	Confidence float64

	// MarginOfError is the acceptable margin, e.g. 0.10 for ±10%.
	MarginOfError float64
}

// DefaultConfig returns the standard 95% / ±10% configuration.
func DefaultConfig() Config {
	return Config{Confidence: 0.95, MarginOfError: 0.10}
}

// zScores for the supported confidence levels.
var zScores = map[float64]float64{
	0.90: 1.645,
	0.95: 1.960,
	0.99: 2.576,
}

// RequiredSampleSize computes the minimum sample via the proportion
// sample-size formula n = z^2 * p(1-p) / E^2 at the conservative p = 0.5.
func (c Config) RequiredSampleSize() int {
	z, ok := zScores[c.Confidence]
	if !ok {
		z = zScores[0.95]
	}
	e := c.MarginOfError
	if e <= 0 {
		e = 0.10
	}
	n := z * z * 0.25 / (e * e)
	return int(math.Ceil(n))
}

// Source is one strategy for producing parameters for an item. Sources are
// tried in order; the first one that can answer wins.
type Source interface {
	Name() string
	Resolve(item itembank.Item, bank *itembank.Bank) (irt.Params, bool)
}

// Service resolves parameters through its source chain.
type Service struct {
	sources []Source
}

// NewService builds the standard chain:
// empirical -> domain average -> global default.
func NewService(cfg Config) *Service {
	min := cfg.RequiredSampleSize()
	return &Service{
		sources: []Source{
			empiricalSource{minSample: min},
			domainAverageSource{minSample: min},
			defaultSource{},
		},
	}
}

// Resolve returns usable parameters for the item and the name of the
// source that supplied them. It never fails: the default source is total.
// Invalid stored parameters are logged and skipped rather than surfaced.
func (s *Service) Resolve(item itembank.Item, bank *itembank.Bank) (irt.Params, string) {
	for _, src := range s.sources {
		params, ok := src.Resolve(item, bank)
		if !ok {
			continue
		}
		if !params.Valid() {
			fmt.Fprintf(os.Stderr, "warning: %s produced invalid parameters for item %s, trying next source\n", src.Name(), item.ID)
			continue
		}
		return params, src.Name()
	}
	// Unreachable while defaultSource terminates the chain.
	return DefaultParams, itembank.SourceDefault
}

// empiricalSource trusts the item's own parameters when they are valid and
// backed by a large enough sample.
type empiricalSource struct {
	minSample int
}

func (empiricalSource) Name() string { return itembank.SourceEmpirical }

func (s empiricalSource) Resolve(item itembank.Item, _ *itembank.Bank) (irt.Params, bool) {
	if item.Calibration.SampleSize < s.minSample {
		return irt.Params{}, false
	}
	if !item.Params.Valid() {
		return irt.Params{}, false
	}
	return item.Params, true
}

// domainAverageSource averages the parameters of all other calibrated
// items in the same domain.
type domainAverageSource struct {
	minSample int
}

func (domainAverageSource) Name() string { return itembank.SourceDomainAverage }

func (s domainAverageSource) Resolve(item itembank.Item, bank *itembank.Bank) (irt.Params, bool) {
	if bank == nil {
		return irt.Params{}, false
	}

	var sum irt.Params
	n := 0
	for _, other := range bank.Items() {
		if other.ID == item.ID || other.Domain != item.Domain {
			continue
		}
		if other.Calibration.SampleSize < s.minSample || !other.Params.Valid() {
			continue
		}
		sum.Discrimination += other.Params.Discrimination
		sum.Difficulty += other.Params.Difficulty
		sum.Guessing += other.Params.Guessing
		n++
	}
	if n == 0 {
		return irt.Params{}, false
	}

	return irt.Params{
		Discrimination: sum.Discrimination / float64(n),
		Difficulty:     sum.Difficulty / float64(n),
		Guessing:       sum.Guessing / float64(n),
	}, true
}

// defaultSource terminates the chain with the global defaults.
type defaultSource struct{}

func (defaultSource) Name() string { return itembank.SourceDefault }

func (defaultSource) Resolve(_ itembank.Item, _ *itembank.Bank) (irt.Params, bool) {
	return DefaultParams, true
}
