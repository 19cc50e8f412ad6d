package diagnostic

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/gauge/internal/itembank"
)

// Type names a diagnostic shape: how many questions, spread how.
type Type string

const (
	// TypeQuick is a short pass with one question per domain plus free
	// adaptive picks.
	TypeQuick Type = "quick"

	// TypeFull is the long-form placement with deeper per-domain quotas.
	TypeFull Type = "full"

	// TypeDomainFocused drills a single domain.
	TypeDomainFocused Type = "domain-focused"
)

// Plan is the per-session diagnostic configuration: the question target and
// the per-domain quotas the selector must satisfy first.
type Plan struct {
	Type         Type
	MaxQuestions int
	Quotas       map[itembank.Domain]int

	// FocusDomain is set only for domain-focused diagnostics; it seeds the
	// first selection and the single-domain quota.
	FocusDomain itembank.Domain
}

// QuickPlan covers every domain once, then selects freely up to 12.
func QuickPlan() Plan {
	quotas := make(map[itembank.Domain]int, len(itembank.AllDomains()))
	for _, d := range itembank.AllDomains() {
		quotas[d] = 1
	}
	return Plan{Type: TypeQuick, MaxQuestions: 12, Quotas: quotas}
}

// FullPlan asks three questions per domain, then selects freely up to 24.
func FullPlan() Plan {
	quotas := make(map[itembank.Domain]int, len(itembank.AllDomains()))
	for _, d := range itembank.AllDomains() {
		quotas[d] = 3
	}
	return Plan{Type: TypeFull, MaxQuestions: 24, Quotas: quotas}
}

// DomainFocusedPlan drills one domain for up to 8 questions.
func DomainFocusedPlan(domain itembank.Domain) Plan {
	return Plan{
		Type:         TypeDomainFocused,
		MaxQuestions: 8,
		Quotas:       map[itembank.Domain]int{domain: 8},
		FocusDomain:  domain,
	}
}

// PlanFor returns the plan for a named type. Domain-focused plans need a
// domain and must be built with DomainFocusedPlan.
func PlanFor(t Type) (Plan, error) {
	switch t {
	case TypeQuick:
		return QuickPlan(), nil
	case TypeFull:
		return FullPlan(), nil
	case TypeDomainFocused:
		return Plan{}, fmt.Errorf("diagnostic type %q requires a focus domain", t)
	default:
		return Plan{}, fmt.Errorf("unknown diagnostic type %q", t)
	}
}

// Validate checks the plan invariants.
func (p Plan) Validate() error {
	if p.MaxQuestions <= 0 {
		return fmt.Errorf("plan %s: max questions must be positive, got %d", p.Type, p.MaxQuestions)
	}
	for domain, quota := range p.Quotas {
		if !itembank.ValidDomain(domain) {
			return fmt.Errorf("plan %s: unknown quota domain %q", p.Type, domain)
		}
		if quota < 0 {
			return fmt.Errorf("plan %s: negative quota for %s", p.Type, domain)
		}
	}
	if p.FocusDomain != "" && !itembank.ValidDomain(p.FocusDomain) {
		return fmt.Errorf("plan %s: unknown focus domain %q", p.Type, p.FocusDomain)
	}
	return nil
}

// Config holds the termination thresholds shared by every session. The
// minimum floor and the precision threshold vary across deployments, so
// they are required configuration with environment overrides rather than
// hard-coded constants.
type Config struct {
	// MinQuestions is the floor before the precision check applies.
	MinQuestions int `env:"GAUGE_MIN_QUESTIONS"`

	// PrecisionSE ends the session once the standard error drops to or
	// below it, after the floor.
	PrecisionSE float64 `env:"GAUGE_PRECISION_SE"`

	// InactivityWindow is how long an active session may sit idle before
	// the sweep abandons it.
	InactivityWindow time.Duration `env:"GAUGE_INACTIVITY_WINDOW"`
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		MinQuestions:     5,
		PrecisionSE:      0.3,
		InactivityWindow: 24 * time.Hour,
	}
}

// ConfigFromEnv applies GAUGE_* environment overrides on top of the
// defaults.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse diagnostic config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the config invariants.
func (c Config) Validate() error {
	if c.MinQuestions < 1 {
		return fmt.Errorf("min questions must be at least 1, got %d", c.MinQuestions)
	}
	if c.PrecisionSE <= 0 {
		return fmt.Errorf("precision SE must be positive, got %g", c.PrecisionSE)
	}
	if c.InactivityWindow <= 0 {
		return fmt.Errorf("inactivity window must be positive, got %s", c.InactivityWindow)
	}
	return nil
}
