// Package diagnostic runs adaptive diagnostic sessions: it chains the item
// selector, the ability estimator, and the store into the start / answer /
// status / results operations and owns the termination rules.
package diagnostic

import (
	"fmt"
	"time"

	"github.com/abhisek/gauge/internal/irt"
	"github.com/abhisek/gauge/internal/itembank"
	"github.com/abhisek/gauge/internal/store"
)

// Status is the session lifecycle state.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

// Reason records why a session left the active state.
type Reason string

const (
	ReasonMaxQuestions    Reason = "max_questions"
	ReasonPrecision       Reason = "precision_reached"
	ReasonExhausted       Reason = "exhausted"
	ReasonEstimationError Reason = "estimation_error"
	ReasonAbandoned       Reason = "abandoned"
)

// DomainAbility is the per-domain estimate over the domain-restricted
// response subsequence.
type DomainAbility struct {
	Theta        float64
	SE           float64
	Administered int
	Correct      int

	// NoData marks a domain with no responses yet; Theta and SE then carry
	// the neutral prior, not evidence.
	NoData bool
}

// Session is an immutable snapshot of one diagnostic. Transitions return a
// new value; the service persists each snapshot after the transition that
// produced it.
type Session struct {
	ID      string
	OwnerID string
	Plan    Plan
	Status  Status

	Theta           float64
	SE              float64
	DomainAbilities map[itembank.Domain]DomainAbility

	// Administered lists every item presented, in order, including the
	// pending one.
	Administered  []string
	PendingItemID string

	QuestionsAnswered int
	CorrectAnswers    int
	TerminationReason Reason

	StartedAt    time.Time
	CompletedAt  *time.Time
	LastActivity time.Time
}

// newSession builds the initial active snapshot around the first item.
func newSession(id, ownerID string, plan Plan, first itembank.Item, now time.Time) Session {
	prior := irt.NeutralPrior()
	abilities := make(map[itembank.Domain]DomainAbility, len(itembank.AllDomains()))
	for _, d := range itembank.AllDomains() {
		abilities[d] = DomainAbility{Theta: prior.Theta, SE: prior.SE, NoData: true}
	}

	return Session{
		ID:              id,
		OwnerID:         ownerID,
		Plan:            plan,
		Status:          StatusActive,
		Theta:           prior.Theta,
		SE:              prior.SE,
		DomainAbilities: abilities,
		Administered:    []string{first.ID},
		PendingItemID:   first.ID,
		StartedAt:       now,
		LastActivity:    now,
	}
}

// withEstimates returns the snapshot after one graded answer: counts
// advanced and global plus per-domain abilities replaced. The pending item
// is cleared until the next selection decides the session's fate.
func (s Session) withEstimates(correct bool, global irt.Estimate, abilities map[itembank.Domain]DomainAbility, now time.Time) Session {
	next := s.clone()
	next.QuestionsAnswered++
	if correct {
		next.CorrectAnswers++
	}
	next.Theta = global.Theta
	next.SE = global.SE
	next.DomainAbilities = abilities
	next.PendingItemID = ""
	next.LastActivity = now
	return next
}

// withPending returns the snapshot continuing with the given item.
func (s Session) withPending(item itembank.Item, now time.Time) Session {
	next := s.clone()
	next.PendingItemID = item.ID
	next.Administered = append(next.Administered, item.ID)
	next.LastActivity = now
	return next
}

// completed returns the terminal snapshot: the current estimates freeze and
// the reason and completion time are recorded.
func (s Session) completed(reason Reason, now time.Time) Session {
	next := s.clone()
	next.Status = StatusCompleted
	next.TerminationReason = reason
	next.PendingItemID = ""
	next.CompletedAt = &now
	next.LastActivity = now
	return next
}

// clone deep-copies the mutable fields so snapshots never share state.
func (s Session) clone() Session {
	next := s
	next.Administered = append([]string(nil), s.Administered...)
	abilities := make(map[itembank.Domain]DomainAbility, len(s.DomainAbilities))
	for d, a := range s.DomainAbilities {
		abilities[d] = a
	}
	next.DomainAbilities = abilities
	return next
}

// excludeSet returns the administered item ids as a selector exclusion set.
func (s Session) excludeSet() map[string]bool {
	set := make(map[string]bool, len(s.Administered))
	for _, id := range s.Administered {
		set[id] = true
	}
	return set
}

// domainCounts returns how many items have been presented per domain,
// resolved against the bank. Items missing from the bank are ignored.
func (s Session) domainCounts(bank *itembank.Bank) map[itembank.Domain]int {
	counts := make(map[itembank.Domain]int)
	for _, id := range s.Administered {
		if it, ok := bank.Get(id); ok {
			counts[it.Domain]++
		}
	}
	return counts
}

// toRecord converts the snapshot to its durable form.
func (s Session) toRecord() *store.SessionRecord {
	abilities := make(map[string]store.DomainAbilityRecord, len(s.DomainAbilities))
	for domain, a := range s.DomainAbilities {
		abilities[string(domain)] = store.DomainAbilityRecord{
			Theta:        a.Theta,
			SE:           a.SE,
			Administered: a.Administered,
			Correct:      a.Correct,
			NoData:       a.NoData,
		}
	}

	quotas := make(map[string]int, len(s.Plan.Quotas))
	for domain, quota := range s.Plan.Quotas {
		quotas[string(domain)] = quota
	}

	return &store.SessionRecord{
		SessionID:         s.ID,
		OwnerID:           s.OwnerID,
		DiagnosticType:    string(s.Plan.Type),
		MaxQuestions:      s.Plan.MaxQuestions,
		Quotas:            quotas,
		FocusDomain:       string(s.Plan.FocusDomain),
		Status:            string(s.Status),
		Theta:             s.Theta,
		SE:                s.SE,
		DomainAbilities:   abilities,
		Administered:      append([]string(nil), s.Administered...),
		PendingItemID:     s.PendingItemID,
		QuestionsAnswered: s.QuestionsAnswered,
		CorrectAnswers:    s.CorrectAnswers,
		TerminationReason: string(s.TerminationReason),
		StartedAt:         s.StartedAt,
		CompletedAt:       s.CompletedAt,
		LastActivity:      s.LastActivity,
	}
}

// sessionFromRecord rebuilds a snapshot from its durable form.
func sessionFromRecord(rec *store.SessionRecord) (Session, error) {
	quotas := make(map[itembank.Domain]int, len(rec.Quotas))
	for domain, quota := range rec.Quotas {
		quotas[itembank.Domain(domain)] = quota
	}
	plan := Plan{
		Type:         Type(rec.DiagnosticType),
		MaxQuestions: rec.MaxQuestions,
		Quotas:       quotas,
		FocusDomain:  itembank.Domain(rec.FocusDomain),
	}
	if err := plan.Validate(); err != nil {
		return Session{}, fmt.Errorf("session %s: stored plan invalid: %w", rec.SessionID, err)
	}

	abilities := make(map[itembank.Domain]DomainAbility, len(rec.DomainAbilities))
	for domain, a := range rec.DomainAbilities {
		abilities[itembank.Domain(domain)] = DomainAbility{
			Theta:        a.Theta,
			SE:           a.SE,
			Administered: a.Administered,
			Correct:      a.Correct,
			NoData:       a.NoData,
		}
	}

	return Session{
		ID:                rec.SessionID,
		OwnerID:           rec.OwnerID,
		Plan:              plan,
		Status:            Status(rec.Status),
		Theta:             rec.Theta,
		SE:                rec.SE,
		DomainAbilities:   abilities,
		Administered:      append([]string(nil), rec.Administered...),
		PendingItemID:     rec.PendingItemID,
		QuestionsAnswered: rec.QuestionsAnswered,
		CorrectAnswers:    rec.CorrectAnswers,
		TerminationReason: Reason(rec.TerminationReason),
		StartedAt:         rec.StartedAt,
		CompletedAt:       rec.CompletedAt,
		LastActivity:      rec.LastActivity,
	}, nil
}
