package diagnostic

import (
	"context"
	"sort"
	"time"

	"github.com/abhisek/gauge/internal/itembank"
)

// Ability bands for the weak/strong domain classification.
const (
	weakThreshold   = -0.5
	strongThreshold = 0.5
)

// Results is the final report for a completed diagnostic.
type Results struct {
	SessionID string
	OwnerID   string
	Plan      Plan

	Theta float64
	SE    float64

	// Domains holds the per-domain abilities, including NoData domains.
	Domains map[itembank.Domain]DomainAbility

	// Weak and Strong list the domains classified below and above the
	// ability bands, in canonical domain order. NoData domains are never
	// classified.
	Weak   []itembank.Domain
	Strong []itembank.Domain

	QuestionsAnswered int
	CorrectAnswers    int
	Accuracy          float64

	Reason      Reason
	StartedAt   time.Time
	CompletedAt time.Time
	Duration    time.Duration
}

// Results builds the final report for a completed session. Sessions still
// active or abandoned return ErrSessionNotCompleted.
func (s *Service) Results(ctx context.Context, sessionID string) (*Results, error) {
	rec, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess, err := sessionFromRecord(rec)
	if err != nil {
		return nil, err
	}
	if sess.Status != StatusCompleted || sess.CompletedAt == nil {
		return nil, ErrSessionNotCompleted
	}

	weak, strong := classifyDomains(sess.DomainAbilities)

	accuracy := 0.0
	if sess.QuestionsAnswered > 0 {
		accuracy = float64(sess.CorrectAnswers) / float64(sess.QuestionsAnswered)
	}

	return &Results{
		SessionID:         sess.ID,
		OwnerID:           sess.OwnerID,
		Plan:              sess.Plan,
		Theta:             sess.Theta,
		SE:                sess.SE,
		Domains:           sess.DomainAbilities,
		Weak:              weak,
		Strong:            strong,
		QuestionsAnswered: sess.QuestionsAnswered,
		CorrectAnswers:    sess.CorrectAnswers,
		Accuracy:          accuracy,
		Reason:            sess.TerminationReason,
		StartedAt:         sess.StartedAt,
		CompletedAt:       *sess.CompletedAt,
		Duration:          sess.CompletedAt.Sub(sess.StartedAt),
	}, nil
}

// classifyDomains splits evidenced domains into weak and strong bands.
func classifyDomains(abilities map[itembank.Domain]DomainAbility) (weak, strong []itembank.Domain) {
	for domain, a := range abilities {
		if a.NoData {
			continue
		}
		switch {
		case a.Theta < weakThreshold:
			weak = append(weak, domain)
		case a.Theta > strongThreshold:
			strong = append(strong, domain)
		}
	}
	sortDomains(weak)
	sortDomains(strong)
	return weak, strong
}

// sortDomains orders a domain slice by the canonical AllDomains order.
func sortDomains(domains []itembank.Domain) {
	rank := make(map[itembank.Domain]int, len(itembank.AllDomains()))
	for i, d := range itembank.AllDomains() {
		rank[d] = i
	}
	sort.Slice(domains, func(i, j int) bool {
		return rank[domains[i]] < rank[domains[j]]
	})
}
