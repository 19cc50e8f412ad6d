package diagnostic

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/gauge/internal/calibration"
	"github.com/abhisek/gauge/internal/irt"
	"github.com/abhisek/gauge/internal/itembank"
	"github.com/abhisek/gauge/internal/selector"
	"github.com/abhisek/gauge/internal/store"
)

// SessionStore is the session persistence the service needs.
type SessionStore interface {
	CreateActive(ctx context.Context, rec *store.SessionRecord) error
	Get(ctx context.Context, sessionID string) (*store.SessionRecord, error)
	ActiveForOwner(ctx context.Context, ownerID string) (*store.SessionRecord, error)
	Update(ctx context.Context, rec *store.SessionRecord) error
	AbandonIdle(ctx context.Context, cutoff time.Time) (int, error)
}

// ResponseStore is the response-log persistence the service needs.
type ResponseStore interface {
	Append(ctx context.Context, rec *store.ResponseRecord) error
	BySession(ctx context.Context, sessionID string) ([]store.ResponseRecord, error)
}

// Service runs diagnostic sessions over an effective item bank: every
// item's parameters are resolved through the calibration chain once, at
// construction, and stay fixed for the service's lifetime.
type Service struct {
	sessions  SessionStore
	responses ResponseStore
	bank      *itembank.Bank
	cfg       Config

	now   func() time.Time
	newID func() string
}

// NewService resolves the bank through the calibration chain and wires the
// stores.
func NewService(sessions SessionStore, responses ResponseStore, bank *itembank.Bank, cal *calibration.Service, cfg Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("diagnostic config: %w", err)
	}

	effective, err := resolveBank(bank, cal)
	if err != nil {
		return nil, err
	}

	return &Service{
		sessions:  sessions,
		responses: responses,
		bank:      effective,
		cfg:       cfg,
		now:       time.Now,
		newID:     uuid.NewString,
	}, nil
}

// resolveBank rebuilds the bank with chain-resolved parameters so that
// selection and estimation always see usable values.
func resolveBank(bank *itembank.Bank, cal *calibration.Service) (*itembank.Bank, error) {
	items := bank.Items()
	resolved := make([]itembank.Item, 0, len(items))
	for _, it := range items {
		params, source := cal.Resolve(it, bank)
		it.Params = params
		it.Calibration.Source = source
		resolved = append(resolved, it)
	}

	effective, err := itembank.NewBank(resolved)
	if err != nil {
		return nil, fmt.Errorf("resolve bank parameters: %w", err)
	}
	return effective, nil
}

// Bank exposes the effective bank, for inspection commands.
func (s *Service) Bank() *itembank.Bank {
	return s.bank
}

// Config returns the termination thresholds in effect.
func (s *Service) Config() Config {
	return s.cfg
}

// StartResult is the outcome of Start: the session snapshot and the item to
// present.
type StartResult struct {
	Session Session
	Item    itembank.Item

	// Resumed is true when the owner already had an active session and it
	// was returned instead of a new one.
	Resumed bool
}

// Start opens a diagnostic for the owner, or resumes the owner's existing
// active session. The session row is only created once a first item exists,
// so no session is ever persisted without a question to show.
func (s *Service) Start(ctx context.Context, ownerID string, plan Plan) (*StartResult, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.sessions.ActiveForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.resume(existing)
	}

	first, ok := selector.FirstItem(s.bank, plan.Quotas, plan.FocusDomain)
	if !ok {
		return nil, ErrNoEligibleItem
	}

	sess := newSession(s.newID(), ownerID, plan, first, s.now())
	if err := s.sessions.CreateActive(ctx, sess.toRecord()); err != nil {
		// Lost a concurrent start race; the winner's session is the one to
		// hand back.
		if err == store.ErrDuplicateActive {
			winner, lookupErr := s.sessions.ActiveForOwner(ctx, ownerID)
			if lookupErr != nil {
				return nil, lookupErr
			}
			if winner != nil {
				return s.resume(winner)
			}
		}
		return nil, fmt.Errorf("start session: %w", err)
	}

	return &StartResult{Session: sess, Item: first}, nil
}

func (s *Service) resume(rec *store.SessionRecord) (*StartResult, error) {
	sess, err := sessionFromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("resume session %s: %w", rec.SessionID, err)
	}
	item, ok := s.bank.Get(sess.PendingItemID)
	if !ok {
		return nil, fmt.Errorf("resume session %s: pending item %s no longer in bank", sess.ID, sess.PendingItemID)
	}
	return &StartResult{Session: sess, Item: item, Resumed: true}, nil
}

// AnswerResult is the outcome of one SubmitAnswer turn.
type AnswerResult struct {
	Session Session
	Correct bool

	// CorrectAnswer is the index of the right option, for feedback.
	CorrectAnswer int

	// NextItem is the following question, nil when the session completed.
	NextItem  *itembank.Item
	Completed bool
	Reason    Reason
}

// SubmitAnswer grades one answer, appends it to the immutable response log,
// re-estimates ability from the full ordered history, and either selects
// the next item or completes the session.
//
// Termination is checked in a fixed order: the question cap, then the
// precision threshold once past the minimum floor, then bank exhaustion.
func (s *Service) SubmitAnswer(ctx context.Context, sessionID, itemID string, selectedOption int, responseTime time.Duration) (*AnswerResult, error) {
	rec, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess, err := sessionFromRecord(rec)
	if err != nil {
		return nil, err
	}

	if sess.Status != StatusActive {
		return nil, ErrSessionNotActive
	}
	if sess.PendingItemID != itemID {
		return nil, &ErrItemMismatch{Pending: sess.PendingItemID, Submitted: itemID}
	}

	item, ok := s.bank.Get(itemID)
	if !ok {
		return nil, fmt.Errorf("pending item %s not in bank", itemID)
	}
	correct := item.Grade(selectedOption)

	now := s.now()
	if err := s.responses.Append(ctx, &store.ResponseRecord{
		SessionID:      sessionID,
		ItemID:         itemID,
		Domain:         string(item.Domain),
		SelectedOption: selectedOption,
		Correct:        correct,
		ResponseMs:     int(responseTime.Milliseconds()),
	}); err != nil {
		return nil, fmt.Errorf("record response: %w", err)
	}

	history, err := s.responses.BySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("replay responses: %w", err)
	}

	global, abilities, usable := s.replay(history)
	if !usable {
		// No response could be scored against the bank: keep the last good
		// estimates rather than overwrite them with the neutral prior.
		fmt.Fprintf(os.Stderr, "warning: session %s has no estimable responses, ending with frozen estimates\n", sessionID)
		frozen := sess.withFrozenAnswer(correct, now).completed(ReasonEstimationError, now)
		if err := s.sessions.Update(ctx, frozen.toRecord()); err != nil {
			return nil, err
		}
		return &AnswerResult{
			Session:       frozen,
			Correct:       correct,
			CorrectAnswer: item.AnswerIndex,
			Completed:     true,
			Reason:        ReasonEstimationError,
		}, nil
	}

	next := sess.withEstimates(correct, global, abilities, now)

	if reason, terminate := s.terminationReason(next); terminate {
		final := next.completed(reason, now)
		if err := s.sessions.Update(ctx, final.toRecord()); err != nil {
			return nil, err
		}
		return &AnswerResult{
			Session:       final,
			Correct:       correct,
			CorrectAnswer: item.AnswerIndex,
			Completed:     true,
			Reason:        reason,
		}, nil
	}

	nextItem, ok := selector.NextItem(s.bank, selector.Request{
		Exclude: next.excludeSet(),
		Theta:   next.Theta,
		Quotas:  next.Plan.Quotas,
		Counts:  next.domainCounts(s.bank),
	})
	if !ok {
		final := next.completed(ReasonExhausted, now)
		if err := s.sessions.Update(ctx, final.toRecord()); err != nil {
			return nil, err
		}
		return &AnswerResult{
			Session:       final,
			Correct:       correct,
			CorrectAnswer: item.AnswerIndex,
			Completed:     true,
			Reason:        ReasonExhausted,
		}, nil
	}

	next = next.withPending(nextItem, now)
	if err := s.sessions.Update(ctx, next.toRecord()); err != nil {
		return nil, err
	}

	return &AnswerResult{
		Session:       next,
		Correct:       correct,
		CorrectAnswer: item.AnswerIndex,
		NextItem:      &nextItem,
	}, nil
}

// terminationReason applies the ordered post-answer checks. Exhaustion is
// detected separately, by the selection that follows.
func (s *Service) terminationReason(sess Session) (Reason, bool) {
	if sess.QuestionsAnswered >= sess.Plan.MaxQuestions {
		return ReasonMaxQuestions, true
	}
	if sess.QuestionsAnswered >= s.cfg.MinQuestions && sess.SE <= s.cfg.PrecisionSE {
		return ReasonPrecision, true
	}
	return "", false
}

// replay re-derives the global and per-domain estimates from the ordered
// response history. The third return is false when not a single response
// could be mapped to a scorable bank item.
func (s *Service) replay(history []store.ResponseRecord) (irt.Estimate, map[itembank.Domain]DomainAbility, bool) {
	var global []irt.Response
	perDomain := make(map[itembank.Domain][]irt.Response)
	tallies := make(map[itembank.Domain]*DomainAbility)
	scorable := 0

	for _, rec := range history {
		it, ok := s.bank.Get(rec.ItemID)
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: response references item %s missing from bank, skipping\n", rec.ItemID)
			continue
		}
		if it.Params.Valid() {
			scorable++
		}
		resp := irt.Response{Params: it.Params, Correct: rec.Correct}
		global = append(global, resp)
		perDomain[it.Domain] = append(perDomain[it.Domain], resp)

		tally := tallies[it.Domain]
		if tally == nil {
			tally = &DomainAbility{}
			tallies[it.Domain] = tally
		}
		tally.Administered++
		if rec.Correct {
			tally.Correct++
		}
	}

	if scorable == 0 {
		return irt.Estimate{}, nil, false
	}

	prior := irt.NeutralPrior()
	abilities := make(map[itembank.Domain]DomainAbility, len(itembank.AllDomains()))
	for _, d := range itembank.AllDomains() {
		responses := perDomain[d]
		if len(responses) == 0 {
			abilities[d] = DomainAbility{Theta: prior.Theta, SE: prior.SE, NoData: true}
			continue
		}
		est := irt.EstimateAbility(responses)
		tally := tallies[d]
		abilities[d] = DomainAbility{
			Theta:        est.Theta,
			SE:           est.SE,
			Administered: tally.Administered,
			Correct:      tally.Correct,
		}
	}

	return irt.EstimateAbility(global), abilities, true
}

// Status returns the current snapshot of a session.
func (s *Service) Status(ctx context.Context, sessionID string) (Session, error) {
	rec, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}
	return sessionFromRecord(rec)
}

// SweepIdle abandons active sessions idle past the inactivity window and
// returns how many were swept.
func (s *Service) SweepIdle(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.cfg.InactivityWindow)
	return s.sessions.AbandonIdle(ctx, cutoff)
}

// withFrozenAnswer advances the answer counters without touching the
// ability estimates, for the estimation-failure path.
func (s Session) withFrozenAnswer(correct bool, now time.Time) Session {
	next := s.clone()
	next.QuestionsAnswered++
	if correct {
		next.CorrectAnswers++
	}
	next.PendingItemID = ""
	next.LastActivity = now
	return next
}
