package diagnostic

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/gauge/internal/calibration"
	"github.com/abhisek/gauge/internal/irt"
	"github.com/abhisek/gauge/internal/itembank"
	"github.com/abhisek/gauge/internal/store"
)

// fakeSessions is an in-memory SessionStore enforcing the same invariants
// as the sqlite-backed one.
type fakeSessions struct {
	records map[string]*store.SessionRecord
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{records: make(map[string]*store.SessionRecord)}
}

func (f *fakeSessions) CreateActive(_ context.Context, rec *store.SessionRecord) error {
	for _, r := range f.records {
		if r.OwnerID == rec.OwnerID && r.Status == "active" {
			return store.ErrDuplicateActive
		}
	}
	cp := *rec
	f.records[rec.SessionID] = &cp
	return nil
}

func (f *fakeSessions) Get(_ context.Context, sessionID string) (*store.SessionRecord, error) {
	rec, ok := f.records[sessionID]
	if !ok {
		return nil, store.ErrSessionNotFound
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeSessions) ActiveForOwner(_ context.Context, ownerID string) (*store.SessionRecord, error) {
	for _, r := range f.records {
		if r.OwnerID == ownerID && r.Status == "active" {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeSessions) Update(_ context.Context, rec *store.SessionRecord) error {
	if _, ok := f.records[rec.SessionID]; !ok {
		return store.ErrSessionNotFound
	}
	cp := *rec
	f.records[rec.SessionID] = &cp
	return nil
}

func (f *fakeSessions) AbandonIdle(_ context.Context, cutoff time.Time) (int, error) {
	n := 0
	for _, r := range f.records {
		if r.Status == "active" && r.LastActivity.Before(cutoff) {
			r.Status = "abandoned"
			r.TerminationReason = "abandoned"
			now := time.Now()
			r.CompletedAt = &now
			n++
		}
	}
	return n, nil
}

// fakeResponses is an in-memory append-only ResponseStore.
type fakeResponses struct {
	records []store.ResponseRecord
	seq     int64
}

func (f *fakeResponses) Append(_ context.Context, rec *store.ResponseRecord) error {
	f.seq++
	rec.Sequence = f.seq
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeResponses) BySession(_ context.Context, sessionID string) ([]store.ResponseRecord, error) {
	var out []store.ResponseRecord
	for _, r := range f.records {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

// calibratedItem builds a content-valid item whose parameters carry enough
// sample to survive the empirical calibration source.
func calibratedItem(id string, domain itembank.Domain, difficulty float64) itembank.Item {
	return itembank.Item{
		ID:          id,
		Domain:      domain,
		Prompt:      "prompt " + id,
		Options:     []string{"w", "x", "y", "z"},
		AnswerIndex: 2,
		Params:      irt.Params{Discrimination: 1.5, Difficulty: difficulty, Guessing: 0.25},
		Calibration: itembank.Calibration{Source: itembank.SourceEmpirical, SampleSize: 200},
	}
}

// spreadBank returns a bank with n items per domain, difficulties spread
// over [-1, 1].
func spreadBank(t *testing.T, perDomain int) *itembank.Bank {
	t.Helper()
	var items []itembank.Item
	for _, d := range itembank.AllDomains() {
		for i := 0; i < perDomain; i++ {
			difficulty := -1.0 + 2.0*float64(i)/float64(max(perDomain-1, 1))
			items = append(items, calibratedItem(fmt.Sprintf("%s-%02d", d, i), d, difficulty))
		}
	}
	bank, err := itembank.NewBank(items)
	if err != nil {
		t.Fatalf("build bank: %v", err)
	}
	return bank
}

type testEnv struct {
	svc       *Service
	sessions  *fakeSessions
	responses *fakeResponses
}

func newTestEnv(t *testing.T, bank *itembank.Bank, cfg Config) *testEnv {
	t.Helper()
	sessions := newFakeSessions()
	responses := &fakeResponses{}
	svc, err := NewService(sessions, responses, bank, calibration.NewService(calibration.DefaultConfig()), cfg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	ids := 0
	svc.newID = func() string {
		ids++
		return fmt.Sprintf("session-%d", ids)
	}
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	return &testEnv{svc: svc, sessions: sessions, responses: responses}
}

// answer submits the pending item with the given correctness.
func (e *testEnv) answer(t *testing.T, sess Session, item itembank.Item, correct bool) *AnswerResult {
	t.Helper()
	selected := item.AnswerIndex
	if !correct {
		selected = (item.AnswerIndex + 1) % len(item.Options)
	}
	res, err := e.svc.SubmitAnswer(context.Background(), sess.ID, item.ID, selected, 4*time.Second)
	if err != nil {
		t.Fatalf("submit answer for %s: %v", item.ID, err)
	}
	return res
}

func TestStart(t *testing.T) {
	env := newTestEnv(t, spreadBank(t, 4), DefaultConfig())

	res, err := env.svc.Start(context.Background(), "learner-1", QuickPlan())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if res.Resumed {
		t.Error("fresh start reported as resumed")
	}
	if res.Session.Status != StatusActive {
		t.Errorf("status = %s, want active", res.Session.Status)
	}
	if res.Session.PendingItemID != res.Item.ID {
		t.Errorf("pending = %s, returned item = %s", res.Session.PendingItemID, res.Item.ID)
	}
	if len(res.Session.Administered) != 1 || res.Session.Administered[0] != res.Item.ID {
		t.Errorf("administered = %v, want just the first item", res.Session.Administered)
	}
	if res.Session.Theta != 0 || res.Session.SE != 1 {
		t.Errorf("initial estimate = (%g, %g), want neutral prior (0, 1)", res.Session.Theta, res.Session.SE)
	}

	// The session exists durably before the learner sees the question.
	rec, err := env.sessions.Get(context.Background(), res.Session.ID)
	if err != nil {
		t.Fatalf("persisted session: %v", err)
	}
	if rec.Status != "active" || rec.PendingItemID != res.Item.ID {
		t.Errorf("persisted record = %+v", rec)
	}
}

func TestStart_EmptyBank(t *testing.T) {
	bank, err := itembank.NewBank(nil)
	if err != nil {
		t.Fatalf("empty bank: %v", err)
	}
	env := newTestEnv(t, bank, DefaultConfig())

	_, err = env.svc.Start(context.Background(), "learner-1", QuickPlan())
	if !errors.Is(err, ErrNoEligibleItem) {
		t.Errorf("err = %v, want ErrNoEligibleItem", err)
	}
}

func TestStart_DuplicateReturnsExisting(t *testing.T) {
	env := newTestEnv(t, spreadBank(t, 4), DefaultConfig())
	ctx := context.Background()

	first, err := env.svc.Start(ctx, "learner-1", QuickPlan())
	if err != nil {
		t.Fatalf("first start: %v", err)
	}

	second, err := env.svc.Start(ctx, "learner-1", QuickPlan())
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if !second.Resumed {
		t.Error("duplicate start did not report resumed")
	}
	if second.Session.ID != first.Session.ID {
		t.Errorf("duplicate start created a new session %s, want %s", second.Session.ID, first.Session.ID)
	}
	if second.Item.ID != first.Session.PendingItemID {
		t.Errorf("resumed item = %s, want pending %s", second.Item.ID, first.Session.PendingItemID)
	}

	// Another owner is unaffected.
	other, err := env.svc.Start(ctx, "learner-2", QuickPlan())
	if err != nil {
		t.Fatalf("other owner start: %v", err)
	}
	if other.Resumed {
		t.Error("other owner start reported resumed")
	}
}

func TestStart_FirstItemDeterministic(t *testing.T) {
	var firstID string
	for i := 0; i < 5; i++ {
		env := newTestEnv(t, spreadBank(t, 4), DefaultConfig())
		res, err := env.svc.Start(context.Background(), "learner-1", QuickPlan())
		if err != nil {
			t.Fatalf("start: %v", err)
		}
		if i == 0 {
			firstID = res.Item.ID
			continue
		}
		if res.Item.ID != firstID {
			t.Fatalf("run %d selected %s, earlier runs selected %s", i, res.Item.ID, firstID)
		}
	}
}

func TestStart_DomainFocusedSeedsDomain(t *testing.T) {
	env := newTestEnv(t, spreadBank(t, 4), DefaultConfig())

	res, err := env.svc.Start(context.Background(), "learner-1", DomainFocusedPlan(itembank.DomainFractions))
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if res.Item.Domain != itembank.DomainFractions {
		t.Errorf("first item domain = %s, want fractions", res.Item.Domain)
	}
}

func TestSubmitAnswer_Progresses(t *testing.T) {
	env := newTestEnv(t, spreadBank(t, 4), DefaultConfig())
	ctx := context.Background()

	start, err := env.svc.Start(ctx, "learner-1", QuickPlan())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	res := env.answer(t, start.Session, start.Item, true)
	if !res.Correct {
		t.Error("correct answer graded wrong")
	}
	if res.CorrectAnswer != start.Item.AnswerIndex {
		t.Errorf("correct answer index = %d, want %d", res.CorrectAnswer, start.Item.AnswerIndex)
	}
	if res.Completed {
		t.Fatal("session completed after one answer")
	}
	if res.NextItem == nil {
		t.Fatal("no next item after one answer")
	}
	if res.NextItem.ID == start.Item.ID {
		t.Error("next item repeats the answered item")
	}
	if res.Session.Theta <= 0 {
		t.Errorf("theta = %g after a correct answer, want > 0", res.Session.Theta)
	}
	if res.Session.QuestionsAnswered != 1 || res.Session.CorrectAnswers != 1 {
		t.Errorf("counts = %d/%d, want 1/1", res.Session.CorrectAnswers, res.Session.QuestionsAnswered)
	}

	// Domain tally reflects the answered item, others stay NoData.
	ability := res.Session.DomainAbilities[start.Item.Domain]
	if ability.NoData || ability.Administered != 1 || ability.Correct != 1 {
		t.Errorf("answered domain ability = %+v", ability)
	}
	for _, d := range itembank.AllDomains() {
		if d == start.Item.Domain {
			continue
		}
		if a := res.Session.DomainAbilities[d]; !a.NoData {
			t.Errorf("domain %s has data without responses: %+v", d, a)
		}
	}

	if len(env.responses.records) != 1 {
		t.Fatalf("response log has %d records, want 1", len(env.responses.records))
	}
}

func TestSubmitAnswer_NoRepeatsAcrossSession(t *testing.T) {
	env := newTestEnv(t, spreadBank(t, 4), DefaultConfig())
	ctx := context.Background()

	start, err := env.svc.Start(ctx, "learner-1", QuickPlan())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	seen := map[string]bool{start.Item.ID: true}
	sess, item := start.Session, start.Item
	for i := 0; i < QuickPlan().MaxQuestions; i++ {
		res := env.answer(t, sess, item, i%2 == 0)
		if res.Completed {
			return
		}
		if seen[res.NextItem.ID] {
			t.Fatalf("item %s administered twice", res.NextItem.ID)
		}
		seen[res.NextItem.ID] = true
		sess, item = res.Session, *res.NextItem
	}
	t.Fatal("session never completed")
}

func TestSubmitAnswer_MaxQuestions(t *testing.T) {
	// Five correct answers on discriminating items never push SE down to
	// 0.3, so the cap fires at exactly five.
	env := newTestEnv(t, spreadBank(t, 4), Config{
		MinQuestions:     5,
		PrecisionSE:      0.3,
		InactivityWindow: 24 * time.Hour,
	})
	ctx := context.Background()

	plan := QuickPlan()
	plan.MaxQuestions = 5

	start, err := env.svc.Start(ctx, "learner-1", plan)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	sess, item := start.Session, start.Item
	for i := 0; i < 5; i++ {
		res := env.answer(t, sess, item, true)
		if i < 4 {
			if res.Completed {
				t.Fatalf("completed after %d answers, want 5", i+1)
			}
			sess, item = res.Session, *res.NextItem
			continue
		}
		if !res.Completed {
			t.Fatal("not completed after 5 answers")
		}
		if res.Reason != ReasonMaxQuestions {
			t.Errorf("reason = %s, want max_questions", res.Reason)
		}
		if res.NextItem != nil {
			t.Error("completed session returned a next item")
		}
		if res.Session.CompletedAt == nil {
			t.Error("completed session has no completion time")
		}
		if res.Session.SE <= 0.3 {
			t.Errorf("SE = %g, scenario assumes it stays above 0.3", res.Session.SE)
		}
	}
}

func TestSubmitAnswer_PrecisionAfterFloor(t *testing.T) {
	// A threshold at the SE clamp makes the precision check pass on any
	// history, so it must fire exactly when the floor is reached and not
	// one answer earlier.
	env := newTestEnv(t, spreadBank(t, 4), Config{
		MinQuestions:     2,
		PrecisionSE:      2.0,
		InactivityWindow: 24 * time.Hour,
	})
	ctx := context.Background()

	start, err := env.svc.Start(ctx, "learner-1", QuickPlan())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	first := env.answer(t, start.Session, start.Item, true)
	if first.Completed {
		t.Fatal("precision fired before the minimum floor")
	}

	second := env.answer(t, first.Session, *first.NextItem, false)
	if !second.Completed {
		t.Fatal("precision did not fire at the floor")
	}
	if second.Reason != ReasonPrecision {
		t.Errorf("reason = %s, want precision_reached", second.Reason)
	}
}

func TestSubmitAnswer_MaxQuestionsWinsOverPrecision(t *testing.T) {
	// Both conditions hold on the same answer; the cap is checked first.
	env := newTestEnv(t, spreadBank(t, 4), Config{
		MinQuestions:     2,
		PrecisionSE:      2.0,
		InactivityWindow: 24 * time.Hour,
	})
	ctx := context.Background()

	plan := QuickPlan()
	plan.MaxQuestions = 2

	start, err := env.svc.Start(ctx, "learner-1", plan)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	first := env.answer(t, start.Session, start.Item, true)
	second := env.answer(t, first.Session, *first.NextItem, false)
	if !second.Completed || second.Reason != ReasonMaxQuestions {
		t.Errorf("completed=%v reason=%s, want completed with max_questions", second.Completed, second.Reason)
	}
}

func TestSubmitAnswer_Exhausted(t *testing.T) {
	items := []itembank.Item{
		calibratedItem("arith-00", itembank.DomainArithmetic, -0.5),
		calibratedItem("arith-01", itembank.DomainArithmetic, 0.5),
	}
	bank, err := itembank.NewBank(items)
	if err != nil {
		t.Fatalf("bank: %v", err)
	}
	env := newTestEnv(t, bank, DefaultConfig())
	ctx := context.Background()

	start, err := env.svc.Start(ctx, "learner-1", QuickPlan())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	first := env.answer(t, start.Session, start.Item, true)
	if first.Completed {
		t.Fatal("completed with an item still available")
	}
	second := env.answer(t, first.Session, *first.NextItem, true)
	if !second.Completed || second.Reason != ReasonExhausted {
		t.Errorf("completed=%v reason=%s, want completed with exhausted", second.Completed, second.Reason)
	}
}

func TestSubmitAnswer_ItemMismatch(t *testing.T) {
	env := newTestEnv(t, spreadBank(t, 4), DefaultConfig())
	ctx := context.Background()

	start, err := env.svc.Start(ctx, "learner-1", QuickPlan())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	_, err = env.svc.SubmitAnswer(ctx, start.Session.ID, "not-the-pending-item", 0, time.Second)
	var mismatch *ErrItemMismatch
	if !errors.As(err, &mismatch) {
		t.Fatalf("err = %v, want ErrItemMismatch", err)
	}
	if mismatch.Pending != start.Item.ID || mismatch.Submitted != "not-the-pending-item" {
		t.Errorf("mismatch = %+v", mismatch)
	}

	// The rejected submission left no trace.
	if len(env.responses.records) != 0 {
		t.Errorf("response log has %d records after a rejected answer", len(env.responses.records))
	}
}

func TestSubmitAnswer_SessionNotActive(t *testing.T) {
	env := newTestEnv(t, spreadBank(t, 4), DefaultConfig())
	ctx := context.Background()

	plan := QuickPlan()
	plan.MaxQuestions = 1
	start, err := env.svc.Start(ctx, "learner-1", plan)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	res := env.answer(t, start.Session, start.Item, true)
	if !res.Completed {
		t.Fatal("single-question session did not complete")
	}

	_, err = env.svc.SubmitAnswer(ctx, start.Session.ID, start.Item.ID, 0, time.Second)
	if !errors.Is(err, ErrSessionNotActive) {
		t.Errorf("err = %v, want ErrSessionNotActive", err)
	}
}

func TestSubmitAnswer_SessionNotFound(t *testing.T) {
	env := newTestEnv(t, spreadBank(t, 4), DefaultConfig())
	_, err := env.svc.SubmitAnswer(context.Background(), "nope", "item", 0, time.Second)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestReplay_Deterministic(t *testing.T) {
	env := newTestEnv(t, spreadBank(t, 4), DefaultConfig())
	ctx := context.Background()

	start, err := env.svc.Start(ctx, "learner-1", QuickPlan())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	sess, item := start.Session, start.Item
	var last *AnswerResult
	for i := 0; i < 4; i++ {
		last = env.answer(t, sess, item, i%2 == 0)
		sess, item = last.Session, *last.NextItem
	}

	history, err := env.responses.BySession(ctx, start.Session.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	est1, _, ok := env.svc.replay(history)
	if !ok {
		t.Fatal("replay reported no scorable responses")
	}
	est2, _, _ := env.svc.replay(history)
	if est1 != est2 {
		t.Errorf("replay not deterministic: %+v vs %+v", est1, est2)
	}
	if est1.Theta != last.Session.Theta || est1.SE != last.Session.SE {
		t.Errorf("replay estimate (%g, %g) differs from session (%g, %g)",
			est1.Theta, est1.SE, last.Session.Theta, last.Session.SE)
	}
}

func TestReplay_AllItemsMissing(t *testing.T) {
	env := newTestEnv(t, spreadBank(t, 4), DefaultConfig())

	history := []store.ResponseRecord{
		{SessionID: "s", ItemID: "gone-1", Correct: true},
		{SessionID: "s", ItemID: "gone-2", Correct: false},
	}
	_, _, ok := env.svc.replay(history)
	if ok {
		t.Error("replay scored responses whose items are gone from the bank")
	}
}

func TestStatus(t *testing.T) {
	env := newTestEnv(t, spreadBank(t, 4), DefaultConfig())
	ctx := context.Background()

	start, err := env.svc.Start(ctx, "learner-1", QuickPlan())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	res := env.answer(t, start.Session, start.Item, true)

	got, err := env.svc.Status(ctx, start.Session.ID)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if got.QuestionsAnswered != 1 || got.Theta != res.Session.Theta || got.SE != res.Session.SE {
		t.Errorf("status = %+v, want the post-answer snapshot", got)
	}
	if got.Plan.MaxQuestions != QuickPlan().MaxQuestions {
		t.Errorf("plan did not survive persistence: %+v", got.Plan)
	}
}

func TestResults(t *testing.T) {
	env := newTestEnv(t, spreadBank(t, 4), DefaultConfig())
	ctx := context.Background()

	// Drill fractions and miss everything: the domain ends up weak.
	start, err := env.svc.Start(ctx, "learner-1", DomainFocusedPlan(itembank.DomainFractions))
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err := env.svc.Results(ctx, start.Session.ID); !errors.Is(err, ErrSessionNotCompleted) {
		t.Errorf("results on active session: err = %v, want ErrSessionNotCompleted", err)
	}

	sess, item := start.Session, start.Item
	for {
		res := env.answer(t, sess, item, false)
		if res.Completed {
			break
		}
		sess, item = res.Session, *res.NextItem
	}

	results, err := env.svc.Results(ctx, start.Session.ID)
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if results.Theta >= 0 {
		t.Errorf("theta = %g after all-wrong answers, want negative", results.Theta)
	}
	if results.CorrectAnswers != 0 || results.Accuracy != 0 {
		t.Errorf("accuracy = %d/%g, want zero", results.CorrectAnswers, results.Accuracy)
	}

	foundWeak := false
	for _, d := range results.Weak {
		if d == itembank.DomainFractions {
			foundWeak = true
		}
	}
	if !foundWeak {
		t.Errorf("weak domains = %v, want fractions included", results.Weak)
	}
	for _, d := range results.Strong {
		if a := results.Domains[d]; a.NoData {
			t.Errorf("NoData domain %s classified strong", d)
		}
	}
}

func TestResults_SessionNotFound(t *testing.T) {
	env := newTestEnv(t, spreadBank(t, 4), DefaultConfig())
	_, err := env.svc.Results(context.Background(), "nope")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestSweepIdle(t *testing.T) {
	env := newTestEnv(t, spreadBank(t, 4), DefaultConfig())
	ctx := context.Background()

	start, err := env.svc.Start(ctx, "learner-1", QuickPlan())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// Not idle yet.
	n, err := env.svc.SweepIdle(ctx)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if n != 0 {
		t.Errorf("swept %d fresh sessions", n)
	}

	// Move the clock past the inactivity window.
	idleNow := env.svc.now().Add(25 * time.Hour)
	env.svc.now = func() time.Time { return idleNow }

	n, err = env.svc.SweepIdle(ctx)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if n != 1 {
		t.Errorf("swept %d sessions, want 1", n)
	}

	got, err := env.svc.Status(ctx, start.Session.ID)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if got.Status != StatusAbandoned {
		t.Errorf("status = %s, want abandoned", got.Status)
	}

	// An abandoned session frees the owner's slot.
	again, err := env.svc.Start(ctx, "learner-1", QuickPlan())
	if err != nil {
		t.Fatalf("restart after sweep: %v", err)
	}
	if again.Resumed {
		t.Error("restart after sweep resumed the abandoned session")
	}
}
