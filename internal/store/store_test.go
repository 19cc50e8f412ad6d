package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/gauge/internal/irt"
	"github.com/abhisek/gauge/internal/itembank"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func activeRecord(sessionID, ownerID string) *SessionRecord {
	now := time.Now().UTC().Truncate(time.Second)
	return &SessionRecord{
		SessionID:      sessionID,
		OwnerID:        ownerID,
		DiagnosticType: "quick",
		MaxQuestions:   12,
		Quotas:         map[string]int{"arithmetic": 1, "fractions": 1},
		Status:         "active",
		Theta:          0,
		SE:             1,
		PendingItemID:  "arith-add-01",
		Administered:   []string{"arith-add-01"},
		StartedAt:      now,
		LastActivity:   now,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful against file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestItemRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	seed, err := itembank.SeedBank()
	if err != nil {
		t.Fatalf("seed bank: %v", err)
	}
	if err := repo.ReplaceBank(ctx, seed); err != nil {
		t.Fatalf("replace bank: %v", err)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != seed.Len() {
		t.Errorf("count = %d, want %d", n, seed.Len())
	}

	loaded, err := repo.LoadBank(ctx)
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	for _, want := range seed.Items() {
		got, ok := loaded.Get(want.ID)
		if !ok {
			t.Fatalf("item %s missing after round trip", want.ID)
		}
		if got.Params != want.Params {
			t.Errorf("item %s params = %+v, want %+v", want.ID, got.Params, want.Params)
		}
		if got.Domain != want.Domain || got.AnswerIndex != want.AnswerIndex {
			t.Errorf("item %s content changed after round trip", want.ID)
		}
	}

	// Re-import is an upsert, not a duplicate insert.
	if err := repo.ReplaceBank(ctx, seed); err != nil {
		t.Fatalf("second replace: %v", err)
	}
	if n, _ := repo.Count(ctx); n != seed.Len() {
		t.Errorf("count after re-import = %d, want %d", n, seed.Len())
	}
}

func TestItemRepo_UpdateParams(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	seed, _ := itembank.SeedBank()
	if err := repo.ReplaceBank(ctx, seed); err != nil {
		t.Fatalf("replace bank: %v", err)
	}

	params := irt.Params{Discrimination: 1.9, Difficulty: -0.4, Guessing: 0.25}
	at := time.Now().UTC().Truncate(time.Second)
	if err := repo.UpdateParams(ctx, "arith-add-01", params, 321, itembank.SourceEmpirical, at); err != nil {
		t.Fatalf("update params: %v", err)
	}

	loaded, _ := repo.LoadBank(ctx)
	got, _ := loaded.Get("arith-add-01")
	if got.Params != params {
		t.Errorf("params = %+v, want %+v", got.Params, params)
	}
	if got.Calibration.SampleSize != 321 {
		t.Errorf("sample = %d, want 321", got.Calibration.SampleSize)
	}

	if err := repo.UpdateParams(ctx, "no-such-item", params, 1, itembank.SourceEmpirical, at); err == nil {
		t.Error("expected error for unknown item")
	}
}

func TestSessionRepo_OneActivePerOwner(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if err := repo.CreateActive(ctx, activeRecord("s-1", "learner-1")); err != nil {
		t.Fatalf("first create: %v", err)
	}

	err := repo.CreateActive(ctx, activeRecord("s-2", "learner-1"))
	if !errors.Is(err, ErrDuplicateActive) {
		t.Fatalf("second create = %v, want ErrDuplicateActive", err)
	}

	// A different owner is unaffected.
	if err := repo.CreateActive(ctx, activeRecord("s-3", "learner-2")); err != nil {
		t.Fatalf("other owner create: %v", err)
	}

	active, err := repo.ActiveForOwner(ctx, "learner-1")
	if err != nil {
		t.Fatalf("active for owner: %v", err)
	}
	if active == nil || active.SessionID != "s-1" {
		t.Errorf("active = %+v, want s-1", active)
	}
}

func TestSessionRepo_CompletedFreesTheSlot(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	rec := activeRecord("s-1", "learner-1")
	if err := repo.CreateActive(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	now := time.Now()
	rec.Status = "completed"
	rec.TerminationReason = "max_questions"
	rec.CompletedAt = &now
	if err := repo.Update(ctx, rec); err != nil {
		t.Fatalf("update: %v", err)
	}

	if err := repo.CreateActive(ctx, activeRecord("s-2", "learner-1")); err != nil {
		t.Fatalf("create after completion: %v", err)
	}

	got, err := repo.Get(ctx, "s-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != "completed" || got.TerminationReason != "max_questions" {
		t.Errorf("got %+v, want completed/max_questions", got)
	}
}

func TestSessionRepo_GetNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.SessionRepo().Get(context.Background(), "nope")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionRepo_AbandonIdle(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	stale := activeRecord("s-old", "learner-1")
	stale.LastActivity = time.Now().Add(-48 * time.Hour)
	if err := repo.CreateActive(ctx, stale); err != nil {
		t.Fatalf("create stale: %v", err)
	}
	if err := repo.Update(ctx, stale); err != nil {
		t.Fatalf("backdate stale: %v", err)
	}

	fresh := activeRecord("s-new", "learner-2")
	if err := repo.CreateActive(ctx, fresh); err != nil {
		t.Fatalf("create fresh: %v", err)
	}

	n, err := repo.AbandonIdle(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("abandon idle: %v", err)
	}
	if n != 1 {
		t.Errorf("swept %d sessions, want 1", n)
	}

	got, _ := repo.Get(ctx, "s-old")
	if got.Status != "abandoned" {
		t.Errorf("stale status = %s, want abandoned", got.Status)
	}
	got, _ = repo.Get(ctx, "s-new")
	if got.Status != "active" {
		t.Errorf("fresh status = %s, want active", got.Status)
	}
}

func TestResponseRepo_OrderedReplay(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResponseRepo()
	ctx := context.Background()

	items := []string{"a-1", "b-2", "c-3", "d-4"}
	for i, id := range items {
		err := repo.Append(ctx, &ResponseRecord{
			SessionID:      "s-1",
			ItemID:         id,
			Domain:         "arithmetic",
			SelectedOption: i % 4,
			Correct:        i%2 == 0,
			ResponseMs:     1000 + i,
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}
	// Interleaved response from another session must not appear.
	if err := repo.Append(ctx, &ResponseRecord{SessionID: "s-2", ItemID: "x", Domain: "data"}); err != nil {
		t.Fatalf("append other session: %v", err)
	}

	got, err := repo.BySession(ctx, "s-1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(got) != len(items) {
		t.Fatalf("got %d responses, want %d", len(got), len(items))
	}
	for i, rec := range got {
		if rec.ItemID != items[i] {
			t.Errorf("replay[%d] = %s, want %s (administration order)", i, rec.ItemID, items[i])
		}
		if i > 0 && rec.Sequence <= got[i-1].Sequence {
			t.Errorf("sequence not strictly increasing at %d", i)
		}
	}
}

func TestResponseRepo_CalibrationPoints(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sessions := s.SessionRepo()
	responses := s.ResponseRepo()

	completed := activeRecord("s-done", "learner-1")
	if err := sessions.CreateActive(ctx, completed); err != nil {
		t.Fatalf("create: %v", err)
	}
	now := time.Now()
	completed.Status = "completed"
	completed.Theta = 1.25
	completed.CompletedAt = &now
	if err := sessions.Update(ctx, completed); err != nil {
		t.Fatalf("complete: %v", err)
	}

	if err := sessions.CreateActive(ctx, activeRecord("s-open", "learner-2")); err != nil {
		t.Fatalf("create active: %v", err)
	}

	for _, rec := range []*ResponseRecord{
		{SessionID: "s-done", ItemID: "frac-add-01", Domain: "fractions", Correct: true},
		{SessionID: "s-open", ItemID: "frac-add-01", Domain: "fractions", Correct: false},
	} {
		if err := responses.Append(ctx, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	points, err := responses.CalibrationPoints(ctx, "frac-add-01")
	if err != nil {
		t.Fatalf("calibration points: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1 (active sessions excluded)", len(points))
	}
	if !points[0].Correct || points[0].Theta != 1.25 {
		t.Errorf("point = %+v, want correct at theta 1.25", points[0])
	}
}

func TestEventRepo_AppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	err := s.EventRepo().AppendLLMRequest(context.Background(), LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock-model",
		Purpose:      "report-narrative",
		InputTokens:  10,
		OutputTokens: 20,
		LatencyMs:    5,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append LLM request: %v", err)
	}
}
