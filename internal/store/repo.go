package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/gauge/internal/calibration"
	"github.com/abhisek/gauge/internal/irt"
	"github.com/abhisek/gauge/internal/itembank"
)

// ErrDuplicateActive is returned by SessionRepo.CreateActive when the
// owner already has an active session. Callers resolve it by re-reading
// and returning the existing session.
var ErrDuplicateActive = errors.New("owner already has an active session")

// ErrSessionNotFound is returned when no session exists for the given id.
var ErrSessionNotFound = errors.New("session not found")

// DomainAbilityRecord is the persisted per-domain ability state.
type DomainAbilityRecord struct {
	Theta        float64
	SE           float64
	Administered int
	Correct      int
	NoData       bool
}

// SessionRecord is the durable form of one diagnostic session. The engine
// writes the full record after every turn so a crash between turns loses
// at most the in-flight turn.
type SessionRecord struct {
	SessionID         string
	OwnerID           string
	DiagnosticType    string
	MaxQuestions      int
	Quotas            map[string]int
	FocusDomain       string
	Status            string
	Theta             float64
	SE                float64
	DomainAbilities   map[string]DomainAbilityRecord
	Administered      []string
	PendingItemID     string
	QuestionsAnswered int
	CorrectAnswers    int
	TerminationReason string
	StartedAt         time.Time
	CompletedAt       *time.Time
	LastActivity      time.Time
}

// ResponseRecord is one graded answer read back from the event log,
// ordered by the global sequence.
type ResponseRecord struct {
	Sequence       int64
	Timestamp      time.Time
	SessionID      string
	ItemID         string
	Domain         string
	SelectedOption int
	Correct        bool
	ResponseMs     int
}

// ItemRepo manages the persisted item bank.
type ItemRepo interface {
	// ReplaceBank upserts every item of the bank.
	ReplaceBank(ctx context.Context, bank *itembank.Bank) error

	// LoadBank reads all persisted items into a bank.
	LoadBank(ctx context.Context) (*itembank.Bank, error)

	// Count returns the number of persisted items.
	Count(ctx context.Context) (int, error)

	// UpdateParams overwrites one item's parameters and calibration
	// metadata after a calibration run.
	UpdateParams(ctx context.Context, itemID string, params irt.Params, sample int, source string, at time.Time) error
}

// SessionRepo manages diagnostic session records.
type SessionRepo interface {
	// CreateActive inserts a new active session. Returns
	// ErrDuplicateActive when the one-active-session invariant would be
	// violated.
	CreateActive(ctx context.Context, rec *SessionRecord) error

	// Get returns the session with the given id, or ErrSessionNotFound.
	Get(ctx context.Context, sessionID string) (*SessionRecord, error)

	// ActiveForOwner returns the owner's active session, or nil.
	ActiveForOwner(ctx context.Context, ownerID string) (*SessionRecord, error)

	// Update rewrites the mutable fields of an existing session.
	Update(ctx context.Context, rec *SessionRecord) error

	// AbandonIdle marks active sessions with no activity since the cutoff
	// as abandoned and returns how many were swept.
	AbandonIdle(ctx context.Context, cutoff time.Time) (int, error)
}

// ResponseRepo provides append and replay access to the response log.
type ResponseRepo interface {
	// Append records a response with the next global sequence number.
	Append(ctx context.Context, rec *ResponseRecord) error

	// BySession returns a session's responses in administration order.
	BySession(ctx context.Context, sessionID string) ([]ResponseRecord, error)

	// CalibrationPoints returns, for every response to the item from a
	// completed session, the response correctness paired with that
	// session's final ability.
	CalibrationPoints(ctx context.Context, itemID string) ([]calibration.ResponsePoint, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append access to ambient observability events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}
