package diagnostic

import (
	"errors"
	"fmt"

	"github.com/abhisek/gauge/internal/store"
)

// ErrNoEligibleItem indicates the bank has no item that can open a session
// under the requested plan.
var ErrNoEligibleItem = errors.New("no eligible item in the bank")

// ErrSessionNotActive indicates an answer was submitted to a session that
// already completed or was abandoned.
var ErrSessionNotActive = errors.New("session is not active")

// ErrSessionNotCompleted indicates results were requested for a session
// that has not completed.
var ErrSessionNotCompleted = errors.New("session has not completed")

// ErrSessionNotFound is re-exported so callers depend only on this package.
var ErrSessionNotFound = store.ErrSessionNotFound

// ErrItemMismatch indicates the submitted answer targets an item other than
// the one the session is waiting on. The UI and the engine have diverged;
// the caller should re-sync from Status.
type ErrItemMismatch struct {
	Pending   string
	Submitted string
}

func (e *ErrItemMismatch) Error() string {
	return fmt.Sprintf("answer targets item %s but session is waiting on %s", e.Submitted, e.Pending)
}
