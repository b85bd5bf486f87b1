package wizard

import (
	"context"
	"sync"
	"time"

	"rrer/pkg/domain"
	"rrer/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultDebounce is how long a report's wizard state must sit untouched
// before it is flushed to storage.
const DefaultDebounce = 1500 * time.Millisecond

// Saver persists wizard state. Implementations must treat a save as an
// idempotent overwrite; the autosaver delivers at least once.
type Saver interface {
	SaveWizardState(ctx context.Context, id domain.ReportID, state domain.WizardState) error
}

// Autosaver coalesces bursts of wizard edits into one save per report once
// the edits go quiet. Saving never blocks navigation: Touch only records the
// newest state, and failed saves are kept and retried silently on the next
// sweep rather than surfaced to the session.
type Autosaver struct {
	saver    Saver
	debounce time.Duration

	mu      sync.Mutex
	pending map[domain.ReportID]pendingSave
}

type pendingSave struct {
	state     domain.WizardState
	touchedAt time.Time
}

// NewAutosaver builds an Autosaver flushing after the given quiescence.
// A non-positive debounce falls back to DefaultDebounce.
func NewAutosaver(saver Saver, debounce time.Duration) *Autosaver {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Autosaver{
		saver:    saver,
		debounce: debounce,
		pending:  map[domain.ReportID]pendingSave{},
	}
}

// Touch records the report's newest wizard state and restarts its quiet
// period. Safe for concurrent use; never blocks on I/O.
func (a *Autosaver) Touch(id domain.ReportID, state domain.WizardState) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.pending[id] = pendingSave{state: state, touchedAt: time.Now()}
}

// Run sweeps pending saves until the context ends, then flushes whatever is
// left so a shutdown loses nothing that could still be written.
func (a *Autosaver) Run(ctx context.Context) {
	interval := a.debounce / 4
	if interval < 10*time.Millisecond {
		interval = 10 * time.Millisecond
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// the parent context is gone; flush on a fresh one
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			a.flush(flushCtx, time.Time{})
			cancel()

			return
		case <-ticker.C:
			a.flush(ctx, time.Now())
		}
	}
}

// flush writes out every entry whose quiet period has elapsed by now; the
// zero time flushes everything. Entries that fail to save stay pending and
// are retried on the next sweep.
func (a *Autosaver) flush(ctx context.Context, now time.Time) {
	a.mu.Lock()
	due := make(map[domain.ReportID]pendingSave)
	for id, p := range a.pending {
		if now.IsZero() || now.Sub(p.touchedAt) >= a.debounce {
			due[id] = p
		}
	}
	a.mu.Unlock()

	for id, p := range due {
		if err := a.saver.SaveWizardState(ctx, id, p.state); err != nil {
			logger.Warn(ctx, "could not autosave wizard state, will retry",
				zap.String("reportID", uuid.UUID(id).String()), zap.Error(err))

			continue
		}

		a.mu.Lock()
		// drop only if no newer edit arrived while we were saving
		if cur, ok := a.pending[id]; ok && cur.touchedAt.Equal(p.touchedAt) {
			delete(a.pending, id)
		}
		a.mu.Unlock()
	}
}
