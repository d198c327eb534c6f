package workers

import (
	"context"
	"time"

	"github.com/alimgiray/ghprofile/pkg/logger"
)

// IdleViewerStore is the part of the viewer store the sweeper needs
type IdleViewerStore interface {
	DeleteIdle(ttl time.Duration) int
	Count() int
}

// SessionSweeper unmounts viewer widgets whose session has been idle longer
// than the session TTL
type SessionSweeper struct {
	*BaseWorker
	store    IdleViewerStore
	ttl      time.Duration
	interval time.Duration
}

// NewSessionSweeper creates a new session sweeper
func NewSessionSweeper(workerID string, store IdleViewerStore, ttl, interval time.Duration) *SessionSweeper {
	return &SessionSweeper{
		BaseWorker: NewBaseWorker(workerID),
		store:      store,
		ttl:        ttl,
		interval:   interval,
	}
}

// Start sweeps once per interval until stopped
func (w *SessionSweeper) Start(ctx context.Context) error {
	w.setRunning(true)
	defer w.setRunning(false)
	log := logger.WithField("worker_id", w.WorkerID)
	log.Infof("Session sweeper started (ttl %s, interval %s)", w.ttl, w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Session sweeper stopping due to context cancellation")
			return ctx.Err()
		case <-w.StopChan:
			log.Info("Session sweeper stopping")
			return nil
		case <-ticker.C:
			w.Sweep()
		}
	}
}

// Sweep removes idle viewers once and returns how many were removed
func (w *SessionSweeper) Sweep() int {
	removed := w.store.DeleteIdle(w.ttl)
	if removed > 0 {
		logger.WithField("worker_id", w.WorkerID).
			WithField("remaining", w.store.Count()).
			Infof("Removed %d idle viewers", removed)
	}
	return removed
}
