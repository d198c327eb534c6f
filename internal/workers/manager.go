package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alimgiray/ghprofile/pkg/logger"
)

// WorkerManager manages the background workers of the server
type WorkerManager struct {
	workers  []Worker
	store    IdleViewerStore
	ttl      time.Duration
	interval time.Duration
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewWorkerManager creates a new worker manager
func NewWorkerManager(store IdleViewerStore, ttl, interval time.Duration) *WorkerManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerManager{
		workers:  make([]Worker, 0),
		store:    store,
		ttl:      ttl,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// StartAll starts all workers
func (wm *WorkerManager) StartAll() error {
	if wm.ttl <= 0 || wm.interval <= 0 {
		return fmt.Errorf("invalid sweeper settings: ttl %s, interval %s", wm.ttl, wm.interval)
	}

	sweeper := NewSessionSweeper("session-sweeper-1", wm.store, wm.ttl, wm.interval)
	wm.workers = append(wm.workers, sweeper)
	wm.startWorker(sweeper)

	logger.Infof("Started %d total workers", len(wm.workers))
	return nil
}

// StopAll gracefully stops all workers
func (wm *WorkerManager) StopAll() error {
	logger.Info("Stopping all workers...")

	wm.cancel()

	for _, worker := range wm.workers {
		if err := worker.Stop(); err != nil {
			logger.WithError(err).Errorf("Error stopping worker %s", worker.GetWorkerID())
		}
	}

	wm.wg.Wait()

	logger.Info("All workers stopped")
	return nil
}

// startWorker starts a single worker in a goroutine
func (wm *WorkerManager) startWorker(worker Worker) {
	wm.wg.Add(1)
	go func() {
		defer wm.wg.Done()
		if err := worker.Start(wm.ctx); err != nil && err != context.Canceled {
			logger.WithError(err).Errorf("Worker %s stopped with error", worker.GetWorkerID())
		}
	}()
}

// GetWorkerStatus returns the status of all workers
func (wm *WorkerManager) GetWorkerStatus() map[string]bool {
	status := make(map[string]bool)
	for _, worker := range wm.workers {
		if sweeper, ok := worker.(*SessionSweeper); ok {
			status[worker.GetWorkerID()] = sweeper.IsRunning()
		} else {
			status[worker.GetWorkerID()] = false
		}
	}
	return status
}
