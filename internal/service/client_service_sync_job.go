package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vitalog/vitalog/internal/connectivity"
	"github.com/vitalog/vitalog/internal/logger"
)

type clientSyncJob struct {
	coordinator SyncCoordinator
	tracker     ChangeTracker
	monitor     *connectivity.Monitor
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates the background trigger policy. The job is idle
// until Start is called.
func NewClientSyncJob(coordinator SyncCoordinator, tracker ChangeTracker, monitor *connectivity.Monitor, log *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		coordinator: coordinator,
		tracker:     tracker,
		monitor:     monitor,
		logger:      log,
	}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine with two trigger sources: connectivity
// transitions (sync as soon as the device comes back online with queued
// changes) and a low-frequency timer that catches changes made while
// already online. If interval is zero or negative it defaults to one
// minute. The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	transitions := j.monitor.Subscribe()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case online := <-transitions:
				if online {
					j.trigger(jobCtx)
				}
			case <-t.C:
				if j.monitor.Online() {
					j.trigger(jobCtx)
				}
			}
		}
	}()
}

// trigger fires one advisory sync attempt. The coordinator's single-flight
// guard and cooldown are the enforcement point, so refusals are expected
// and only logged at debug level.
func (j *clientSyncJob) trigger(ctx context.Context) {
	pending, err := j.tracker.PendingCount(ctx)
	if err != nil {
		j.logger.Err(err).Msg("trigger skipped, pending count unavailable")
		return
	}
	if pending == 0 {
		return
	}

	err = j.coordinator.Sync(ctx, false)
	switch {
	case err == nil:
	case errors.Is(err, ErrSyncInFlight), errors.Is(err, ErrCooldownActive):
		j.logger.Debug().Err(err).Msg("sync trigger refused")
	default:
		j.logger.Err(err).Msg("triggered sync cycle failed")
	}
}

// Stop implements ClientSyncJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call
// when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
