package workers

import (
	"context"
	"time"

	"github.com/vitalog/vitalog/internal/connectivity"
	"github.com/vitalog/vitalog/internal/service"
)

// Workers runs the device agent's background loops: the connectivity prober
// and the periodic sync job.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// syncJobWorker adapts the sync trigger job to the Worker interface.
type syncJobWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

func NewSyncJobWorker(job service.ClientSyncJob, interval time.Duration) Worker {
	return &syncJobWorker{job: job, interval: interval}
}

func (w *syncJobWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

// proberWorker adapts the connectivity prober to the Worker interface.
type proberWorker struct {
	prober *connectivity.Prober
}

func NewProberWorker(prober *connectivity.Prober) Worker {
	return &proberWorker{prober: prober}
}

func (w *proberWorker) Run(ctx context.Context) {
	go w.prober.Run(ctx)
}
