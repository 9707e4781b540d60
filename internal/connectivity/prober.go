package connectivity

import (
	"context"
	"time"

	"github.com/vitalog/vitalog/internal/logger"
)

// ProbeFunc performs one reachability check. A nil error means online.
type ProbeFunc func(ctx context.Context) error

// Prober feeds a Monitor by probing the server on a fixed interval. It
// stands in for a platform reachability callback on headless installs.
type Prober struct {
	monitor  *Monitor
	probe    ProbeFunc
	interval time.Duration
	logger   *logger.Logger
}

// NewProber constructs a prober. If interval is zero or negative it defaults
// to 30 seconds.
func NewProber(monitor *Monitor, probe ProbeFunc, interval time.Duration, log *logger.Logger) *Prober {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	return &Prober{
		monitor:  monitor,
		probe:    probe,
		interval: interval,
		logger:   log,
	}
}

// Run probes immediately, then on every tick, until ctx is cancelled.
func (p *Prober) Run(ctx context.Context) {
	p.monitor.SetOnline(p.probe(ctx) == nil)

	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.monitor.SetOnline(p.probe(ctx) == nil)
		}
	}
}
