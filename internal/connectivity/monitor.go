// Package connectivity tracks the device's online/offline state and feeds
// transitions into the sync trigger policy.
//
// The [Monitor] is a passive state holder: whatever reachability signal the
// platform provides calls [Monitor.SetOnline]. The [Prober] is one such
// signal source — it periodically pings the sync server — but the monitor
// does not depend on it, so tests (and platforms with native reachability
// callbacks) can drive the state directly.
package connectivity

import (
	"sync"

	"github.com/vitalog/vitalog/internal/logger"
)

// Monitor holds the current connectivity state and notifies subscribers on
// every transition. Notifications are advisory and never block: a slow
// subscriber misses intermediate flips but always observes the latest state
// via Online.
type Monitor struct {
	logger *logger.Logger

	mu     sync.RWMutex
	online bool
	subs   []chan bool
}

// NewMonitor constructs a monitor that starts offline; the first probe or
// platform callback flips it.
func NewMonitor(log *logger.Logger) *Monitor {
	return &Monitor{logger: log}
}

// Online reports the current connectivity state.
func (m *Monitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// SetOnline records the state reported by the reachability signal and
// notifies subscribers when it actually changed.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	changed := m.online != online
	m.online = online
	subs := m.subs
	m.mu.Unlock()

	if !changed {
		return
	}

	m.logger.Info().Bool("online", online).Msg("connectivity changed")

	for _, sub := range subs {
		select {
		case sub <- online:
		default:
		}
	}
}

// Subscribe returns a channel receiving the new state on each transition.
// The channel is buffered; subscribers that fall behind drop intermediate
// transitions rather than blocking the signal source.
func (m *Monitor) Subscribe() <-chan bool {
	ch := make(chan bool, 1)

	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()

	return ch
}
