package group

import (
	"log/slog"
	"time"
)

const (
	DefaultFlushDelay    = 100 * time.Millisecond
	DefaultStaleAfter    = 300 * time.Second
	DefaultSweepInterval = 30 * time.Second
)

// Listener receives the summaries of groups changed since the last flush.
// It is called outside the manager lock.
type Listener func([]Status)

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the manager logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithListener registers fn for batched change notifications.
func WithListener(fn Listener) Option {
	return func(m *Manager) {
		m.listener = fn
	}
}

// WithFlushDelay sets how long updates are batched before the listener
// runs.
func WithFlushDelay(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.flushDelay = d
		}
	}
}

// WithStaleAfter sets how long a field may go without an update before the
// reaper removes it.
func WithStaleAfter(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.staleAfter = d
		}
	}
}

// WithSweepInterval sets how often the reaper runs.
func WithSweepInterval(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.sweepInterval = d
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}
