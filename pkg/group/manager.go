package group

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/goliatone/go-maskfield/pkg/field"
)

var _ field.Aggregator = (*Manager)(nil)

// Status summarizes one group.
type Status struct {
	Group   string `json:"group"`
	Fields  int    `json:"fields"`
	Invalid int    `json:"invalid"`
	Valid   bool   `json:"valid"`
}

type entry struct {
	valid   bool
	updated time.Time
}

// Manager is a concurrency-safe group validity aggregator.
type Manager struct {
	mu     sync.RWMutex
	groups map[string]map[string]*entry
	dirty  map[string]struct{}
	timer  *time.Timer

	listener      Listener
	flushDelay    time.Duration
	staleAfter    time.Duration
	sweepInterval time.Duration
	logger        *slog.Logger
	now           func() time.Time

	stopped    bool
	reaperStop chan struct{}
	reaperDone chan struct{}
}

// New creates a manager. Call Start to run the stale-field reaper.
func New(opts ...Option) *Manager {
	m := &Manager{
		groups:        make(map[string]map[string]*entry),
		dirty:         make(map[string]struct{}),
		flushDelay:    DefaultFlushDelay,
		staleAfter:    DefaultStaleAfter,
		sweepInterval: DefaultSweepInterval,
		logger:        slog.Default(),
		now:           time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Update records the validity of fieldID in group.
func (m *Manager) Update(group, fieldID string, valid bool) {
	if group == "" || fieldID == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return
	}

	fields, ok := m.groups[group]
	if !ok {
		fields = make(map[string]*entry)
		m.groups[group] = fields
	}
	e, ok := fields[fieldID]
	if !ok {
		e = &entry{}
		fields[fieldID] = e
	}
	changed := !ok || e.valid != valid
	e.valid = valid
	e.updated = m.now()
	if changed {
		m.markDirtyLocked(group)
	}
}

// Remove forgets fieldID in group.
func (m *Manager) Remove(group, fieldID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fields, ok := m.groups[group]
	if !ok {
		return
	}
	if _, ok := fields[fieldID]; !ok {
		return
	}
	delete(fields, fieldID)
	if len(fields) == 0 {
		delete(m.groups, group)
	}
	m.markDirtyLocked(group)
}

// Verify reports whether every field in group is valid. Unknown groups
// verify.
func (m *Manager) Verify(group string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.statusLocked(group).Valid
}

// Count returns the number of fields reporting in group.
func (m *Manager) Count(group string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.groups[group])
}

// AllValid reports whether every tracked group verifies.
func (m *Manager) AllValid() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for group := range m.groups {
		if !m.statusLocked(group).Valid {
			return false
		}
	}
	return true
}

// Snapshot returns every group's status sorted by name.
func (m *Manager) Snapshot() []Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Status, 0, len(m.groups))
	for group := range m.groups {
		out = append(out, m.statusLocked(group))
	}
	sortStatuses(out)
	return out
}

// Flush delivers pending changes to the listener immediately.
func (m *Manager) Flush() {
	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	statuses := m.drainLocked()
	listener := m.listener
	m.mu.Unlock()

	if listener != nil && len(statuses) > 0 {
		listener(statuses)
	}
}

// Start launches the stale-field reaper.
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped || m.reaperStop != nil {
		return
	}
	m.reaperStop = make(chan struct{})
	m.reaperDone = make(chan struct{})
	go m.reapLoop(m.reaperStop, m.reaperDone)
	m.logger.Info("group: reaper started",
		"stale_after", m.staleAfter,
		"sweep_interval", m.sweepInterval)
}

// Stop halts the reaper, flushes pending changes and rejects further
// updates.
func (m *Manager) Stop() error {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return ErrStopped
	}
	m.stopped = true
	stop, done := m.reaperStop, m.reaperDone
	m.reaperStop, m.reaperDone = nil, nil
	m.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
	m.Flush()
	m.logger.Info("group: manager stopped")
	return nil
}

func (m *Manager) reapLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(m.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

// sweep removes fields whose last update is older than staleAfter.
func (m *Manager) sweep() int {
	now := m.now()
	removed := 0

	m.mu.Lock()
	defer m.mu.Unlock()
	for group, fields := range m.groups {
		before := len(fields)
		for id, e := range fields {
			if now.Sub(e.updated) <= m.staleAfter {
				continue
			}
			delete(fields, id)
			m.logger.Debug("group: stale field removed", "group", group, "field", id)
		}
		if len(fields) == before {
			continue
		}
		removed += before - len(fields)
		if len(fields) == 0 {
			delete(m.groups, group)
		}
		m.markDirtyLocked(group)
	}
	if removed > 0 {
		m.logger.Info("group: reaped stale fields", "count", removed)
	}
	return removed
}

func (m *Manager) markDirtyLocked(group string) {
	m.dirty[group] = struct{}{}
	if m.listener == nil || m.timer != nil || m.stopped {
		return
	}
	m.timer = time.AfterFunc(m.flushDelay, m.flushFromTimer)
}

func (m *Manager) flushFromTimer() {
	m.mu.Lock()
	m.timer = nil
	statuses := m.drainLocked()
	listener := m.listener
	m.mu.Unlock()

	if listener != nil && len(statuses) > 0 {
		listener(statuses)
	}
}

func (m *Manager) drainLocked() []Status {
	if len(m.dirty) == 0 {
		return nil
	}
	out := make([]Status, 0, len(m.dirty))
	for group := range m.dirty {
		out = append(out, m.statusLocked(group))
	}
	m.dirty = make(map[string]struct{})
	sortStatuses(out)
	return out
}

func (m *Manager) statusLocked(group string) Status {
	st := Status{Group: group, Valid: true}
	for _, e := range m.groups[group] {
		st.Fields++
		if !e.valid {
			st.Invalid++
			st.Valid = false
		}
	}
	return st
}

func sortStatuses(statuses []Status) {
	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Group < statuses[j].Group
	})
}
