package eventloop

import (
	"sort"
	"time"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
)

// Manual is a deterministic scheduler whose clock only moves when Advance is
// called. Callbacks run on the caller's goroutine.
type Manual struct {
	now     time.Duration
	seq     int
	pending []*manualTimer
}

// NewManual returns a scheduler positioned at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc implements ports.Scheduler.
func (m *Manual) AfterFunc(d time.Duration, fn func()) ports.Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{owner: m, at: m.now + d, seq: m.seq, fn: fn}
	m.pending = append(m.pending, t)
	return t
}

// Advance moves the clock forward by d and runs every callback that became
// due, in due-time order. Callbacks scheduled while advancing run too when
// they fall inside the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.at
		m.remove(next)
		if next.fn != nil {
			next.fn()
		}
	}
	m.now = target
}

// Now reports the scheduler clock.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending reports how many callbacks are still scheduled.
func (m *Manual) Pending() int {
	return len(m.pending)
}

func (m *Manual) nextDue(target time.Duration) *manualTimer {
	if len(m.pending) == 0 {
		return nil
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].at == m.pending[j].at {
			return m.pending[i].seq < m.pending[j].seq
		}
		return m.pending[i].at < m.pending[j].at
	})
	if m.pending[0].at > target {
		return nil
	}
	return m.pending[0]
}

func (m *Manual) remove(t *manualTimer) bool {
	for i, candidate := range m.pending {
		if candidate == t {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return true
		}
	}
	return false
}

type manualTimer struct {
	owner *Manual
	at    time.Duration
	seq   int
	fn    func()
}

func (t *manualTimer) Stop() bool {
	return t.owner.remove(t)
}

var _ ports.Scheduler = (*Manual)(nil)
