package scheduler

import (
	"sort"
	"time"
)

// Manual is a virtual-clock scheduler. Nothing runs until the owner advances
// the clock. It is not safe for concurrent use.
type Manual struct {
	now     time.Duration
	seq     uint64
	pending []*manualTimer
}

func NewManual() *Manual {
	return &Manual{}
}

type manualTimer struct {
	owner *Manual
	due   time.Duration
	seq   uint64
	fn    func()
}

func (t *manualTimer) Stop() bool {
	return t.owner.remove(t)
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{owner: m, due: m.now + d, seq: m.seq, fn: fn}
	m.pending = append(m.pending, t)
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].due == m.pending[j].due {
			return m.pending[i].seq < m.pending[j].seq
		}
		return m.pending[i].due < m.pending[j].due
	})
	return t
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of armed timers.
func (m *Manual) Pending() int {
	return len(m.pending)
}

// RunNext moves the clock to the earliest due timer and runs it. It returns
// false when nothing is pending.
func (m *Manual) RunNext() bool {
	if len(m.pending) == 0 {
		return false
	}
	t := m.pending[0]
	m.pending = m.pending[1:]
	if t.due > m.now {
		m.now = t.due
	}
	t.fn()
	return true
}

// Advance moves the clock forward by d, running every timer that falls due,
// including timers armed by callbacks during the advance. It returns the
// number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	target := m.now + d
	ran := 0
	for len(m.pending) > 0 && m.pending[0].due <= target {
		m.RunNext()
		ran++
	}
	m.now = target
	return ran
}

func (m *Manual) remove(t *manualTimer) bool {
	for i, p := range m.pending {
		if p == t {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return true
		}
	}
	return false
}
