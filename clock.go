package greeting

import (
	"container/heap"
	"time"
)

// Timers is a virtual clock holding one-shot callbacks. It never reads wall
// time: the game tick (or a test) moves it forward with Advance. Not safe for
// concurrent use.
type Timers struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
}

// Timer is a pending callback returned by Timers.After.
type Timer struct {
	due   time.Duration
	seq   uint64
	fn    func()
	index int // position in the heap, -1 once fired or stopped
	owner *Timers
}

// NewTimers returns a clock at time zero.
func NewTimers() *Timers {
	return &Timers{}
}

// Now returns the elapsed virtual time.
func (t *Timers) Now() time.Duration {
	return t.now
}

// Pending returns the number of callbacks waiting to fire.
func (t *Timers) Pending() int {
	return len(t.queue)
}

// After schedules fn to run once d has elapsed. Negative delays are treated
// as zero. Callbacks with equal due times fire in scheduling order.
func (t *Timers) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	t.seq++
	tm := &Timer{due: t.now + d, seq: t.seq, fn: fn, owner: t}
	heap.Push(&t.queue, tm)
	return tm
}

// Stop cancels the timer. It reports whether the call prevented the callback
// from running.
func (tm *Timer) Stop() bool {
	if tm == nil || tm.index < 0 || tm.owner == nil {
		return false
	}
	heap.Remove(&tm.owner.queue, tm.index)
	return true
}

// Advance moves the clock forward by dt, firing every callback due within the
// window in due order. While a callback runs Now reports its due time, so a
// callback that schedules another one chains from the right instant.
func (t *Timers) Advance(dt time.Duration) {
	target := t.now + dt
	for len(t.queue) > 0 && t.queue[0].due <= target {
		tm := heap.Pop(&t.queue).(*Timer)
		if tm.due > t.now {
			t.now = tm.due
		}
		tm.fn()
	}
	if target > t.now {
		t.now = target
	}
}

// Reset drops every pending callback and rewinds the clock to zero.
func (t *Timers) Reset() {
	for _, tm := range t.queue {
		tm.index = -1
	}
	t.queue = t.queue[:0]
	t.now = 0
}

type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	tm := x.(*Timer)
	tm.index = len(*q)
	*q = append(*q, tm)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	tm := old[n-1]
	old[n-1] = nil
	tm.index = -1
	*q = old[:n-1]
	return tm
}
