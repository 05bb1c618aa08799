package greeting

import (
	"slices"
	"testing"
	"time"
)

func TestTimersFireInDueOrder(t *testing.T) {
	timers := NewTimers()
	var got []string
	timers.After(30*time.Millisecond, func() { got = append(got, "c") })
	timers.After(10*time.Millisecond, func() { got = append(got, "a") })
	timers.After(20*time.Millisecond, func() { got = append(got, "b") })

	timers.Advance(25 * time.Millisecond)
	if !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("fired %v, want [a b]", got)
	}
	timers.Advance(5 * time.Millisecond)
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("fired %v, want [a b c]", got)
	}
	if timers.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", timers.Pending())
	}
}

func TestTimersEqualDueKeepsSchedulingOrder(t *testing.T) {
	timers := NewTimers()
	var got []int
	for i := range 5 {
		timers.After(time.Second, func() { got = append(got, i) })
	}
	timers.Advance(time.Second)
	if !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("fired %v, want [0 1 2 3 4]", got)
	}
}

func TestTimersNowInsideCallback(t *testing.T) {
	timers := NewTimers()
	var at []time.Duration
	timers.After(100*time.Millisecond, func() {
		at = append(at, timers.Now())
		timers.After(50*time.Millisecond, func() {
			at = append(at, timers.Now())
		})
	})

	timers.Advance(time.Second)
	want := []time.Duration{100 * time.Millisecond, 150 * time.Millisecond}
	if !slices.Equal(at, want) {
		t.Errorf("callback times = %v, want %v", at, want)
	}
	if timers.Now() != time.Second {
		t.Errorf("Now() = %v, want 1s", timers.Now())
	}
}

func TestTimersNegativeDelayRunsOnNextAdvance(t *testing.T) {
	timers := NewTimers()
	ran := false
	timers.After(-time.Second, func() { ran = true })
	if ran {
		t.Fatal("callback ran during After")
	}
	timers.Advance(0)
	if !ran {
		t.Error("callback did not run on Advance(0)")
	}
}

func TestTimerStop(t *testing.T) {
	timers := NewTimers()
	ran := false
	tm := timers.After(time.Second, func() { ran = true })
	if !tm.Stop() {
		t.Error("Stop() = false for a pending timer")
	}
	if tm.Stop() {
		t.Error("second Stop() = true")
	}
	timers.Advance(2 * time.Second)
	if ran {
		t.Error("stopped timer fired")
	}
}

func TestTimerStopAfterFire(t *testing.T) {
	timers := NewTimers()
	tm := timers.After(time.Millisecond, func() {})
	timers.Advance(time.Millisecond)
	if tm.Stop() {
		t.Error("Stop() = true after the timer fired")
	}
	var nilTimer *Timer
	if nilTimer.Stop() {
		t.Error("nil Stop() = true")
	}
}

func TestTimerStopKeepsOthers(t *testing.T) {
	timers := NewTimers()
	var got []string
	timers.After(10*time.Millisecond, func() { got = append(got, "a") })
	b := timers.After(20*time.Millisecond, func() { got = append(got, "b") })
	timers.After(30*time.Millisecond, func() { got = append(got, "c") })
	b.Stop()
	timers.Advance(time.Second)
	if !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("fired %v, want [a c]", got)
	}
}

func TestTimersReset(t *testing.T) {
	timers := NewTimers()
	ran := false
	tm := timers.After(time.Second, func() { ran = true })
	timers.Advance(500 * time.Millisecond)
	timers.Reset()
	if timers.Now() != 0 || timers.Pending() != 0 {
		t.Errorf("Now = %v, Pending = %d after Reset", timers.Now(), timers.Pending())
	}
	if tm.Stop() {
		t.Error("Stop() = true for a timer dropped by Reset")
	}
	timers.Advance(2 * time.Second)
	if ran {
		t.Error("dropped timer fired")
	}
}
