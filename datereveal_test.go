package greeting

import (
	"testing"
	"time"
)

var testWeekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func newTestDateReveal() (*DateReveal, *Timers, *Tweens) {
	timers := NewTimers()
	tweens := &Tweens{}
	target := TargetDate{Year: 2026, Month: 3, Day: 1, Weekday: 0}
	return NewDateReveal(target, testWeekdays, timers, tweens), timers, tweens
}

func TestDateRevealStartsHidden(t *testing.T) {
	r, _, _ := newTestDateReveal()
	if r.Layer.Opacity() != 0 {
		t.Errorf("Opacity() = %v before Start, want 0", r.Layer.Opacity())
	}
	if r.Calls() != 0 || r.Rolling() || r.Settled() {
		t.Errorf("Calls = %d, Rolling = %v, Settled = %v before Start", r.Calls(), r.Rolling(), r.Settled())
	}
}

func TestDateRevealTimeline(t *testing.T) {
	r, timers, tweens := newTestDateReveal()
	done := 0
	r.Start(func() { done++ })

	if !r.Layer.Visible || r.Layer.Alpha != 0 || r.Layer.OffsetY != dateSlideOffset {
		t.Fatalf("layer after Start = %+v, want visible, alpha 0, offset %v", *r.Layer, dateSlideOffset)
	}
	if !r.Rolling() {
		t.Fatal("Rolling() = false after Start")
	}
	if f := r.Fields(); f.Year != "2026" {
		t.Errorf("Year = %q while rolling, want 2026", f.Year)
	}

	dt := 10 * time.Millisecond
	tick(timers, tweens, r, DateFadeDuration, dt)
	assertNear(t, "alpha after fade-in", r.Layer.Alpha, 1, 0.01)
	assertNear(t, "offset after fade-in", r.Layer.OffsetY, 0, 0.1)
	if r.Settled() {
		t.Error("settled before the settle delay")
	}

	tick(timers, tweens, r, DateSettleDelay-DateFadeDuration, dt)
	if !r.Settled() || r.Rolling() {
		t.Fatalf("Settled = %v, Rolling = %v at %v", r.Settled(), r.Rolling(), timers.Now())
	}
	want := DateFields{Year: "2026", Month: "3", Day: "1", Weekday: "Sun"}
	if f := r.Fields(); f != want {
		t.Errorf("Fields() = %+v, want %+v", f, want)
	}

	tick(timers, tweens, r, DateHoldDuration-DateSettleDelay-dt, dt)
	if done != 0 {
		t.Fatal("done ran before the fade-out")
	}
	assertNear(t, "alpha during hold", r.Layer.Alpha, 1, 0.01)

	tick(timers, tweens, r, DateFadeDuration, dt)
	if done != 0 {
		t.Fatalf("done ran early at %v", timers.Now())
	}
	tick(timers, tweens, r, dt, dt)
	if done != 1 {
		t.Fatalf("done ran %d times at %v, want 1", done, timers.Now())
	}
	if r.Layer.Opacity() != 0 {
		t.Errorf("Opacity() = %v after the reveal, want 0", r.Layer.Opacity())
	}

	tick(timers, tweens, r, 10*time.Second, 100*time.Millisecond)
	if done != 1 {
		t.Errorf("done ran %d times, want 1", done)
	}
}

func TestDateRevealRollingFields(t *testing.T) {
	r, _, _ := newTestDateReveal()
	r.Start(nil)

	f := r.Fields()
	if f.Month != "1" || f.Day != "1" || f.Weekday != "Sun" {
		t.Errorf("initial roll = %+v", f)
	}
	r.Update(2 * dateRollPeriod)
	f = r.Fields()
	if f.Month != "3" || f.Day != "15" || f.Weekday != "Tue" {
		t.Errorf("roll after two periods = %+v, want month 3, day 15, Tue", f)
	}
}

func TestDateRevealCountsCalls(t *testing.T) {
	r, timers, tweens := newTestDateReveal()
	r.Start(nil)
	tick(timers, tweens, r, 5*time.Second, 50*time.Millisecond)
	r.Start(nil)
	if r.Calls() != 2 {
		t.Errorf("Calls() = %d, want 2", r.Calls())
	}
	if !r.Rolling() || r.Settled() {
		t.Error("second Start did not restart the roll")
	}
}

func TestWeekdayNameOutOfRange(t *testing.T) {
	if got := weekdayName(testWeekdays, 7); got != "" {
		t.Errorf("weekdayName(7) = %q, want empty", got)
	}
	if got := weekdayName(testWeekdays, 6); got != "Sat" {
		t.Errorf("weekdayName(6) = %q, want Sat", got)
	}
}
