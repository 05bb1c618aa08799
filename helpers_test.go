package greeting

import (
	"math"
	"testing"
	"time"
)

type circle struct {
	x, y, r float64
	c       Color
}

// recordingSurface is a Surface that remembers what was drawn since the
// last Clear.
type recordingSurface struct {
	w, h    int
	clears  int
	resizes int
	circles []circle
}

func (s *recordingSurface) Size() (int, int) { return s.w, s.h }

func (s *recordingSurface) Clear() {
	s.clears++
	s.circles = s.circles[:0]
}

func (s *recordingSurface) FillCircle(x, y, r float64, c Color) {
	s.circles = append(s.circles, circle{x, y, r, c})
}

func (s *recordingSurface) Resize(w, h int) {
	s.w, s.h = w, h
	s.resizes++
}

// fixedRand returns the same Float64 every time and min(i, n-1) from IntN.
type fixedRand struct {
	f float64
	i int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) IntN(n int) int { return min(r.i, n-1) }

func assertNear(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %f, want ~%f", name, got, want)
	}
}

// tick advances timers, tweens and the date panel the way Show.Update does,
// in steps of dt until total has elapsed.
func tick(timers *Timers, tweens *Tweens, date *DateReveal, total, dt time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += dt {
		timers.Advance(dt)
		tweens.Update(dt)
		if date != nil {
			date.Update(dt)
		}
	}
}
