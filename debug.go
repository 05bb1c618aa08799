package greeting

import (
	"log"
)

// debugLog prints verbose "[greeting]" lines when true. Each Show and App
// carries its own.
type debugLog bool

func (d debugLog) printf(format string, args ...any) {
	if !d {
		return
	}
	log.Printf("[greeting] "+format, args...)
}

// debugStats is the per-frame snapshot shown by the debug overlay.
type debugStats struct {
	bursts  int
	dots    int
	phase   Phase
	screen  Screen
	pending int
	radius  float64
}

func (s *Show) debugStats() debugStats {
	st := debugStats{
		bursts:  s.Loop.Len(),
		phase:   s.Sequence.Phase(),
		screen:  s.screen,
		pending: s.Timers.Pending(),
		radius:  s.Reveal.Radius(),
	}
	for _, b := range s.Loop.Bursts() {
		st.dots += len(b.Dots)
	}
	return st
}
