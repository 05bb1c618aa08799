package greeting

import "time"

// SpawnDelays is the firework cadence used by SpawnSequence, measured from
// the call.
var SpawnDelays = []time.Duration{
	0,
	1200 * time.Millisecond,
	2400 * time.Millisecond,
	3600 * time.Millisecond,
	4800 * time.Millisecond,
}

// Spawner places bursts at random positions in the central band of the
// surface and feeds them to the loop.
type Spawner struct {
	loop     *Loop
	timers   *Timers
	surface  Surface
	rng      Rand
	palettes [][]Color
	spawned  int
}

// NewSpawner wires a spawner to its loop, clock and surface. Palettes must be
// non-empty; an empty set spawns white bursts.
func NewSpawner(loop *Loop, timers *Timers, surface Surface, rng Rand, palettes [][]Color) *Spawner {
	return &Spawner{
		loop:     loop,
		timers:   timers,
		surface:  surface,
		rng:      rng,
		palettes: palettes,
	}
}

// Spawned returns how many bursts this spawner has created.
func (s *Spawner) Spawned() int {
	return s.spawned
}

// SpawnOne creates a burst with x in [20%, 80%) of the width and y in
// [25%, 75%) of the height, using a uniformly chosen palette, and restarts the
// loop if it is idle.
func (s *Spawner) SpawnOne() *Burst {
	w, h := s.surface.Size()
	fw, fh := float64(w), float64(h)
	cx := fw*0.2 + s.rng.Float64()*fw*0.6
	cy := fh*0.25 + s.rng.Float64()*fh*0.5

	var palette []Color
	if len(s.palettes) > 0 {
		palette = s.palettes[s.rng.IntN(len(s.palettes))]
	}
	b := NewBurst(cx, cy, palette, s.rng)
	s.loop.Add(b)
	s.spawned++
	return b
}

// SpawnSequence fires one burst now and the rest on the SpawnDelays cadence.
// The timers are fire-and-forget.
func (s *Spawner) SpawnSequence() {
	for _, d := range SpawnDelays {
		if d == 0 {
			s.SpawnOne()
			continue
		}
		s.timers.After(d, func() { s.SpawnOne() })
	}
}
