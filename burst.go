package greeting

import "math"

const (
	burstBaseDots  = 280
	burstExtraDots = 80 // dot count is burstBaseDots + [0, burstExtraDots)

	// fadeStartFrame is the last frame at which a burst is fully opaque.
	fadeStartFrame = 80
	fadeRate       = 0.003

	// edgeFadeRadius is the distance from the center at which dots vanish,
	// independent of burst alpha.
	edgeFadeRadius = 100.0
)

var (
	dotSpeed    = Range{1, 4}
	dotFriction = Range{0.98, 0.995}
	dotSize     = Range{0.6, 1.8}
)

// Dot is a single particle within a burst. X and Y are offsets from the burst
// center.
type Dot struct {
	X, Y     float64
	VX, VY   float64
	Friction float64 // per-frame multiplicative velocity decay, < 1
	Size     float64
	Color    Color
}

// Burst is one explosion of dots from a single origin point.
type Burst struct {
	CX, CY  float64
	Palette []Color
	Dots    []Dot
	Alpha   float64
	Frame   int
}

// NewBurst creates a burst centered at (cx, cy) with its dot set generated
// from rng. An empty palette falls back to white.
func NewBurst(cx, cy float64, palette []Color, rng Rand) *Burst {
	if len(palette) == 0 {
		palette = []Color{ColorWhite}
	}
	n := burstBaseDots + rng.IntN(burstExtraDots)
	b := &Burst{
		CX:      cx,
		CY:      cy,
		Palette: palette,
		Dots:    make([]Dot, n),
		Alpha:   1,
	}
	for i := range b.Dots {
		d := &b.Dots[i]
		angle := rng.Float64() * 2 * math.Pi
		speed := dotSpeed.Random(rng)
		d.VX = math.Cos(angle) * speed
		d.VY = math.Sin(angle) * speed
		d.Friction = dotFriction.Random(rng)
		d.Size = dotSize.Random(rng)
		d.Color = palette[rng.IntN(len(palette))]
	}
	return b
}

// Advance integrates one frame and reports whether the burst is still visible.
func (b *Burst) Advance() bool {
	b.Frame++
	for i := range b.Dots {
		d := &b.Dots[i]
		d.X += d.VX
		d.Y += d.VY
		d.VX *= d.Friction
		d.VY *= d.Friction
	}
	if b.Frame > fadeStartFrame {
		b.Alpha -= fadeRate
	}
	return b.Alpha > 0
}

// Expired reports whether the burst has faded out completely.
func (b *Burst) Expired() bool {
	return b.Alpha <= 0
}

// Render draws every dot at its absolute position with opacity
// alpha × edge fade.
func (b *Burst) Render(dst Surface) {
	alpha := math.Max(b.Alpha, 0)
	for i := range b.Dots {
		d := &b.Dots[i]
		fade := EdgeFade(math.Hypot(d.X, d.Y))
		dst.FillCircle(b.CX+d.X, b.CY+d.Y, d.Size, d.Color.WithAlpha(alpha*fade))
	}
}

// EdgeFade returns the distance falloff factor: 1 at the center, 0 at
// edgeFadeRadius and beyond, linear in between.
func EdgeFade(dist float64) float64 {
	return math.Max(0, 1-dist/edgeFadeRadius)
}
