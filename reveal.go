package greeting

import (
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

const (
	// HideThreshold is the radius percentage at or below which a release
	// removes the cover.
	HideThreshold = 10.0
	// HideDuration is how long the cover takes to fade before it is removed.
	HideDuration = 300 * time.Millisecond

	revealReach = 0.6
)

// DragReveal tracks a drag from the cover's corner handle and turns the
// pointer position into a shrinking circular clip over the cover.
type DragReveal struct {
	// Page is the masked cover; Handle is the fold corner the drag starts on.
	Page   *Layer
	Handle *Layer

	box      Rect // anchor rectangle in screen coordinates
	ref      Rect // reference rectangle for the reach distance
	timers   *Timers
	tweens   *Tweens
	dragging bool
	masked   bool
	hiding   bool
	hidden   bool
	radius   float64
	center   Vec2

	// OnHide runs once when the cover has been removed.
	OnHide func()
}

// NewDragReveal returns a reveal over box with the radius at 100%.
func NewDragReveal(box Rect, timers *Timers, tweens *Tweens) *DragReveal {
	return &DragReveal{
		Page:   NewLayer("page"),
		Handle: NewLayer("fold-corner"),
		box:    box,
		ref:    box,
		timers: timers,
		tweens: tweens,
		radius: 100,
	}
}

// SetBox updates the anchor and reference rectangles, e.g. after a resize.
func (d *DragReveal) SetBox(box Rect) {
	d.box = box
	d.ref = box
}

// Box returns the anchor rectangle.
func (d *DragReveal) Box() Rect {
	return d.box
}

// Dragging reports whether a drag is in progress.
func (d *DragReveal) Dragging() bool {
	return d.dragging
}

// Radius returns the reveal radius percentage in [0, 100].
func (d *DragReveal) Radius() float64 {
	return d.radius
}

// Center returns the mask center relative to the anchor's top-left corner.
func (d *DragReveal) Center() Vec2 {
	return d.center
}

// Masked reports whether a clip has been applied yet. Until the first move
// the cover is drawn whole.
func (d *DragReveal) Masked() bool {
	return d.masked
}

// Hidden reports whether the cover has been removed.
func (d *DragReveal) Hidden() bool {
	return d.hidden
}

// Begin starts tracking. It is ignored once the cover is going away.
func (d *DragReveal) Begin() {
	if d.hiding || d.hidden {
		return
	}
	d.dragging = true
}

// Move updates the clip from a pointer position in screen coordinates.
func (d *DragReveal) Move(x, y float64) {
	if !d.dragging {
		return
	}
	d.center = Vec2{X: x - d.box.X, Y: y - d.box.Y}
	d.radius = RevealRadius(d.center.X, d.center.Y, d.ref.Width, d.ref.Height)
	d.masked = true
}

// End stops tracking. A radius at or below HideThreshold fades the cover and
// handle out and removes them; it reports whether that happened. A larger
// radius leaves the cover clipped where it is.
func (d *DragReveal) End() bool {
	if !d.dragging {
		return false
	}
	d.dragging = false
	if d.radius > HideThreshold {
		return false
	}
	d.hiding = true
	d.tweens.Add(TweenAlpha(d.Page, 0, HideDuration, ease.Linear))
	d.tweens.Add(TweenAlpha(d.Handle, 0, HideDuration, ease.Linear))
	d.timers.After(HideDuration, func() {
		d.Page.Hide()
		d.Handle.Hide()
		d.hidden = true
		if d.OnHide != nil {
			d.OnHide()
		}
	})
	return true
}

// MaskRadius converts the percentage into pixels the way CSS circle(r%)
// does: percentages resolve against hypot(w, h)/√2 of the box.
func (d *DragReveal) MaskRadius() float64 {
	return d.radius / 100 * math.Hypot(d.box.Width, d.box.Height) / math.Sqrt2
}

// RevealRadius maps an offset from the anchor corner to a radius percentage:
// 100 at the corner, falling linearly to 0 at 0.6 × the reference diagonal.
func RevealRadius(dx, dy, w, h float64) float64 {
	maxDist := math.Hypot(w, h) * revealReach
	if maxDist <= 0 {
		return 0
	}
	dist := math.Hypot(dx, dy)
	return clamp(100-dist/maxDist*100, 0, 100)
}
