package greeting

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the 2D drawing target the firework loop paints on.
type Surface interface {
	// Size returns the drawable area in pixels. Zero means not laid out yet.
	Size() (w, h int)
	// Clear erases the whole surface to transparent.
	Clear()
	// FillCircle draws a filled circle. c.A carries the combined opacity.
	FillCircle(x, y, radius float64, c Color)
}

// Canvas is a persistent offscreen image that implements Surface. It starts
// unsized and is (re)allocated by Resize.
type Canvas struct {
	image *ebiten.Image
	w, h  int
}

// NewCanvas creates a canvas of the given size. Zero sizes are allowed and
// leave the canvas without a backing image until Resize.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the backing image when the size changes. Contents are
// discarded, as with an HTML canvas.
func (c *Canvas) Resize(w, h int) {
	if w == c.w && h == c.h && (c.image != nil || w == 0 || h == 0) {
		return
	}
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
	c.w, c.h = w, h
	if w > 0 && h > 0 {
		c.image = ebiten.NewImage(w, h)
	}
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (int, int) {
	if c.image == nil {
		return 0, 0
	}
	return c.w, c.h
}

// Image returns the underlying *ebiten.Image, or nil while unsized.
func (c *Canvas) Image() *ebiten.Image {
	return c.image
}

// Clear fills the canvas with transparent black.
func (c *Canvas) Clear() {
	if c.image != nil {
		c.image.Clear()
	}
}

// FillCircle draws an anti-aliased filled circle.
func (c *Canvas) FillCircle(x, y, radius float64, col Color) {
	if c.image == nil || col.A <= 0 {
		return
	}
	vector.DrawFilledCircle(c.image, float32(x), float32(y), float32(radius), col.toRGBA(), true)
}

// DrawTo composites the canvas onto dst with the given opacity.
func (c *Canvas) DrawTo(dst *ebiten.Image, alpha float64) {
	if c.image == nil || alpha <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(c.image, &op)
}

// Dispose deallocates the underlying image.
func (c *Canvas) Dispose() {
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
	c.w, c.h = 0, 0
}
