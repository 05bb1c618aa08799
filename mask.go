package greeting

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// circleMask clips an offscreen layer to a circle. The mask image is
// reused between frames and reallocated when the layer size changes.
type circleMask struct {
	mask *ebiten.Image
}

// apply keeps the pixels of layer inside the circle at (cx, cy) with the given
// radius, in layer coordinates, and clears the rest.
func (m *circleMask) apply(layer *ebiten.Image, cx, cy, radius float64) {
	m.mask = ensureImage(m.mask, layer.Bounds().Dx(), layer.Bounds().Dy())
	m.mask.Clear()
	if radius > 0 {
		vector.DrawFilledCircle(m.mask, float32(cx), float32(cy), float32(radius), ColorWhite.toRGBA(), true)
	}
	var op ebiten.DrawImageOptions
	op.Blend = blendMask
	layer.DrawImage(m.mask, &op)
}

func (m *circleMask) dispose() {
	if m.mask != nil {
		m.mask.Deallocate()
		m.mask = nil
	}
}

// ensureImage returns img if it already has the requested size, otherwise a
// fresh image. Sizes below one pixel are rounded up.
func ensureImage(img *ebiten.Image, w, h int) *ebiten.Image {
	w, h = max(w, 1), max(h, 1)
	if img != nil {
		b := img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return img
		}
		img.Deallocate()
	}
	return ebiten.NewImage(w, h)
}
