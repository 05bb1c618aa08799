package greeting

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Pointer folds the mouse and the first active touch into a single
// press/move/release stream. Injected events take precedence over real input
// for the frame they are consumed on.
type Pointer struct {
	down         bool
	x, y         float64
	touchID      ebiten.TouchID
	touching     bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent

	// OnPress, OnMove and OnRelease receive screen coordinates.
	OnPress   func(x, y float64)
	OnMove    func(x, y float64)
	OnRelease func(x, y float64)
}

// Down reports whether the pointer is currently pressed.
func (p *Pointer) Down() bool {
	return p.down
}

// Position returns the last known pointer position.
func (p *Pointer) Position() (float64, float64) {
	return p.x, p.y
}

// Update consumes one injected event, or polls the mouse and touch screen.
func (p *Pointer) Update() {
	if p.processInjected() {
		return
	}
	if x, y, pressed, ok := p.pollTouch(); ok {
		p.process(x, y, pressed)
		return
	}
	mx, my := ebiten.CursorPosition()
	p.process(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// pollTouch follows the first touch that went down. ok is false when no
// touch is tracked and none is active, so the mouse is polled instead.
func (p *Pointer) pollTouch() (x, y float64, pressed, ok bool) {
	ids := ebiten.AppendTouchIDs(p.prevTouchIDs[:0])
	p.prevTouchIDs = ids

	if p.touching {
		for _, id := range ids {
			if id == p.touchID {
				tx, ty := ebiten.TouchPosition(id)
				return float64(tx), float64(ty), true, true
			}
		}
		// Tracked touch lifted: release at the last position.
		p.touching = false
		return p.x, p.y, false, true
	}
	if len(ids) == 0 {
		return 0, 0, false, false
	}
	p.touching = true
	p.touchID = ids[0]
	tx, ty := ebiten.TouchPosition(ids[0])
	return float64(tx), float64(ty), true, true
}

// process runs the pointer state machine for one sample.
func (p *Pointer) process(x, y float64, pressed bool) {
	moved := x != p.x || y != p.y
	p.x, p.y = x, y

	switch {
	case pressed && !p.down:
		p.down = true
		if p.OnPress != nil {
			p.OnPress(x, y)
		}
	case !pressed && p.down:
		p.down = false
		if p.OnRelease != nil {
			p.OnRelease(x, y)
		}
	case pressed && p.down && moved:
		if p.OnMove != nil {
			p.OnMove(x, y)
		}
	}
}
