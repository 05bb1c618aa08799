package greeting

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsWidget prints FPS, TPS and show state in the corner. The text is
// refreshed every ~0.5 seconds.
type fpsWidget struct {
	since time.Duration
	line  string
}

func (w *fpsWidget) update(dt time.Duration, st debugStats) {
	w.since += dt
	if w.line != "" && w.since < 500*time.Millisecond {
		return
	}
	w.since = 0
	w.line = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nbursts: %d (%d dots)\nphase: %s\nscreen: %s\ntimers: %d\nradius: %.1f%%",
		ebiten.ActualFPS(), ebiten.ActualTPS(), st.bursts, st.dots, st.phase, st.screen, st.pending, st.radius)
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, w.line)
}
