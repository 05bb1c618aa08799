package greeting

import (
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

// Timings for the finale and the hand-off to the gift card.
const (
	ButtonDelay        = 800 * time.Millisecond
	ButtonFadeDuration = 400 * time.Millisecond
	StartFadeDuration  = 600 * time.Millisecond
	GiftDelay          = 500 * time.Millisecond
)

// Layout of the continue control and the gift card handle, in pixels.
const (
	ButtonWidth        = 240
	ButtonHeight       = 52
	ButtonMarginBottom = 96
	HandleSize         = 64
)

// Screen is the page the show is on.
type Screen uint8

const (
	ScreenStart   Screen = iota // typewriter, date reveal and fireworks
	ScreenLeaving               // start screen fading out
	ScreenGift                  // drag-to-reveal card
)

func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenLeaving:
		return "leaving"
	case ScreenGift:
		return "gift"
	default:
		return "unknown"
	}
}

// resizable is implemented by surfaces that can be reallocated.
type resizable interface {
	Resize(w, h int)
}

// Show owns every piece of greeting state and advances it on one virtual
// clock. It draws nothing itself; App renders from its fields.
type Show struct {
	cfg *Config

	Timers   *Timers
	Tweens   *Tweens
	Loop     *Loop
	Spawner  *Spawner
	Sequence *Sequence
	Date     *DateReveal
	Reveal   *DragReveal

	StartScreen *Layer
	CanvasLayer *Layer
	ButtonLayer *Layer
	GiftLayer   *Layer

	surface Surface
	resizer *Debouncer
	screen  Screen

	viewW, viewH       int
	pendingW, pendingH int
	sized              bool

	text        string
	buttonShown bool
	continued   bool

	debug debugLog
}

// NewShow wires the greeting together over surface. rng drives every random
// choice so a fixed seed reproduces the show.
func NewShow(cfg *Config, surface Surface, rng Rand) *Show {
	s := &Show{
		cfg:         cfg,
		Timers:      NewTimers(),
		Tweens:      &Tweens{},
		Loop:        NewLoop(),
		StartScreen: NewLayer("start"),
		CanvasLayer: NewLayer("canvas"),
		ButtonLayer: NewHiddenLayer("continue"),
		GiftLayer:   NewHiddenLayer("gift"),
		surface:     surface,
	}
	s.Spawner = NewSpawner(s.Loop, s.Timers, surface, rng, cfg.ColorPalettes())
	s.Date = NewDateReveal(cfg.TargetDate, cfg.Weekdays, s.Timers, s.Tweens)
	s.Reveal = NewDragReveal(Rect{}, s.Timers, s.Tweens)
	s.Reveal.OnHide = func() { s.debug.printf("gift cover removed") }
	s.resizer = NewDebouncer(s.Timers, ResizeDelay, s.commitResize)

	s.Sequence = NewSequence(cfg.Entries(), s.Timers)
	s.Sequence.OnText = func(t string) { s.text = t }
	s.Sequence.OnDateReveal = func(resume func()) {
		s.debug.printf("date reveal %d", s.Date.Calls()+1)
		s.Date.Start(resume)
	}
	s.Sequence.OnFinale = s.finale
	return s
}

// SetDebug toggles verbose logging for this show.
func (s *Show) SetDebug(on bool) {
	s.debug = debugLog(on)
}

// Begin starts the typewriter.
func (s *Show) Begin() {
	s.Sequence.Start()
}

// Text returns the typewriter text.
func (s *Show) Text() string {
	return s.text
}

// Screen returns the current page.
func (s *Show) Screen() Screen {
	return s.screen
}

// ButtonShown reports whether the continue control has been revealed.
func (s *Show) ButtonShown() bool {
	return s.buttonShown
}

// Config returns the configuration the show was built from.
func (s *Show) Config() *Config {
	return s.cfg
}

// Update advances the show by dt: timers first, then tweens, the date roll
// and finally one firework frame.
func (s *Show) Update(dt time.Duration) {
	s.Timers.Advance(dt)
	s.Tweens.Update(dt)
	s.Date.Update(dt)
	s.Loop.Frame(s.surface)
}

// Resize records a new viewport. The gift box follows immediately; the
// canvas is reallocated once resizing has been quiet for ResizeDelay. The
// first call sizes the canvas at once.
func (s *Show) Resize(w, h int) {
	if s.sized && w == s.viewW && h == s.viewH {
		return
	}
	s.viewW, s.viewH = w, h
	s.Reveal.SetBox(GiftBox(w, h))
	s.pendingW, s.pendingH = w, h
	if !s.sized {
		s.sized = true
		s.commitResize()
		return
	}
	s.resizer.Trigger()
}

func (s *Show) commitResize() {
	if r, ok := s.surface.(resizable); ok {
		r.Resize(s.pendingW, s.pendingH)
	}
	s.debug.printf("canvas %dx%d", s.pendingW, s.pendingH)
}

// Viewport returns the last size passed to Resize.
func (s *Show) Viewport() (int, int) {
	return s.viewW, s.viewH
}

func (s *Show) finale() {
	s.debug.printf("finale: spawning fireworks")
	s.Spawner.SpawnSequence()
	s.Timers.After(ButtonDelay, func() {
		s.buttonShown = true
		s.ButtonLayer.Show(0, 0)
		s.Tweens.Add(TweenAlpha(s.ButtonLayer, 1, ButtonFadeDuration, ease.OutQuad))
	})
}

// Continue leaves the start screen for the gift card. It does nothing until
// the continue control is shown, and only runs once.
func (s *Show) Continue() {
	if !s.buttonShown || s.continued {
		return
	}
	s.continued = true
	s.screen = ScreenLeaving
	s.debug.printf("continue")
	s.Tweens.Add(TweenAlpha(s.StartScreen, 0, StartFadeDuration, ease.Linear))
	s.Tweens.Add(TweenAlpha(s.CanvasLayer, 0, StartFadeDuration, ease.Linear))
	s.Timers.After(GiftDelay, func() {
		s.StartScreen.Hide()
		s.ButtonLayer.Hide()
		s.screen = ScreenGift
		s.GiftLayer.Show(1, 0)
		s.Reveal.SetBox(GiftBox(s.viewW, s.viewH))
	})
}

// ButtonRect is where the continue control sits for the current viewport.
func (s *Show) ButtonRect() Rect {
	return Rect{
		X:      (float64(s.viewW) - ButtonWidth) / 2,
		Y:      float64(s.viewH) - ButtonMarginBottom - ButtonHeight,
		Width:  ButtonWidth,
		Height: ButtonHeight,
	}
}

// HandleRect is the fold corner the drag starts on.
func (s *Show) HandleRect() Rect {
	box := s.Reveal.Box()
	return Rect{X: box.X, Y: box.Y, Width: HandleSize, Height: HandleSize}
}

// PointerDown routes a press: on the gift page a press on the handle starts
// the reveal.
func (s *Show) PointerDown(x, y float64) {
	if s.screen == ScreenGift && !s.Reveal.Hidden() && s.HandleRect().Contains(x, y) {
		s.Reveal.Begin()
	}
}

// PointerMove routes a drag sample.
func (s *Show) PointerMove(x, y float64) {
	s.Reveal.Move(x, y)
}

// PointerUp routes a release: it ends a reveal drag, or activates the
// continue control when released over it.
func (s *Show) PointerUp(x, y float64) {
	if s.Reveal.Dragging() {
		s.Reveal.End()
		return
	}
	if s.screen == ScreenStart && s.buttonShown && s.ButtonRect().Contains(x, y) {
		s.Continue()
	}
}

// GiftBox centers the gift card in a w×h viewport.
func GiftBox(w, h int) Rect {
	fw, fh := float64(w), float64(h)
	bw := math.Min(fw*0.7, 420)
	bh := math.Min(fh*0.7, bw*1.25)
	return Rect{X: (fw - bw) / 2, Y: (fh - bh) / 2, Width: bw, Height: bh}
}
