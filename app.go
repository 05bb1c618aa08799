package greeting

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// AppOptions are the runtime switches that are not part of the greeting
// document.
type AppOptions struct {
	// Seed fixes the random source. Zero picks one from the clock.
	Seed uint64
	// Debug enables "[greeting]" log lines and the stats overlay.
	Debug bool
	// ScreenshotDir is where Screenshot writes PNGs. Defaults to "screenshots".
	ScreenshotDir string
	// ConfigPath is the document to reload when Watch is set.
	ConfigPath string
	// Watch reloads ConfigPath on change and restarts the show.
	Watch bool
	// Walkthrough drives the show unattended. ExitWhenDone terminates the
	// game once it finishes and all screenshots are written.
	Walkthrough  *Walkthrough
	ExitWhenDone bool
}

// App is the ebiten.Game that renders a Show: the start screen with its
// typewriter, date panel and fireworks, then the gift card.
type App struct {
	// ScreenshotDir is the output directory for Screenshot.
	ScreenshotDir string

	cfg  *Config
	opts AppOptions
	sh   *Show
	step time.Duration

	canvas *Canvas
	ptr    Pointer
	ui     *continueUI

	title *TTFFont
	large *TTFFont
	small *TTFFont

	page *ebiten.Image
	mask circleMask

	shots   screenshotter
	fps     fpsWidget
	debug   bool
	walk    *Walkthrough
	watcher *Watcher
}

// NewApp builds the app for cfg and starts the show.
func NewApp(cfg *Config, opts AppOptions) (*App, error) {
	a := &App{
		ScreenshotDir: opts.ScreenshotDir,
		opts:          opts,
		canvas:        NewCanvas(0, 0),
		walk:          opts.Walkthrough,
	}
	if a.ScreenshotDir == "" {
		a.ScreenshotDir = "screenshots"
	}
	a.SetDebugMode(opts.Debug)
	a.ptr.OnPress = func(x, y float64) { a.sh.PointerDown(x, y) }
	a.ptr.OnMove = func(x, y float64) { a.sh.PointerMove(x, y) }
	a.ptr.OnRelease = func(x, y float64) { a.sh.PointerUp(x, y) }

	if err := a.build(cfg); err != nil {
		return nil, err
	}
	if opts.Watch && opts.ConfigPath != "" {
		w, err := NewWatcher(filepath.Dir(opts.ConfigPath))
		if err != nil {
			return nil, fmt.Errorf("watch config: %w", err)
		}
		a.watcher = w
	}
	return a, nil
}

// build (re)creates everything derived from cfg and starts a fresh show.
func (a *App) build(cfg *Config) error {
	title, err := LoadFont(cfg.Font)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.title = title
	a.large = title.Sized(cfg.Font.Size * 1.3)
	a.small = title.Sized(cfg.Font.Size * 0.45)
	a.step = time.Second / time.Duration(max(cfg.TPS, 1))

	if a.ui != nil {
		a.ui.dispose()
	}
	w, h := 0, 0
	if a.sh != nil {
		w, h = a.sh.Viewport()
	}
	a.canvas.Clear()
	a.sh = NewShow(cfg, a.canvas, NewRand(a.opts.Seed))
	a.sh.SetDebug(a.debug)
	a.ui = newContinueUI(cfg.ButtonLabel, title, a.sh.Continue)
	if w > 0 && h > 0 {
		a.sh.Resize(w, h)
	}
	a.sh.Begin()
	return nil
}

// SetDebugMode toggles debug logging and the stats overlay.
func (a *App) SetDebugMode(on bool) {
	a.debug = on
	a.shots.debug = debugLog(on)
	if a.sh != nil {
		a.sh.SetDebug(on)
	}
}

// SetWalkthrough attaches a walkthrough that runs from the next frame.
func (a *App) SetWalkthrough(w *Walkthrough) {
	a.walk = w
}

// Show returns the running show.
func (a *App) Show() *Show {
	return a.sh
}

func (a *App) pointer() *Pointer { return &a.ptr }

// Close stops the config watcher and releases offscreen images.
func (a *App) Close() error {
	a.canvas.Dispose()
	a.mask.dispose()
	a.ui.dispose()
	if a.page != nil {
		a.page.Deallocate()
		a.page = nil
	}
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	a.pollWatcher()
	if a.walk != nil {
		a.walk.step(a)
	}
	a.ptr.Update()
	if a.sh.ButtonShown() && a.sh.Screen() == ScreenStart {
		a.ui.update()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		a.Screenshot("manual")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.SetDebugMode(!a.debug)
	}

	a.sh.Update(a.step)
	if a.debug {
		a.fps.update(a.step, a.sh.debugStats())
	}

	if a.opts.ExitWhenDone && a.walk != nil && a.walk.Done() && len(a.shots.queue) == 0 {
		return ebiten.Termination
	}
	return nil
}

func (a *App) pollWatcher() {
	if a.watcher == nil {
		return
	}
	select {
	case err, ok := <-a.watcher.Errors:
		if ok {
			log.Printf("[greeting] watch: %v", err)
		}
	default:
	}
	name, ok := a.watcher.Poll()
	if !ok || filepath.Clean(name) != filepath.Clean(a.opts.ConfigPath) {
		return
	}
	cfg, err := LoadConfig(a.opts.ConfigPath)
	if err != nil {
		log.Printf("[greeting] reload %s: %v", name, err)
		return
	}
	if err := a.build(cfg); err != nil {
		log.Printf("[greeting] reload %s: %v", name, err)
		return
	}
	debugLog(a.debug).printf("reloaded %s", name)
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.cfg.BackgroundColor().toRGBA())
	s := a.sh

	start := s.StartScreen.Opacity()
	if start > 0 {
		a.drawStart(screen, start)
	}
	a.canvas.DrawTo(screen, s.CanvasLayer.Opacity())
	if s.ButtonShown() && s.Screen() != ScreenGift {
		a.ui.draw(screen, s.ButtonLayer.Opacity()*start)
	}
	if gift := s.GiftLayer.Opacity(); gift > 0 {
		a.drawGift(screen, gift)
	}

	if a.debug {
		a.fps.draw(screen)
	}

	a.shots.dir = a.ScreenshotDir
	if err := a.shots.flush(screen); err != nil {
		log.Printf("[greeting] %v", err)
	}
}

func (a *App) drawStart(screen *ebiten.Image, alpha float64) {
	s := a.sh
	w, h := s.Viewport()
	cx := float64(w) / 2
	mid := float64(h) * 0.42

	a.title.DrawCentered(screen, s.Text(), cx, mid-a.title.LineHeight()/2, ColorWhite.WithAlpha(alpha))

	date := s.Date.Layer
	if da := date.Opacity() * alpha; da > 0 {
		f := s.Date.Fields()
		top := mid - a.large.LineHeight() + date.OffsetY
		a.large.DrawCentered(screen, f.Year+" / "+f.Month+" / "+f.Day, cx, top, ColorWhite.WithAlpha(da))
		a.small.DrawCentered(screen, f.Weekday, cx, top+a.large.LineHeight()+8, ColorWhite.WithAlpha(da*0.8))
	}
}

func (a *App) drawGift(screen *ebiten.Image, alpha float64) {
	s := a.sh
	box := s.Reveal.Box()
	if box.Empty() {
		return
	}
	cover, card := a.cfg.CoverColors()
	x, y := float32(box.X), float32(box.Y)
	bw, bh := float32(box.Width), float32(box.Height)

	vector.DrawFilledRect(screen, x, y, bw, bh, card.WithAlpha(alpha).toRGBA(), true)
	ink := Color{R: 0.2, G: 0.12, B: 0.16, A: alpha}
	a.small.DrawCentered(screen, a.cfg.Message, box.X+box.Width/2, box.Y+box.Height/2-a.small.LineHeight()/2, ink)

	if pa := s.Reveal.Page.Opacity() * alpha; pa > 0 {
		a.page = ensureImage(a.page, int(box.Width), int(box.Height))
		a.page.Clear()
		a.page.Fill(cover.toRGBA())
		a.small.DrawCentered(a.page, a.cfg.Hint, box.Width/2, box.Height-a.small.LineHeight()*2, ColorWhite)
		if s.Reveal.Masked() {
			c := s.Reveal.Center()
			a.mask.apply(a.page, c.X, c.Y, s.Reveal.MaskRadius())
		}
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(box.X, box.Y)
		op.ColorScale.ScaleAlpha(float32(pa))
		screen.DrawImage(a.page, &op)
	}

	if ha := s.Reveal.Handle.Opacity() * alpha; ha > 0 {
		hr := s.HandleRect()
		fold := Color{R: 1, G: 1, B: 1, A: 0.55 * ha}
		vector.DrawFilledRect(screen, float32(hr.X), float32(hr.Y), float32(hr.Width), float32(hr.Height), fold.toRGBA(), true)
	}
}

// Layout implements ebiten.Game. The show follows the outside size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sh.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	TPS           int
}

// Run opens a resizable window and runs app until it is closed.
func Run(app *App, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(app)
}
