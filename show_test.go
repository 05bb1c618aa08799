package greeting

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
	"time"
)

const frame = 10 * time.Millisecond

func newTestShow(t *testing.T, doc string) (*Show, *recordingSurface) {
	t.Helper()
	cfg, err := ParseConfig([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	surface := &recordingSurface{}
	s := NewShow(cfg, surface, NewRand(1))
	s.Resize(800, 600)
	return s, surface
}

func run(s *Show, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		s.Update(frame)
	}
}

func TestShowDefaultTimeline(t *testing.T) {
	s, surface := newTestShow(t, "")
	if surface.resizes != 1 || surface.w != 800 || surface.h != 600 {
		t.Fatalf("surface = %dx%d after %d resizes, want 800x600 after 1", surface.w, surface.h, surface.resizes)
	}

	s.Begin()
	if s.Text() != "h" {
		t.Fatalf("Text() after Begin = %q, want %q", s.Text(), "h")
	}

	// "hello, good morning" is typed by 1.98s, held, then deleted by 4.54s;
	// the date reveal runs from 4.61s to 8.71s.
	run(s, 2*time.Second)
	if s.Text() != "hello, good morning" {
		t.Errorf("Text() at 2s = %q", s.Text())
	}
	run(s, 3*time.Second)
	if s.Sequence.Phase() != PhaseDateReveal || s.Date.Calls() != 1 {
		t.Fatalf("at 5s: phase %v, date calls %d, want date reveal, 1", s.Sequence.Phase(), s.Date.Calls())
	}
	if s.Text() != "" {
		t.Errorf("Text() during date reveal = %q, want empty", s.Text())
	}
	if s.Date.Layer.Opacity() == 0 {
		t.Error("date panel not visible during the reveal")
	}

	// "Happy birthday!" starts at 8.71s and is complete at 10.25s.
	run(s, 5500*time.Millisecond)
	if s.Text() != "Happy birthday!" {
		t.Fatalf("Text() at 10.5s = %q", s.Text())
	}
	if s.Sequence.Finales() != 1 || s.Spawner.Spawned() != 1 {
		t.Fatalf("finales %d, spawned %d at 10.5s, want 1, 1", s.Sequence.Finales(), s.Spawner.Spawned())
	}
	if s.ButtonShown() {
		t.Error("continue shown before ButtonDelay")
	}
	if !s.Loop.Running() || surface.clears == 0 {
		t.Error("firework loop not drawing")
	}

	run(s, time.Second)
	if !s.ButtonShown() {
		t.Fatal("continue not shown 800ms after the finale")
	}

	run(s, 5*time.Second)
	if s.Spawner.Spawned() != len(SpawnDelays) {
		t.Errorf("spawned %d bursts, want %d", s.Spawner.Spawned(), len(SpawnDelays))
	}
	if s.Date.Calls() != 1 || s.Sequence.Finales() != 1 {
		t.Errorf("date calls %d, finales %d, want 1, 1", s.Date.Calls(), s.Sequence.Finales())
	}
	if s.Text() != "Happy birthday!" {
		t.Errorf("finale text changed to %q", s.Text())
	}
}

func TestShowContinueIgnoredBeforeButton(t *testing.T) {
	s, _ := newTestShow(t, "")
	s.Begin()
	s.Continue()
	if s.Screen() != ScreenStart {
		t.Errorf("Screen() = %v, want start", s.Screen())
	}
}

func TestShowContinueToGift(t *testing.T) {
	s, _ := newTestShow(t, "texts: [\"hi\"]\n")
	s.Begin()
	run(s, 1500*time.Millisecond)
	if !s.ButtonShown() {
		t.Fatal("continue not shown")
	}
	assertNear(t, "button alpha", s.ButtonLayer.Opacity(), 1, 0.05)

	s.Continue()
	s.Continue()
	if s.Screen() != ScreenLeaving {
		t.Fatalf("Screen() = %v, want leaving", s.Screen())
	}
	run(s, GiftDelay)
	if s.Screen() != ScreenGift {
		t.Fatalf("Screen() = %v after GiftDelay, want gift", s.Screen())
	}
	if s.StartScreen.Opacity() != 0 || s.ButtonLayer.Opacity() != 0 {
		t.Errorf("start %v, button %v opacity on the gift page", s.StartScreen.Opacity(), s.ButtonLayer.Opacity())
	}
	if s.GiftLayer.Opacity() != 1 {
		t.Errorf("gift opacity = %v, want 1", s.GiftLayer.Opacity())
	}
	if s.Reveal.Box() != GiftBox(800, 600) {
		t.Errorf("gift box = %+v, want %+v", s.Reveal.Box(), GiftBox(800, 600))
	}
}

func TestShowButtonReleaseContinues(t *testing.T) {
	s, _ := newTestShow(t, "texts: [\"hi\"]\n")
	s.Begin()
	run(s, 1500*time.Millisecond)

	r := s.ButtonRect()
	s.PointerUp(r.X-10, r.Y)
	if s.Screen() != ScreenStart {
		t.Fatal("release outside the button continued")
	}
	s.PointerDown(r.X+r.Width/2, r.Y+r.Height/2)
	s.PointerUp(r.X+r.Width/2, r.Y+r.Height/2)
	if s.Screen() != ScreenLeaving {
		t.Errorf("Screen() = %v, want leaving", s.Screen())
	}
}

func TestShowGiftDragRemovesCover(t *testing.T) {
	s, _ := newTestShow(t, "texts: [\"hi\"]\n")
	s.Begin()
	run(s, 1500*time.Millisecond)
	s.Continue()
	run(s, GiftDelay)

	// A press outside the handle does not start a drag.
	box := s.Reveal.Box()
	s.PointerDown(box.X+box.Width/2, box.Y+box.Height/2)
	if s.Reveal.Dragging() {
		t.Fatal("drag started off the handle")
	}
	s.PointerUp(box.X+box.Width/2, box.Y+box.Height/2)

	h := s.HandleRect()
	s.PointerDown(h.X+1, h.Y+1)
	if !s.Reveal.Dragging() {
		t.Fatal("press on the handle did not start a drag")
	}
	s.PointerMove(box.X+box.Width, box.Y+box.Height)
	if s.Reveal.Radius() > HideThreshold {
		t.Fatalf("radius = %v at the far corner", s.Reveal.Radius())
	}
	s.PointerUp(box.X+box.Width, box.Y+box.Height)
	run(s, HideDuration)
	if !s.Reveal.Hidden() {
		t.Error("cover not removed after the release")
	}
}

func TestShowResizeDebounced(t *testing.T) {
	s, surface := newTestShow(t, "")
	s.Resize(800, 600)
	if surface.resizes != 1 {
		t.Fatalf("same-size Resize reallocated: %d", surface.resizes)
	}

	s.Resize(900, 700)
	s.Resize(1000, 700)
	if surface.resizes != 1 {
		t.Fatal("canvas reallocated before the quiet period")
	}
	if s.Reveal.Box() != GiftBox(1000, 700) {
		t.Errorf("gift box not updated immediately: %+v", s.Reveal.Box())
	}
	if w, h := s.Viewport(); w != 1000 || h != 700 {
		t.Errorf("Viewport() = %dx%d, want 1000x700", w, h)
	}

	run(s, ResizeDelay)
	if surface.resizes != 2 || surface.w != 1000 || surface.h != 700 {
		t.Errorf("surface = %dx%d after %d resizes, want 1000x700 after 2", surface.w, surface.h, surface.resizes)
	}
}

func TestGiftBox(t *testing.T) {
	small := GiftBox(400, 300)
	assertNear(t, "small width", small.Width, 280, 1e-9)
	assertNear(t, "small height", small.Height, 210, 1e-9)
	big := GiftBox(2000, 2000)
	if big.Width != 420 || big.Height != 525 {
		t.Errorf("GiftBox(2000, 2000) = %+v, want 420x525", big)
	}
	if big.X != (2000-420)/2.0 || big.Y != (2000-525)/2.0 {
		t.Errorf("GiftBox not centered: %+v", big)
	}
}

func TestShowDebugStats(t *testing.T) {
	s, _ := newTestShow(t, "texts: [\"hi\"]\n")
	s.Begin()
	run(s, 200*time.Millisecond)
	st := s.debugStats()
	if st.bursts != 1 || st.dots < 280 {
		t.Errorf("stats = %+v, want 1 burst with at least 280 dots", st)
	}
	if st.phase != PhaseDone || st.screen != ScreenStart {
		t.Errorf("phase %v screen %v, want done start", st.phase, st.screen)
	}
}

func TestShowDebugLoggingIsPerShow(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	flags := log.Flags()
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})

	loud, _ := newTestShow(t, "")
	quiet, _ := newTestShow(t, "")
	loud.SetDebug(true)

	loud.Resize(640, 480)
	quiet.Resize(320, 240)
	run(loud, 200*time.Millisecond)
	run(quiet, 200*time.Millisecond)

	out := buf.String()
	if !strings.Contains(out, "[greeting] canvas 640x480") {
		t.Errorf("debug show did not log its resize: %q", out)
	}
	if strings.Contains(out, "320x240") {
		t.Errorf("quiet show logged: %q", out)
	}

	loud.SetDebug(false)
	buf.Reset()
	loud.Resize(100, 100)
	run(loud, 200*time.Millisecond)
	if buf.Len() != 0 {
		t.Errorf("logged after SetDebug(false): %q", buf.String())
	}
}
