// Package greeting is an animated birthday greeting for [Ebitengine].
//
// The show runs on a start screen and a gift page. The start screen types a
// script of messages one grapheme at a time, pausing for a date reveal panel
// that rolls its fields before settling on a target date. The last message
// stays on screen and fires a sequence of fireworks, after which a continue
// control fades in. The gift page shows a card under a cover; dragging from
// the cover's corner clips it to a shrinking circle, and releasing close
// enough to the far side removes it.
//
// # Quick start
//
//	cfg := greeting.DefaultConfig()
//	app, err := greeting.NewApp(cfg, greeting.AppOptions{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer app.Close()
//	log.Fatal(greeting.Run(app, greeting.RunConfig{
//		Title: cfg.Window.Title, Width: cfg.Window.Width, Height: cfg.Window.Height,
//	}))
//
// # Time
//
// Nothing reads the wall clock. [Timers] is a virtual clock advanced by a
// fixed step every tick, and every delay in the show (typing, holds, date
// reveal, spawn offsets, resize debounce, fades) is scheduled on it. [Show]
// can therefore be driven headless from tests with [Show.Update].
//
// # Fireworks
//
// A [Burst] is a ring of dots flung from a point. [Loop] advances and paints
// every live burst once per frame onto a [Surface] and goes idle when the
// last one expires. [Spawner] places bursts across the middle of the surface
// on the [SpawnDelays] schedule.
//
// # Configuration
//
// The greeting document is YAML. [DefaultConfig] returns the embedded
// default; [LoadConfig] overlays a user file on it. The script is either a
// "texts" list, where null marks the date reveal and the last text is the
// finale, or an explicit "script" list of {kind, text} entries.
//
// # Walkthroughs
//
// [LoadWalkthrough] parses a YAML script of pointer actions, continue
// presses and screenshots that [App] replays frame by frame, for unattended
// captures of the whole show.
//
// [Ebitengine]: https://ebitengine.org
package greeting
