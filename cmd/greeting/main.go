// Greeting plays the birthday show: a typewriter greeting with a date reveal,
// fireworks, and a gift card revealed by dragging its corner.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/phanxgames/greeting"
)

func main() {
	// GREETING_* variables set the defaults; flags override them.
	env, err := greeting.ParseEnv()
	if err != nil {
		log.Fatal(err)
	}

	configPath := flag.String("config", env.Config, "greeting YAML document (embedded default when empty)")
	debug := flag.Bool("debug", env.Debug, "enable debug logging and the stats overlay")
	seed := flag.Uint64("seed", env.Seed, "random seed for fireworks (0 = from clock)")
	watch := flag.Bool("watch", false, "reload -config when it changes")
	walkPath := flag.String("walkthrough", "", "run a walkthrough script and exit when it finishes")
	shotDir := flag.String("screenshots", env.ScreenshotDir, "directory for screenshots")
	flag.Parse()

	cfg := greeting.DefaultConfig()
	if *configPath != "" {
		c, err := greeting.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = c
	}

	opts := greeting.AppOptions{
		Seed:          *seed,
		Debug:         *debug,
		ScreenshotDir: *shotDir,
		ConfigPath:    *configPath,
		Watch:         *watch,
	}
	if *walkPath != "" {
		data, err := os.ReadFile(*walkPath)
		if err != nil {
			log.Fatal(err)
		}
		w, err := greeting.LoadWalkthrough(data)
		if err != nil {
			log.Fatal(err)
		}
		opts.Walkthrough = w
		opts.ExitWhenDone = true
	}

	app, err := greeting.NewApp(cfg, opts)
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	if err := greeting.Run(app, greeting.RunConfig{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		TPS:    cfg.TPS,
	}); err != nil {
		log.Fatal(err)
	}
}
