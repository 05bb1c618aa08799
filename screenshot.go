package greeting

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// screenshotter collects labels during a frame and writes one PNG per label
// once the frame has been drawn.
type screenshotter struct {
	dir   string
	queue []string
	taken int
	debug debugLog
}

// Screenshot queues a labeled capture of the next drawn frame. Files go to
// ScreenshotDir as <stamp>_<n>_<label>.png. Safe to call from Update or Draw.
func (a *App) Screenshot(label string) {
	a.shots.queue = append(a.shots.queue, label)
}

// flush writes every queued capture of screen. Errors are collected so one
// bad path does not drop the rest.
func (s *screenshotter) flush(screen *ebiten.Image) error {
	if len(s.queue) == 0 {
		return nil
	}
	defer func() { s.queue = s.queue[:0] }()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("screenshot dir: %w", err)
	}

	img := readStraightAlpha(screen)
	stamp := time.Now().Format("20060102_150405")
	var errs []error
	for _, label := range s.queue {
		s.taken++
		name := fmt.Sprintf("%s_%03d_%s.png", stamp, s.taken, sanitizeLabel(label))
		path := filepath.Join(s.dir, name)
		if err := writePNG(path, img); err != nil {
			errs = append(errs, err)
			continue
		}
		s.debug.printf("screenshot %s", path)
	}
	return errors.Join(errs...)
}

// readStraightAlpha copies the frame and converts premultiplied RGBA to
// straight-alpha NRGBA for PNG encoding.
func readStraightAlpha(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	for i := 0; i < len(img.Pix); i += 4 {
		a := int(img.Pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for j := 0; j < 3; j++ {
			img.Pix[i+j] = uint8(min(int(img.Pix[i+j])*255/a, 255))
		}
	}
	return img
}

func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, label)
}
