package greeting

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfigYAML []byte

var (
	ErrEmptyScript = errors.New("script has no entries")
	ErrPalette     = errors.New("invalid palette")
	ErrWeekday     = errors.New("invalid weekday table")
	ErrWindow      = errors.New("invalid window size")
	ErrEntryKind   = errors.New("unknown script entry kind")
	ErrEmptyConfig = errors.New("config file is empty")
)

// Config is the greeting document. Fields left out of a user document keep
// the embedded defaults.
type Config struct {
	Window     WindowConfig  `yaml:"window"`
	TPS        int           `yaml:"tps"`
	Font       FontConfig    `yaml:"font"`
	Background string        `yaml:"background"`
	Texts      []*string     `yaml:"texts"`
	Script     []EntryConfig `yaml:"script"`
	TargetDate TargetDate    `yaml:"target_date"`
	Weekdays   []string      `yaml:"weekdays"`
	Palettes   [][]string    `yaml:"palettes"`

	ButtonLabel string `yaml:"button_label"`
	Hint        string `yaml:"hint"`
	Message     string `yaml:"message"`
	CoverColor  string `yaml:"cover_color"`
	CardColor   string `yaml:"card_color"`

	entries    []Entry
	palettes   [][]Color
	background Color
	cover      Color
	card       Color
}

// WindowConfig is the initial window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// FontConfig selects the text face. An empty Path uses Go Regular.
type FontConfig struct {
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
}

// EntryConfig is the explicit form of a script entry.
type EntryConfig struct {
	Kind string `yaml:"kind"`
	Text string `yaml:"text"`
}

// DefaultConfig returns the embedded configuration.
func DefaultConfig() *Config {
	cfg, err := ParseConfig(nil)
	if err != nil {
		panic("greeting: embedded config: " + err.Error())
	}
	return cfg
}

// LoadConfig reads the document at path over the embedded defaults. An empty
// path returns the defaults; an empty file is ErrEmptyConfig.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return ParseConfig(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	// A file caught between truncate and write reads as empty.
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("config %s: %w", path, ErrEmptyConfig)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes data over the embedded defaults, fills zero values and
// validates the result.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		return nil, fmt.Errorf("parse default config: %w", err)
	}
	if len(data) > 0 {
		// A user script replaces the positional texts and vice versa.
		var probe struct {
			Texts  yaml.Node `yaml:"texts"`
			Script yaml.Node `yaml:"script"`
		}
		if err := yaml.Unmarshal(data, &probe); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		if probe.Script.Kind != 0 {
			cfg.Texts = nil
		}
		if probe.Texts.Kind != 0 {
			cfg.Script = nil
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.fillDefaults()
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) fillDefaults() {
	if c.TPS == 0 {
		c.TPS = 60
	}
	if c.Font.Size == 0 {
		c.Font.Size = 44
	}
	if c.Window.Title == "" {
		c.Window.Title = "Happy Birthday"
	}
}

func (c *Config) resolve() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrWindow, c.Window.Width, c.Window.Height)
	}

	entries, err := c.buildScript()
	if err != nil {
		return err
	}
	c.entries = entries

	if len(c.Weekdays) != 7 {
		return fmt.Errorf("%w: want 7 names, got %d", ErrWeekday, len(c.Weekdays))
	}
	if c.TargetDate.Weekday < 0 || c.TargetDate.Weekday >= len(c.Weekdays) {
		return fmt.Errorf("%w: weekday index %d", ErrWeekday, c.TargetDate.Weekday)
	}

	if len(c.Palettes) == 0 {
		return fmt.Errorf("%w: no palettes", ErrPalette)
	}
	c.palettes = make([][]Color, len(c.Palettes))
	for i, p := range c.Palettes {
		if len(p) == 0 {
			return fmt.Errorf("%w: palette %d is empty", ErrPalette, i)
		}
		colors := make([]Color, len(p))
		for j, s := range p {
			col, err := ParseColor(s)
			if err != nil {
				return fmt.Errorf("%w: palette %d: %w", ErrPalette, i, err)
			}
			colors[j] = col
		}
		c.palettes[i] = colors
	}

	for _, f := range []struct {
		src string
		dst *Color
	}{
		{c.Background, &c.background},
		{c.CoverColor, &c.cover},
		{c.CardColor, &c.card},
	} {
		col, err := ParseColor(f.src)
		if err != nil {
			return err
		}
		*f.dst = col
	}
	return nil
}

func (c *Config) buildScript() ([]Entry, error) {
	if len(c.Script) > 0 {
		entries := make([]Entry, len(c.Script))
		for i, e := range c.Script {
			kind, err := parseEntryKind(e.Kind)
			if err != nil {
				return nil, fmt.Errorf("script entry %d: %w", i, err)
			}
			entries[i] = Entry{Kind: kind, Text: e.Text}
		}
		return entries, nil
	}
	if len(c.Texts) == 0 {
		return nil, ErrEmptyScript
	}
	return ScriptFromTexts(c.Texts), nil
}

func parseEntryKind(s string) (EntryKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "type", "text":
		return EntryType, nil
	case "date", "date_reveal":
		return EntryDateReveal, nil
	case "finale":
		return EntryFinale, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrEntryKind, s)
	}
}

// Entries returns the resolved script.
func (c *Config) Entries() []Entry {
	return c.entries
}

// ColorPalettes returns the resolved firework palettes.
func (c *Config) ColorPalettes() [][]Color {
	return c.palettes
}

// BackgroundColor returns the resolved page background.
func (c *Config) BackgroundColor() Color {
	return c.background
}

// CoverColors returns the resolved gift cover and card colors.
func (c *Config) CoverColors() (cover, card Color) {
	return c.cover, c.card
}
