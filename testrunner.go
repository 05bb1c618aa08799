package greeting

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// walkStep represents a single action in a walkthrough script.
type walkStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// walkScript is the top-level structure for a walkthrough script.
type walkScript struct {
	Steps []walkStep `yaml:"steps"`
}

var errNoSteps = errors.New("no steps")

var walkActions = map[string]bool{
	"wait": true, "click": true, "drag": true, "press": true, "move": true,
	"release": true, "continue": true, "screenshot": true,
}

// walkTarget is what a walkthrough drives.
type walkTarget interface {
	pointer() *Pointer
	Show() *Show
	Screenshot(label string)
}

// Walkthrough sequences injected pointer events, continue presses and
// screenshots across frames for unattended runs. Attach to an App via
// SetWalkthrough.
type Walkthrough struct {
	steps     []walkStep
	cursor    int
	waitCount int
	done      bool
}

// LoadWalkthrough parses a YAML (or JSON) walkthrough script.
func LoadWalkthrough(data []byte) (*Walkthrough, error) {
	var script walkScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse walkthrough: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse walkthrough: %w", errNoSteps)
	}
	for i, st := range script.Steps {
		if !walkActions[st.Action] {
			return nil, fmt.Errorf("parse walkthrough: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Walkthrough{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *Walkthrough) Done() bool {
	return r.done
}

// step advances the walkthrough by one frame. Called from App.Update before
// pointer input is processed.
func (r *Walkthrough) step(t walkTarget) {
	if r.done {
		return
	}
	p := t.pointer()
	// Wait for pending injections to drain before advancing.
	if p.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		t.Screenshot(st.Label)
	case "click":
		p.InjectClick(st.X, st.Y)
	case "press":
		p.InjectPress(st.X, st.Y)
	case "move":
		p.InjectMove(st.X, st.Y)
	case "release":
		p.InjectRelease(st.X, st.Y)
	case "drag":
		p.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "continue":
		t.Show().Continue()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && p.Pending() == 0 {
		r.done = true
	}
}
