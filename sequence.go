package greeting

import (
	"strings"
	"time"

	"github.com/rivo/uniseg"
)

// Step delays for the typewriter.
const (
	TypeDelay   = 110 * time.Millisecond
	DeleteDelay = 70 * time.Millisecond
	HoldDelay   = 1300 * time.Millisecond
)

// EntryKind tags what a script entry does.
type EntryKind uint8

const (
	EntryType       EntryKind = iota // typed, held, then deleted
	EntryDateReveal                  // runs the date reveal in place of typing
	EntryFinale                      // typed, then fires the finale; terminal
)

func (k EntryKind) String() string {
	switch k {
	case EntryType:
		return "type"
	case EntryDateReveal:
		return "date"
	case EntryFinale:
		return "finale"
	default:
		return "unknown"
	}
}

// Entry is one step of the greeting script.
type Entry struct {
	Kind EntryKind
	Text string
}

// ScriptFromTexts converts the positional form, where nil marks a date
// reveal, into tagged entries. The final entry becomes the finale when it is
// a text; a trailing date marker leaves the script without one.
func ScriptFromTexts(texts []*string) []Entry {
	script := make([]Entry, len(texts))
	for i, t := range texts {
		if t == nil {
			script[i] = Entry{Kind: EntryDateReveal}
			continue
		}
		script[i] = Entry{Kind: EntryType, Text: *t}
	}
	if n := len(texts); n > 0 && texts[n-1] != nil {
		script[n-1].Kind = EntryFinale
	}
	return script
}

// Phase is the externally visible state of a Sequence.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseTyping
	PhaseHolding
	PhaseDeleting
	PhaseDateReveal
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTyping:
		return "typing"
	case PhaseHolding:
		return "holding"
	case PhaseDeleting:
		return "deleting"
	case PhaseDateReveal:
		return "date-reveal"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// SequenceState is the typewriter cursor.
type SequenceState struct {
	TextIndex int
	CharIndex int // in grapheme clusters
	Deleting  bool
}

// Sequence drives the typewriter script on a virtual clock. Every transition
// happens inside step, which reschedules itself with a delay that depends on
// the state it started in.
type Sequence struct {
	script []Entry
	timers *Timers
	state  SequenceState
	phase  Phase
	text   string

	// clusters caches the grapheme clusters of the entry being typed.
	clusters      []string
	clustersIndex int

	resumeToken int
	finales     int

	// OnText receives the displayed text after every change.
	OnText func(text string)
	// OnDateReveal runs the date reveal. It must call resume exactly once
	// when finished; extra calls are ignored.
	OnDateReveal func(resume func())
	// OnFinale fires once when the finale entry is fully typed.
	OnFinale func()
}

// NewSequence returns a sequence over script, idle until Start.
func NewSequence(script []Entry, timers *Timers) *Sequence {
	return &Sequence{
		script:        script,
		timers:        timers,
		clustersIndex: -1,
	}
}

// Start runs the first step immediately.
func (s *Sequence) Start() {
	if s.phase != PhaseIdle {
		return
	}
	s.phase = PhaseTyping
	s.step()
}

// State returns the typewriter cursor.
func (s *Sequence) State() SequenceState {
	return s.state
}

// Phase returns the current phase.
func (s *Sequence) Phase() Phase {
	return s.phase
}

// Text returns the currently displayed text.
func (s *Sequence) Text() string {
	return s.text
}

// Finales returns how many times the finale fired (0 or 1).
func (s *Sequence) Finales() int {
	return s.finales
}

func (s *Sequence) show(text string) {
	s.text = text
	if s.OnText != nil {
		s.OnText(text)
	}
}

func (s *Sequence) entryClusters() []string {
	if s.clustersIndex != s.state.TextIndex {
		s.clusters = graphemes(s.script[s.state.TextIndex].Text)
		s.clustersIndex = s.state.TextIndex
	}
	return s.clusters
}

func (s *Sequence) step() {
	if s.phase == PhaseDone || s.phase == PhaseDateReveal {
		return
	}
	if s.state.TextIndex >= len(s.script) {
		s.phase = PhaseDone
		return
	}

	entry := s.script[s.state.TextIndex]
	if entry.Kind == EntryDateReveal {
		s.show("")
		s.phase = PhaseDateReveal
		s.state = SequenceState{TextIndex: s.state.TextIndex + 1}
		s.resumeToken++
		token := s.resumeToken
		resume := func() { s.resume(token) }
		if s.OnDateReveal != nil {
			s.OnDateReveal(resume)
		} else {
			resume()
		}
		return
	}

	delay := TypeDelay
	if s.state.Deleting {
		delay = DeleteDelay
	}

	clusters := s.entryClusters()
	if s.state.Deleting {
		if s.state.CharIndex > 0 {
			s.state.CharIndex--
		}
	} else if s.state.CharIndex < len(clusters) {
		s.state.CharIndex++
	}
	s.show(strings.Join(clusters[:s.state.CharIndex], ""))

	switch {
	case !s.state.Deleting && s.state.CharIndex == len(clusters):
		if entry.Kind == EntryFinale {
			s.phase = PhaseDone
			s.finales++
			if s.OnFinale != nil {
				s.OnFinale()
			}
			return
		}
		s.phase = PhaseHolding
		s.timers.After(HoldDelay, func() {
			s.state.Deleting = true
			s.phase = PhaseDeleting
			s.step()
		})
		return
	case s.state.Deleting && s.state.CharIndex == 0:
		s.state.Deleting = false
		s.state.TextIndex++
		s.phase = PhaseTyping
	}
	s.timers.After(delay, s.step)
}

// resume continues typing after a date reveal. Stale or repeated calls are
// ignored.
func (s *Sequence) resume(token int) {
	if s.phase != PhaseDateReveal || token != s.resumeToken {
		return
	}
	s.phase = PhaseTyping
	s.show("")
	s.step()
}

// graphemes splits s into user-perceived characters.
func graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
