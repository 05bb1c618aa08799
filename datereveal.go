package greeting

import (
	"strconv"
	"time"

	"github.com/tanema/gween/ease"
)

// Date reveal timeline, measured from Start.
const (
	DateFadeDuration = 500 * time.Millisecond
	DateSettleDelay  = 700 * time.Millisecond
	DateHoldDuration = 3600 * time.Millisecond

	dateSlideOffset = 10.0
	dateRollPeriod  = 60 * time.Millisecond
)

// TargetDate is the date the reveal settles on. Weekday indexes the weekday
// name table (0 = first entry).
type TargetDate struct {
	Year    int `yaml:"year"`
	Month   int `yaml:"month"`
	Day     int `yaml:"day"`
	Weekday int `yaml:"weekday"`
}

// DateFields are the strings shown by the date reveal panel.
type DateFields struct {
	Year    string
	Month   string
	Day     string
	Weekday string
}

// DateReveal fades a date panel in, rolls its fields for a moment, settles
// them on the target date, holds, then fades out and hands control back.
type DateReveal struct {
	Layer *Layer

	target   TargetDate
	weekdays []string
	timers   *Timers
	tweens   *Tweens

	rolling bool
	settled bool
	elapsed time.Duration
	calls   int
	fields  DateFields
}

// NewDateReveal builds a hidden date panel. weekdays must have 7 entries.
func NewDateReveal(target TargetDate, weekdays []string, timers *Timers, tweens *Tweens) *DateReveal {
	return &DateReveal{
		Layer:    NewHiddenLayer("date"),
		target:   target,
		weekdays: weekdays,
		timers:   timers,
		tweens:   tweens,
		fields:   DateFields{Year: strconv.Itoa(target.Year)},
	}
}

// Calls returns how many times Start has run.
func (r *DateReveal) Calls() int {
	return r.calls
}

// Rolling reports whether the fields are still cycling.
func (r *DateReveal) Rolling() bool {
	return r.rolling
}

// Settled reports whether the fields show the target date.
func (r *DateReveal) Settled() bool {
	return r.settled
}

// Fields returns what the panel currently shows.
func (r *DateReveal) Fields() DateFields {
	if !r.rolling {
		return r.fields
	}
	n := int(r.elapsed / dateRollPeriod)
	f := r.fields
	f.Month = strconv.Itoa(1 + n%12)
	f.Day = strconv.Itoa(1 + (n*7)%31)
	if len(r.weekdays) > 0 {
		f.Weekday = r.weekdays[n%len(r.weekdays)]
	}
	return f
}

// Start runs the reveal and calls done after the panel has faded out.
func (r *DateReveal) Start(done func()) {
	r.calls++
	r.elapsed = 0
	r.rolling = true
	r.settled = false
	r.fields = DateFields{Year: strconv.Itoa(r.target.Year)}

	r.Layer.Show(0, dateSlideOffset)
	r.tweens.Add(TweenFade(r.Layer, 1, 0, DateFadeDuration, ease.OutQuad))

	r.timers.After(DateSettleDelay, r.settle)
	r.timers.After(DateHoldDuration, func() {
		r.tweens.Add(TweenAlpha(r.Layer, 0, DateFadeDuration, ease.OutQuad))
		r.timers.After(DateFadeDuration, func() {
			r.Layer.Hide()
			if done != nil {
				done()
			}
		})
	})
}

func (r *DateReveal) settle() {
	r.rolling = false
	r.settled = true
	r.fields.Month = strconv.Itoa(r.target.Month)
	r.fields.Day = strconv.Itoa(r.target.Day)
	r.fields.Weekday = weekdayName(r.weekdays, r.target.Weekday)
}

// Update advances the rolling animation.
func (r *DateReveal) Update(dt time.Duration) {
	if r.rolling {
		r.elapsed += dt
	}
}

func weekdayName(weekdays []string, i int) string {
	if i < 0 || i >= len(weekdays) {
		return ""
	}
	return weekdays[i]
}
