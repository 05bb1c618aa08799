package greeting

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Layer simultaneously.
// Create one via the convenience constructors (TweenAlpha, TweenOffset,
// TweenFade) and call Update(dt) each frame.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Layer
	Done   bool

	// OnDone runs once, on the Update that finishes the group.
	OnDone func()
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.Done && g.OnDone != nil {
		g.OnDone()
	}
}

// Target returns the layer the group writes to.
func (g *TweenGroup) Target() *Layer {
	return g.target
}

func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}

// TweenAlpha creates a TweenGroup that animates layer.Alpha to the target
// value over the given duration.
func TweenAlpha(l *Layer, to float64, d time.Duration, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: l}
	g.tweens[0] = gween.New(float32(l.Alpha), float32(to), seconds(d), fn)
	g.fields[0] = &l.Alpha
	return g
}

// TweenOffset creates a TweenGroup that animates layer.OffsetY.
func TweenOffset(l *Layer, toY float64, d time.Duration, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: l}
	g.tweens[0] = gween.New(float32(l.OffsetY), float32(toY), seconds(d), fn)
	g.fields[0] = &l.OffsetY
	return g
}

// TweenFade animates alpha and offset together, the fade-and-slide used for
// panels entering and leaving.
func TweenFade(l *Layer, toAlpha, toY float64, d time.Duration, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: l}
	g.tweens[0] = gween.New(float32(l.Alpha), float32(toAlpha), seconds(d), fn)
	g.tweens[1] = gween.New(float32(l.OffsetY), float32(toY), seconds(d), fn)
	g.fields[0] = &l.Alpha
	g.fields[1] = &l.OffsetY
	return g
}

// Tweens runs a set of groups and drops them once done. A newer group on the
// same layer replaces the older one, the way a new CSS transition does.
type Tweens struct {
	groups []*TweenGroup
}

// Add starts g, replacing any running group that targets the same layer.
func (t *Tweens) Add(g *TweenGroup) *TweenGroup {
	for i, old := range t.groups {
		if old.target == g.target {
			t.groups[i] = g
			return g
		}
	}
	t.groups = append(t.groups, g)
	return g
}

// Len returns the number of running groups.
func (t *Tweens) Len() int {
	return len(t.groups)
}

// Update advances every group by dt and removes the finished ones.
func (t *Tweens) Update(dt time.Duration) {
	if len(t.groups) == 0 {
		return
	}
	step := seconds(dt)
	// OnDone may Add new groups; iterate over a snapshot.
	running := append([]*TweenGroup(nil), t.groups...)
	for _, g := range running {
		g.Update(step)
	}
	kept := t.groups[:0]
	for _, g := range t.groups {
		if !g.Done {
			kept = append(kept, g)
		}
	}
	for i := len(kept); i < len(t.groups); i++ {
		t.groups[i] = nil
	}
	t.groups = kept
}

// Clear stops every group without applying final values.
func (t *Tweens) Clear() {
	t.groups = t.groups[:0]
}
