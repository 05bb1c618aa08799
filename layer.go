package greeting

// Layer is the visual state of one piece of the page: whether it is shown,
// its opacity and a vertical slide offset in pixels. Tweens write to these
// fields directly.
type Layer struct {
	Name    string
	Visible bool
	Alpha   float64
	OffsetY float64
}

// NewLayer returns a visible, opaque layer.
func NewLayer(name string) *Layer {
	return &Layer{Name: name, Visible: true, Alpha: 1}
}

// NewHiddenLayer returns a layer that starts hidden and transparent.
func NewHiddenLayer(name string) *Layer {
	return &Layer{Name: name}
}

// Opacity returns the effective alpha, zero when hidden.
func (l *Layer) Opacity() float64 {
	if !l.Visible {
		return 0
	}
	return clamp01(l.Alpha)
}

// Show makes the layer visible at the given alpha and offset.
func (l *Layer) Show(alpha, offsetY float64) {
	l.Visible = true
	l.Alpha = alpha
	l.OffsetY = offsetY
}

// Hide makes the layer invisible without touching alpha.
func (l *Layer) Hide() {
	l.Visible = false
}
