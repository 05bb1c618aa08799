package greeting

// Loop advances and draws the live bursts once per display refresh. It goes
// idle when no bursts remain and is restarted by Add.
type Loop struct {
	bursts  []*Burst
	running bool
	frames  int
}

// NewLoop returns an idle loop.
func NewLoop() *Loop {
	return &Loop{}
}

// Add appends a burst and restarts the loop if it is idle.
func (l *Loop) Add(b *Burst) {
	l.bursts = append(l.bursts, b)
	l.running = true
}

// Running reports whether the loop is scheduled for the next refresh.
func (l *Loop) Running() bool {
	return l.running
}

// Len returns the number of live bursts.
func (l *Loop) Len() int {
	return len(l.bursts)
}

// Bursts returns the live bursts. The returned slice MUST NOT be mutated.
func (l *Loop) Bursts() []*Burst {
	return l.bursts
}

// Frames returns how many frames did work since the loop was created.
func (l *Loop) Frames() int {
	return l.frames
}

// Frame is the per-refresh callback. A surface with zero area keeps the loop
// scheduled without drawing. Each burst is advanced and rendered before the
// expired ones are dropped, so the final faded frame is still drawn.
func (l *Loop) Frame(dst Surface) {
	if !l.running {
		return
	}
	if w, h := dst.Size(); w == 0 || h == 0 {
		return
	}
	l.frames++
	dst.Clear()

	kept := l.bursts[:0]
	for _, b := range l.bursts {
		alive := b.Advance()
		b.Render(dst)
		if alive {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(l.bursts); i++ {
		l.bursts[i] = nil
	}
	l.bursts = kept

	if len(l.bursts) == 0 {
		l.running = false
	}
}

// Reset drops every burst and idles the loop.
func (l *Loop) Reset() {
	for i := range l.bursts {
		l.bursts[i] = nil
	}
	l.bursts = l.bursts[:0]
	l.running = false
}
