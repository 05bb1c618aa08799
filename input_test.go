package greeting

import (
	"fmt"
	"slices"
	"testing"
)

// recordPointer wires a Pointer's callbacks to an event log.
func recordPointer(p *Pointer) *[]string {
	var log []string
	p.OnPress = func(x, y float64) { log = append(log, fmt.Sprintf("press %v,%v", x, y)) }
	p.OnMove = func(x, y float64) { log = append(log, fmt.Sprintf("move %v,%v", x, y)) }
	p.OnRelease = func(x, y float64) { log = append(log, fmt.Sprintf("release %v,%v", x, y)) }
	return &log
}

func TestPointerProcessStateMachine(t *testing.T) {
	var p Pointer
	log := recordPointer(&p)

	p.process(10, 10, false) // hover, no callback
	p.process(10, 10, true)
	p.process(10, 10, true) // held still, no move
	p.process(20, 15, true)
	p.process(25, 15, false)
	p.process(30, 30, false)

	want := []string{"press 10,10", "move 20,15", "release 25,15"}
	if !slices.Equal(*log, want) {
		t.Errorf("events = %v, want %v", *log, want)
	}
	if p.Down() {
		t.Error("Down() = true after release")
	}
	if x, y := p.Position(); x != 30 || y != 30 {
		t.Errorf("Position() = (%v, %v), want (30, 30)", x, y)
	}
}

func TestPointerNilCallbacks(t *testing.T) {
	var p Pointer
	p.process(1, 1, true)
	p.process(2, 2, true)
	p.process(2, 2, false)
	if p.Down() {
		t.Error("Down() = true after release")
	}
}

func TestInjectClick(t *testing.T) {
	var p Pointer
	log := recordPointer(&p)
	p.InjectClick(50, 60)
	if p.Pending() != 2 {
		t.Fatalf("Pending() = %d, want 2", p.Pending())
	}

	if !p.processInjected() {
		t.Fatal("processInjected() = false with a queued event")
	}
	if !p.Down() {
		t.Error("Down() = false after the injected press")
	}
	p.processInjected()
	if p.processInjected() {
		t.Error("processInjected() = true with an empty queue")
	}

	want := []string{"press 50,60", "release 50,60"}
	if !slices.Equal(*log, want) {
		t.Errorf("events = %v, want %v", *log, want)
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	var p Pointer
	log := recordPointer(&p)
	p.InjectDrag(0, 0, 40, 80, 5)
	if p.Pending() != 5 {
		t.Fatalf("Pending() = %d, want 5", p.Pending())
	}
	for p.processInjected() {
	}
	want := []string{
		"press 0,0",
		"move 10,20",
		"move 20,40",
		"move 30,60",
		"release 40,80",
	}
	if !slices.Equal(*log, want) {
		t.Errorf("events = %v, want %v", *log, want)
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	var p Pointer
	p.InjectDrag(0, 0, 10, 10, 0)
	if p.Pending() != 2 {
		t.Errorf("Pending() = %d, want 2 (press + release)", p.Pending())
	}
}

func TestInjectPressMoveRelease(t *testing.T) {
	var p Pointer
	log := recordPointer(&p)
	p.InjectPress(1, 2)
	p.InjectMove(3, 4)
	p.InjectRelease(5, 6)
	for p.processInjected() {
	}
	want := []string{"press 1,2", "move 3,4", "release 5,6"}
	if !slices.Equal(*log, want) {
		t.Errorf("events = %v, want %v", *log, want)
	}
}
