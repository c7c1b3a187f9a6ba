package task

import (
	"io"

	"github.com/me/noblock/pkg/model"
)

// Toggler flips a private bit on every other step and reports it.
// Unlike Greeter it dispatches with an explicit switch.
type Toggler struct {
	out   io.Writer
	state model.TogglerState
	bit   bool
}

// NewToggler returns a Toggler in its initial state.
func NewToggler(out io.Writer) *Toggler {
	return &Toggler{out: out, state: model.TogglerStateInit}
}

// Step runs the branch for the current state.
func (t *Toggler) Step() model.Status {
	switch t.state {
	case model.TogglerStateInit:
		emit(t.out, "task_2_run", "initializing task 2")
		t.bit = false
		t.state = model.TogglerStateToggle
	case model.TogglerStateToggle:
		t.bit = !t.bit
		if t.bit {
			emit(t.out, "task_2_run", "the bit is ON")
		} else {
			emit(t.out, "task_2_run", "the bit is OFF")
		}
		t.state = model.TogglerStateWait
	case model.TogglerStateWait:
		// Silent turn.
		t.state = model.TogglerStateToggle
	}
	return model.StatusOK
}

// State returns the state the next Step will handle.
func (t *Toggler) State() model.TogglerState {
	return t.state
}

// Bit returns the current value of the toggled bit.
func (t *Toggler) Bit() bool {
	return t.bit
}
