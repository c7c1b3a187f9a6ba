package task

import (
	"io"

	"github.com/me/noblock/pkg/model"
)

type greeterStateFunc func(*Greeter) model.Status

// greeterTable maps every GreeterState to the step that handles it.
var greeterTable = [model.NumGreeterStates]greeterStateFunc{
	model.GreeterStateInit:  (*Greeter).initState,
	model.GreeterStateHello: (*Greeter).helloState,
	model.GreeterStateWorld: (*Greeter).worldState,
}

// Greeter alternates between printing "Hello," and "World!" after a
// one-time initialization. Dispatch goes through greeterTable.
type Greeter struct {
	out   io.Writer
	state model.GreeterState
}

// NewGreeter returns a Greeter in its initial state.
func NewGreeter(out io.Writer) *Greeter {
	return &Greeter{out: out, state: model.GreeterStateInit}
}

// Step runs the handler for the current state.
func (g *Greeter) Step() model.Status {
	return greeterTable[g.state](g)
}

// State returns the state the next Step will handle.
func (g *Greeter) State() model.GreeterState {
	return g.state
}

func (g *Greeter) initState() model.Status {
	emit(g.out, "task_1_init_state_callback", "initializing task 1")
	g.state = model.GreeterStateHello
	return model.StatusOK
}

func (g *Greeter) helloState() model.Status {
	emit(g.out, "task_1_hello_state_callback", "Hello,")
	g.state = model.GreeterStateWorld
	return model.StatusOK
}

func (g *Greeter) worldState() model.Status {
	emit(g.out, "task_1_world_state_callback", "World!")
	g.state = model.GreeterStateHello
	return model.StatusOK
}
