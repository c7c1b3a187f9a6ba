// Package task holds the cooperative task state machines.
//
// A task never blocks. Each call to Step runs the work for the current
// state, moves to the next state and returns. Repeated calls from the
// scheduler give the task the appearance of running continuously.
package task

import (
	"fmt"
	"io"

	"github.com/me/noblock/pkg/model"
)

// Stepper advances a task by exactly one state transition.
type Stepper interface {
	Step() model.Status
}

// emit writes one output line tagged with the emitting state.
func emit(w io.Writer, source, msg string) {
	fmt.Fprintf(w, "%s: %s\n", source, msg)
}
