package model

import "fmt"

// TaskID identifies a registered task. Values are contiguous from 0 and
// NumTasks is the number of registered tasks.
type TaskID int

const (
	// TaskGreeter is the table-dispatch task that prints "Hello, World!" in halves.
	TaskGreeter TaskID = iota
	// TaskToggler is the branch-dispatch task that flips a bit every other turn.
	TaskToggler

	// NumTasks must stay last.
	NumTasks
)

// String returns the name of the task.
func (id TaskID) String() string {
	switch id {
	case TaskGreeter:
		return "greeter"
	case TaskToggler:
		return "toggler"
	}
	return fmt.Sprintf("TaskID(%d)", int(id))
}

// Valid reports whether id falls in [0, NumTasks).
func (id TaskID) Valid() bool {
	return id >= 0 && id < NumTasks
}

// Status is the code a task step returns. Only StatusOK is defined.
type Status int

const StatusOK Status = 0

// OK reports whether the step succeeded.
func (s Status) OK() bool {
	return s == StatusOK
}

func (s Status) String() string {
	if s == StatusOK {
		return "OK"
	}
	return fmt.Sprintf("STATUS(%d)", int(s))
}
