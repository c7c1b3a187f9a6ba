package model

// GreeterState is the private state of the table-dispatch task.
type GreeterState int

const (
	GreeterStateInit GreeterState = iota
	GreeterStateHello
	GreeterStateWorld

	// NumGreeterStates sizes the greeter dispatch table.
	NumGreeterStates
)

// String returns the string representation of the greeter state.
func (s GreeterState) String() string {
	switch s {
	case GreeterStateInit:
		return "INIT"
	case GreeterStateHello:
		return "HELLO"
	case GreeterStateWorld:
		return "WORLD"
	}
	return "UNKNOWN"
}

// ValidGreeterTransitions defines the greeter's transition graph.
// INIT is never re-entered.
var ValidGreeterTransitions = map[GreeterState]GreeterState{
	GreeterStateInit:  GreeterStateHello,
	GreeterStateHello: GreeterStateWorld,
	GreeterStateWorld: GreeterStateHello,
}

// CanTransitionTo returns true if moving from the current state to next is valid.
func (s GreeterState) CanTransitionTo(next GreeterState) bool {
	allowed, ok := ValidGreeterTransitions[s]
	return ok && allowed == next
}

// TogglerState is the private state of the branch-dispatch task.
type TogglerState int

const (
	TogglerStateInit TogglerState = iota
	TogglerStateToggle
	TogglerStateWait
)

// String returns the string representation of the toggler state.
func (s TogglerState) String() string {
	switch s {
	case TogglerStateInit:
		return "INIT"
	case TogglerStateToggle:
		return "TOGGLE"
	case TogglerStateWait:
		return "WAIT"
	}
	return "UNKNOWN"
}

// ValidTogglerTransitions defines the toggler's transition graph.
var ValidTogglerTransitions = map[TogglerState]TogglerState{
	TogglerStateInit:   TogglerStateToggle,
	TogglerStateToggle: TogglerStateWait,
	TogglerStateWait:   TogglerStateToggle,
}

// CanTransitionTo returns true if moving from the current state to next is valid.
func (s TogglerState) CanTransitionTo(next TogglerState) bool {
	allowed, ok := ValidTogglerTransitions[s]
	return ok && allowed == next
}
