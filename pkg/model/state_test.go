package model

import "testing"

func TestGreeterState_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from  GreeterState
		to    GreeterState
		valid bool
	}{
		// Valid transitions
		{GreeterStateInit, GreeterStateHello, true},
		{GreeterStateHello, GreeterStateWorld, true},
		{GreeterStateWorld, GreeterStateHello, true},

		// Invalid transitions
		{GreeterStateInit, GreeterStateWorld, false},
		{GreeterStateHello, GreeterStateInit, false},
		{GreeterStateWorld, GreeterStateInit, false},
		{GreeterStateHello, GreeterStateHello, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.valid {
			t.Errorf("GreeterState(%s).CanTransitionTo(%s) = %v, want %v", tt.from, tt.to, got, tt.valid)
		}
	}
}

func TestTogglerState_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from  TogglerState
		to    TogglerState
		valid bool
	}{
		{TogglerStateInit, TogglerStateToggle, true},
		{TogglerStateToggle, TogglerStateWait, true},
		{TogglerStateWait, TogglerStateToggle, true},

		{TogglerStateInit, TogglerStateWait, false},
		{TogglerStateWait, TogglerStateInit, false},
		{TogglerStateToggle, TogglerStateToggle, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.valid {
			t.Errorf("TogglerState(%s).CanTransitionTo(%s) = %v, want %v", tt.from, tt.to, got, tt.valid)
		}
	}
}

func TestStateStrings(t *testing.T) {
	if got := GreeterStateWorld.String(); got != "WORLD" {
		t.Errorf("GreeterStateWorld.String() = %q, want %q", got, "WORLD")
	}
	if got := TogglerStateWait.String(); got != "WAIT" {
		t.Errorf("TogglerStateWait.String() = %q, want %q", got, "WAIT")
	}
	if got := GreeterState(42).String(); got != "UNKNOWN" {
		t.Errorf("GreeterState(42).String() = %q, want %q", got, "UNKNOWN")
	}
}
