package task

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/me/noblock/pkg/model"
)

func TestToggler_Sequence(t *testing.T) {
	var buf bytes.Buffer
	tg := NewToggler(&buf)

	tests := []struct {
		state   model.TogglerState
		bit     bool
		newLine bool
	}{
		{model.TogglerStateToggle, false, true}, // init
		{model.TogglerStateWait, true, true},    // ON
		{model.TogglerStateToggle, true, false}, // wait
		{model.TogglerStateWait, false, true},   // OFF
		{model.TogglerStateToggle, false, false},
		{model.TogglerStateWait, true, true},
	}
	prev := tg.State()
	for i, tt := range tests {
		before := len(lines(&buf))
		if status := tg.Step(); status != model.StatusOK {
			t.Errorf("step %d: Step() = %s, want OK", i+1, status)
		}
		if tg.State() != tt.state {
			t.Errorf("step %d: State() = %s, want %s", i+1, tg.State(), tt.state)
		}
		if tg.Bit() != tt.bit {
			t.Errorf("step %d: Bit() = %v, want %v", i+1, tg.Bit(), tt.bit)
		}
		if got := len(lines(&buf)) > before; got != tt.newLine {
			t.Errorf("step %d: produced output = %v, want %v", i+1, got, tt.newLine)
		}
		if !prev.CanTransitionTo(tg.State()) {
			t.Errorf("step %d: transition %s -> %s not allowed", i+1, prev, tg.State())
		}
		prev = tg.State()
	}

	want := []string{
		"task_2_run: initializing task 2",
		"task_2_run: the bit is ON",
		"task_2_run: the bit is OFF",
		"task_2_run: the bit is ON",
	}
	if diff := cmp.Diff(want, lines(&buf)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestToggler_WaitIsSilent(t *testing.T) {
	var buf bytes.Buffer
	tg := NewToggler(&buf)
	tg.Step() // init
	tg.Step() // toggle

	buf.Reset()
	tg.Step()
	if tg.State() != model.TogglerStateToggle {
		t.Fatalf("State() = %s, want TOGGLE", tg.State())
	}
	if buf.Len() != 0 {
		t.Errorf("wait step wrote %q, want nothing", buf.String())
	}
}
