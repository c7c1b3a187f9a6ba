package model

import "testing"

func TestTaskID_Valid(t *testing.T) {
	tests := []struct {
		id    TaskID
		valid bool
	}{
		{TaskGreeter, true},
		{TaskToggler, true},
		{NumTasks, false},
		{-1, false},
		{100, false},
	}
	for _, tt := range tests {
		if got := tt.id.Valid(); got != tt.valid {
			t.Errorf("TaskID(%d).Valid() = %v, want %v", int(tt.id), got, tt.valid)
		}
	}
}

func TestTaskID_String(t *testing.T) {
	tests := []struct {
		id   TaskID
		want string
	}{
		{TaskGreeter, "greeter"},
		{TaskToggler, "toggler"},
		{7, "TaskID(7)"},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("TaskID(%d).String() = %q, want %q", int(tt.id), got, tt.want)
		}
	}
}

func TestStatus(t *testing.T) {
	if !StatusOK.OK() {
		t.Error("StatusOK.OK() = false, want true")
	}
	if Status(3).OK() {
		t.Error("Status(3).OK() = true, want false")
	}
	if got := Status(3).String(); got != "STATUS(3)" {
		t.Errorf("Status(3).String() = %q, want %q", got, "STATUS(3)")
	}
}

func TestInvalidTaskIDError(t *testing.T) {
	err := &InvalidTaskIDError{ID: 5, Count: 2}
	want := "invalid task id 5: valid range is [0, 2)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
