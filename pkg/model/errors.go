package model

import "fmt"

// InvalidTaskIDError is returned when a task id falls outside [0, Count).
type InvalidTaskIDError struct {
	ID    TaskID
	Count int
}

func (e *InvalidTaskIDError) Error() string {
	return fmt.Sprintf("invalid task id %d: valid range is [0, %d)", int(e.ID), e.Count)
}
