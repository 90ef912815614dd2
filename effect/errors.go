package effect

import "fmt"

// NoPerformerFoundError reports that no dispatcher in the lookup chain
// recognized the intent.
type NoPerformerFoundError struct {
	Intent any
}

func (e NoPerformerFoundError) Error() string {
	return fmt.Sprintf("no performer found for intent of type %T", e.Intent)
}

// FirstError is the aggregate failure of a concurrent group: the first
// sub-effect error to complete in wall-clock time, with the submission
// index of the sub-effect that produced it.
type FirstError struct {
	Err   error
	Index int
}

func (e *FirstError) Error() string {
	return fmt.Sprintf("first error of parallel effects (index %d): %v", e.Index, e.Err)
}

func (e *FirstError) Unwrap() error { return e.Err }
