package interval

import (
	"errors"
	"fmt"
)

// ErrNotArmed reports a Wait on a controller that was never armed.
var ErrNotArmed = errors.New("interval: wait before arm")

// Result is the outcome of a single Wait.
type Result uint8

const (
	// Success: the period elapsed and the wait ran to completion.
	Success Result = iota
	// Abort: the poll condition fired before the period elapsed.
	Abort
	// Overflow: the cycle's work already used up the whole period.
	Overflow
	// Failure: the controller was never armed. No cycle was in progress.
	Failure
)

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case Abort:
		return "abort"
	case Overflow:
		return "overflow"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("Result(%d)", uint8(r))
	}
}

// Err returns ErrNotArmed for Failure and nil for every other result.
// Abort and Overflow are normal outcomes of the timing protocol, not errors.
func (r Result) Err() error {
	if r == Failure {
		return ErrNotArmed
	}
	return nil
}
