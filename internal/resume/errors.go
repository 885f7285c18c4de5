package resume

import "fmt"

// Error represents a resume structuring error. The only non-degradable
// condition is empty input, which violates the caller's extraction contract.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resume structuring error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("resume structuring error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
