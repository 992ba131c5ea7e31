package solver

import "fmt"

// UnavailableError means the solver endpoint could not be reached at all
// (connection refused, no route). The request never left this process.
type UnavailableError struct {
	URL string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("solver unavailable at %s: %v", e.URL, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// TimeoutError means the solver did not answer within the configured budget.
type TimeoutError struct {
	URL string
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("solver timed out at %s: %v", e.URL, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// StatusError means the solver was reachable but the exchange failed: either
// a non-2xx HTTP status (Status carries the upstream code) or a transport
// fault mid-flight (Status is 0).
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("solver request failed: %s", e.Message)
	}
	return fmt.Sprintf("solver returned status %d: %s", e.Status, e.Message)
}

// FormatError means the solver answered 2xx but the body matched neither of
// the two known response shapes. Nothing is persisted in that case.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unrecognized solver response: %s", e.Reason)
}
