package timetable

import (
	"fmt"

	"timegrid/models"
)

// NotFoundError reports a missing room, faculty, subject or timetable.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// ValidationError reports a malformed generation request field. Subject and
// Faculty identify the offending record when the field lives inside one.
type ValidationError struct {
	Subject string
	Faculty string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	msg := "invalid generation request"
	if e.Subject != "" {
		msg += fmt.Sprintf(": subject %q", e.Subject)
	}
	if e.Faculty != "" {
		msg += fmt.Sprintf(": faculty %q", e.Faculty)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(": field %s", e.Field)
	}
	return msg + ": " + e.Message
}

// ConflictError reports a manual edit colliding with a different occupied
// slot, naming the slot so the caller can show it.
type ConflictError struct {
	Room  string
	Day   models.Day
	Start string
	End   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot already occupied: room %s %s %s-%s", e.Room, e.Day, e.Start, e.End)
}

// PersistenceError reports a storage write that failed after a valid
// reconciliation; the computed result was not silently dropped, it is carried
// in the message for the caller.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
