package models

import "fmt"

// ValidationError reports a request rejected before any persistence call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// SlotConflictError reports that the requested date and time pair is already
// booked, whether it was caught by the conflict query or by the unique index
// on insert.
type SlotConflictError struct {
	Date string
	Time string
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("time slot %s %s is already booked", e.Date, e.Time)
}

func NewSlotConflictError(date, timeSlot string) error {
	return &SlotConflictError{Date: date, Time: timeSlot}
}

// PersistenceError wraps any gateway failure. PermissionDenied lets callers
// distinguish authorization failures from transient or network ones.
type PersistenceError struct {
	Op               string
	PermissionDenied bool
	Err              error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func NewPersistenceError(op string, err error, permissionDenied bool) error {
	return &PersistenceError{Op: op, PermissionDenied: permissionDenied, Err: err}
}
