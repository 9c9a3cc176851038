package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when a campaign does not exist or is not
	// visible to the caller.
	ErrNotFound = errors.New("campaign not found")
	// ErrUnauthenticated is returned when no bearer credential is available.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden is returned when the caller does not own the campaign.
	ErrForbidden = errors.New("campaign access denied")
	// ErrNotEditable is returned when content fields are changed after launch.
	ErrNotEditable = errors.New("campaign is not editable in its current status")
)

// ValidationError reports a bad field value. Field uses the dotted JSON
// path, e.g. "budget.endDate".
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// InvalidTransitionError is returned when an event is not legal for the
// campaign's current status. Target is set instead of Event when a caller
// asked for a status no event leads to.
type InvalidTransitionError struct {
	State  Status
	Event  Event
	Target Status
}

func (e *InvalidTransitionError) Error() string {
	if e.Event == "" {
		return fmt.Sprintf("cannot move from state %q to %q", e.State, e.Target)
	}
	return fmt.Sprintf("event %q is not allowed in state %q", e.Event, e.State)
}

// ParseError reports malformed numeric or date input.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

// InvalidRangeError is returned when a date range ends before it starts.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("end date %s is before start date %s",
		e.End.Format(time.DateOnly), e.Start.Format(time.DateOnly))
}

// RemoteUnavailableError wraps a network or server failure of the campaign
// API. It is recovered locally and never blocks display.
type RemoteUnavailableError struct {
	Op  string
	Err error
}

func (e *RemoteUnavailableError) Error() string {
	return fmt.Sprintf("remote %s unavailable: %v", e.Op, e.Err)
}

func (e *RemoteUnavailableError) Unwrap() error {
	return e.Err
}

// IsRemoteUnavailable reports whether err is, or wraps, a RemoteUnavailableError.
func IsRemoteUnavailable(err error) bool {
	var target *RemoteUnavailableError
	return errors.As(err, &target)
}
