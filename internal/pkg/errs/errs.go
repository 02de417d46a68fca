package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap targets for the structured error types
// below. Callers classify errors with errors.Is against these values.
var (
	ErrValueIsRequired       = errors.New("value is required")
	ErrValueIsInvalid        = errors.New("value is invalid")
	ErrValueIsOutOfRange     = errors.New("value is out of range")
	ErrObjectNotFound        = errors.New("object not found")
	ErrStateIsLocked         = errors.New("state is locked")
	ErrCredentialsAreInvalid = errors.New("credentials are invalid")
	ErrTransportFailed       = errors.New("transport failed")
)

// sanitize collapses newlines so multi-line values cannot break log lines.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// ValueIsRequiredError indicates that a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value is outside its allowed range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError with the offending value and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that a requested object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named lookup parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// StateIsLockedError indicates that an entity has reached a terminal lifecycle
// state and the attempted mutation is not allowed.
type StateIsLockedError struct {
	ParamName string
	State     string
	Cause     error
}

// NewStateIsLockedError creates a StateIsLockedError for the named entity in the given state.
func NewStateIsLockedError(paramName, state string) *StateIsLockedError {
	return &StateIsLockedError{ParamName: paramName, State: state}
}

// NewStateIsLockedErrorWithCause creates a StateIsLockedError wrapping an underlying cause.
func NewStateIsLockedErrorWithCause(paramName, state string, cause error) *StateIsLockedError {
	return &StateIsLockedError{ParamName: paramName, State: state, Cause: cause}
}

func (e *StateIsLockedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is in state %s (cause: %s)",
			ErrStateIsLocked, e.ParamName, e.State, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is in state %s", ErrStateIsLocked, e.ParamName, e.State))
}

func (e *StateIsLockedError) Unwrap() error {
	return ErrStateIsLocked
}

// CredentialsAreInvalidError indicates that an external collaborator rejected
// the supplied credentials.
type CredentialsAreInvalidError struct {
	ParamName string
	Cause     error
}

// NewCredentialsAreInvalidError creates a CredentialsAreInvalidError for the named credential set.
func NewCredentialsAreInvalidError(paramName string) *CredentialsAreInvalidError {
	return &CredentialsAreInvalidError{ParamName: paramName}
}

// NewCredentialsAreInvalidErrorWithCause creates a CredentialsAreInvalidError wrapping an underlying cause.
func NewCredentialsAreInvalidErrorWithCause(paramName string, cause error) *CredentialsAreInvalidError {
	return &CredentialsAreInvalidError{ParamName: paramName, Cause: cause}
}

func (e *CredentialsAreInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrCredentialsAreInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrCredentialsAreInvalid, e.ParamName))
}

func (e *CredentialsAreInvalidError) Unwrap() error {
	return ErrCredentialsAreInvalid
}

// TransportError indicates that a network call to an external collaborator
// failed before a usable response was received. Such failures are retryable
// from the caller's point of view.
type TransportError struct {
	ParamName string
	Cause     error
}

// NewTransportError creates a TransportError for the named collaborator.
func NewTransportError(paramName string) *TransportError {
	return &TransportError{ParamName: paramName}
}

// NewTransportErrorWithCause creates a TransportError wrapping an underlying cause.
func NewTransportErrorWithCause(paramName string, cause error) *TransportError {
	return &TransportError{ParamName: paramName, Cause: cause}
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrTransportFailed, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrTransportFailed, e.ParamName))
}

func (e *TransportError) Unwrap() error {
	return ErrTransportFailed
}
