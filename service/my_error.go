package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal error has occurred (Redis failure, marshalling failure).
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that a record is absent in the registry or storage.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that a provided parameter does not match the declared contract.
	ErrBadParameter = "bad_parameter"
	// ErrLockAcquisitionTimeout means the distributed lock stayed contested beyond the acquire budget.
	ErrLockAcquisitionTimeout = "lock_acquisition_timeout"
	// ErrInstanceUnavailable means there is no healthy instance to route a command to.
	ErrInstanceUnavailable = "instance_unavailable"
	// ErrHandlerNotFound means a command carried a type no handler is registered for.
	ErrHandlerNotFound = "handler_not_found"
	// ErrHandlerExecutionError means a command handler returned an error or panicked.
	ErrHandlerExecutionError = "handler_execution_error"
	// ErrMessageMalformed means a stream message is missing its type field.
	ErrMessageMalformed = "message_malformed"
	// ErrResponseTimeout means no response arrived within the correlator budget: the command
	// was dispatched but its outcome is unknown. Callers degrade optimistically.
	ErrResponseTimeout = "response_timeout"
)

// MyError represents an error within the context of mycoordinator services.
type MyError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewMyError creates a new MyError.
func NewMyError(code string, message string, inner error) *MyError {
	return &MyError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

func NewInternalServerError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrBadParameter, message, inner)
}

func NewLockAcquisitionTimeoutError(message string, inner error) *MyError {
	return NewMyError(ErrLockAcquisitionTimeout, message, inner)
}

func NewInstanceUnavailableError(message string, inner error) *MyError {
	return NewMyError(ErrInstanceUnavailable, message, inner)
}

func NewHandlerNotFoundError(message string, inner error) *MyError {
	return NewMyError(ErrHandlerNotFound, message, inner)
}

func NewHandlerExecutionError(message string, inner error) *MyError {
	return NewMyError(ErrHandlerExecutionError, message, inner)
}

func NewMessageMalformedError(message string, inner error) *MyError {
	return NewMyError(ErrMessageMalformed, message, inner)
}

func NewResponseTimeoutError(message string, inner error) *MyError {
	return NewMyError(ErrResponseTimeout, message, inner)
}

func (e MyError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e MyError) Unwrap() error {
	return e.Inner
}

// ToMyError returns a pointer to a mycoordinator error, or nil if it is not a mycoordinator error.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToMyErrorCode returns the code of the error, if available.
func ToMyErrorCode(err error) string {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code
	}
	return ""
}

func IsMyError(err error, code string) bool {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code == code
	}
	return false
}

func IsInternalServerError(err error) bool {
	return IsMyError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsMyError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsMyError(err, ErrBadParameter)
}

func IsLockAcquisitionTimeoutError(err error) bool {
	return IsMyError(err, ErrLockAcquisitionTimeout)
}

func IsInstanceUnavailableError(err error) bool {
	return IsMyError(err, ErrInstanceUnavailable)
}

func IsHandlerNotFoundError(err error) bool {
	return IsMyError(err, ErrHandlerNotFound)
}

func IsMessageMalformedError(err error) bool {
	return IsMyError(err, ErrMessageMalformed)
}

func IsResponseTimeoutError(err error) bool {
	return IsMyError(err, ErrResponseTimeout)
}
