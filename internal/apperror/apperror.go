// Package apperror defines the domain error taxonomy shared by services
// and controllers. Services return *Error values; controllers translate
// them to an HTTP status and envelope without ever leaking a raw storage
// error to the client.
package apperror

import (
	"errors"
	"net/http"
)

type Code string

const (
	CodeNotFound             Code = "NOT_FOUND"
	CodeForbidden            Code = "FORBIDDEN"
	CodeValidation           Code = "VALIDATION_ERROR"
	CodeDuplicateApplication Code = "DUPLICATE_APPLICATION"
	CodeAlreadyTaken         Code = "ALREADY_TAKEN"
	CodeDeadlinePassed       Code = "DEADLINE_PASSED"
	CodeNotEligible          Code = "NOT_ELIGIBLE"
	CodeResumeMissing        Code = "RESUME_MISSING"
	CodeUnknown              Code = "UNKNOWN"
)

type Error struct {
	Code    Code
	Message string
	// Reason carries the eligibility evaluator's verdict for
	// CodeNotEligible; empty otherwise.
	Reason string
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Is makes errors.Is match on the code, so tests and callers can compare
// against a bare New(code, "") sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func NotEligible(message, reason string) *Error {
	return &Error{Code: CodeNotEligible, Message: message, Reason: reason}
}

// Wrap attaches a cause to a coded error; the cause stays out of client
// responses but is available for logging via Unwrap.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// From extracts the *Error from err, or wraps it as CodeUnknown.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: CodeUnknown, Message: "Internal server error", cause: err}
}

// HTTPStatus maps a code to the response status per the API contract.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeForbidden:
		return http.StatusForbidden
	case CodeValidation, CodeDuplicateApplication, CodeAlreadyTaken,
		CodeDeadlinePassed, CodeNotEligible, CodeResumeMissing:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
