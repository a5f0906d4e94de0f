// Package domainerrors defines the coded error taxonomy shared by services,
// stores, and the HTTP layer. Services raise coded errors at the point of
// violation; the transport layer translates codes to HTTP statuses without
// inspecting messages.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a failure for callers.
type Code string

const (
	// CodeValidation marks user-correctable data validation failures
	// (date invariants, uplift rules, missing descriptions).
	CodeValidation Code = "data_validation_failure"

	// CodeNoEvidence marks an update carrying no evidence items for either
	// the applicant or the partner. A distinct case of validation failure so
	// callers can branch on it.
	CodeNoEvidence Code = "no_evidence_provided"

	// CodeConfiguration marks static-data integrity faults (a fee rule
	// producing a level missing from the catalog). Fatal at startup.
	CodeConfiguration Code = "configuration_integrity_failure"

	// CodeExternal marks failed calls to collaborator services
	// (court data API, means assessment API, requirement lookups).
	CodeExternal Code = "external_collaborator_failure"

	// CodeNotFound marks missing records.
	CodeNotFound Code = "not_found"

	// CodeBadRequest marks malformed request payloads.
	CodeBadRequest Code = "bad_request"

	// CodeInternal marks unexpected internal faults.
	CodeInternal Code = "internal_error"
)

// Error carries a code alongside the message so transports can map failures
// without string matching.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf builds a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Is reports whether err (or anything it wraps) carries the given code.
// CodeNoEvidence is treated as a sub-code of CodeValidation.
func Is(err error, code Code) bool {
	var coded *Error
	if !errors.As(err, &coded) {
		return false
	}
	if coded.Code == code {
		return true
	}
	return code == CodeValidation && coded.Code == CodeNoEvidence
}

// CodeOf extracts the code from err, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a code to the HTTP status the transport layer returns.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeNoEvidence, CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
