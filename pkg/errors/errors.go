// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"errors"
	"fmt"
)

// Status classifies an error. Statuses follow the HTTP convention: 4xx is the
// caller's fault, 5xx is ours.
type Status int

const (
	// OK is not an error.
	OK Status = 200

	// BadRequest is a validation error: bad currency, non-positive amount,
	// unknown category, precision mismatch.
	BadRequest Status = 400

	// Unauthorized means the caller lacks the required permission.
	Unauthorized Status = 401

	// InsufficientFunds signals resource exhaustion: not enough tokens in a
	// pool, not enough RAM configured.
	InsufficientFunds Status = 402

	// NotFound means a record does not exist.
	NotFound Status = 404

	// NotAllowed means the action is forbidden for this account class.
	NotAllowed Status = 405

	// Conflict means the action contradicts existing state, such as a double
	// unstake request or a stale migration assertion.
	Conflict Status = 409

	// NotReady is a state-precondition failure: a lock-up, cliff, or release
	// period has not yet elapsed. The caller may retry once it has.
	NotReady Status = 425

	// UnknownError is an unclassified internal failure.
	UnknownError Status = 500

	// EncodingError indicates a record could not be encoded or decoded.
	EncodingError Status = 501
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case BadRequest:
		return "bad request"
	case Unauthorized:
		return "unauthorized"
	case InsufficientFunds:
		return "insufficient funds"
	case NotFound:
		return "not found"
	case NotAllowed:
		return "not allowed"
	case Conflict:
		return "conflict"
	case NotReady:
		return "not ready"
	case EncodingError:
		return "encoding error"
	default:
		return "unknown error"
	}
}

// Error implements error so a bare Status can be used as a sentinel with
// errors.Is.
func (s Status) Error() string { return s.String() }

// Error is a status-coded error with an optional cause.
type Error struct {
	Code    Status
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Code.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is the same status, allowing
// errors.Is(err, errors.NotFound).
func (e *Error) Is(target error) bool {
	if s, ok := target.(Status); ok {
		return e.Code == s
	}
	return false
}

// With returns a new coded error from the concatenation of v.
func (s Status) With(v ...interface{}) *Error {
	return &Error{Code: s, Message: fmt.Sprint(v...)}
}

// WithFormat returns a new coded error with a formatted message. If the format
// wraps an error with %w, the wrapped error is preserved as the cause.
func (s Status) WithFormat(format string, args ...interface{}) *Error {
	err := fmt.Errorf(format, args...)
	e := &Error{Code: s, Message: err.Error()}
	if u, ok := err.(interface{ Unwrap() error }); ok {
		e.Cause = u.Unwrap()
	}
	return e
}

// Wrap attaches the status to err, preserving err as the cause. Wrapping nil
// returns nil. Wrapping an already-coded error with UnknownError returns it
// unchanged so the original status survives.
func (s Status) Wrap(err error) error {
	if err == nil {
		return nil
	}
	if s == UnknownError {
		var e *Error
		if errors.As(err, &e) {
			return err
		}
	}
	return &Error{Code: s, Cause: err}
}

// Code extracts the status from an error chain, or UnknownError if the chain
// carries none.
func Code(err error) Status {
	if err == nil {
		return OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	if s, ok := err.(Status); ok {
		return s
	}
	return UnknownError
}

// Is, As, and Unwrap are re-exported so callers do not need to import both
// this package and the standard library's.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target interface{}) bool { return errors.As(err, target) }

func Unwrap(err error) error { return errors.Unwrap(err) }

func New(text string) error { return errors.New(text) }
