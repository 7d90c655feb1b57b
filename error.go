package waypoint

import (
	"errors"
	"fmt"
)

var (
	ErrBadConfig   = errors.New("bad config")
	ErrExists      = errors.New("already exists")
	ErrMissingData = errors.New("missing data")
	ErrNotFound    = errors.New("not found")
	ErrNotValid    = errors.New("invalid")
	ErrUnexpected  = errors.New("unexpected")
)

// Stable error codes carried by the typed errors below.
// Upstream layers ought to match on these instead of message text.
const (
	CodeInvalidChoice   = "invalid_choice"
	CodeInvalidType     = "invalid_type"
	CodeInvalidValue    = "invalid_value"
	CodeNotAnEnum       = "not_an_enum"
	CodeRequired        = "required"
	CodeUnsupportedKind = "unsupported_kind"
)

// A ConfigError is a mistake made constructing a Field.
// It only ever occurs at construction time and ought to abort schema setup.
type ConfigError struct {
	// Code is one of CodeNotAnEnum, CodeUnsupportedKind or CodeInvalidChoice.
	Code   string
	Reason string
}

func (e ConfigError) Error() string { return e.Code + ": " + e.Reason }

func (ConfigError) Unwrap() error { return ErrBadConfig }

// An InvalidValueError is a raw value that denotes no Member of an Enum,
// or denotes absence when absence is disallowed.
//
// An InvalidValueError is recoverable data validation;
// surface it to whoever submitted the value.
type InvalidValueError struct {
	// Enum is the name of the Enum the value was coerced against.
	Enum string

	// Raw is the offending value as received.
	Raw any

	// Reason states why Raw was rejected.
	Reason string

	msg string
}

// Code returns CodeInvalidValue.
func (InvalidValueError) Code() string { return CodeInvalidValue }

func (e InvalidValueError) Error() string {
	if e.msg != "" {
		return e.msg
	}

	return fmt.Sprintf("%v is not a valid value for the %s enum: %s", e.Raw, e.Enum, e.Reason)
}

func (InvalidValueError) Unwrap() error { return ErrNotValid }

// An InvalidTypeError is a well-formed Member of the wrong Enum.
//
// Unlike an InvalidValueError, an InvalidTypeError is a programming error
// at the call site that constructed the value;
// it should never occur in correct code and ought to be escalated, not retried.
type InvalidTypeError struct {
	// Expected is the name of the Enum the value was coerced against.
	Expected string

	// Actual is the name of the Enum the value actually belongs to.
	Actual string

	// Raw is the offending value as received.
	Raw any

	msg string
}

// Code returns CodeInvalidType.
func (InvalidTypeError) Code() string { return CodeInvalidType }

func (e InvalidTypeError) Error() string {
	if e.msg != "" {
		return e.msg
	}

	return fmt.Sprintf("the %s enum is configured but received a member of %s (%v)", e.Expected, e.Actual, e.Raw)
}

func (InvalidTypeError) Unwrap() error { return ErrUnexpected }

// ErrorCode pulls the stable code off err, if it carries one.
// If err carries no code, ErrorCode returns "".
func ErrorCode(err error) string {
	var c interface{ Code() string }
	if errors.As(err, &c) {
		return c.Code()
	}

	return ""
}
