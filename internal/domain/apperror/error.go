// internal/domain/apperror/error.go
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the bot can run into.
type Kind string

const (
	KindConfigMissing       Kind = "CONFIG_MISSING"       // Fatal, aborts startup
	KindUpstreamUnavailable Kind = "UPSTREAM_UNAVAILABLE" // Non-200 or transport failure
	KindMalformedResponse   Kind = "MALFORMED_RESPONSE"   // Bad JSON or wrong shape
	KindUnknownStatus       Kind = "UNKNOWN_STATUS"       // Unrecognized homework status code
	KindDeliveryFailed      Kind = "DELIVERY_FAILED"      // Telegram send failure
)

// Error is the single error type used across the bot.
// Field names the offending key or variable when there is one.
type Error struct {
	Kind  Kind
	Field string
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Field != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Field)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind.
func New(kind Kind, field, msg string) *Error {
	return &Error{Kind: kind, Field: field, Msg: msg}
}

// Wrap creates an error of the given kind around a lower level cause.
func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
