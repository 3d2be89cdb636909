// Package apperror defines the relay's error kinds and maps them to HTTP
// status codes and client-facing messages.
package apperror

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindUnhandled Kind = iota
	KindValidation
	KindConfiguration
	KindRateLimit
	KindAuthFailure
	KindProvider
	KindNotFound
)

const (
	MsgValidation    = "Invalid request. Please provide a valid question."
	MsgConfiguration = "Server configuration error"
	MsgRateLimit     = "Rate limit exceeded. Please try again in a moment."
	MsgAuthFailure   = "Authentication failed. Check your API key."
	MsgProvider      = "Failed to generate response. Please try again."
	MsgNotFound      = "Endpoint not found"
	MsgUnhandled     = "Internal server error"
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConfiguration:
		return "configuration"
	case KindRateLimit:
		return "rate_limit"
	case KindAuthFailure:
		return "auth_failure"
	case KindProvider:
		return "provider"
	case KindNotFound:
		return "not_found"
	default:
		return "unhandled"
	}
}

// Error is a classified failure. Message is only surfaced to clients for
// KindProvider; every other kind answers with its fixed text.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func Validation() *Error { return &Error{Kind: KindValidation} }

func Configuration(reason string) *Error {
	return &Error{Kind: KindConfiguration, Message: reason}
}

func NotFound() *Error { return &Error{Kind: KindNotFound} }

// FromProviderStatus classifies a provider failure by the HTTP status the
// provider answered with. status is 0 for transport failures.
func FromProviderStatus(status int, message string, err error) *Error {
	switch status {
	case http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimit, Message: message, Err: err}
	case http.StatusUnauthorized:
		return &Error{Kind: KindAuthFailure, Message: message, Err: err}
	default:
		return &Error{Kind: KindProvider, Message: message, Err: err}
	}
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindUnhandled.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnhandled
}

// Status maps err to the HTTP status and error text returned to the caller.
func Status(err error) (int, string) {
	var ae *Error
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError, MsgUnhandled
	}
	switch ae.Kind {
	case KindValidation:
		return http.StatusBadRequest, MsgValidation
	case KindConfiguration:
		return http.StatusInternalServerError, MsgConfiguration
	case KindRateLimit:
		return http.StatusTooManyRequests, MsgRateLimit
	case KindAuthFailure:
		return http.StatusUnauthorized, MsgAuthFailure
	case KindProvider:
		if ae.Message != "" {
			return http.StatusInternalServerError, ae.Message
		}
		return http.StatusInternalServerError, MsgProvider
	case KindNotFound:
		return http.StatusNotFound, MsgNotFound
	default:
		return http.StatusInternalServerError, MsgUnhandled
	}
}
