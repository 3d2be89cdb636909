package services

import (
	"context"
	"fmt"

	"varanex_backend/models"
)

// Completer is the provider boundary: one chat completion per call.
type Completer interface {
	Complete(ctx context.Context, req models.CompletionRequest) (string, error)
}

// ProviderError is a failed completion. StatusCode is the provider's HTTP
// status, or 0 when no response was received.
type ProviderError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	switch {
	case e.Message != "" && e.StatusCode != 0:
		return fmt.Sprintf("provider error (%d): %s", e.StatusCode, e.Message)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return fmt.Sprintf("provider error (%d)", e.StatusCode)
	}
}

func (e *ProviderError) Unwrap() error { return e.Err }
