package llm

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey means no credential was configured. It is detected
// before any network I/O and never retried.
var ErrMissingAPIKey = errors.New("no API key configured for completion provider")

type ErrUnsupportedProvider struct {
	Provider string
}

func (e ErrUnsupportedProvider) Error() string {
	return fmt.Sprintf("unsupported LLM provider: %s", e.Provider)
}

// UpstreamError carries a non-success status and body from the completion
// endpoint.
type UpstreamError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e UpstreamError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("completion request failed: %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("completion request failed: %s", e.Status)
}

// TimeoutError means the request deadline elapsed before the provider
// responded.
type TimeoutError struct {
	Err error
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("completion request timed out: %v", e.Err)
}

func (e TimeoutError) Unwrap() error { return e.Err }

// TransportError wraps connection-level failures reaching the provider.
type TransportError struct {
	Err error
}

func (e TransportError) Error() string {
	return fmt.Sprintf("completion request transport failure: %v", e.Err)
}

func (e TransportError) Unwrap() error { return e.Err }
