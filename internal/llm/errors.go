package llm

import (
	"context"
	"errors"
	"net"

	genai "google.golang.org/genai"
)

var (
	// ErrMissingAPIKey means the required credential is absent from the
	// environment; surfaced before any network attempt.
	ErrMissingAPIKey = errors.New("llm: GEMINI_API_KEY is not configured")
	// ErrEmptyResponse means the service answered without a usable
	// first-candidate text.
	ErrEmptyResponse = errors.New("llm: unexpected response shape")
)

// FailureKind partitions remote-call errors into the categories the
// orchestrator maps to user-facing messages. None of them are retried.
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	FailureMissingCredential
	FailureAuth
	FailureRateLimit
	FailureBadRequest
	FailurePayloadTooLarge
	FailureServer
	FailureNetwork
	FailureResponseShape
)

// Classify maps an error from a remote call onto a FailureKind plus the
// upstream machine message when one exists.
func Classify(err error) (FailureKind, string) {
	if err == nil {
		return FailureUnknown, ""
	}
	if errors.Is(err, ErrMissingAPIKey) {
		return FailureMissingCredential, ""
	}
	if errors.Is(err, ErrEmptyResponse) {
		return FailureResponseShape, ""
	}
	if apiErr, ok := asAPIError(err); ok {
		switch {
		case apiErr.Code == 401 || apiErr.Code == 403:
			return FailureAuth, apiErr.Message
		case apiErr.Code == 429:
			return FailureRateLimit, apiErr.Message
		case apiErr.Code == 400:
			return FailureBadRequest, apiErr.Message
		case apiErr.Code == 413:
			return FailurePayloadTooLarge, apiErr.Message
		case apiErr.Code >= 500:
			return FailureServer, apiErr.Message
		}
		return FailureUnknown, apiErr.Message
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return FailureNetwork, ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureNetwork, ""
	}
	return FailureUnknown, ""
}

// asAPIError unwraps a genai API error whether it was returned by value
// or by pointer.
func asAPIError(err error) (genai.APIError, bool) {
	var v genai.APIError
	if errors.As(err, &v) {
		return v, true
	}
	var p *genai.APIError
	if errors.As(err, &p) && p != nil {
		return *p, true
	}
	return genai.APIError{}, false
}
