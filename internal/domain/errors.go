package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for search operations
var (
	// ErrQueryTooShort indicates the search text has fewer than the minimum characters
	ErrQueryTooShort = errors.New("please enter at least 2 characters")

	// ErrMalformedURL indicates the request URL could not be constructed
	ErrMalformedURL = errors.New("malformed search URL")

	// ErrNetwork indicates the search API is unreachable or timed out
	ErrNetwork = errors.New("search API is unreachable")

	// ErrDecode indicates the response did not match the expected schema
	ErrDecode = errors.New("search response could not be decoded")

	// ErrUnexpectedStatus indicates a non-2xx HTTP response
	ErrUnexpectedStatus = errors.New("unexpected status from search API")

	// ErrResponseTooLarge indicates the response body exceeded the read limit
	ErrResponseTooLarge = errors.New("search response too large")

	// ErrSuperseded indicates a newer search started before this one completed
	ErrSuperseded = errors.New("search superseded by a newer search")

	// ErrNothingToRetry indicates Retry was called before any search
	ErrNothingToRetry = errors.New("no previous search to retry")
)

// FailureKind classifies why a search failed
type FailureKind int

const (
	FailureNetwork FailureKind = iota
	FailureMalformedURL
	FailureDecode
	FailureUnexpectedStatus
)

// String returns a short, log-friendly kind name
func (k FailureKind) String() string {
	switch k {
	case FailureMalformedURL:
		return "malformed_url"
	case FailureDecode:
		return "decode"
	case FailureUnexpectedStatus:
		return "status"
	default:
		return "network"
	}
}

func (k FailureKind) sentinel() error {
	switch k {
	case FailureMalformedURL:
		return ErrMalformedURL
	case FailureDecode:
		return ErrDecode
	case FailureUnexpectedStatus:
		return ErrUnexpectedStatus
	default:
		return ErrNetwork
	}
}

// SearchError is the failure reason carried by a failed SearchState.
// errors.Is matches both the kind's sentinel and the underlying cause.
type SearchError struct {
	Kind FailureKind
	Err  error
}

// NewSearchError wraps err with a failure kind
func NewSearchError(kind FailureKind, err error) *SearchError {
	return &SearchError{Kind: kind, Err: err}
}

// Error implements the error interface
func (e *SearchError) Error() string {
	if e.Err == nil {
		return e.Kind.sentinel().Error()
	}
	return fmt.Sprintf("%s: %v", e.Kind.sentinel(), e.Err)
}

// Unwrap exposes both the kind sentinel and the cause
func (e *SearchError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Err}
}

// AsSearchError extracts a *SearchError from err, classifying anything
// else as a network failure.
func AsSearchError(err error) *SearchError {
	var se *SearchError
	if errors.As(err, &se) {
		return se
	}
	return NewSearchError(FailureNetwork, err)
}
