package adobesign

import "errors"

var (
	// ErrMissingClientID is returned when the client id header is absent.
	ErrMissingClientID = errors.New("missing client id")
	// ErrInvalidClientID is returned when the client id header does not match.
	ErrInvalidClientID = errors.New("invalid client id")
	// ErrInvalidPayload marks a body that is not a well-formed notification.
	ErrInvalidPayload = errors.New("invalid notification payload")
	// ErrPayloadTooLarge marks a body over the size cap.
	ErrPayloadTooLarge = errors.New("notification payload too large")
	// ErrUpstream wraps document or asset store failures.
	ErrUpstream = errors.New("upstream dependency failure")
)

// ErrorKind classifies webhook failures for transport-specific mapping.
type ErrorKind string

const (
	// ErrorUnknown is used when error is nil or not classified.
	ErrorUnknown ErrorKind = "unknown"
	// ErrorAuthentication indicates a missing or mismatched client id.
	ErrorAuthentication ErrorKind = "authentication"
	// ErrorValidation indicates a malformed notification.
	ErrorValidation ErrorKind = "validation"
	// ErrorPayloadTooLarge indicates the body exceeded the cap.
	ErrorPayloadTooLarge ErrorKind = "payload_too_large"
	// ErrorUpstream indicates a store failure; the provider is expected to retry.
	ErrorUpstream ErrorKind = "upstream"
)

// ClassifyError classifies a returned webhook error.
func ClassifyError(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorUnknown
	case errors.Is(err, ErrMissingClientID), errors.Is(err, ErrInvalidClientID):
		return ErrorAuthentication
	case errors.Is(err, ErrInvalidPayload):
		return ErrorValidation
	case errors.Is(err, ErrPayloadTooLarge):
		return ErrorPayloadTooLarge
	case errors.Is(err, ErrUpstream):
		return ErrorUpstream
	default:
		return ErrorUnknown
	}
}
