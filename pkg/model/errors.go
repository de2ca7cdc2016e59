package model

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrInvalidInput indicates the caller sent bad input (shape, length or
	// identifier format). Never retried, always a client error.
	ErrInvalidInput = goerr.New("invalid input")

	// ErrModelUnavailable indicates a transport-level failure of the
	// language model call (network, auth, quota).
	ErrModelUnavailable = goerr.New("language model unavailable")

	// ErrGenerationFailed indicates both generation attempts produced
	// unusable output.
	ErrGenerationFailed = goerr.New("brief generation failed")

	// ErrStorageFailed indicates the backing store rejected an operation.
	ErrStorageFailed = goerr.New("storage operation failed")
)

// Parse-level failures. These never leave the generator; they drive the
// single strict-prompt retry.
var (
	ErrMalformedOutput    = goerr.New("model output is not valid JSON")
	ErrMissingField       = goerr.New("model output is missing a required field")
	ErrTypeMismatch       = goerr.New("model output field has wrong type")
	ErrInvalidActionShape = goerr.New("model output action has invalid shape")
)
