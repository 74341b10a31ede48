package adapter

import "errors"

var (
	// ErrInferenceUnavailable wraps every final failure of the inference
	// backend, including exhausted retries.
	ErrInferenceUnavailable = errors.New("inference service unavailable")
	// ErrModelLoading is reported for 503 answers while the model warms up.
	ErrModelLoading = errors.New("model is loading")
	// ErrEmptyGeneration is returned when the model answered without text.
	ErrEmptyGeneration = errors.New("model returned no text")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
