package config

import "errors"

// Validation errors returned by validate when required configuration groups
// are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates an empty listen address or a negative
	// chat rate limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an unknown storage driver or missing
	// connection settings for the selected one.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid inference adapter settings
	// (for example, zero max attempts).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidClientConfigs indicates an unusable assistant client setup
	// (for example, a malformed server URL).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
