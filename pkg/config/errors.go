package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrConfigNotLoaded is returned when attempting to access a config that hasn't been loaded
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrLoadingEnvFile is returned when an env or YAML file cannot be read or parsed
	ErrLoadingEnvFile = errors.New("failed to load environment file")

	// ErrUnsupportedValue is returned for YAML values that have no flat string form
	ErrUnsupportedValue = errors.New("unsupported value in environment file")

	// ErrWritingEnvFile is returned when an env file cannot be written
	ErrWritingEnvFile = errors.New("failed to write environment file")
)
