package config

import "errors"

// Validation errors returned by Config.Validate. Callers can match them with errors.Is.
var (
	ErrEmptyBaseURL   = errors.New("invalid base URL: must not be empty")
	ErrNoDays         = errors.New("no days configured")
	ErrInvalidDay     = errors.New("invalid day: must be between 1 and 31")
	ErrEmptyOutput    = errors.New("invalid output: path must not be empty")
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")
	ErrInvalidFormat  = errors.New("invalid format: must be 'text' or 'json'")
)

// ErrConfigNotFound is returned when an explicitly named configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")
