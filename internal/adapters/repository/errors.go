package repository

import "errors"

// Sentinel kinds for repository errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	ErrMissingColumn     = errors.New("missing dataset column")
	ErrNoTable           = errors.New("no results table found")
	ErrSessionNotFound   = errors.New("session not found")
)
