package service

import (
	"errors"
	"fmt"
)

// Error kinds returned by the service. Domain errors are joined to one of
// these so callers can classify them with errors.Is.
var (
	ErrNotStarted       = errors.New("service not started")
	ErrBadInput         = errors.New("bad input")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrUnknownDimension = errors.New("unknown dimension")
)

// UnknownEntityError reports a drill-down name that matches no record.
// Suggestions holds the closest known names.
type UnknownEntityError struct {
	Dimension   string
	Name        string
	Suggestions []string
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Dimension, e.Name)
}

// Is reports ErrNotFound as the kind of every UnknownEntityError.
func (e *UnknownEntityError) Is(target error) bool {
	return target == ErrNotFound
}

// kind joins err to a service error kind.
func kind(k, err error) error {
	return fmt.Errorf("%w: %w", k, err)
}
