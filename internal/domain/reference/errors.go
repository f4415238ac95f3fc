package reference

import "errors"

// Sentinel kinds for reference lookups.
var (
	ErrUnknownMonth  = errors.New("unknown month")
	ErrUnknownLocale = errors.New("unknown locale")
)
