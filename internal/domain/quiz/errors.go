package quiz

import "errors"

// Quiz transition errors.
var (
	ErrNoSelection     = errors.New("no option selected")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrNotAnswered     = errors.New("question not answered yet")
	ErrFinished        = errors.New("quiz finished")
	ErrUnknownOption   = errors.New("unknown option")
)
