package questionnaire

import "errors"

// Questionnaire errors.
var (
	ErrIncomplete    = errors.New("questionnaire incomplete")
	ErrUnknownOption = errors.New("unknown option")
)
