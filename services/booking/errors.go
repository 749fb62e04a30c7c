package booking

import (
	"errors"
	"fmt"
)

// ErrNoSession means there is no booking in progress for the given session:
// the draft is absent, expired, or unreadable. Views fail closed on it and
// send the guest back to the dates step.
var ErrNoSession = errors.New("no booking in progress")

// StepError is a validation failure inside a wizard step. Title is the
// user-facing headline ("Invalid Dates", "Terms Required"); Message explains
// what to fix. Step errors never mutate the stored draft.
type StepError struct {
	Title   string
	Message string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Message)
}

func NewStepError(title, message string) error {
	return &StepError{Title: title, Message: message}
}
