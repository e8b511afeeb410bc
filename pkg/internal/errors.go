package internal

import (
	"errors"
)

var (
	// ErrPromptAborted is returned by a Prompter when the user interrupts a
	// question.
	ErrPromptAborted = errors.New("prompt aborted")

	// ErrCancelled matches every *CancelledError.
	ErrCancelled = errors.New("operation cancelled")
)

// CancelledError stops the flow before any filesystem change. Message is
// meant for the user.
type CancelledError struct {
	Message string
}

func (e *CancelledError) Error() string {
	return e.Message
}

func (e *CancelledError) Is(target error) bool {
	return target == ErrCancelled
}

func cancelled() *CancelledError {
	return &CancelledError{Message: ColorRed.Render("✖") + " Operation cancelled"}
}
