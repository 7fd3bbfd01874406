package wizard

import "fmt"

// ValidationError reports malformed caller input (bad index, out-of-range
// value, missing field).
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Message: msg,
	}
}

// CollaboratorError reports a failure from an external collaborator (catalog,
// coupon lookup, submission). It is surfaced to the UI and never retried here.
type CollaboratorError struct {
	Code    string
	Message string
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewCollaboratorError(msg string) error {
	return &CollaboratorError{
		Code:    "collaboratorError",
		Message: msg,
	}
}
