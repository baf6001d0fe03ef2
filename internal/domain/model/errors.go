package model

import "errors"

var (
	// ErrTodoNotFound signals that no todo matches the requested id.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrUserAlreadyExists signals a registration with a taken username.
	ErrUserAlreadyExists = errors.New("username already registered")

	// ErrInvalidCredentials signals a login with an unknown user or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError marks caller-supplied invalid input. Controllers translate
// it to a 400 response; it is never logged as a fault.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
