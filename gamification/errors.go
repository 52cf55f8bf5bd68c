package gamification

import "errors"

var (
	// ErrUserNotFound is returned when an operation references a user that
	// does not exist. Detected before any mutation.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned by signup when the username or email is
	// already taken.
	ErrDuplicateUser = errors.New("username or email already exists")
)

// ValidationError describes malformed or out-of-range input. It is always
// raised before any state change.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
