package user

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrAlreadyExists      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPhoneInUse         = errors.New("phone already in use")

	// ErrUniqueViolation is returned by Repository implementations when a
	// write trips the email or phone uniqueness constraint.
	ErrUniqueViolation = errors.New("unique constraint violation")
)

// LogicError wraps an unexpected store failure or a business conflict that
// the explicit pre-checks did not catch (e.g. a unique constraint firing at
// write time). It keeps the cause for diagnostics but stays a typed,
// recoverable signal.
type LogicError struct {
	Op    string
	Cause error
}

func NewLogicError(op string, cause error) *LogicError {
	return &LogicError{Op: op, Cause: cause}
}

func (e *LogicError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("user service: %s failed", e.Op)
	}
	return fmt.Sprintf("user service: %s failed: %v", e.Op, e.Cause)
}

func (e *LogicError) Unwrap() error { return e.Cause }

func IsLogicError(err error) bool {
	var le *LogicError
	return errors.As(err, &le)
}
