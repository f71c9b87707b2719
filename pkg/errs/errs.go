package errs

import (
	"errors"
	"fmt"
)

// Err represents a custom error type with a message.
type Err struct { //nolint:errname
	Message string `json:"message"`
}

var _ error = (*Err)(nil)

// New creates a new custom error with the given message.
func New(message string) *Err {
	return &Err{Message: message}
}

func (e *Err) Error() string {
	return e.Message
}

// IsExpected checks if the given error is of custom Err type.
func IsExpected(err error) bool {
	var target *Err
	return errors.As(err, &target)
}

// Error kinds reported by the migration run.
var (
	ErrConfiguration = New("configuration error")
	ErrConnection    = New("connection error")
	ErrStatement     = New("statement error")
	ErrVerification  = New("verification error")
)

// Wrap marks err with the given kind, so errors.Is(result, kind) holds.
func Wrap(kind *Err, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", kind, err)
}

// Exit codes returned to the invoking process.
const (
	ExitOK           = 0
	ExitUnknown      = 1
	ExitConfig       = 2
	ExitConnection   = 3
	ExitStatement    = 4
	ExitVerification = 5
)

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrConfiguration):
		return ExitConfig
	case errors.Is(err, ErrConnection):
		return ExitConnection
	case errors.Is(err, ErrStatement):
		return ExitStatement
	case errors.Is(err, ErrVerification):
		return ExitVerification
	default:
		return ExitUnknown
	}
}
