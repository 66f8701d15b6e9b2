package tone

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a document cannot be scored at all.
	ErrInvalidInput = errors.New("tone: invalid input")

	// ErrConfig matches any *ConfigError via errors.Is.
	ErrConfig = errors.New("tone: configuration error")
)

// ConfigError reports a dictionary, snapshot or configuration problem found
// before any document is scored.
type ConfigError struct {
	Op  string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("tone: %s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrConfig) true for every ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

func configErrorf(op, format string, args ...interface{}) error {
	return &ConfigError{Op: op, Err: fmt.Errorf(format, args...)}
}

func recoverWithError(err *error) {
	if rv := recover(); rv != nil {
		*err = fmt.Errorf("got panic: %v", rv)
	}
}
