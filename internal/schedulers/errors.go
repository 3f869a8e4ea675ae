package schedulers

import "errors"

var (
	// ErrInvalidInput is returned for unusable process lists and unknown algorithms.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidConfig is returned when quantum or aging rate is not positive.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrIncompleteRun means a scheduler stopped before every process finished.
	// It is a bug in the scheduler, not in the caller's input.
	ErrIncompleteRun = errors.New("incomplete run")
)

// IsClientError reports whether err was caused by the caller's input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInvalidConfig)
}
