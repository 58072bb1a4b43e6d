package workout

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented is matched by NotImplementedError.
	ErrNotImplemented = errors.New("calorie formula not implemented")
	// ErrInvalidArgument reports a field value the formulas cannot use.
	ErrInvalidArgument = errors.New("invalid workout argument")
)

// NotImplementedError is returned when a workout without its own calorie
// formula is asked for spent calories. It indicates a missing variant, not bad data.
type NotImplementedError struct {
	Label string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Label, ErrNotImplemented)
}

func (e *NotImplementedError) Is(target error) bool {
	return target == ErrNotImplemented
}
