package pricing

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInterval is returned when a rental interval ends before it starts.
var ErrInvalidInterval = errors.New("invalid interval: end before start")

// InvalidIntervalError carries the offending timestamps.
type InvalidIntervalError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalid interval: end %s before start %s",
		e.End.Format(time.RFC3339), e.Start.Format(time.RFC3339))
}

func (e *InvalidIntervalError) Unwrap() error {
	return ErrInvalidInterval
}
