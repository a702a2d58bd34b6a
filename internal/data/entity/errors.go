package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Domain error taxonomy. Services wrap these with context; the HTTP layer
// branches on them with errors.Is/As.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrEmptySelection   = errors.New("selection is empty")
	ErrSeatConflict     = errors.New("seats no longer available")
	ErrPersistence      = errors.New("persistence failure")
	ErrNotFound         = errors.New("not found")
	ErrInvalidState     = errors.New("invalid booking step")
)

// SeatConflictError reports which seats raced with another booking. The
// commit failing with this error is not retryable as-is: the caller must
// re-offer seat selection with the listed seats marked booked.
type SeatConflictError struct {
	Labels []string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seats no longer available: %s", strings.Join(e.Labels, ", "))
}

func (e *SeatConflictError) Is(target error) bool {
	return target == ErrSeatConflict
}
