package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrWineNotFound is matched by every [NotFoundError].
	ErrWineNotFound = errors.New("wine not found")

	// ErrMissingMandatoryField is returned when a create request leaves a
	// field unset.
	ErrMissingMandatoryField = errors.New("missing mandatory field")

	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrEmptyOperator           = errors.New("operator is empty")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrTooManyRequests         = errors.New("too many requests")
	ErrServerUnavailable       = errors.New("catalog server unavailable")
)

// NotFoundError reports that no wine with ID exists, either because it was
// never stored or because it was deleted concurrently.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("wine %s not found", e.ID)
}

// Unwrap makes errors.Is(err, ErrWineNotFound) hold.
func (e *NotFoundError) Unwrap() error {
	return ErrWineNotFound
}
