// internal/app/lifecycle/errors.go
package lifecycle

import (
	"errors"
	"fmt"
)

// Error classes. Transport callers map these to status codes with errors.Is;
// the more specific wrapped errors below carry the human-readable reason.
var (
	// ErrUnauthorized means the supplied teacher identity is not in the directory.
	ErrUnauthorized = errors.New("invalid teacher credentials")

	// ErrInvalidInput covers malformed dates, date-ordering violations,
	// past expiration on create, and malformed identifiers.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound means the identifier was well-formed but matched no record.
	ErrNotFound = errors.New("announcement not found")

	// ErrStorageFailure means the store could not confirm the requested effect.
	ErrStorageFailure = errors.New("storage failure")
)

var (
	errBadDateFormat        = fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", ErrInvalidInput)
	errExpirationInPast     = fmt.Errorf("%w: expiration date cannot be in the past", ErrInvalidInput)
	errStartAfterExpiration = fmt.Errorf("%w: start date cannot be after expiration date", ErrInvalidInput)
	errBadAnnouncementID    = fmt.Errorf("%w: invalid announcement ID", ErrInvalidInput)
)
