package port

import "errors"

var (
	// ErrNotFound is returned when an ad referenced by an id or event does
	// not exist.
	ErrNotFound = errors.New("ad not found")

	// ErrDuplicateEvent is returned when an event id has already been
	// recorded. Callers treat it as a successful no-op.
	ErrDuplicateEvent = errors.New("duplicate event")

	// ErrCapExceeded is returned by the frequency store when an increment
	// would push a per-day counter past the ad's frequency cap.
	ErrCapExceeded = errors.New("frequency cap exceeded")

	// ErrConflict is returned when an atomic counter update lost its race
	// more times than the bounded retry allows.
	ErrConflict = errors.New("concurrent update conflict")

	// ErrValidation wraps validation failures on inbound input. It is
	// the only engine error surfaced synchronously to event producers.
	ErrValidation = errors.New("validation failed")
)
