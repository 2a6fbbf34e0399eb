package booking

import "errors"

var (
	// ErrSessionNotFound means the session ID is unknown or the session
	// expired out of the cache.
	ErrSessionNotFound = errors.New("booking session not found or expired")

	// ErrUnknownAddOn means the add-on ID is not in the catalog.
	ErrUnknownAddOn = errors.New("unknown add-on")

	// ErrUnknownField means a field edit named a field that does not exist.
	ErrUnknownField = errors.New("unknown booking field")

	// ErrNotFinalStep means Submit was fired before the last step.
	ErrNotFinalStep = errors.New("booking form is not on the final step")

	// ErrSubmitInFlight guards against double submission while the checkout
	// call is pending.
	ErrSubmitInFlight = errors.New("submission already in progress")

	// ErrBookingNotFound means no persisted booking matches the identifier.
	ErrBookingNotFound = errors.New("booking not found")
)
