package booking

import (
	"context"

	"tidyhouse/models"
)

// SessionService manages the stateful multi-step booking form. Every
// operation returns the updated session view with the quote recomputed, so
// the frontend never holds a stale price.
type SessionService interface {
	Start(ctx context.Context) (*models.SessionResponse, error)
	Get(ctx context.Context, sessionID string) (*models.SessionResponse, error)

	// EditField updates one field and validates only that field; a failed
	// validation comes back in the response Errors, not as an error.
	EditField(ctx context.Context, sessionID, field, value string) (*models.SessionResponse, error)

	// ToggleAddOn flips membership of a catalog add-on.
	ToggleAddOn(ctx context.Context, sessionID, addOnID string) (*models.SessionResponse, error)

	// Next validates every field required up to and including the current
	// step and advances on success. On failure the step is unchanged and the
	// response carries per-field errors.
	Next(ctx context.Context, sessionID string) (*models.SessionResponse, error)

	// Back moves one step backward with no validation. No-op at step 1.
	Back(ctx context.Context, sessionID string) (*models.SessionResponse, error)

	// Submit runs full-form validation from the final step and hands the
	// configuration plus the quote snapshot to the checkout collaborator.
	// On success it returns the redirect URL and destroys the session; on
	// validation failure the response carries the errors and no external
	// call is made; on checkout failure the session data is retained.
	Submit(ctx context.Context, sessionID string) (string, *models.SessionResponse, error)
}

// BookingManager operates on persisted booking records.
type BookingManager interface {
	CancelBooking(ctx context.Context, id string) error
	CancelNextByPhone(ctx context.Context, phone string) (bool, error)
	CreateManualBooking(ctx context.Context, cfg models.BookingConfiguration, price int) (*models.Booking, error)
	ListBookings(ctx context.Context, limit int64) ([]models.Booking, error)
}
