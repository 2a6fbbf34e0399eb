package payment

import (
	"context"

	"tidyhouse/models"

	"github.com/stripe/stripe-go/v76"
)

// CheckoutService creates hosted checkout sessions and verifies the
// asynchronous callbacks they produce.
type CheckoutService interface {
	// CreateCheckoutSession sends the booking configuration and the quoted
	// price to the payment vendor and returns the redirect URL the customer
	// should be sent to.
	CreateCheckoutSession(ctx context.Context, cfg models.BookingConfiguration, price int) (string, error)

	// VerifyWebhook checks the signature on a webhook delivery and returns
	// the decoded event.
	VerifyWebhook(payload []byte, sigHeader string) (stripe.Event, error)
}
