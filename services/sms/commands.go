package sms

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// BookingCanceller is the slice of the booking service the SMS command set
// needs: cancel the sender's next upcoming appointment.
type BookingCanceller interface {
	CancelNextByPhone(ctx context.Context, phone string) (bool, error)
}

// CommandRouter maps inbound SMS keywords to replies. Unrecognized messages
// get a generic acknowledgement.
type CommandRouter struct {
	Canceller    BookingCanceller
	SiteURL      string
	SupportPhone string
	Logger       *zap.Logger
}

// Handle routes one inbound message and returns the reply body.
func (r *CommandRouter) Handle(ctx context.Context, from, body string) string {
	switch strings.ToLower(strings.TrimSpace(body)) {
	case "schedule":
		return "Here is the link to schedule your cleaning: " + r.SiteURL + "/booking"

	case "help":
		return "Support Team here! Call us at " + r.SupportPhone + " for urgent issues."

	case "cancel":
		cancelled, err := r.Canceller.CancelNextByPhone(ctx, from)
		if err != nil {
			r.Logger.Error("SMS cancellation failed", zap.String("from", from), zap.Error(err))
			return "Sorry, something went wrong cancelling your appointment. Please call " + r.SupportPhone + "."
		}
		if !cancelled {
			return "We could not find a confirmed upcoming appointment to cancel. Reply HELP or call " + r.SupportPhone + "."
		}
		return "Your next upcoming cleaning appointment has been cancelled. We will miss you!"

	default:
		return "Thanks for messaging Tidy House! We received your note."
	}
}
