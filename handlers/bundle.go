package handlers

// HandlerBundle aggregates all HTTP handlers so route registration takes a
// single dependency.
type HandlerBundle struct {
	Booking       *BookingHandler
	StripeWebhook *StripeWebhookHandler
	SMSWebhook    *SMSWebhookHandler
	Contact       *ContactHandler
	Admin         *AdminHandler
}
