package payment

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"tidyhouse/models"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// StripeCheckout implements CheckoutService against Stripe Checkout.
// The API key is set globally on the stripe package at startup.
type StripeCheckout struct {
	SiteURL       string
	WebhookSecret string
	BusinessName  string
	Logger        *zap.Logger
}

// NewStripeCheckout builds a StripeCheckout collaborator.
func NewStripeCheckout(siteURL, webhookSecret, businessName string, logger *zap.Logger) *StripeCheckout {
	return &StripeCheckout{
		SiteURL:       siteURL,
		WebhookSecret: webhookSecret,
		BusinessName:  businessName,
		Logger:        logger,
	}
}

// CreateCheckoutSession creates a payment-mode Checkout session carrying the
// complete booking as metadata. The webhook relies on that metadata to
// persist the booking after payment, so every field must be attached here.
func (s *StripeCheckout) CreateCheckoutSession(ctx context.Context, cfg models.BookingConfiguration, price int) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card", "us_bank_account"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("Cleaning Service (%s)", cfg.CleaningType)),
						Description: stripe.String(fmt.Sprintf("Scheduled for %s", cfg.PreferredDate)),
					},
					UnitAmount: stripe.Int64(int64(price) * 100), // Stripe expects cents
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:    stripe.String(s.SiteURL + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripe.String(s.SiteURL + "/booking?canceled=true"),
		CustomerEmail: stripe.String(cfg.Email),
	}

	for key, value := range BookingMetadata(cfg, price) {
		params.AddMetadata(key, value)
	}

	params.Context = ctx
	sess, err := checkoutsession.New(params)
	if err != nil {
		s.Logger.Error("stripe checkout session creation failed", zap.Error(err))
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	s.Logger.Info("stripe checkout session created",
		zap.String("session", sess.ID), zap.Int("price", price))
	return sess.URL, nil
}

// VerifyWebhook validates the Stripe-Signature header against the payload.
func (s *StripeCheckout) VerifyWebhook(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, s.WebhookSecret)
}

// BookingMetadata flattens a booking configuration into the string map Stripe
// accepts as session metadata.
func BookingMetadata(cfg models.BookingConfiguration, price int) map[string]string {
	return map[string]string{
		"customer_name":   cfg.Name,
		"phone":           cfg.Phone,
		"address":         cfg.Address,
		"home_size":       cfg.HomeSize,
		"bathrooms":       strconv.Itoa(cfg.Bathrooms),
		"cleaning_type":   cfg.CleaningType,
		"cleaning_needs":  cfg.CleaningNeeds,
		"is_new_customer": strconv.FormatBool(cfg.IsNewCustomer),
		"add_ons":         strings.Join(cfg.AddOns, ","),
		"preferred_date":  cfg.PreferredDate,
		"time_slot":       cfg.TimeSlot,
		"estimated_price": strconv.Itoa(price),
	}
}

// BookingFromMetadata rebuilds the booking configuration and price snapshot
// from checkout session metadata. The reverse of BookingMetadata.
func BookingFromMetadata(meta map[string]string) (models.BookingConfiguration, int) {
	cfg := models.BookingConfiguration{
		Name:          meta["customer_name"],
		Phone:         meta["phone"],
		Address:       meta["address"],
		HomeSize:      meta["home_size"],
		CleaningType:  meta["cleaning_type"],
		CleaningNeeds: meta["cleaning_needs"],
		PreferredDate: meta["preferred_date"],
		TimeSlot:      meta["time_slot"],
	}
	cfg.Bathrooms, _ = strconv.Atoi(meta["bathrooms"])
	cfg.IsNewCustomer, _ = strconv.ParseBool(meta["is_new_customer"])
	if raw := meta["add_ons"]; raw != "" {
		cfg.AddOns = strings.Split(raw, ",")
	}
	price, _ := strconv.Atoi(meta["estimated_price"])
	return cfg, price
}
