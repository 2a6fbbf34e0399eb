package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	bookingsRepo "tidyhouse/database/repository/bookings"
	"tidyhouse/models"
	"tidyhouse/services/notification"
	"tidyhouse/services/payment"
	"tidyhouse/services/tasks"
	"tidyhouse/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

const maxWebhookBodyBytes = 65536

// StripeWebhookHandler finalizes bookings after Stripe confirms payment.
// Persisting the booking is the only hard step; the reminder and the two
// emails are best effort so a flaky provider never makes Stripe retry a
// booking that was already saved.
type StripeWebhookHandler struct {
	Checkout  payment.CheckoutService
	Repo      bookingsRepo.BookingRepository
	Reminders tasks.ReminderScheduler
	Mailer    *notification.BookingMailer
	Logger    *zap.Logger
}

// HandleStripeEvent handles POST /webhooks/stripe.
func (h *StripeWebhookHandler) HandleStripeEvent(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read webhook payload", err.Error())
		return
	}

	event, err := h.Checkout.VerifyWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		h.Logger.Warn("stripe webhook signature verification failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid webhook signature", "")
		return
	}

	if event.Type != "checkout.session.completed" {
		h.Logger.Debug("ignoring stripe event", zap.String("type", string(event.Type)))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to parse checkout session", err.Error())
		return
	}

	booking, err := h.confirmBooking(c, sess)
	if err != nil {
		// Let Stripe retry: the booking was not saved.
		h.Logger.Error("failed to persist paid booking",
			zap.String("session", sess.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to record booking", err.Error())
		return
	}

	amountPaid := fmt.Sprintf("%.2f", float64(sess.AmountTotal)/100)
	h.runFollowUps(c, booking, amountPaid)

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h *StripeWebhookHandler) confirmBooking(c *gin.Context, sess stripe.CheckoutSession) (models.Booking, error) {
	cfg, price := payment.BookingFromMetadata(sess.Metadata)

	email := cfg.Email
	if email == "" && sess.CustomerDetails != nil {
		email = sess.CustomerDetails.Email
	}

	booking := models.Booking{
		ID:              uuid.New().String(),
		Name:            cfg.Name,
		Email:           email,
		Phone:           cfg.Phone,
		Address:         cfg.Address,
		HomeSize:        cfg.HomeSize,
		Bathrooms:       cfg.Bathrooms,
		CleaningType:    cfg.CleaningType,
		CleaningNeeds:   cfg.CleaningNeeds,
		IsNewCustomer:   cfg.IsNewCustomer,
		AddOns:          cfg.AddOns,
		PreferredDate:   cfg.PreferredDate,
		TimeSlot:        cfg.TimeSlot,
		TotalPrice:      price,
		Status:          models.BookingStatusConfirmed,
		StripeSessionID: sess.ID,
	}

	if _, err := h.Repo.Create(c.Request.Context(), booking); err != nil {
		return models.Booking{}, err
	}

	h.Logger.Info("booking confirmed from stripe webhook",
		zap.String("booking", booking.ID), zap.String("session", sess.ID))
	return booking, nil
}

func (h *StripeWebhookHandler) runFollowUps(c *gin.Context, booking models.Booking, amountPaid string) {
	ctx := c.Request.Context()

	taskID, err := h.Reminders.Schedule(ctx, booking)
	if err != nil {
		h.Logger.Error("failed to schedule reminder",
			zap.String("booking", booking.ID), zap.Error(err))
	} else if taskID != "" {
		if err := h.Repo.SetReminderTask(ctx, booking.ID, taskID); err != nil {
			h.Logger.Warn("failed to record reminder task id",
				zap.String("booking", booking.ID), zap.Error(err))
		}
	}

	if booking.Email != "" {
		if err := h.Mailer.SendBookingConfirmation(ctx, booking, amountPaid); err != nil {
			h.Logger.Error("failed to email booking confirmation",
				zap.String("booking", booking.ID), zap.Error(err))
		}
	}

	if err := h.Mailer.SendBusinessAlert(ctx, booking, amountPaid); err != nil {
		h.Logger.Error("failed to email business alert",
			zap.String("booking", booking.ID), zap.Error(err))
	}
}
