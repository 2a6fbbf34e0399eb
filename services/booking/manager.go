package booking

import (
	"context"
	"errors"
	"fmt"

	bookingsRepo "tidyhouse/database/repository/bookings"
	"tidyhouse/models"
	"tidyhouse/services/quote"
	"tidyhouse/services/tasks"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultBookingManager implements BookingManager.
type DefaultBookingManager struct {
	Repo      bookingsRepo.BookingRepository
	Reminders tasks.ReminderScheduler
	Logger    *zap.Logger
}

// CancelBooking flips a booking to cancelled and then revokes its pending
// reminder. The status change is the hard step; a reminder that cannot be
// cancelled is logged and never fails the cancellation.
func (m *DefaultBookingManager) CancelBooking(ctx context.Context, id string) error {
	booking, err := m.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil
	}

	if err := m.Repo.UpdateStatus(ctx, id, models.BookingStatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	// Best effort from here on.
	if booking.ReminderTaskID != "" {
		if err := m.Reminders.Cancel(ctx, booking.ID); err != nil {
			m.Logger.Error("failed to cancel scheduled reminder",
				zap.String("booking", booking.ID), zap.Error(err))
		} else if err := m.Repo.SetReminderTask(ctx, booking.ID, ""); err != nil {
			m.Logger.Warn("failed to clear reminder task id",
				zap.String("booking", booking.ID), zap.Error(err))
		}
	}

	m.Logger.Info("booking cancelled", zap.String("booking", booking.ID))
	return nil
}

// CancelNextByPhone cancels the next upcoming confirmed booking for a phone
// number. Returns false when there is nothing to cancel.
func (m *DefaultBookingManager) CancelNextByPhone(ctx context.Context, phone string) (bool, error) {
	booking, err := m.Repo.NextConfirmedByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up booking by phone: %w", err)
	}
	if err := m.CancelBooking(ctx, booking.ID); err != nil {
		return false, err
	}
	return true, nil
}

// CreateManualBooking records a booking taken over the phone. Payment is
// settled out of band, so the record is confirmed immediately and its
// reminder scheduled the same way the payment webhook does it.
func (m *DefaultBookingManager) CreateManualBooking(ctx context.Context, cfg models.BookingConfiguration, price int) (*models.Booking, error) {
	required := []string{FieldName, FieldPhone, FieldPreferredDate, FieldTimeSlot}
	if errs := ValidateFields(cfg, required); len(errs) > 0 {
		for field, msg := range errs {
			return nil, fmt.Errorf("invalid manual booking: %s: %s", field, msg)
		}
	}

	if price <= 0 {
		price = quote.Calculate(cfg)
	}

	booking := models.Booking{
		ID:            uuid.New().String(),
		Name:          cfg.Name,
		Email:         cfg.Email,
		Phone:         cfg.Phone,
		Address:       cfg.Address,
		HomeSize:      cfg.HomeSize,
		Bathrooms:     cfg.Bathrooms,
		CleaningType:  cfg.CleaningType,
		CleaningNeeds: cfg.CleaningNeeds,
		IsNewCustomer: cfg.IsNewCustomer,
		AddOns:        cfg.AddOns,
		PreferredDate: cfg.PreferredDate,
		TimeSlot:      cfg.TimeSlot,
		TotalPrice:    price,
		Status:        models.BookingStatusConfirmed,
	}

	if _, err := m.Repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to save manual booking: %w", err)
	}

	taskID, err := m.Reminders.Schedule(ctx, booking)
	if err != nil {
		m.Logger.Error("failed to schedule reminder for manual booking",
			zap.String("booking", booking.ID), zap.Error(err))
	} else if taskID != "" {
		if err := m.Repo.SetReminderTask(ctx, booking.ID, taskID); err != nil {
			m.Logger.Warn("failed to record reminder task id",
				zap.String("booking", booking.ID), zap.Error(err))
		}
		booking.ReminderTaskID = taskID
	}

	m.Logger.Info("manual booking created",
		zap.String("booking", booking.ID), zap.Int("price", price))
	return &booking, nil
}

// ListBookings returns recent bookings for the admin dashboard.
func (m *DefaultBookingManager) ListBookings(ctx context.Context, limit int64) ([]models.Booking, error) {
	return m.Repo.List(ctx, limit)
}
