package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tidyhouse/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

// Reminders fire this long before the appointment.
const reminderLead = 24 * time.Hour

// Twilio-style vendors require scheduled sends to sit at least this far in
// the future; appointments closer than this simply get no reminder.
const minLeadTime = 15 * time.Minute

// Hour of day each time window is treated as starting at, local time.
var slotStartHour = map[string]int{
	models.TimeSlotMorning:   9,
	models.TimeSlotAfternoon: 13,
	models.TimeSlotEvening:   17,
}

// ReminderScheduler schedules and revokes appointment reminder messages.
type ReminderScheduler interface {
	// Schedule enqueues the reminder for a booking and returns the task ID,
	// or "" when the appointment is too soon to warrant one.
	Schedule(ctx context.Context, booking models.Booking) (string, error)
	// Cancel removes a pending reminder. Missing tasks are not an error.
	Cancel(ctx context.Context, bookingID string) error
}

// AsynqScheduler implements ReminderScheduler on an asynq queue.
type AsynqScheduler struct {
	Client    *asynq.Client
	Inspector *asynq.Inspector
	Logger    *zap.Logger
}

// NewAsynqScheduler builds the scheduler from the reminder queue redis opts.
func NewAsynqScheduler(redisOpts asynq.RedisClientOpt, logger *zap.Logger) *AsynqScheduler {
	return &AsynqScheduler{
		Client:    asynq.NewClient(redisOpts),
		Inspector: asynq.NewInspector(redisOpts),
		Logger:    logger,
	}
}

func reminderTaskID(bookingID string) string {
	return "reminder:" + bookingID
}

// ReminderFireTime returns when the reminder for an appointment should be
// sent: reminderLead before the slot's start hour on the booked date.
func ReminderFireTime(date, timeSlot string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid appointment date %q: %w", date, err)
	}
	hour, ok := slotStartHour[timeSlot]
	if !ok {
		hour = slotStartHour[models.TimeSlotMorning]
	}
	appointment := day.Add(time.Duration(hour) * time.Hour)
	return appointment.Add(-reminderLead), nil
}

// Schedule enqueues a reminder:send task processed 24h before the visit.
// The task ID is derived from the booking ID so cancellation can find it.
func (s *AsynqScheduler) Schedule(ctx context.Context, booking models.Booking) (string, error) {
	fireAt, err := ReminderFireTime(booking.PreferredDate, booking.TimeSlot)
	if err != nil {
		return "", err
	}
	if fireAt.Before(time.Now().Add(minLeadTime)) {
		s.Logger.Info("skipping SMS reminder: too close to appointment time",
			zap.String("booking", booking.ID), zap.Time("fireAt", fireAt))
		return "", nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		BookingID: booking.ID,
		Phone:     booking.Phone,
		Date:      booking.PreferredDate,
		TimeSlot:  booking.TimeSlot,
	})
	if err != nil {
		return "", err
	}

	taskID := reminderTaskID(booking.ID)
	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := s.Client.EnqueueContext(ctx, task,
		asynq.ProcessAt(fireAt),
		asynq.TaskID(taskID),
		asynq.Queue("default"),
	); err != nil {
		return "", fmt.Errorf("failed to enqueue reminder: %w", err)
	}

	s.Logger.Info("scheduled SMS reminder",
		zap.String("booking", booking.ID), zap.Time("fireAt", fireAt))
	return taskID, nil
}

// Cancel deletes the pending reminder task for a booking. Tasks that already
// ran or never existed are treated as success.
func (s *AsynqScheduler) Cancel(ctx context.Context, bookingID string) error {
	err := s.Inspector.DeleteTask("default", reminderTaskID(bookingID))
	if err != nil {
		if errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
			return nil
		}
		return err
	}
	s.Logger.Info("cancelled SMS reminder", zap.String("booking", bookingID))
	return nil
}
