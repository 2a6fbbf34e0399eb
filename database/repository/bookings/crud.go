package bookingsRepo

import (
	"context"
	"errors"
	"time"

	"tidyhouse/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new booking record and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return "", err
	}
	return booking.ID, nil
}

// GetByID returns a booking by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateStatus sets the status of a booking.
func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("booking not found")
	}
	return nil
}

// SetReminderTask records the scheduled reminder task ID on a booking.
// An empty taskID clears the field.
func (r *mongoBookingRepo) SetReminderTask(ctx context.Context, id string, taskID string) error {
	update := bson.M{"$set": bson.M{"reminder_task_id": taskID, "updated_at": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("booking not found")
	}
	return nil
}
