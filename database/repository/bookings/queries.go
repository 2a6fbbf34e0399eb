package bookingsRepo

import (
	"context"

	"tidyhouse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns the most recent bookings, newest first.
func (r *mongoBookingRepo) List(ctx context.Context, limit int64) ([]models.Booking, error) {
	if limit <= 0 {
		limit = 100
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// NextConfirmedByPhone returns the earliest upcoming confirmed booking for a
// phone number. Returns mongo.ErrNoDocuments when there is none.
func (r *mongoBookingRepo) NextConfirmedByPhone(ctx context.Context, phone string) (*models.Booking, error) {
	filter := bson.M{
		"phone":  phone,
		"status": models.BookingStatusConfirmed,
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "preferred_date", Value: 1}})

	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
