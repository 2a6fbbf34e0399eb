package bookingsRepo

import (
	"context"

	"tidyhouse/database"
	"tidyhouse/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines persistence for confirmed booking records.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, limit int64) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	SetReminderTask(ctx context.Context, id string, taskID string) error
	NextConfirmedByPhone(ctx context.Context, phone string) (*models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("tidyhouse")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
