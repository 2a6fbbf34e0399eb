package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"tidyhouse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type fakeRepo struct {
	bookings  map[string]*models.Booking
	statusErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeRepo) Create(ctx context.Context, b models.Booking) (string, error) {
	r.bookings[b.ID] = &b
	return b.ID, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *b
	return &copied, nil
}

func (r *fakeRepo) List(ctx context.Context, limit int64) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if r.statusErr != nil {
		return r.statusErr
	}
	b, ok := r.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.Status = status
	return nil
}

func (r *fakeRepo) SetReminderTask(ctx context.Context, id, taskID string) error {
	b, ok := r.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.ReminderTaskID = taskID
	return nil
}

func (r *fakeRepo) NextConfirmedByPhone(ctx context.Context, phone string) (*models.Booking, error) {
	var next *models.Booking
	for _, b := range r.bookings {
		if b.Phone != phone || b.Status != models.BookingStatusConfirmed {
			continue
		}
		if next == nil || b.PreferredDate < next.PreferredDate {
			next = b
		}
	}
	if next == nil {
		return nil, mongo.ErrNoDocuments
	}
	copied := *next
	return &copied, nil
}

type fakeScheduler struct {
	scheduled []string
	cancelled []string
	taskID    string
	cancelErr error
}

func (s *fakeScheduler) Schedule(ctx context.Context, b models.Booking) (string, error) {
	s.scheduled = append(s.scheduled, b.ID)
	return s.taskID, nil
}

func (s *fakeScheduler) Cancel(ctx context.Context, bookingID string) error {
	if s.cancelErr != nil {
		return s.cancelErr
	}
	s.cancelled = append(s.cancelled, bookingID)
	return nil
}

func newManager() (*DefaultBookingManager, *fakeRepo, *fakeScheduler) {
	repo := newFakeRepo()
	sched := &fakeScheduler{taskID: "reminder:task"}
	return &DefaultBookingManager{Repo: repo, Reminders: sched, Logger: zap.NewNop()}, repo, sched
}

func seedBooking(repo *fakeRepo, id, phone, date string) {
	repo.bookings[id] = &models.Booking{
		ID:             id,
		Phone:          phone,
		PreferredDate:  date,
		Status:         models.BookingStatusConfirmed,
		ReminderTaskID: "reminder:" + id,
	}
}

func TestCancelBookingRevokesReminder(t *testing.T) {
	m, repo, sched := newManager()
	seedBooking(repo, "b1", "4145550100", "2026-10-01")

	require.NoError(t, m.CancelBooking(context.Background(), "b1"))
	assert.Equal(t, models.BookingStatusCancelled, repo.bookings["b1"].Status)
	assert.Equal(t, []string{"b1"}, sched.cancelled)
	assert.Empty(t, repo.bookings["b1"].ReminderTaskID)
}

func TestCancelBookingSurvivesReminderFailure(t *testing.T) {
	m, repo, sched := newManager()
	seedBooking(repo, "b1", "4145550100", "2026-10-01")
	sched.cancelErr = errors.New("twilio timeout")

	// Reminder revocation is best effort; the status change must stick.
	require.NoError(t, m.CancelBooking(context.Background(), "b1"))
	assert.Equal(t, models.BookingStatusCancelled, repo.bookings["b1"].Status)
}

func TestCancelBookingStatusFailureIsHard(t *testing.T) {
	m, repo, _ := newManager()
	seedBooking(repo, "b1", "4145550100", "2026-10-01")
	repo.statusErr = errors.New("db down")

	assert.Error(t, m.CancelBooking(context.Background(), "b1"))
}

func TestCancelBookingUnknownID(t *testing.T) {
	m, _, _ := newManager()
	assert.ErrorIs(t, m.CancelBooking(context.Background(), "ghost"), ErrBookingNotFound)
}

func TestCancelBookingAlreadyCancelledIsNoop(t *testing.T) {
	m, repo, sched := newManager()
	seedBooking(repo, "b1", "4145550100", "2026-10-01")
	repo.bookings["b1"].Status = models.BookingStatusCancelled

	require.NoError(t, m.CancelBooking(context.Background(), "b1"))
	assert.Empty(t, sched.cancelled)
}

func TestCancelNextByPhonePicksEarliest(t *testing.T) {
	m, repo, _ := newManager()
	seedBooking(repo, "later", "4145550100", "2026-11-01")
	seedBooking(repo, "sooner", "4145550100", "2026-10-01")

	ok, err := m.CancelNextByPhone(context.Background(), "4145550100")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, models.BookingStatusCancelled, repo.bookings["sooner"].Status)
	assert.Equal(t, models.BookingStatusConfirmed, repo.bookings["later"].Status)
}

func TestCancelNextByPhoneNothingToCancel(t *testing.T) {
	m, _, _ := newManager()
	ok, err := m.CancelNextByPhone(context.Background(), "0000000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateManualBookingComputesQuote(t *testing.T) {
	m, repo, sched := newManager()
	cfg := models.BookingConfiguration{
		HomeSize:      models.HomeSize2BR,
		Bathrooms:     1,
		CleaningType:  models.CleaningTypeStandard,
		CleaningNeeds: models.FrequencyOneTime,
		PreferredDate: time.Now().AddDate(0, 0, 5).Format("2006-01-02"),
		TimeSlot:      models.TimeSlotMorning,
		Name:          "Phone Customer",
		Phone:         "4145550199",
	}

	booking, err := m.CreateManualBooking(context.Background(), cfg, 0)
	require.NoError(t, err)
	assert.Equal(t, 140, booking.TotalPrice)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Contains(t, repo.bookings, booking.ID)
	assert.Equal(t, []string{booking.ID}, sched.scheduled)
	assert.Equal(t, "reminder:task", repo.bookings[booking.ID].ReminderTaskID)
}

func TestCreateManualBookingValidatesContact(t *testing.T) {
	m, _, _ := newManager()
	_, err := m.CreateManualBooking(context.Background(), models.BookingConfiguration{}, 100)
	assert.Error(t, err)
}
