package notification

import (
	"context"
	"testing"

	"tidyhouse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMailer() (*BookingMailer, *StubEmailSender) {
	stub := &StubEmailSender{}
	return &BookingMailer{
		Sender:        stub,
		BusinessName:  "Tidy House Cleaners",
		BusinessEmail: "bookings@tidyhouse.test",
		BusinessPhone: "555-0199",
	}, stub
}

func TestSendBookingConfirmation(t *testing.T) {
	m, stub := newMailer()
	booking := models.Booking{
		Name:          "Jordan Rivera",
		Email:         "jordan@example.com",
		PreferredDate: "2026-09-15",
		TimeSlot:      models.TimeSlotMorning,
		CleaningType:  models.CleaningTypeDeep,
		HomeSize:      models.HomeSize3BR,
		Address:       "12 Oak Creek Rd",
		AddOns:        []string{"inside_oven"},
	}

	require.NoError(t, m.SendBookingConfirmation(context.Background(), booking, "285.00"))
	require.Len(t, stub.Sent, 1)
	assert.Equal(t, "jordan@example.com", stub.Sent[0].To)
	assert.Contains(t, stub.Sent[0].HTML, "$285.00")
	assert.Contains(t, stub.Sent[0].HTML, "inside_oven")
}

func TestSendBusinessAlertGoesToBusiness(t *testing.T) {
	m, stub := newMailer()
	booking := models.Booking{Name: "Jordan Rivera", AddOns: nil}

	require.NoError(t, m.SendBusinessAlert(context.Background(), booking, "140.00"))
	require.Len(t, stub.Sent, 1)
	assert.Equal(t, "bookings@tidyhouse.test", stub.Sent[0].To)
	assert.Contains(t, stub.Sent[0].Subject, "NEW BOOKING")
	assert.Contains(t, stub.Sent[0].HTML, "None")
}

func TestSendContactMessagesEmailsBothParties(t *testing.T) {
	m, stub := newMailer()
	msg := models.ContactMessage{
		Name:    "Sam",
		Email:   "sam@example.com",
		Message: "Do you clean garages?",
	}

	require.NoError(t, m.SendContactMessages(context.Background(), msg))
	require.Len(t, stub.Sent, 2)
	assert.Equal(t, "bookings@tidyhouse.test", stub.Sent[0].To)
	assert.Equal(t, "sam@example.com", stub.Sent[1].To)
	assert.Contains(t, stub.Sent[0].HTML, "Not provided")
}
