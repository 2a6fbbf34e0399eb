package payment

import (
	"testing"

	"tidyhouse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingMetadataRoundTrip(t *testing.T) {
	cfg := models.BookingConfiguration{
		HomeSize:      models.HomeSize3BR,
		Bathrooms:     2,
		CleaningType:  models.CleaningTypeDeep,
		CleaningNeeds: models.FrequencyBiWeekly,
		IsNewCustomer: true,
		AddOns:        []string{"inside_oven", "windows"},
		PreferredDate: "2026-09-15",
		TimeSlot:      models.TimeSlotMorning,
		Name:          "Jordan Rivera",
		Email:         "jordan@example.com",
		Phone:         "4145550100",
		Address:       "12 Oak Creek Rd",
	}

	meta := BookingMetadata(cfg, 285)
	got, price := BookingFromMetadata(meta)

	assert.Equal(t, 285, price)
	assert.Equal(t, cfg.HomeSize, got.HomeSize)
	assert.Equal(t, cfg.Bathrooms, got.Bathrooms)
	assert.Equal(t, cfg.CleaningType, got.CleaningType)
	assert.Equal(t, cfg.CleaningNeeds, got.CleaningNeeds)
	assert.True(t, got.IsNewCustomer)
	assert.Equal(t, cfg.AddOns, got.AddOns)
	assert.Equal(t, cfg.PreferredDate, got.PreferredDate)
	assert.Equal(t, cfg.TimeSlot, got.TimeSlot)
	assert.Equal(t, cfg.Name, got.Name)
	assert.Equal(t, cfg.Phone, got.Phone)
	assert.Equal(t, cfg.Address, got.Address)
}

func TestBookingFromMetadataEmptyAddOns(t *testing.T) {
	meta := BookingMetadata(models.BookingConfiguration{Bathrooms: 1}, 0)
	require.Equal(t, "", meta["add_ons"])

	got, _ := BookingFromMetadata(meta)
	assert.Nil(t, got.AddOns)
}
