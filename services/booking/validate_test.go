package booking

import (
	"testing"
	"time"

	"tidyhouse/models"

	"github.com/stretchr/testify/assert"
)

func validConfig() models.BookingConfiguration {
	return models.BookingConfiguration{
		HomeSize:      models.HomeSize3BR,
		Bathrooms:     2,
		CleaningType:  models.CleaningTypeDeep,
		CleaningNeeds: models.FrequencyMonthly,
		PreferredDate: time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
		TimeSlot:      models.TimeSlotEvening,
		Name:          "Sam Okafor",
		Email:         "sam@example.com",
		Phone:         "(414) 555-0100",
		Address:       "88 Franklin Ave",
	}
}

func TestValidateFieldAcceptsValidConfig(t *testing.T) {
	cfg := validConfig()
	for _, field := range fieldsThrough(TotalSteps) {
		assert.Empty(t, ValidateField(cfg, field), "field %s", field)
	}
}

func TestValidateFieldRejections(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		mutate func(*models.BookingConfiguration)
	}{
		{"empty home size", FieldHomeSize, func(c *models.BookingConfiguration) { c.HomeSize = "" }},
		{"unknown home size", FieldHomeSize, func(c *models.BookingConfiguration) { c.HomeSize = "castle" }},
		{"zero bathrooms", FieldBathrooms, func(c *models.BookingConfiguration) { c.Bathrooms = 0 }},
		{"bad cleaning type", FieldCleaningType, func(c *models.BookingConfiguration) { c.CleaningType = "sparkle" }},
		{"bad frequency", FieldCleaningNeeds, func(c *models.BookingConfiguration) { c.CleaningNeeds = "hourly" }},
		{"unparseable date", FieldPreferredDate, func(c *models.BookingConfiguration) { c.PreferredDate = "tomorrow" }},
		{"past date", FieldPreferredDate, func(c *models.BookingConfiguration) {
			c.PreferredDate = time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		}},
		{"bad time slot", FieldTimeSlot, func(c *models.BookingConfiguration) { c.TimeSlot = "midnight" }},
		{"single-char name", FieldName, func(c *models.BookingConfiguration) { c.Name = "J" }},
		{"whitespace name", FieldName, func(c *models.BookingConfiguration) { c.Name = "   " }},
		{"email without at", FieldEmail, func(c *models.BookingConfiguration) { c.Email = "sam.example.com" }},
		{"email without domain dot", FieldEmail, func(c *models.BookingConfiguration) { c.Email = "sam@example" }},
		{"short phone", FieldPhone, func(c *models.BookingConfiguration) { c.Phone = "555-0100" }},
		{"short address", FieldAddress, func(c *models.BookingConfiguration) { c.Address = "88" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			assert.NotEmpty(t, ValidateField(cfg, tt.field))
		})
	}
}

func TestValidateFieldPhoneCountsDigitsOnly(t *testing.T) {
	cfg := validConfig()
	cfg.Phone = "+1 (414) 555-0100" // 11 digits
	assert.Empty(t, ValidateField(cfg, FieldPhone))
}

func TestValidateFieldTodayIsBookable(t *testing.T) {
	cfg := validConfig()
	cfg.PreferredDate = time.Now().Format("2006-01-02")
	assert.Empty(t, ValidateField(cfg, FieldPreferredDate))
}

func TestValidateFieldsCollectsAllFailures(t *testing.T) {
	var cfg models.BookingConfiguration
	errs := ValidateFields(cfg, fieldsThrough(TotalSteps))
	for _, field := range []string{FieldHomeSize, FieldBathrooms, FieldPreferredDate, FieldTimeSlot, FieldName, FieldEmail, FieldPhone, FieldAddress} {
		assert.Contains(t, errs, field)
	}
}

func TestFieldsThroughIsCumulative(t *testing.T) {
	assert.Equal(t, []string{FieldHomeSize, FieldBathrooms}, fieldsThrough(1))
	assert.Len(t, fieldsThrough(TotalSteps), 10)
}
