package booking

import (
	"regexp"
	"strings"
	"time"

	"tidyhouse/models"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var validHomeSizes = map[string]bool{
	models.HomeSizeStudio: true,
	models.HomeSize1BR:    true,
	models.HomeSize2BR:    true,
	models.HomeSize3BR:    true,
	models.HomeSize4BR:    true,
	models.HomeSize5BR:    true,
}

var validFrequencies = map[string]bool{
	models.FrequencyOneTime:  true,
	models.FrequencyWeekly:   true,
	models.FrequencyBiWeekly: true,
	models.FrequencyMonthly:  true,
}

var validTimeSlots = map[string]bool{
	models.TimeSlotMorning:   true,
	models.TimeSlotAfternoon: true,
	models.TimeSlotEvening:   true,
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// ValidateField checks a single field of the configuration and returns a
// user-facing message, or "" when the field is valid.
func ValidateField(cfg models.BookingConfiguration, field string) string {
	switch field {
	case FieldHomeSize:
		if !validHomeSizes[cfg.HomeSize] {
			return "Please select your home size"
		}
	case FieldBathrooms:
		if cfg.Bathrooms < 1 {
			return "At least 1 bathroom required"
		}
	case FieldCleaningType:
		if cfg.CleaningType != models.CleaningTypeStandard && cfg.CleaningType != models.CleaningTypeDeep {
			return "Please select a cleaning type"
		}
	case FieldCleaningNeeds:
		if !validFrequencies[cfg.CleaningNeeds] {
			return "Please select a cleaning frequency"
		}
	case FieldIsNewCustomer:
		// Boolean flag, always valid.
	case FieldPreferredDate:
		day, err := time.ParseInLocation("2006-01-02", cfg.PreferredDate, time.Local)
		if err != nil {
			return "Please select a date for your cleaning"
		}
		today := time.Now().In(time.Local)
		today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
		if day.Before(today) {
			return "Cleaning date cannot be in the past"
		}
	case FieldTimeSlot:
		if !validTimeSlots[cfg.TimeSlot] {
			return "Please select a preferred time slot"
		}
	case FieldName:
		if len(strings.TrimSpace(cfg.Name)) < 2 {
			return "Name is required"
		}
	case FieldEmail:
		if !emailRegex.MatchString(cfg.Email) {
			return "Invalid email address"
		}
	case FieldPhone:
		if countDigits(cfg.Phone) < 10 {
			return "Phone number is required"
		}
	case FieldAddress:
		if len(strings.TrimSpace(cfg.Address)) < 5 {
			return "Address is required"
		}
	}
	return ""
}

// ValidateFields runs ValidateField over a field set and collects the
// failures keyed by field name.
func ValidateFields(cfg models.BookingConfiguration, fields []string) map[string]string {
	errs := make(map[string]string)
	for _, field := range fields {
		if msg := ValidateField(cfg, field); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}
