package tasks

import (
	"testing"
	"time"

	"tidyhouse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderFireTime(t *testing.T) {
	fireAt, err := ReminderFireTime("2026-09-15", models.TimeSlotAfternoon)
	require.NoError(t, err)

	// 13:00 on the 15th minus 24h is 13:00 on the 14th, local time.
	want := time.Date(2026, 9, 14, 13, 0, 0, 0, time.Local)
	assert.Equal(t, want, fireAt)
}

func TestReminderFireTimeUnknownSlotDefaultsToMorning(t *testing.T) {
	fireAt, err := ReminderFireTime("2026-09-15", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 14, 9, 0, 0, 0, time.Local), fireAt)
}

func TestReminderFireTimeBadDate(t *testing.T) {
	_, err := ReminderFireTime("next tuesday", models.TimeSlotMorning)
	assert.Error(t, err)
}
