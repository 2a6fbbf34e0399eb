package models

// ReminderPayload is the asynq task payload for a scheduled SMS reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Phone     string `json:"phone"`
	Date      string `json:"date"` // "YYYY-MM-DD"
	TimeSlot  string `json:"timeSlot"`
}

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}
