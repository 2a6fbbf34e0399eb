package models

// Session statuses while a booking form is in progress.
const (
	SessionStatusEditing    = "editing"
	SessionStatusSubmitting = "submitting"
)

// BookingSession holds the in-progress booking form between steps.
type BookingSession struct {
	SessionID string               `json:"sessionId"`
	Step      int                  `json:"step"` // 1-indexed
	Status    string               `json:"status"`
	Config    BookingConfiguration `json:"config"`
}

// SessionResponse is the wire shape returned to the booking form after every
// session operation. Quote is recomputed from Config on each change; Errors
// carries per-field validation messages when an operation is blocked.
type SessionResponse struct {
	SessionID string               `json:"sessionId"`
	Step      int                  `json:"step"`
	Config    BookingConfiguration `json:"config"`
	Quote     int                  `json:"quote"`
	Errors    map[string]string    `json:"errors,omitempty"`
}
