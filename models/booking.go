package models

import "time"

// Home size tiers used as pricing lookup keys.
const (
	HomeSizeStudio = "studio"
	HomeSize1BR    = "1br"
	HomeSize2BR    = "2br"
	HomeSize3BR    = "3br"
	HomeSize4BR    = "4br"
	HomeSize5BR    = "5br"
)

// Cleaning types.
const (
	CleaningTypeStandard = "standard"
	CleaningTypeDeep     = "deep"
)

// Cleaning frequencies.
const (
	FrequencyOneTime  = "one-time"
	FrequencyWeekly   = "weekly"
	FrequencyBiWeekly = "bi-weekly"
	FrequencyMonthly  = "monthly"
)

// Time windows for the preferred arrival slot.
const (
	TimeSlotMorning   = "morning"
	TimeSlotAfternoon = "afternoon"
	TimeSlotEvening   = "evening"
)

// Booking statuses.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"
)

// BookingConfiguration is the full set of fields collected across the booking
// steps. It is mutable while a session is in progress and snapshotted into a
// Booking once payment completes.
type BookingConfiguration struct {
	HomeSize      string   `json:"homeSize"`
	Bathrooms     int      `json:"bathrooms"`
	CleaningType  string   `json:"cleaningType"`
	CleaningNeeds string   `json:"cleaningNeeds"`
	IsNewCustomer bool     `json:"isNewCustomer"`
	AddOns        []string `json:"addOns"`
	PreferredDate string   `json:"preferredDate"` // "YYYY-MM-DD"
	TimeSlot      string   `json:"timeSlot"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
}

// HasAddOn reports whether the given add-on is selected.
func (c *BookingConfiguration) HasAddOn(id string) bool {
	for _, a := range c.AddOns {
		if a == id {
			return true
		}
	}
	return false
}

// Booking represents a confirmed booking record.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email" json:"email"`
	Phone           string    `bson:"phone" json:"phone"`
	Address         string    `bson:"address" json:"address"`
	HomeSize        string    `bson:"home_size" json:"homeSize"`
	Bathrooms       int       `bson:"bathrooms" json:"bathrooms"`
	CleaningType    string    `bson:"cleaning_type" json:"cleaningType"`
	CleaningNeeds   string    `bson:"cleaning_needs" json:"cleaningNeeds"`
	IsNewCustomer   bool      `bson:"is_new_customer" json:"isNewCustomer"`
	AddOns          []string  `bson:"add_ons" json:"addOns"`
	PreferredDate   string    `bson:"preferred_date" json:"preferredDate"` // "YYYY-MM-DD"
	TimeSlot        string    `bson:"time_slot" json:"timeSlot"`
	TotalPrice      int       `bson:"total_price" json:"totalPrice"` // whole dollars, snapshot at submission
	Status          string    `bson:"status" json:"status"`
	StripeSessionID string    `bson:"stripe_session_id,omitempty" json:"stripeSessionId,omitempty"`
	ReminderTaskID  string    `bson:"reminder_task_id,omitempty" json:"reminderTaskId,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}
