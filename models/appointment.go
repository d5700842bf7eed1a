package models

import "time"

// Appointment statuses.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
	AppointmentNoShow    = "no_show"
)

// Participant is one party to an appointment.
type Participant struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name,omitempty" json:"name,omitempty"`
	Role string `bson:"role,omitempty" json:"role,omitempty"`
}

// Appointment represents a confirmed or pending booking record.
type Appointment struct {
	ID              string        `bson:"id" json:"id"`
	Date            string        `bson:"date" json:"date"`             // "YYYY-MM-DD"
	StartTime       string        `bson:"start_time" json:"start_time"` // "HH:MM"
	EndTime         string        `bson:"end_time" json:"end_time"`     // "HH:MM"
	DurationMinutes int           `bson:"duration_minutes" json:"duration_minutes"`
	Status          string        `bson:"status" json:"status"`
	ServiceID       string        `bson:"service_id,omitempty" json:"service_id,omitempty"`
	LocationID      string        `bson:"location_id,omitempty" json:"location_id,omitempty"`
	Participants    []Participant `bson:"participants" json:"participants"`
	UserID          string        `bson:"user_id,omitempty" json:"user_id,omitempty"`
	OriginalPrompt  string        `bson:"original_prompt,omitempty" json:"original_prompt,omitempty"`
	TraceID         string        `bson:"trace_id,omitempty" json:"trace_id,omitempty"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updated_at"`
}

// HasParticipant reports whether the appointment includes the given contact.
func (a Appointment) HasParticipant(id string) bool {
	for _, p := range a.Participants {
		if p.ID == id {
			return true
		}
	}
	return false
}
