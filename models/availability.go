package models

// Conflict types.
const (
	ConflictOverlap = "overlap"
)

// Conflict describes an existing booking whose interval overlaps a candidate's
// interval for a shared participant.
type Conflict struct {
	Type                  string `bson:"type" json:"type"`
	ExistingAppointmentID string `bson:"existing_appointment_id" json:"existing_appointment_id"`
	Message               string `bson:"message" json:"message"`
}

// AvailabilityOutcome is the availability agent's verdict for a candidate slot.
type AvailabilityOutcome struct {
	Available bool       `bson:"available" json:"available"`
	Reason    string     `bson:"reason,omitempty" json:"reason,omitempty"`
	Conflicts []Conflict `bson:"conflicts,omitempty" json:"conflicts,omitempty"`
}

// Slot is a bookable interval on a given date.
type Slot struct {
	Date      string `bson:"date" json:"date"`
	StartTime string `bson:"start_time" json:"start_time"`
	EndTime   string `bson:"end_time" json:"end_time"`
	Available bool   `bson:"available" json:"available"`
}
