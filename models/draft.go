package models

// ValidatedDraft holds the appointment fields that passed validation. Built
// additively: a field is present only if it independently validated.
type ValidatedDraft struct {
	ContactID   string `bson:"contact_id,omitempty" json:"contact_id,omitempty"`
	ContactName string `bson:"contact_name,omitempty" json:"contact_name,omitempty"`
	Date        string `bson:"date,omitempty" json:"date,omitempty"`
	StartTime   string `bson:"start_time,omitempty" json:"start_time,omitempty"`
	EndTime     string `bson:"end_time,omitempty" json:"end_time,omitempty"`
	LocationID  string `bson:"location_id,omitempty" json:"location_id,omitempty"`
	ServiceID   string `bson:"service_id,omitempty" json:"service_id,omitempty"`
}
