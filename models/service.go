package models

import "time"

// Service categories.
const (
	ServiceCategoryMedical = "medical"
	ServiceCategoryDental  = "dental"
	ServiceCategoryLab     = "lab"
	ServiceCategoryImaging = "imaging"
	ServiceCategoryTherapy = "therapy"
	ServiceCategoryOther   = "other"
)

// Service is an entry in the appointment-type catalog.
type Service struct {
	ID                 string    `bson:"id" json:"id"`
	Name               string    `bson:"name" json:"name"`
	Category           string    `bson:"category" json:"category"`
	Description        string    `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes    int       `bson:"duration_minutes" json:"duration_minutes"`
	MinDurationMinutes int       `bson:"min_duration_minutes" json:"min_duration_minutes"`
	MaxDurationMinutes int       `bson:"max_duration_minutes" json:"max_duration_minutes"`
	Active             bool      `bson:"active" json:"active"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updated_at"`
}
