package models

import "time"

// Contact types.
const (
	ContactTypeProvider = "provider"
	ContactTypeStaff    = "staff"
	ContactTypeResource = "resource"
)

// Location is a place where a contact attends appointments.
type Location struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Address   string `bson:"address,omitempty" json:"address,omitempty"`
	Available bool   `bson:"available" json:"available"`
}

// Contact represents a bookable person or resource (doctor, staff, room).
type Contact struct {
	ID          string     `bson:"id" json:"id"`
	Name        string     `bson:"name" json:"name"`
	Title       string     `bson:"title,omitempty" json:"title,omitempty"`
	Email       string     `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string     `bson:"phone,omitempty" json:"phone,omitempty"`
	Type        string     `bson:"type" json:"type"`
	Specialties []string   `bson:"specialties,omitempty" json:"specialties,omitempty"`
	Locations   []Location `bson:"locations,omitempty" json:"locations,omitempty"`
	Active      bool       `bson:"active" json:"active"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}
