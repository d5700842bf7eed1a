package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"concierge/config"
	"concierge/database"
	"concierge/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the directory, service catalog, and a sample appointment so the
// resolution pipeline has something to match against out of the box.
func main() {
	config.LoadConfig()
	database.InitDB()

	contactColl := database.Collection("contacts")
	serviceColl := database.Collection("services")
	appointmentColl := database.Collection("appointments")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing data.
	if _, err := contactColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear contacts collection: %v", err)
	}
	if _, err := serviceColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear services collection: %v", err)
	}
	if _, err := appointmentColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear appointments collection: %v", err)
	}

	now := time.Now()

	contacts := []interface{}{
		models.Contact{
			ID:    "contact_garcia",
			Name:  "Dr. García",
			Title: "Dr.",
			Email: "garcia@example.com",
			Type:  models.ContactTypeProvider,
			Specialties: []string{"medicina general"},
			Locations: []models.Location{
				{ID: "loc_norte", Name: "Clínica Norte", Address: "Av. Insurgentes Norte 100", Available: true},
				{ID: "loc_sur", Name: "Clínica Sur", Address: "Calz. de Tlalpan 2500", Available: true},
			},
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.Contact{
			ID:    "contact_lopez",
			Name:  "Dra. López",
			Title: "Dra.",
			Email: "lopez@example.com",
			Type:  models.ContactTypeProvider,
			Specialties: []string{"odontología"},
			Locations: []models.Location{
				{ID: "loc_centro", Name: "Consultorio Centro", Address: "Calle Madero 45", Available: true},
			},
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.Contact{
			ID:   "contact_sala_juntas",
			Name: "Sala de Juntas",
			Type: models.ContactTypeResource,
			Locations: []models.Location{
				{ID: "loc_oficina", Name: "Oficina Principal", Available: true},
			},
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	services := []interface{}{
		models.Service{
			ID:                 "service_consulta",
			Name:               "Consulta",
			Category:           models.ServiceCategoryMedical,
			Description:        "Consulta médica general",
			DurationMinutes:    60,
			MinDurationMinutes: 30,
			MaxDurationMinutes: 120,
			Active:             true,
			CreatedAt:          now,
			UpdatedAt:          now,
		},
		models.Service{
			ID:                 "service_limpieza_dental",
			Name:               "Limpieza dental",
			Category:           models.ServiceCategoryDental,
			Description:        "Limpieza dental profesional",
			DurationMinutes:    45,
			MinDurationMinutes: 30,
			MaxDurationMinutes: 90,
			Active:             true,
			CreatedAt:          now,
			UpdatedAt:          now,
		},
		models.Service{
			ID:                 "service_revision",
			Name:               "Revisión",
			Category:           models.ServiceCategoryMedical,
			Description:        "Revisión de seguimiento",
			DurationMinutes:    30,
			MinDurationMinutes: 15,
			MaxDurationMinutes: 60,
			Active:             true,
			CreatedAt:          now,
			UpdatedAt:          now,
		},
	}

	// One confirmed booking tomorrow morning so conflict handling is exercisable.
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	appointments := []interface{}{
		models.Appointment{
			ID:        "appointment_seed_1",
			Date:      tomorrow,
			StartTime: "10:00",
			EndTime:   "11:00",
			Status:    models.AppointmentConfirmed,
			Participants: []models.Participant{
				{ID: "contact_garcia", Name: "Dr. García", Role: "provider"},
			},
			LocationID:      "loc_norte",
			ServiceID:       "service_consulta",
			DurationMinutes: 60,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}

	if _, err := contactColl.InsertMany(ctx, contacts); err != nil {
		log.Fatalf("Failed to insert contacts: %v", err)
	}
	if _, err := serviceColl.InsertMany(ctx, services); err != nil {
		log.Fatalf("Failed to insert services: %v", err)
	}
	if _, err := appointmentColl.InsertMany(ctx, appointments); err != nil {
		log.Fatalf("Failed to insert appointments: %v", err)
	}

	fmt.Printf("Seeded %d contacts, %d services, %d appointments\n",
		len(contacts), len(services), len(appointments))
}
