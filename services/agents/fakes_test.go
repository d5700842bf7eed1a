package agents

import (
	"context"
	"fmt"
	"strings"

	"concierge/models"
)

// In-memory store fakes shared by the pipeline tests.

type fakeDirectory struct {
	contacts []models.Contact

	// availability overrides the default always-available answer.
	availability func(id, date, startTime, endTime, locationID string) (bool, string)
}

func (f *fakeDirectory) GetByID(_ context.Context, id string) (*models.Contact, error) {
	for i := range f.contacts {
		if f.contacts[i].ID == id {
			return &f.contacts[i], nil
		}
	}
	return nil, nil
}

func (f *fakeDirectory) ListAll(_ context.Context) ([]models.Contact, error) {
	return f.contacts, nil
}

func (f *fakeDirectory) FindByName(_ context.Context, name string) (*models.Contact, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil, nil
	}
	for i := range f.contacts {
		if strings.Contains(strings.ToLower(f.contacts[i].Name), needle) {
			return &f.contacts[i], nil
		}
	}
	return nil, nil
}

func (f *fakeDirectory) CheckAvailability(_ context.Context, id, date, startTime, endTime, locationID string) (bool, string, error) {
	if f.availability != nil {
		ok, reason := f.availability(id, date, startTime, endTime, locationID)
		return ok, reason, nil
	}
	return true, "", nil
}

func (f *fakeDirectory) GetAvailableSlots(context.Context, string, int, int, string) ([]models.Slot, error) {
	return nil, nil
}

type fakeCatalog struct {
	services []models.Service
}

func (f *fakeCatalog) GetByID(_ context.Context, id string) (*models.Service, error) {
	for i := range f.services {
		if f.services[i].ID == id {
			return &f.services[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) ListAll(_ context.Context) ([]models.Service, error) {
	return f.services, nil
}

type fakeLedger struct {
	appointments []models.Appointment
}

func (f *fakeLedger) CheckConflicts(_ context.Context, candidate models.Appointment, excludeID string) ([]models.Conflict, error) {
	s1, e1 := minuteOfDay(candidate.StartTime), minuteOfDay(candidate.EndTime)

	var conflicts []models.Conflict
	for _, existing := range f.appointments {
		if existing.ID == excludeID || existing.Date != candidate.Date {
			continue
		}
		if !sharesParticipant(existing, candidate) {
			continue
		}
		s2, e2 := minuteOfDay(existing.StartTime), minuteOfDay(existing.EndTime)
		if e1 <= s2 || e2 <= s1 {
			continue
		}
		conflicts = append(conflicts, models.Conflict{
			Type:                  models.ConflictOverlap,
			ExistingAppointmentID: existing.ID,
			Message: fmt.Sprintf("Overlaps existing appointment %s (%s - %s)",
				existing.ID, existing.StartTime, existing.EndTime),
		})
	}
	return conflicts, nil
}

func sharesParticipant(a, b models.Appointment) bool {
	for _, p := range b.Participants {
		if a.HasParticipant(p.ID) {
			return true
		}
	}
	return false
}

func testStores(dir *fakeDirectory, cat *fakeCatalog, ledger *fakeLedger) Stores {
	return Stores{Contacts: dir, Services: cat, Ledger: ledger}
}

func garciaContact() models.Contact {
	return models.Contact{
		ID:     "contact_garcia",
		Name:   "Dr. García",
		Type:   models.ContactTypeProvider,
		Active: true,
		Locations: []models.Location{
			{ID: "loc_norte", Name: "Clínica Norte", Available: true},
			{ID: "loc_sur", Name: "Clínica Sur", Available: true},
		},
	}
}

func consultaService() models.Service {
	return models.Service{
		ID:                 "service_consulta",
		Name:               "Consulta",
		DurationMinutes:    60,
		MinDurationMinutes: 30,
		MaxDurationMinutes: 120,
		Active:             true,
	}
}
