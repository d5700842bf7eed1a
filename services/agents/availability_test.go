package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concierge/models"
)

func availInput() AvailabilityInput {
	return AvailabilityInput{
		ContactID:  "contact_garcia",
		Date:       "2026-03-03",
		StartTime:  "10:00",
		EndTime:    "11:00",
		LocationID: "loc_norte",
	}
}

func existingAppointment(start, end string) models.Appointment {
	return models.Appointment{
		ID:           "appointment_1",
		Date:         "2026-03-03",
		StartTime:    start,
		EndTime:      end,
		Status:       models.AppointmentConfirmed,
		Participants: []models.Participant{{ID: "contact_garcia", Role: "provider"}},
	}
}

func TestAvailabilityAgentFreeSlot(t *testing.T) {
	agent := NewAvailabilityAgent(DefaultConfig())
	stores := testStores(
		&fakeDirectory{contacts: []models.Contact{garciaContact()}},
		&fakeCatalog{services: []models.Service{consultaService()}},
		&fakeLedger{},
	)

	res := agent.Run(context.Background(), availInput(), stores)

	require.Equal(t, models.StatusSuccess, res.Status)
	assert.Equal(t, 0.95, res.Confidence)
	require.NotNil(t, res.Availability)
	assert.True(t, res.Availability.Available)
}

func TestAvailabilityAgentOverlapConflict(t *testing.T) {
	agent := NewAvailabilityAgent(DefaultConfig())
	ctx := context.Background()
	dir := &fakeDirectory{contacts: []models.Contact{garciaContact()}}
	cat := &fakeCatalog{}

	// Existing 10:00-11:00 appointment for the same contact.
	ledger := &fakeLedger{appointments: []models.Appointment{existingAppointment("10:00", "11:00")}}
	stores := testStores(dir, cat, ledger)

	t.Run("partial overlap conflicts", func(t *testing.T) {
		in := availInput()
		in.StartTime, in.EndTime = "10:30", "11:30"
		res := agent.Run(ctx, in, stores)
		require.Equal(t, models.StatusError, res.Status)
		assert.Equal(t, "Appointment conflicts detected", res.Message)
		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], models.ConflictOverlap)
	})

	t.Run("back to back does not conflict", func(t *testing.T) {
		in := availInput()
		in.StartTime, in.EndTime = "11:00", "12:00"
		res := agent.Run(ctx, in, stores)
		require.Equal(t, models.StatusSuccess, res.Status)
	})

	t.Run("containment conflicts", func(t *testing.T) {
		in := availInput()
		in.StartTime, in.EndTime = "09:00", "12:00"
		res := agent.Run(ctx, in, stores)
		require.Equal(t, models.StatusError, res.Status)
	})

	t.Run("other date does not conflict", func(t *testing.T) {
		in := availInput()
		in.Date = "2026-03-04"
		res := agent.Run(ctx, in, stores)
		require.Equal(t, models.StatusSuccess, res.Status)
	})
}

func TestAvailabilityAgentContactChecks(t *testing.T) {
	agent := NewAvailabilityAgent(DefaultConfig())
	ctx := context.Background()

	t.Run("unknown contact", func(t *testing.T) {
		stores := testStores(&fakeDirectory{}, &fakeCatalog{}, &fakeLedger{})
		res := agent.Run(ctx, availInput(), stores)
		require.Equal(t, models.StatusError, res.Status)
		assert.Contains(t, res.Errors, ReasonContactNotFound)
	})

	t.Run("inactive contact", func(t *testing.T) {
		inactive := garciaContact()
		inactive.Active = false
		stores := testStores(&fakeDirectory{contacts: []models.Contact{inactive}}, &fakeCatalog{}, &fakeLedger{})
		res := agent.Run(ctx, availInput(), stores)
		require.Equal(t, models.StatusError, res.Status)
		assert.Contains(t, res.Errors, ReasonContactInactive)
	})

	t.Run("directory reports unavailable", func(t *testing.T) {
		dir := &fakeDirectory{
			contacts: []models.Contact{garciaContact()},
			availability: func(string, string, string, string, string) (bool, string) {
				return false, "Not at this location on Tuesdays"
			},
		}
		stores := testStores(dir, &fakeCatalog{}, &fakeLedger{})
		res := agent.Run(ctx, availInput(), stores)
		require.Equal(t, models.StatusError, res.Status)
		assert.Contains(t, res.Message, "Not at this location on Tuesdays")
	})
}

func TestAvailabilityAgentServiceDurationBounds(t *testing.T) {
	agent := NewAvailabilityAgent(DefaultConfig())
	ctx := context.Background()
	svc := consultaService() // 30-120 minute bounds
	stores := testStores(
		&fakeDirectory{contacts: []models.Contact{garciaContact()}},
		&fakeCatalog{services: []models.Service{svc}},
		&fakeLedger{},
	)

	in := availInput()
	in.ServiceID = svc.ID
	in.EndTime = "10:15"
	res := agent.Run(ctx, in, stores)
	require.Equal(t, models.StatusError, res.Status)
	assert.Contains(t, res.Errors, ReasonDurationOutOfRange)

	in.EndTime = "13:30"
	res = agent.Run(ctx, in, stores)
	require.Equal(t, models.StatusError, res.Status)
	assert.Contains(t, res.Errors, ReasonDurationOutOfRange)

	in.EndTime = "11:00"
	res = agent.Run(ctx, in, stores)
	require.Equal(t, models.StatusSuccess, res.Status)
}

func TestAvailabilityAgentDefaultsEndTime(t *testing.T) {
	agent := NewAvailabilityAgent(DefaultConfig())
	// Existing 10:30-11:30 appointment; a 10:00 start with no end defaults to
	// a one-hour span and must conflict.
	ledger := &fakeLedger{appointments: []models.Appointment{existingAppointment("10:30", "11:30")}}
	stores := testStores(&fakeDirectory{contacts: []models.Contact{garciaContact()}}, &fakeCatalog{}, ledger)

	in := availInput()
	in.EndTime = ""
	res := agent.Run(context.Background(), in, stores)

	require.Equal(t, models.StatusError, res.Status)
	assert.Equal(t, "Appointment conflicts detected", res.Message)
}

func TestAvailabilityAgentMissingFields(t *testing.T) {
	agent := NewAvailabilityAgent(DefaultConfig())
	stores := testStores(&fakeDirectory{}, &fakeCatalog{}, &fakeLedger{})

	res := agent.Run(context.Background(), AvailabilityInput{}, stores)

	require.Equal(t, models.StatusError, res.Status)
	assert.Contains(t, res.Errors, ReasonMissingRequiredField)
}
