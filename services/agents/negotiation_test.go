package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concierge/models"
)

func TestNegotiationAgentSameDaySuggestions(t *testing.T) {
	agent := NewNegotiationAgent(DefaultConfig())
	dir := &fakeDirectory{contacts: []models.Contact{garciaContact()}}
	ledger := &fakeLedger{appointments: []models.Appointment{existingAppointment("10:00", "11:00")}}
	stores := testStores(dir, &fakeCatalog{}, ledger)

	res := agent.Run(context.Background(), availInput(), DefaultPreferences(), stores)

	require.Equal(t, models.StatusSuccess, res.Status)
	require.NotNil(t, res.Negotiation)
	assert.True(t, res.Negotiation.HasAlternatives)

	suggestions := res.Negotiation.Suggestions
	require.Len(t, suggestions, DefaultConfig().MaxSuggestions)

	// Ranked by confidence, best first.
	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].Confidence, suggestions[i].Confidence)
	}
	// Closest free slots first; confidence ties break toward earlier times.
	assert.Equal(t, "09:00", suggestions[0].StartTime)
	assert.Equal(t, "11:00", suggestions[1].StartTime)

	for _, s := range suggestions {
		assert.NotEqual(t, "10:00", s.StartTime)
		assert.Equal(t, "2026-03-03", s.Date)
		// Slots overlapping the existing booking are never suggested.
		assert.NotEqual(t, "09:30", s.StartTime)
		assert.NotEqual(t, "10:30", s.StartTime)
	}
}

func TestNegotiationAgentFallsBackToNextDays(t *testing.T) {
	agent := NewNegotiationAgent(DefaultConfig())
	// Contact is fully booked out on the requested Thursday but free on
	// other dates.
	dir := &fakeDirectory{
		contacts: []models.Contact{garciaContact()},
		availability: func(_, date, _, _, _ string) (bool, string) {
			if date == "2026-03-05" {
				return false, "Fully booked"
			}
			return true, ""
		},
	}
	stores := testStores(dir, &fakeCatalog{}, &fakeLedger{})

	in := availInput()
	in.Date = "2026-03-05" // Thursday; the 3-day lookahead spans Fri, Sat, Sun
	res := agent.Run(context.Background(), in, DefaultPreferences(), stores)

	require.Equal(t, models.StatusSuccess, res.Status)
	require.NotNil(t, res.Negotiation)
	require.Len(t, res.Negotiation.Suggestions, 1)

	s := res.Negotiation.Suggestions[0]
	assert.Equal(t, "2026-03-06", s.Date) // Friday; the weekend is skipped
	assert.Equal(t, "10:00", s.StartTime)
	assert.Equal(t, "11:00", s.EndTime)
	assert.Equal(t, 0.75, s.Confidence)
}

func TestNegotiationAgentNothingAvailable(t *testing.T) {
	agent := NewNegotiationAgent(DefaultConfig())
	dir := &fakeDirectory{
		contacts: []models.Contact{garciaContact()},
		availability: func(string, string, string, string, string) (bool, string) {
			return false, "On leave"
		},
	}
	stores := testStores(dir, &fakeCatalog{}, &fakeLedger{})

	res := agent.Run(context.Background(), availInput(), DefaultPreferences(), stores)

	require.Equal(t, models.StatusWarning, res.Status)
	require.NotNil(t, res.Negotiation)
	assert.False(t, res.Negotiation.HasAlternatives)
	assert.Empty(t, res.Negotiation.Suggestions)
	assert.Positive(t, res.Negotiation.TotalEvaluated)
}

func TestNegotiationAgentRespectsPreferences(t *testing.T) {
	agent := NewNegotiationAgent(DefaultConfig())
	stores := testStores(
		&fakeDirectory{contacts: []models.Contact{garciaContact()}},
		&fakeCatalog{},
		&fakeLedger{},
	)

	res := agent.Run(context.Background(), availInput(),
		Preferences{SameDayFlexible: false, DateFlexible: false}, stores)

	require.Equal(t, models.StatusWarning, res.Status)
	require.NotNil(t, res.Negotiation)
	assert.Empty(t, res.Negotiation.Suggestions)
	assert.Zero(t, res.Negotiation.TotalEvaluated)
}

func TestNegotiationAgentMissingFields(t *testing.T) {
	agent := NewNegotiationAgent(DefaultConfig())
	stores := testStores(&fakeDirectory{}, &fakeCatalog{}, &fakeLedger{})

	res := agent.Run(context.Background(), AvailabilityInput{}, DefaultPreferences(), stores)

	require.Equal(t, models.StatusError, res.Status)
	assert.Contains(t, res.Errors, ReasonMissingRequiredField)
}
