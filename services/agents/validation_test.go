package agents

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concierge/models"
)

func validInput() ValidationInput {
	return ValidationInput{
		ContactID:   "contact_garcia",
		ContactName: "Dr. García",
		Date:        "2026-03-03",
		StartTime:   "10:00",
		EndTime:     "11:00",
		LocationID:  "loc_norte",
		ServiceID:   "service_consulta",
	}
}

func TestValidationAgentAllChecksPass(t *testing.T) {
	agent := NewValidationAgent(DefaultConfig())
	dir := &fakeDirectory{contacts: []models.Contact{garciaContact()}}
	cat := &fakeCatalog{services: []models.Service{consultaService()}}

	res := agent.Run(context.Background(), validInput(), dir, cat)

	require.Equal(t, models.StatusSuccess, res.Status)
	assert.Equal(t, 0.95, res.Confidence)
	require.NotNil(t, res.Draft)
	assert.Equal(t, "contact_garcia", res.Draft.ContactID)
	assert.Equal(t, "2026-03-03", res.Draft.Date)
	assert.Equal(t, "10:00", res.Draft.StartTime)
	assert.Equal(t, "11:00", res.Draft.EndTime)
	assert.Equal(t, "loc_norte", res.Draft.LocationID)
	assert.Equal(t, "service_consulta", res.Draft.ServiceID)
}

func TestValidationAgentStartNotBeforeEnd(t *testing.T) {
	agent := NewValidationAgent(DefaultConfig())

	for _, tc := range []struct{ start, end string }{
		{"11:00", "10:00"},
		{"10:00", "10:00"},
	} {
		in := validInput()
		in.StartTime, in.EndTime = tc.start, tc.end
		res := agent.Run(context.Background(), in, nil, nil)

		require.Equal(t, models.StatusError, res.Status, tc)
		assert.Nil(t, res.Draft)
		require.NotEmpty(t, res.Errors)
		assert.True(t, strings.Contains(res.Errors[0], "Invalid time range"), res.Errors[0])
	}
}

func TestValidationAgentFormatErrors(t *testing.T) {
	agent := NewValidationAgent(DefaultConfig())
	ctx := context.Background()

	in := validInput()
	in.Date = "03/03/2026"
	res := agent.Run(ctx, in, nil, nil)
	require.Equal(t, models.StatusError, res.Status)
	assert.Contains(t, res.Errors[0], "Invalid date format")

	in = validInput()
	in.Date = "2026-02-30"
	res = agent.Run(ctx, in, nil, nil)
	require.Equal(t, models.StatusError, res.Status)

	in = validInput()
	in.StartTime = "25:00"
	res = agent.Run(ctx, in, nil, nil)
	require.Equal(t, models.StatusError, res.Status)
	assert.Contains(t, res.Errors[0], "Invalid time format")

	in = validInput()
	in.Date = ""
	in.StartTime = ""
	res = agent.Run(ctx, in, nil, nil)
	require.Equal(t, models.StatusError, res.Status)
	assert.Len(t, res.Errors, 2)
}

func TestValidationAgentUnusualIDIsWarningOnly(t *testing.T) {
	agent := NewValidationAgent(DefaultConfig())

	in := validInput()
	in.ContactID = "GARCIA-1"
	in.LocationID = ""
	in.ServiceID = ""
	res := agent.Run(context.Background(), in, nil, nil)

	require.Equal(t, models.StatusWarning, res.Status)
	assert.Equal(t, 0.85, res.Confidence)
	require.NotNil(t, res.Draft)
	assert.Equal(t, "GARCIA-1", res.Draft.ContactID)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "Contact ID format")
}

func TestValidationAgentReferentialChecks(t *testing.T) {
	agent := NewValidationAgent(DefaultConfig())
	ctx := context.Background()
	cat := &fakeCatalog{services: []models.Service{consultaService()}}

	t.Run("contact not found", func(t *testing.T) {
		dir := &fakeDirectory{}
		res := agent.Run(ctx, validInput(), dir, cat)
		require.Equal(t, models.StatusError, res.Status)
		assert.Contains(t, res.Errors[0], "Contact not found")
	})

	t.Run("contact inactive", func(t *testing.T) {
		inactive := garciaContact()
		inactive.Active = false
		dir := &fakeDirectory{contacts: []models.Contact{inactive}}
		res := agent.Run(ctx, validInput(), dir, cat)
		require.Equal(t, models.StatusError, res.Status)
		assert.Contains(t, res.Errors[0], "Contact is inactive")
	})

	t.Run("location not owned by contact", func(t *testing.T) {
		dir := &fakeDirectory{contacts: []models.Contact{garciaContact()}}
		in := validInput()
		in.LocationID = "loc_centro"
		res := agent.Run(ctx, in, dir, cat)
		require.Equal(t, models.StatusError, res.Status)
		assert.Contains(t, res.Errors[0], "Location loc_centro not found")
	})

	t.Run("service not found", func(t *testing.T) {
		dir := &fakeDirectory{contacts: []models.Contact{garciaContact()}}
		res := agent.Run(ctx, validInput(), dir, &fakeCatalog{})
		require.Equal(t, models.StatusError, res.Status)
		assert.Contains(t, res.Errors[0], "Service not found")
	})

	t.Run("nil lookups skip referential checks", func(t *testing.T) {
		res := agent.Run(ctx, validInput(), nil, nil)
		require.Equal(t, models.StatusSuccess, res.Status)
	})
}
