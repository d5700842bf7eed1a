package agents

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concierge/models"
)

const testPrompt = "Agendar cita con Dr. García para consulta mañana a las 10:00 en clinica norte"

func newTestOrchestrator(t *testing.T, ledger *fakeLedger) *Orchestrator {
	t.Helper()
	stores := testStores(
		&fakeDirectory{contacts: []models.Contact{garciaContact()}},
		&fakeCatalog{services: []models.Service{consultaService()}},
		ledger,
	)
	o := NewOrchestrator(DefaultConfig(), stores)

	// Monday 2026-03-02 09:00 local, so "mañana" lands on Tuesday the 3rd.
	loc, err := time.LoadLocation(testTimezone)
	require.NoError(t, err)
	fixed := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)
	o.Now = func() time.Time { return fixed }
	return o
}

func agentSequence(trace *models.DecisionTrace) []string {
	names := make([]string, 0, len(trace.Agents))
	for _, rec := range trace.Agents {
		names = append(names, rec.Agent)
	}
	return names
}

func TestOrchestratorSuccess(t *testing.T) {
	o := newTestOrchestrator(t, &fakeLedger{})

	out := o.ProcessPrompt(context.Background(), testPrompt, testTimezone, "user_1")

	require.Equal(t, models.PipelineSuccess, out.Status)
	require.NotNil(t, out.Draft)
	assert.Equal(t, "contact_garcia", out.Draft.ContactID)
	assert.Equal(t, "2026-03-03", out.Draft.Date)
	assert.Equal(t, "10:00", out.Draft.StartTime)
	assert.Equal(t, "11:00", out.Draft.EndTime)
	assert.Equal(t, "loc_norte", out.Draft.LocationID)
	assert.Equal(t, "service_consulta", out.Draft.ServiceID)
	assert.Empty(t, out.Suggestions)

	trace := out.Trace
	require.NotNil(t, trace)
	assert.Equal(t, models.PipelineSuccess, trace.FinalStatus)
	assert.Equal(t, testPrompt, trace.InputPrompt)
	assert.Equal(t, "user_1", trace.UserID)
	assert.Equal(t, out.Draft, trace.FinalDraft)
	assert.Equal(t,
		[]string{AgentParsing, AgentTemporal, AgentGeo, AgentValidation, AgentAvailability},
		agentSequence(trace))
	assert.True(t, strings.HasPrefix(trace.TraceID, "trace_20260302_090000_"), trace.TraceID)
}

func TestOrchestratorConflictTriggersNegotiation(t *testing.T) {
	ledger := &fakeLedger{appointments: []models.Appointment{{
		ID:           "appointment_1",
		Date:         "2026-03-03",
		StartTime:    "10:00",
		EndTime:      "11:00",
		Status:       models.AppointmentConfirmed,
		Participants: []models.Participant{{ID: "contact_garcia"}},
	}}}
	o := newTestOrchestrator(t, ledger)

	out := o.ProcessPrompt(context.Background(), testPrompt, testTimezone, "user_1")

	require.Equal(t, models.PipelineConflict, out.Status)
	require.NotNil(t, out.Draft)
	require.NotEmpty(t, out.Suggestions)
	assert.LessOrEqual(t, len(out.Suggestions), DefaultConfig().MaxSuggestions)
	for i := 1; i < len(out.Suggestions); i++ {
		assert.GreaterOrEqual(t, out.Suggestions[i-1].Confidence, out.Suggestions[i].Confidence)
	}

	trace := out.Trace
	require.NotNil(t, trace)
	assert.Equal(t, models.PipelineConflict, trace.FinalStatus)
	assert.Equal(t,
		[]string{AgentParsing, AgentTemporal, AgentGeo, AgentValidation, AgentAvailability, AgentNegotiation},
		agentSequence(trace))
}

func TestOrchestratorEmptyPrompt(t *testing.T) {
	o := newTestOrchestrator(t, &fakeLedger{})

	out := o.ProcessPrompt(context.Background(), "", testTimezone, "user_1")

	require.Equal(t, models.PipelineError, out.Status)
	assert.Nil(t, out.Draft)
	assert.Contains(t, out.Errors, ReasonEmptyInput)

	require.NotNil(t, out.Trace)
	assert.Equal(t, models.PipelineError, out.Trace.FinalStatus)
	assert.Equal(t, []string{AgentParsing}, agentSequence(out.Trace))
}

func TestOrchestratorUnknownContact(t *testing.T) {
	o := newTestOrchestrator(t, &fakeLedger{})

	out := o.ProcessPrompt(context.Background(),
		"Agendar cita con Dr. Mendoza para consulta mañana a las 10:00 en clinica norte",
		testTimezone, "user_1")

	require.Equal(t, models.PipelineError, out.Status)
	assert.Contains(t, out.Errors, ReasonContactNotFound)
	assert.Equal(t, models.PipelineError, out.Trace.FinalStatus)
}

func TestOrchestratorPastDate(t *testing.T) {
	o := newTestOrchestrator(t, &fakeLedger{})

	out := o.ProcessPrompt(context.Background(),
		"Agendar cita con Dr. García para consulta 2026-02-10 a las 10:00 en clinica norte",
		testTimezone, "user_1")

	require.Equal(t, models.PipelineError, out.Status)
	assert.Contains(t, out.Errors, ReasonPastDate)
	assert.Equal(t, []string{AgentParsing, AgentTemporal}, agentSequence(out.Trace))
}

func TestOrchestratorUnresolvedLocationIsNotFatal(t *testing.T) {
	o := newTestOrchestrator(t, &fakeLedger{})

	// No location mentioned: the geo stage falls back to the contact's
	// primary location instead of aborting.
	out := o.ProcessPrompt(context.Background(),
		"Agendar cita con Dr. García para consulta mañana a las 10:00",
		testTimezone, "user_1")

	require.Equal(t, models.PipelineSuccess, out.Status)
	require.NotNil(t, out.Draft)
	assert.Equal(t, "loc_norte", out.Draft.LocationID)
	// The missing location is surfaced as an informational ambiguity.
	require.NotEmpty(t, out.Ambiguities)
	assert.Equal(t, "location", out.Ambiguities[0].Field)
	assert.Equal(t, models.SeverityInfo, out.Ambiguities[0].Severity)
}
