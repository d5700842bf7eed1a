package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concierge/models"
)

func TestParsingAgentFullPrompt(t *testing.T) {
	agent := NewParsingAgent(DefaultConfig())

	res := agent.Run("Agendar cita con Dr. García para consulta mañana a las 10:00 en clinica norte")

	require.Equal(t, models.StatusSuccess, res.Status)
	require.NotNil(t, res.Parsed)
	assert.Equal(t, "García", res.Parsed.ContactName)
	assert.Equal(t, "mañana", res.Parsed.RawDate)
	assert.Equal(t, "10:00", res.Parsed.RawTime)
	assert.Equal(t, "clinica norte", res.Parsed.RawLocation)
	assert.Equal(t, "consulta", res.Parsed.RawService)
	assert.Empty(t, res.Parsed.Ambiguities)
	assert.Equal(t, 1.0, res.Confidence)
}

func TestParsingAgentEmptyPrompt(t *testing.T) {
	agent := NewParsingAgent(DefaultConfig())

	res := agent.Run("   ")

	require.Equal(t, models.StatusError, res.Status)
	assert.Contains(t, res.Errors, ReasonEmptyInput)
	assert.Nil(t, res.Parsed)
}

func TestParsingAgentMissingEntities(t *testing.T) {
	agent := NewParsingAgent(DefaultConfig())

	res := agent.Run("necesito una cita")

	require.Equal(t, models.StatusWarning, res.Status)
	require.NotNil(t, res.Parsed)
	assert.Equal(t, 0.0, res.Confidence)

	severities := map[string]string{}
	for _, amb := range res.Parsed.Ambiguities {
		severities[amb.Field] = amb.Severity
	}
	assert.Equal(t, models.SeverityError, severities["contact"])
	assert.Equal(t, models.SeverityError, severities["date"])
	assert.Equal(t, models.SeverityWarning, severities["time"])
	assert.Equal(t, models.SeverityInfo, severities["location"])
}

func TestParsingAgentMissingTimeIsWarningOnly(t *testing.T) {
	agent := NewParsingAgent(DefaultConfig())

	res := agent.Run("Cita con Dra. López para chequeo el viernes en clinica sur")

	require.Equal(t, models.StatusWarning, res.Status)
	require.NotNil(t, res.Parsed)
	assert.Equal(t, "López", res.Parsed.ContactName)
	assert.Equal(t, "viernes", res.Parsed.RawDate)
	assert.Empty(t, res.Parsed.RawTime)
	// Both required entities present despite the missing time.
	assert.Equal(t, 1.0, res.Confidence)

	require.Len(t, res.Parsed.Ambiguities, 1)
	assert.Equal(t, "time", res.Parsed.Ambiguities[0].Field)
	assert.Equal(t, models.SeverityWarning, res.Parsed.Ambiguities[0].Severity)
}

func TestParsingAgentDateForms(t *testing.T) {
	agent := NewParsingAgent(DefaultConfig())

	cases := map[string]string{
		"cita con Dr. Ruiz para consulta hoy a las 9:00 en clinica norte":           "hoy",
		"cita con Dr. Ruiz para consulta pasado mañana a las 9:00 en clinica norte": "pasado mañana",
		"cita con Dr. Ruiz para consulta el lunes a las 9:00 en clinica norte":      "lunes",
		"cita con Dr. Ruiz para consulta 2026-03-15 a las 9:00 en clinica norte":    "2026-03-15",
		"cita con Dr. Ruiz para consulta 15/03/2026 a las 9:00 en clinica norte":    "15/03/2026",
	}
	for prompt, want := range cases {
		res := agent.Run(prompt)
		require.NotNil(t, res.Parsed, prompt)
		assert.Equal(t, want, res.Parsed.RawDate, prompt)
	}
}

func TestParsingAgentTimeForms(t *testing.T) {
	agent := NewParsingAgent(DefaultConfig())

	cases := map[string]string{
		"cita con Dr. Ruiz para consulta mañana a las 10am en clinica norte":  "10am",
		"cita con Dr. Ruiz para consulta mañana a las 14:30 en clinica norte": "14:30",
		"cita con Dr. Ruiz para consulta mañana en la tarde":                  "tarde",
	}
	for prompt, want := range cases {
		res := agent.Run(prompt)
		require.NotNil(t, res.Parsed, prompt)
		assert.Equal(t, want, res.Parsed.RawTime, prompt)
	}
}
