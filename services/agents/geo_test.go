package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concierge/models"
)

func testLocations() []models.Location {
	return []models.Location{
		{ID: "loc_norte", Name: "Clínica Norte", Available: true},
		{ID: "loc_sur", Name: "Clínica Sur", Available: true},
	}
}

func TestGeoAgentExactMatch(t *testing.T) {
	agent := NewGeoAgent(DefaultConfig())

	res := agent.Run("Clínica Norte", testLocations())

	require.Equal(t, models.StatusSuccess, res.Status)
	require.NotNil(t, res.Location)
	assert.Equal(t, "loc_norte", res.Location.LocationID)
	assert.Equal(t, models.MatchExact, res.Location.MatchedBy)
	assert.Equal(t, 1.0, res.Location.Confidence)
}

func TestGeoAgentNormalizedMatch(t *testing.T) {
	agent := NewGeoAgent(DefaultConfig())

	// Accent-folded input still resolves, above the fuzzy threshold.
	res := agent.Run("clinica norte", testLocations())

	require.Equal(t, models.StatusSuccess, res.Status)
	require.NotNil(t, res.Location)
	assert.Equal(t, "loc_norte", res.Location.LocationID)
	assert.Equal(t, models.MatchNormalized, res.Location.MatchedBy)
	assert.Equal(t, 0.95, res.Location.Confidence)
	assert.GreaterOrEqual(t, res.Location.Confidence, 0.7)
}

func TestGeoAgentVenuePrefixStripped(t *testing.T) {
	agent := NewGeoAgent(DefaultConfig())

	res := agent.Run("norte", testLocations())

	require.NotNil(t, res.Location)
	assert.Equal(t, "loc_norte", res.Location.LocationID)
	assert.Equal(t, models.MatchNormalized, res.Location.MatchedBy)
}

func TestGeoAgentDefaultsToPrimaryLocation(t *testing.T) {
	agent := NewGeoAgent(DefaultConfig())

	res := agent.Run("", testLocations())

	require.Equal(t, models.StatusSuccess, res.Status)
	require.NotNil(t, res.Location)
	assert.Equal(t, "loc_norte", res.Location.LocationID)
	assert.Equal(t, models.MatchDefault, res.Location.MatchedBy)
	assert.Equal(t, 0.8, res.Location.Confidence)
}

func TestGeoAgentNoLocations(t *testing.T) {
	agent := NewGeoAgent(DefaultConfig())

	res := agent.Run("", nil)
	require.Equal(t, models.StatusError, res.Status)
	assert.Contains(t, res.Errors, ReasonNoLocationAvailable)

	res = agent.Run("clinica norte", nil)
	require.Equal(t, models.StatusError, res.Status)
	assert.Contains(t, res.Errors, ReasonNoLocationAvailable)
}

func TestGeoAgentLowConfidenceListsAlternatives(t *testing.T) {
	agent := NewGeoAgent(DefaultConfig())

	res := agent.Run("bodega central", testLocations())

	require.Equal(t, models.StatusWarning, res.Status)
	require.NotNil(t, res.Location)
	assert.Equal(t, models.MatchFuzzy, res.Location.MatchedBy)
	assert.LessOrEqual(t, res.Location.Confidence, 0.7)
	require.Len(t, res.Location.Alternatives, 2)
	// Alternatives come ranked best-first.
	assert.GreaterOrEqual(t,
		res.Location.Alternatives[0].Confidence,
		res.Location.Alternatives[1].Confidence)
}
