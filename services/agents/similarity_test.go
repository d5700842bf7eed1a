package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	t.Run("identical strings score 1", func(t *testing.T) {
		assert.Equal(t, 1.0, similarity("clinica norte", "clinica norte"))
	})

	t.Run("both empty score 1", func(t *testing.T) {
		assert.Equal(t, 1.0, similarity("", ""))
	})

	t.Run("disjoint strings score 0", func(t *testing.T) {
		assert.Equal(t, 0.0, similarity("abc", "xyz"))
	})

	t.Run("one empty scores 0", func(t *testing.T) {
		assert.Equal(t, 0.0, similarity("norte", ""))
	})

	t.Run("close names score high", func(t *testing.T) {
		score := similarity("clinica norte", "clinica del norte")
		assert.Greater(t, score, 0.7)
		assert.Less(t, score, 1.0)
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t,
			similarity("sucursal sur", "clinica sur"),
			similarity("clinica sur", "sucursal sur"))
	})
}
