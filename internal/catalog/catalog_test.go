package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/psyassist_backend/internal/domain/assessment"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Tools(), 16)
	assert.Len(t, c.Abilities(), 9)

	recs := c.StarterRecommendations()
	require.Len(t, recs, 10)
	for i, r := range recs {
		assert.False(t, r.Selected, "starter %d must start unselected", i)
		assert.NotEmpty(t, r.Title)
	}
	assert.Equal(t, "1", recs[0].ID)
	assert.Equal(t, "10", recs[9].ID)

	for _, a := range c.Abilities() {
		assert.NotEmpty(t, a.Code, a.ID)
		assert.NotEmpty(t, a.NameHe, a.ID)
		assert.NotEmpty(t, a.Sentences, a.ID)
	}
}

func TestAbilityBankComposes(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	gwm, ok := c.Ability("gwm")
	require.True(t, ok)

	text := assessment.Compose([]string{"gwm-2", "gwm-1"}, gwm.Bank(), "")
	assert.Equal(t, gwm.Sentences[1].Text+". "+gwm.Sentences[0].Text+".", text)

	_, ok = c.Ability("gx")
	assert.False(t, ok)
}

func TestStarterRecommendationsAreCopies(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	recs := c.StarterRecommendations()
	recs[0].Selected = true

	assert.False(t, c.StarterRecommendations()[0].Selected)
	assert.Len(t, c.NewAssessmentData().Recommendations, 10)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bad yaml", "abilities: [:"},
		{"missing id", "abilities:\n  - code: Gf\n"},
		{"duplicate ability", "abilities:\n  - id: gf\n  - id: gf\n"},
		{"duplicate sentence", "abilities:\n  - id: gf\n    sentences:\n      - id: s\n        text: a\n  - id: gc\n    sentences:\n      - id: s\n        text: b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}
