package assessment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 20, 10, 30, 0, 0, time.UTC)

func TestAddScore(t *testing.T) {
	d := NewData()

	s, err := d.AddScore(Score{Tool: " WISC-V ", Subtest: "Working Memory", StandardScore: 78, ScaleType: ScaleS100})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "WISC-V", s.Tool)

	_, err = d.AddScore(Score{Tool: "", StandardScore: 100, ScaleType: ScaleS100})
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = d.AddScore(Score{Tool: "VMI", StandardScore: 0, ScaleType: ScaleS10})
	assert.ErrorIs(t, err, ErrInvalidScore)

	bad := Domain("social")
	_, err = d.AddScore(Score{Tool: "VMI", StandardScore: 10, ScaleType: ScaleS10, Domain: &bad})
	assert.ErrorIs(t, err, ErrInvalidDomain)

	assert.Len(t, d.Scores, 1)
}

func TestMarkDomainStrength(t *testing.T) {
	d := NewData()
	s, err := d.AddScore(Score{Tool: "WISC-V", StandardScore: 95, ScaleType: ScaleS100})
	require.NoError(t, err)

	got, err := d.MarkDomainStrength(s.ID, DomainCognitive, true)
	require.NoError(t, err)
	require.NotNil(t, got.Domain)
	assert.Equal(t, DomainCognitive, *got.Domain)
	assert.True(t, *got.Strength)

	_, err = d.MarkDomainStrength("missing", DomainCognitive, true)
	assert.ErrorIs(t, err, ErrScoreNotFound)

	_, err = d.MarkDomainStrength(s.ID, Domain("x"), true)
	assert.ErrorIs(t, err, ErrInvalidDomain)

	strengths, weaknesses := d.Findings()
	assert.Len(t, strengths[DomainCognitive], 1)
	assert.Empty(t, weaknesses)
}

func TestAddObservation(t *testing.T) {
	d := NewData()
	o, err := d.AddObservation("  Child cooperated well ", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "Child cooperated well", o.Content)
	assert.Equal(t, "20/01/2024 10:30", o.Timestamp)

	_, err = d.AddObservation("   ", fixedNow)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestRecommendations(t *testing.T) {
	d := NewData()
	d.Recommendations = append(d.Recommendations, Recommendation{ID: "1", Title: "extra time on tests"})

	r, err := d.ToggleRecommendation("1")
	require.NoError(t, err)
	assert.True(t, r.Selected)

	custom, err := d.AddCustomRecommendation("play therapy twice a week")
	require.NoError(t, err)
	assert.True(t, custom.Selected)
	assert.True(t, custom.Custom)

	_, err = d.ToggleRecommendation("1")
	require.NoError(t, err)

	sel := d.SelectedRecommendations()
	require.Len(t, sel, 1)
	assert.Equal(t, custom.ID, sel[0].ID)

	_, err = d.ToggleRecommendation("nope")
	assert.ErrorIs(t, err, ErrRecommendationNotFound)
}

func TestAddXBATest(t *testing.T) {
	d := NewData()
	s, err := d.AddScore(Score{Tool: "WISC-V", Subtest: "Digit Span", StandardScore: 7, ScaleType: ScaleS10})
	require.NoError(t, err)

	// the same score may back several mappings
	_, err = d.AddXBATest(XBATest{AbilityID: "gwm", SourceScoreID: &s.ID})
	require.NoError(t, err)
	_, err = d.AddXBATest(XBATest{AbilityID: "gs", SourceScoreID: &s.ID})
	require.NoError(t, err)

	missing := "missing"
	_, err = d.AddXBATest(XBATest{AbilityID: "gwm", SourceScoreID: &missing})
	assert.ErrorIs(t, err, ErrScoreNotFound)

	_, err = d.AddXBATest(XBATest{AbilityID: "gf", Tool: "Tower of London", StandardScore: 200, ScaleType: ScaleS100})
	assert.ErrorIs(t, err, ErrInvalidScore)

	_, err = d.AddXBATest(XBATest{AbilityID: "gf", Tool: "Tower of London", StandardScore: 105, ScaleType: ScaleS100})
	require.NoError(t, err)

	_, err = d.AddXBATest(XBATest{Tool: "x", StandardScore: 1, ScaleType: ScaleZ})
	assert.ErrorIs(t, err, ErrMissingField)

	assert.Len(t, d.XBATests, 3)
}

func TestSetPassage_Replaces(t *testing.T) {
	d := NewData()
	bank := map[string]string{"a": "Alpha", "b": "Beta"}

	p := d.SetPassage("gf", []string{"a"}, "", bank)
	assert.Equal(t, "Alpha.", p.GeneratedText)

	p = d.SetPassage("gf", []string{"b", "a"}, "more", bank)
	assert.Equal(t, "Beta. Alpha. more", p.GeneratedText)
	assert.Len(t, d.CHCPassages, 1)
}

func TestNewScores(t *testing.T) {
	prev := NewData()
	s, err := prev.AddScore(Score{Tool: "WISC-V", StandardScore: 100, ScaleType: ScaleS100})
	require.NoError(t, err)

	next := prev
	next.Scores = append([]Score{}, prev.Scores...)
	next.Scores = append(next.Scores, Score{ID: "new", Tool: "VMI", StandardScore: 10, ScaleType: ScaleS10})

	fresh := next.NewScores(prev)
	require.Len(t, fresh, 1)
	assert.Equal(t, "new", fresh[0].ID)
	assert.NotEqual(t, s.ID, fresh[0].ID)
}

func TestAssignMissingIDs(t *testing.T) {
	d := NewData()
	d.Scores = []Score{{ID: "keep"}, {}}
	d.Observations = []Observation{{Content: "x"}}
	d.Recommendations = []Recommendation{{Title: "r"}}
	d.XBATests = []XBATest{{AbilityID: "gf"}}

	d.AssignMissingIDs()

	assert.Equal(t, "keep", d.Scores[0].ID)
	assert.NotEmpty(t, d.Scores[1].ID)
	assert.NotEmpty(t, d.Observations[0].ID)
	assert.NotEmpty(t, d.Recommendations[0].ID)
	assert.NotEmpty(t, d.XBATests[0].ID)
}
