package assessment

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData(t *testing.T) Data {
	t.Helper()
	d := NewData()
	d.ReferralReason = "קשיים בלמידה ובריכוז"

	s, err := d.AddScore(Score{Tool: "WISC-V", Subtest: "Working Memory", StandardScore: 78, ScaleType: ScaleS100})
	require.NoError(t, err)
	_, err = d.AddScore(Score{Tool: "מבחן קריאה", Subtest: "זיהוי מילים", StandardScore: 9, ScaleType: ScaleS10, Notes: "קושי"})
	require.NoError(t, err)
	_, err = d.MarkDomainStrength(s.ID, DomainCognitive, false)
	require.NoError(t, err)

	_, err = d.AddObservation("Child cooperated well", time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	d.Recommendations = append(d.Recommendations,
		Recommendation{ID: "1", Title: "extra time on tests", Selected: true},
		Recommendation{ID: "2", Title: "larger font"},
	)
	_, err = d.AddXBATest(XBATest{AbilityID: "gwm", SourceScoreID: &s.ID})
	require.NoError(t, err)
	d.SetPassage("gwm", []string{"a", "b"}, "custom", map[string]string{"a": "One", "b": "Two."})
	return d
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	d := sampleData(t)

	raw, err := Encode(d)
	require.NoError(t, err)

	got, bad := Decode(raw)
	assert.Empty(t, bad)

	d.SchemaVersion = SchemaVersion
	if diff := cmp.Diff(d, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "One. Two. custom", got.CHCPassages[0].GeneratedText)
}

func TestDecode_Defensive(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantBad []string
		check   func(t *testing.T, d Data)
	}{
		{
			name: "empty blob",
			raw:  "",
		},
		{
			name:    "not json",
			raw:     "{broken",
			wantBad: []string{"$"},
		},
		{
			name:    "json array root",
			raw:     "[1,2]",
			wantBad: []string{"$"},
		},
		{
			name:    "one mistyped field",
			raw:     `{"scores":"oops","observations":[{"id":"o1","content":"hi","timestamp":"01/01/2024 10:00"}]}`,
			wantBad: []string{"scores"},
			check: func(t *testing.T, d Data) {
				assert.Empty(t, d.Scores)
				require.Len(t, d.Observations, 1)
				assert.Equal(t, "hi", d.Observations[0].Content)
			},
		},
		{
			name:    "element type mismatch",
			raw:     `{"scores":[{"standard_score":"high"}],"recommendations":[{"id":"1","title":"t","selected":true}]}`,
			wantBad: []string{"scores"},
			check: func(t *testing.T, d Data) {
				assert.Empty(t, d.Scores)
				assert.Len(t, d.SelectedRecommendations(), 1)
			},
		},
		{
			name: "null fields and legacy keys",
			raw:  `{"scores":null,"xbaTests":[{"id":"x1","ability_id":"gf","tool":"T","standard_score":10,"scale_type":"S10"}]}`,
			check: func(t *testing.T, d Data) {
				assert.NotNil(t, d.Scores)
				require.Len(t, d.XBATests, 1)
				assert.Equal(t, "gf", d.XBATests[0].AbilityID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, bad := Decode([]byte(tt.raw))
			assert.Equal(t, tt.wantBad, bad)
			assert.NotNil(t, d.Scores)
			assert.NotNil(t, d.Observations)
			assert.NotNil(t, d.Recommendations)
			assert.NotNil(t, d.XBATests)
			assert.NotNil(t, d.CHCPassages)
			if tt.check != nil {
				tt.check(t, d)
			}
		})
	}
}
