package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/Alijeyrad/psyassist_backend/internal/domain/assessment"
)

func TestFilename(t *testing.T) {
	assert.Equal(t, "דוח_אבחון_Sara_Cohen.txt", Filename("דוח_אבחון", "Sara Cohen"))
	assert.Equal(t, "prefix_Anna_Maria_Lopez.txt", Filename("prefix", " Anna Maria Lopez "))
	assert.Equal(t, "Noa.txt", Filename("", "Noa"))
}

func TestScoreLine(t *testing.T) {
	assert.Equal(t, "WISC-V - Working Memory: 78 (S100)",
		ScoreLine(domain.Score{Tool: "WISC-V", Subtest: "Working Memory", StandardScore: 78, ScaleType: domain.ScaleS100}))
	assert.Equal(t, "TOVA: -1.25 (Z)",
		ScoreLine(domain.Score{Tool: "TOVA", StandardScore: -1.25, ScaleType: domain.ScaleZ}))
}

func TestRender_FindingsAndPassages(t *testing.T) {
	cog := domain.DomainCognitive
	emo := domain.DomainEmotional
	yes, no := true, false

	d := domain.NewData()
	d.ReferralReason = "קשיי קשב"
	d.Scores = []domain.Score{
		{ID: "a", Tool: "WISC-V", Subtest: "Verbal", StandardScore: 118, ScaleType: domain.ScaleS100, Domain: &cog, Strength: &yes},
		{ID: "b", Tool: "CPT-3", Subtest: "Omissions", StandardScore: 4, ScaleType: domain.ScaleS10, Domain: &emo, Strength: &no},
	}
	d.Recommendations = []domain.Recommendation{
		{ID: "1", Title: "selected", Selected: true},
		{ID: "2", Title: "skipped"},
	}

	text := string(Render(Snapshot{
		Title:          "Title",
		ChildName:      "Noa",
		Psychologist:   "Dr. Levi",
		ReferralReason: d.ReferralReason,
		Data:           d,
		Passages:       []Passage{{AbilityID: "gwm", Heading: "זיכרון עבודה (Gwm)", Text: "Some text."}},
		Signature:      "SIG12345",
	}))

	assert.Contains(t, text, "סיבת הפניה: קשיי קשב")
	assert.Contains(t, text, "אבחן/ת: Dr. Levi")
	assert.Less(t, strings.Index(text, "חוזקות:"), strings.Index(text, "תחומים לחיזוק:"))
	assert.Contains(t, text, "תחום קוגניטיבי:\n  • WISC-V - Verbal")
	assert.Contains(t, text, "תחום רגשי:\n  • CPT-3 - Omissions")
	assert.Contains(t, text, "זיכרון עבודה (Gwm)\nSome text.")
	assert.Contains(t, text, "• selected")
	assert.NotContains(t, text, "skipped")
	assert.True(t, strings.HasSuffix(text, "Hash: SIG12345\n"))
}

func TestRender_OmitsEmptyOptionalSections(t *testing.T) {
	text := string(Render(Snapshot{Title: "T", ChildName: "Noa", Data: domain.NewData()}))
	assert.NotContains(t, text, "סיכום ממצאים")
	assert.NotContains(t, text, "CHC")
	assert.NotContains(t, text, "סיבת הפניה")
	assert.Contains(t, text, "תצפיות התנהגותיות")
}
