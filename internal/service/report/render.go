package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	domain "github.com/Alijeyrad/psyassist_backend/internal/domain/assessment"
)

// DisplayDateLayout is the dd/MM/yyyy layout used inside report documents.
const DisplayDateLayout = "02/01/2006"

// Passage is a rendered CHC ability paragraph.
type Passage struct {
	AbilityID string `json:"ability_id"`
	Heading   string `json:"heading"`
	Text      string `json:"text"`
}

// Snapshot is the frozen content of a report. It carries everything needed to
// render the document again without consulting the catalog or the child.
type Snapshot struct {
	Title          string      `json:"title"`
	HeaderLines    []string    `json:"header_lines"`
	ChildName      string      `json:"child_name"`
	DateOfBirth    string      `json:"date_of_birth"`
	Age            int         `json:"age"`
	Psychologist   string      `json:"psychologist"`
	ReferralReason string      `json:"referral_reason"`
	AssessmentDate string      `json:"assessment_date"`
	Data           domain.Data `json:"data"`
	Passages       []Passage   `json:"passages"`
	Signature      string      `json:"signature"`
	GeneratedAt    time.Time   `json:"generated_at"`
}

// Filename returns "<prefix>_<child name>.txt" with every space in the name
// replaced by an underscore.
func Filename(prefix, childName string) string {
	name := strings.ReplaceAll(strings.TrimSpace(childName), " ", "_")
	if prefix == "" {
		return name + ".txt"
	}
	return prefix + "_" + name + ".txt"
}

// ScoreLine formats "<tool> - <subtest>: <score> (<scale>)".
func ScoreLine(s domain.Score) string {
	label := s.Tool
	if s.Subtest != "" {
		label += " - " + s.Subtest
	}
	return fmt.Sprintf("%s: %s (%s)", label, formatScore(s.StandardScore), s.ScaleType)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Render writes the plain-text document. Sections appear in a fixed order;
// optional sections are skipped when empty.
func Render(s Snapshot) []byte {
	var b bytes.Buffer
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}
	section := func(title string) {
		b.WriteByte('\n')
		line("%s", title)
		line("%s", strings.Repeat("-", 30))
	}

	// header
	for _, h := range s.HeaderLines {
		line("%s", h)
	}
	line("%s", s.Title)

	section("פרטי הנבדק/ת")
	line("שם: %s", s.ChildName)
	line("תאריך לידה: %s", s.DateOfBirth)
	line("גיל: %d שנים", s.Age)
	line("תאריך אבחון: %s", s.AssessmentDate)
	if s.ReferralReason != "" {
		line("סיבת הפניה: %s", s.ReferralReason)
	}
	if s.Psychologist != "" {
		line("אבחן/ת: %s", s.Psychologist)
	}

	section("תוצאות האבחון")
	for _, sc := range s.Data.Scores {
		line("%s", ScoreLine(sc))
		if n := strings.TrimSpace(sc.Notes); n != "" {
			line("  %s", n)
		}
	}

	strengths, weaknesses := s.Data.Findings()
	if len(strengths)+len(weaknesses) > 0 {
		section("סיכום ממצאים")
		writeFindings(line, "חוזקות:", strengths)
		writeFindings(line, "תחומים לחיזוק:", weaknesses)
	}

	if len(s.Passages) > 0 {
		section("ניתוח יכולות CHC")
		for i, p := range s.Passages {
			if i > 0 {
				b.WriteByte('\n')
			}
			line("%s", p.Heading)
			line("%s", p.Text)
		}
	}

	section("תצפיות התנהגותיות")
	for _, o := range s.Data.Observations {
		line("%s", o.Content)
	}

	section("המלצות להתאמות לימוד")
	for _, r := range s.Data.SelectedRecommendations() {
		line("• %s", r.Title)
	}

	b.WriteByte('\n')
	line("בברכה,")
	if s.Psychologist != "" {
		line("%s", s.Psychologist)
	}
	line("פסיכולוג/ית חינוכי/ת")
	line("דו\"ח זה נוצר באמצעות מערכת PsyAssist | Hash: %s", s.Signature)
	return b.Bytes()
}

func writeFindings(line func(string, ...any), title string, byDomain map[domain.Domain][]domain.Score) {
	if len(byDomain) == 0 {
		return
	}
	line("%s", title)
	for _, d := range domain.Domains {
		scores := byDomain[d]
		if len(scores) == 0 {
			continue
		}
		line("%s:", d.Label())
		for _, sc := range scores {
			label := sc.Tool
			if sc.Subtest != "" {
				label += " - " + sc.Subtest
			}
			line("  • %s", label)
		}
	}
}
