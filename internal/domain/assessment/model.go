package assessment

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// SchemaVersion is written into every encoded blob.
const SchemaVersion = 2

// ObservationTimeLayout is the dd/MM/yyyy HH:mm layout of observation stamps.
const ObservationTimeLayout = "02/01/2006 15:04"

type Status string

const (
	StatusDraft      Status = "draft"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Domain string

const (
	DomainCognitive Domain = "cognitive"
	DomainDidactic  Domain = "didactic"
	DomainEmotional Domain = "emotional"
)

// Domains lists the finding domains in report order.
var Domains = []Domain{DomainCognitive, DomainDidactic, DomainEmotional}

func (d Domain) Valid() bool {
	return slices.Contains(Domains, d)
}

// Label returns the Hebrew section label of the domain.
func (d Domain) Label() string {
	switch d {
	case DomainCognitive:
		return "תחום קוגניטיבי"
	case DomainDidactic:
		return "תחום דידקטי"
	case DomainEmotional:
		return "תחום רגשי"
	default:
		return string(d)
	}
}

type Score struct {
	ID            string    `json:"id"`
	Tool          string    `json:"tool"`
	Subtest       string    `json:"subtest"`
	StandardScore float64   `json:"standard_score"`
	ScaleType     ScaleType `json:"scale_type"`
	Notes         string    `json:"notes"`
	Domain        *Domain   `json:"domain,omitempty"`
	Strength      *bool     `json:"strength,omitempty"`
}

type Observation struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type Recommendation struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Selected bool   `json:"selected"`
	Custom   bool   `json:"custom,omitempty"`
}

// XBATest maps a score onto a CHC ability. Either SourceScoreID references a
// Score of the same assessment, or the test fields are entered directly.
type XBATest struct {
	ID            string    `json:"id"`
	AbilityID     string    `json:"ability_id"`
	SourceScoreID *string   `json:"source_score_id,omitempty"`
	Tool          string    `json:"tool,omitempty"`
	Subtest       string    `json:"subtest,omitempty"`
	StandardScore float64   `json:"standard_score,omitempty"`
	ScaleType     ScaleType `json:"scale_type,omitempty"`
}

type CHCPassage struct {
	AbilityID           string   `json:"ability_id"`
	SelectedSentenceIDs []string `json:"selected_sentence_ids"`
	CustomText          string   `json:"custom_text,omitempty"`
	GeneratedText       string   `json:"generated_text"`
}

// Data is the serialized part of an assessment.
type Data struct {
	SchemaVersion   int              `json:"schema_version"`
	ReferralReason  string           `json:"referral_reason,omitempty"`
	Scores          []Score          `json:"scores"`
	Observations    []Observation    `json:"observations"`
	Recommendations []Recommendation `json:"recommendations"`
	XBATests        []XBATest        `json:"xba_tests"`
	CHCPassages     []CHCPassage     `json:"chc_passages"`
}

// Assessment is the aggregate edited in one session and persisted as a blob.
type Assessment struct {
	ID        uuid.UUID `json:"id"`
	ChildID   uuid.UUID `json:"child_id"`
	ChildName string    `json:"child_name"`
	UserID    uuid.UUID `json:"user_id"`
	Status    Status    `json:"status"`
	Data      Data      `json:"data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewData returns an empty blob with every collection non-nil.
func NewData() Data {
	return Data{
		SchemaVersion:   SchemaVersion,
		Scores:          []Score{},
		Observations:    []Observation{},
		Recommendations: []Recommendation{},
		XBATests:        []XBATest{},
		CHCPassages:     []CHCPassage{},
	}
}

// SelectedRecommendations returns the selected entries in list order.
func (d Data) SelectedRecommendations() []Recommendation {
	out := make([]Recommendation, 0, len(d.Recommendations))
	for _, r := range d.Recommendations {
		if r.Selected {
			out = append(out, r)
		}
	}
	return out
}

func (d Data) ScoreByID(id string) (Score, bool) {
	for _, s := range d.Scores {
		if s.ID == id {
			return s, true
		}
	}
	return Score{}, false
}

func (d Data) Passage(abilityID string) (CHCPassage, bool) {
	for _, p := range d.CHCPassages {
		if p.AbilityID == abilityID {
			return p, true
		}
	}
	return CHCPassage{}, false
}

// Findings groups domain-tagged scores into strengths and weaknesses.
func (d Data) Findings() (strengths, weaknesses map[Domain][]Score) {
	strengths = map[Domain][]Score{}
	weaknesses = map[Domain][]Score{}
	for _, s := range d.Scores {
		if s.Domain == nil {
			continue
		}
		if s.Strength != nil && *s.Strength {
			strengths[*s.Domain] = append(strengths[*s.Domain], s)
		} else {
			weaknesses[*s.Domain] = append(weaknesses[*s.Domain], s)
		}
	}
	return strengths, weaknesses
}
