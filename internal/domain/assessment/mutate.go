package assessment

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// ValidateScore checks the fields a new score must carry.
func ValidateScore(s Score) error {
	if strings.TrimSpace(s.Tool) == "" {
		return FieldError{Field: "tool"}
	}
	if !IsValidScore(s.StandardScore, s.ScaleType) {
		return ScoreRangeError{Scale: s.ScaleType, Value: s.StandardScore}
	}
	if s.Domain != nil && !s.Domain.Valid() {
		return ErrInvalidDomain
	}
	return nil
}

// AddScore validates s and appends it. An empty id is generated.
func (d *Data) AddScore(s Score) (Score, error) {
	if err := ValidateScore(s); err != nil {
		return Score{}, err
	}
	if s.ID == "" {
		s.ID = newID()
	}
	s.Tool = strings.TrimSpace(s.Tool)
	s.Subtest = strings.TrimSpace(s.Subtest)
	d.Scores = append(d.Scores, s)
	return s, nil
}

// MarkDomainStrength tags a score with a domain and a strength flag.
func (d *Data) MarkDomainStrength(scoreID string, domain Domain, strength bool) (Score, error) {
	if !domain.Valid() {
		return Score{}, ErrInvalidDomain
	}
	for i := range d.Scores {
		if d.Scores[i].ID != scoreID {
			continue
		}
		dom := domain
		st := strength
		d.Scores[i].Domain = &dom
		d.Scores[i].Strength = &st
		return d.Scores[i], nil
	}
	return Score{}, ErrScoreNotFound
}

// AddObservation appends a stamped observation.
func (d *Data) AddObservation(content string, at time.Time) (Observation, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Observation{}, FieldError{Field: "content"}
	}
	o := Observation{
		ID:        newID(),
		Content:   content,
		Timestamp: at.Format(ObservationTimeLayout),
	}
	d.Observations = append(d.Observations, o)
	return o, nil
}

// AddCustomRecommendation appends a user-authored recommendation, selected.
func (d *Data) AddCustomRecommendation(title string) (Recommendation, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Recommendation{}, FieldError{Field: "title"}
	}
	r := Recommendation{ID: newID(), Title: title, Selected: true, Custom: true}
	d.Recommendations = append(d.Recommendations, r)
	return r, nil
}

// ToggleRecommendation flips the selection of the recommendation with id.
func (d *Data) ToggleRecommendation(id string) (Recommendation, error) {
	for i := range d.Recommendations {
		if d.Recommendations[i].ID == id {
			d.Recommendations[i].Selected = !d.Recommendations[i].Selected
			return d.Recommendations[i], nil
		}
	}
	return Recommendation{}, ErrRecommendationNotFound
}

// AddXBATest appends a CHC mapping. A referenced score must exist; a directly
// entered test is range-checked like any new score.
func (d *Data) AddXBATest(x XBATest) (XBATest, error) {
	if err := d.ValidateXBATest(x); err != nil {
		return XBATest{}, err
	}
	if x.SourceScoreID != nil {
		x.Tool, x.Subtest, x.StandardScore, x.ScaleType = "", "", 0, ""
	}
	if x.ID == "" {
		x.ID = newID()
	}
	d.XBATests = append(d.XBATests, x)
	return x, nil
}

// SetPassage replaces the sentence selection of an ability and regenerates
// its text from bank.
func (d *Data) SetPassage(abilityID string, sentenceIDs []string, custom string, bank map[string]string) CHCPassage {
	p := CHCPassage{
		AbilityID:           abilityID,
		SelectedSentenceIDs: append([]string{}, sentenceIDs...),
		CustomText:          strings.TrimSpace(custom),
	}
	p.GeneratedText = Compose(p.SelectedSentenceIDs, bank, p.CustomText)

	for i := range d.CHCPassages {
		if d.CHCPassages[i].AbilityID == abilityID {
			d.CHCPassages[i] = p
			return p
		}
	}
	d.CHCPassages = append(d.CHCPassages, p)
	return p
}

// NewScores returns the scores of d whose ids are absent from prev.
func (d Data) NewScores(prev Data) []Score {
	seen := make(map[string]struct{}, len(prev.Scores))
	for _, s := range prev.Scores {
		seen[s.ID] = struct{}{}
	}
	var out []Score
	for _, s := range d.Scores {
		if _, ok := seen[s.ID]; !ok || s.ID == "" {
			out = append(out, s)
		}
	}
	return out
}

// ValidateXBATest checks x against the scores of d. A linked test needs its
// source score in d; a direct one needs a tool and an in-range score.
func (d Data) ValidateXBATest(x XBATest) error {
	if strings.TrimSpace(x.AbilityID) == "" {
		return FieldError{Field: "ability_id"}
	}
	if x.SourceScoreID != nil {
		if _, ok := d.ScoreByID(*x.SourceScoreID); !ok {
			return ErrScoreNotFound
		}
		return nil
	}
	if strings.TrimSpace(x.Tool) == "" {
		return FieldError{Field: "tool"}
	}
	if !IsValidScore(x.StandardScore, x.ScaleType) {
		return ScoreRangeError{Scale: x.ScaleType, Value: x.StandardScore}
	}
	return nil
}

// NewXBATests returns the tests of d whose id is absent from prev.
func (d Data) NewXBATests(prev Data) []XBATest {
	seen := make(map[string]struct{}, len(prev.XBATests))
	for _, x := range prev.XBATests {
		seen[x.ID] = struct{}{}
	}
	var out []XBATest
	for _, x := range d.XBATests {
		if _, ok := seen[x.ID]; !ok || x.ID == "" {
			out = append(out, x)
		}
	}
	return out
}

// AssignMissingIDs gives every entry without an id a fresh one.
func (d *Data) AssignMissingIDs() {
	for i := range d.Scores {
		if d.Scores[i].ID == "" {
			d.Scores[i].ID = newID()
		}
	}
	for i := range d.Observations {
		if d.Observations[i].ID == "" {
			d.Observations[i].ID = newID()
		}
	}
	for i := range d.Recommendations {
		if d.Recommendations[i].ID == "" {
			d.Recommendations[i].ID = newID()
		}
	}
	for i := range d.XBATests {
		if d.XBATests[i].ID == "" {
			d.XBATests[i].ID = newID()
		}
	}
}
