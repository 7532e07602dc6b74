// Package catalog holds the static reference data offered while editing an
// assessment: diagnostic tools, starter recommendations and the CHC ability
// taxonomy with its sentence bank.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Alijeyrad/psyassist_backend/internal/domain/assessment"
)

//go:embed chc.yaml
var chcYAML []byte

type Sentence struct {
	ID   string `yaml:"id" json:"id"`
	Text string `yaml:"text" json:"text"`
}

type Ability struct {
	ID          string     `yaml:"id" json:"id"`
	Code        string     `yaml:"code" json:"code"`
	Name        string     `yaml:"name" json:"name"`
	NameHe      string     `yaml:"name_he" json:"name_he"`
	Description string     `yaml:"description" json:"description"`
	Sentences   []Sentence `yaml:"sentences" json:"sentences"`
}

// Bank maps sentence ids to their text.
func (a Ability) Bank() map[string]string {
	out := make(map[string]string, len(a.Sentences))
	for _, s := range a.Sentences {
		out[s.ID] = s.Text
	}
	return out
}

// Catalog is immutable after Load.
type Catalog struct {
	tools           []string
	recommendations []assessment.Recommendation
	abilities       []Ability
	byID            map[string]int
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the catalog built from the embedded data.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Load(chcYAML)
	})
	return defaultCat, defaultErr
}

// Load parses a CHC ability document.
func Load(raw []byte) (*Catalog, error) {
	var doc struct {
		Abilities []Ability `yaml:"abilities"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse chc catalog: %w", err)
	}

	c := &Catalog{
		tools:           diagnosticTools,
		recommendations: starterRecommendations,
		abilities:       doc.Abilities,
		byID:            make(map[string]int, len(doc.Abilities)),
	}
	seen := map[string]struct{}{}
	for i, a := range doc.Abilities {
		if a.ID == "" {
			return nil, fmt.Errorf("chc catalog: ability %d has no id", i)
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("chc catalog: duplicate ability %q", a.ID)
		}
		c.byID[a.ID] = i
		for _, s := range a.Sentences {
			if _, dup := seen[s.ID]; dup {
				return nil, fmt.Errorf("chc catalog: duplicate sentence %q", s.ID)
			}
			seen[s.ID] = struct{}{}
		}
	}
	return c, nil
}

func (c *Catalog) Tools() []string {
	return append([]string{}, c.tools...)
}

// StarterRecommendations returns the ten catalog entries, all unselected.
func (c *Catalog) StarterRecommendations() []assessment.Recommendation {
	return append([]assessment.Recommendation{}, c.recommendations...)
}

func (c *Catalog) Abilities() []Ability {
	return append([]Ability{}, c.abilities...)
}

func (c *Catalog) Ability(id string) (Ability, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Ability{}, false
	}
	return c.abilities[i], true
}

// NewAssessmentData returns an empty blob seeded with the starter
// recommendations.
func (c *Catalog) NewAssessmentData() assessment.Data {
	d := assessment.NewData()
	d.Recommendations = c.StarterRecommendations()
	return d
}
