package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	bank := map[string]string{
		"id1": "Text one",
		"id2": "Text two.",
		"id3": "Text three...",
	}

	tests := []struct {
		name   string
		ids    []string
		bank   map[string]string
		custom string
		want   string
	}{
		{"empty", nil, map[string]string{}, "", ""},
		{"single sentence", []string{"id1"}, map[string]string{"id1": "Text one"}, "", "Text one."},
		{"sentence with period and custom", []string{"id1"}, map[string]string{"id1": "Text one."}, "extra", "Text one. extra"},
		{"order preserved", []string{"id2", "id1"}, bank, "", "Text two. Text one."},
		{"repeated periods collapse", []string{"id3"}, bank, "", "Text three."},
		{"unknown ids dropped", []string{"nope", "id1", "missing"}, bank, "", "Text one."},
		{"custom only", nil, bank, "  only custom  ", "only custom"},
		{"blank custom ignored", []string{"id1"}, bank, "   ", "Text one."},
		{"all unknown", []string{"x", "y"}, bank, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(tt.ids, tt.bank, tt.custom))
		})
	}
}

func TestCompose_DoesNotMutateInputs(t *testing.T) {
	ids := []string{"id2", "id1"}
	bank := map[string]string{"id1": "Text one", "id2": "Text two."}

	first := Compose(ids, bank, "tail")
	second := Compose(ids, bank, "tail")

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"id2", "id1"}, ids)
	assert.Equal(t, "Text two.", bank["id2"])
}
