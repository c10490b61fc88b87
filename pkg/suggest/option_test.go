package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Strings(t *testing.T) {
	values := []string{"Apple", "", "banana split", "Ünïcode"}
	options := Normalize(Strings(values...), "title", "value")

	require.Len(t, options, len(values))
	for i, v := range values {
		assert.Equal(t, v, options[i].Title)
		assert.Equal(t, v, options[i].Value)
		assert.Equal(t, v, options[i].Raw)
	}
}

func TestNormalize_Objects(t *testing.T) {
	tests := []struct {
		name      string
		item      any
		wantTitle string
		wantValue any
	}{
		{
			name:      "title and value present",
			item:      map[string]any{"title": "Germany", "value": "DE"},
			wantTitle: "Germany",
			wantValue: "DE",
		},
		{
			name:      "numeric title is coerced to text",
			item:      map[string]any{"title": float64(42), "value": "x"},
			wantTitle: "42",
			wantValue: "x",
		},
		{
			name:      "missing title falls back to value text",
			item:      map[string]any{"value": float64(7)},
			wantTitle: "7",
			wantValue: float64(7),
		},
		{
			name:      "missing value falls back to title",
			item:      map[string]any{"title": "only title"},
			wantTitle: "only title",
			wantValue: "only title",
		},
		{
			name:      "neither field present",
			item:      map[string]any{"other": "x"},
			wantTitle: "",
			wantValue: "",
		},
		{
			name:      "nil title is empty text",
			item:      map[string]any{"title": nil, "value": "v"},
			wantTitle: "",
			wantValue: "v",
		},
		{
			name:      "string map",
			item:      map[string]string{"title": "Paris", "value": "FR"},
			wantTitle: "Paris",
			wantValue: "FR",
		},
		{
			name:      "interface keyed map",
			item:      map[any]any{"title": "Oslo", "value": "NO"},
			wantTitle: "Oslo",
			wantValue: "NO",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := Normalize([]any{tt.item}, "title", "value")
			require.Len(t, options, 1)
			assert.Equal(t, tt.wantTitle, options[0].Title)
			assert.Equal(t, tt.wantValue, options[0].Value)
			assert.Equal(t, tt.item, options[0].Raw)
		})
	}
}

func TestNormalize_CustomFieldNames(t *testing.T) {
	items := []any{
		map[string]any{"name": "Norway", "code": "NO"},
		map[string]any{"name": "Sweden", "code": "SE"},
	}
	options := Normalize(items, "name", "code")

	require.Len(t, options, 2)
	assert.Equal(t, "Norway", options[0].Title)
	assert.Equal(t, "NO", options[0].Value)
	assert.Equal(t, "Sweden", options[1].Title)
	assert.Equal(t, "SE", options[1].Value)
}

func TestNormalize_ScalarsDegradeToText(t *testing.T) {
	options := Normalize([]any{float64(3.5), true, nil, []any{"a"}}, "title", "value")

	require.Len(t, options, 4)
	assert.Equal(t, "3.5", options[0].Title)
	assert.Equal(t, float64(3.5), options[0].Value)
	assert.Equal(t, "true", options[1].Title)
	assert.Equal(t, "", options[2].Title)
	assert.Nil(t, options[2].Value)
	assert.Equal(t, "[a]", options[3].Title)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Empty(t, Normalize(nil, "title", "value"))
}
