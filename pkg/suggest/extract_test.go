package suggest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decode(t *testing.T, body string) any {
	t.Helper()
	var payload any
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("decode %q: %v", body, err)
	}
	return payload
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []any
	}{
		{"bare array", `["a","b"]`, []any{"a", "b"}},
		{"results wrapper", `{"results":["x","y"],"total":2}`, []any{"x", "y"}},
		{"items wins over data", `{"data":["d"],"items":["i"]}`, []any{"i"}},
		{"data wins over results", `{"results":["r"],"data":["d"]}`, []any{"d"}},
		{"any array field", `{"meta":{"n":1},"countries":["no"]}`, []any{"no"}},
		{"first array field in key order", `{"zeta":["z"],"alpha":["a"]}`, []any{"a"}},
		{"no array field", `{"count":3,"name":"x"}`, []any{}},
		{"wrapper field that is not an array", `{"items":"nope","list":[1]}`, []any{float64(1)}},
		{"scalar payload", `"text"`, []any{}},
		{"null payload", `null`, []any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(decode(t, tt.body)))
		})
	}
}

func TestExtract_BareArrayIsReturnedUnchanged(t *testing.T) {
	payload := []any{map[string]any{"title": "a"}, "b"}
	got := Extract(payload)
	assert.Equal(t, payload, got)
	assert.Same(t, &payload[0], &got[0])
}

func TestExtract_TypedSlices(t *testing.T) {
	assert.Equal(t, []any{"a", "b"}, Extract([]string{"a", "b"}))
	assert.Equal(t, []any{1, 2}, Extract([]int{1, 2}))
	assert.Equal(t, []any{}, Extract([]byte("raw")))
}
