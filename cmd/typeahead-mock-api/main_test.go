package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxnacy/typeahead/pkg/remote"
	"github.com/wxnacy/typeahead/pkg/suggest"
)

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestCountriesShapes(t *testing.T) {
	r := newRouter("q")

	rec := get(t, r, "/countries?q=swe")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var results struct {
		Results []country `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	assert.Equal(t, []country{{Title: "Sweden", Value: "SE", Region: "Europe"}}, results.Results)

	rec = get(t, r, "/countries/bare?q=SWE")
	var bare []country
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bare))
	assert.Len(t, bare, 1)

	rec = get(t, r, "/countries/wrapped?q=land")
	var wrapped struct {
		Total     int       `json:"total"`
		Countries []country `json:"countries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wrapped))
	assert.Equal(t, len(wrapped.Countries), wrapped.Total)
	assert.Positive(t, wrapped.Total)
}

func TestCustomParam(t *testing.T) {
	r := newRouter("term")

	rec := get(t, r, "/cities?term=os")
	var matched []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matched))
	assert.Equal(t, []string{"Oslo"}, matched)

	// 默认参数名不再生效，返回全部
	rec = get(t, r, "/cities?q=os")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matched))
	assert.Len(t, matched, len(cities))
}

func TestFail(t *testing.T) {
	rec := get(t, newRouter("q"), "/fail")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = get(t, newRouter("q"), "/countries")
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/countries", nil)
	rec = httptest.NewRecorder()
	newRouter("q").ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// 三种响应形状解析出相同的候选项
func TestShapesNormalizeAlike(t *testing.T) {
	srv := httptest.NewServer(newRouter("q"))
	defer srv.Close()

	var want []suggest.Option
	for _, path := range []string{"/countries", "/countries/bare", "/countries/wrapped"} {
		payload, err := remote.New(srv.URL+path).Fetch(context.Background(), "an")
		require.NoError(t, err, path)
		got := suggest.Normalize(suggest.Extract(payload), "title", "value")
		require.NotEmpty(t, got, path)
		if want == nil {
			want = got
			continue
		}
		assert.Equal(t, want, got, path)
	}
}

func TestDelaySupersede(t *testing.T) {
	srv := httptest.NewServer(newRouter("q"))
	defer srv.Close()

	f := remote.New(srv.URL+"/countries?delay=2000", remote.WithParam("q"))
	slow := make(chan any, 1)
	go func() {
		payload, _ := f.Fetch(context.Background(), "a")
		slow <- payload
	}()

	require.Eventually(t, f.InFlight, time.Second, 5*time.Millisecond)
	started := time.Now()
	f.Cancel()

	select {
	case payload := <-slow:
		assert.Equal(t, []any{}, payload)
		assert.Less(t, time.Since(started), time.Second)
	case <-time.After(3 * time.Second):
		t.Fatal("cancelled lookup did not return")
	}
}
