package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/wxnacy/typeahead/pkg/log"
)

const maxDelay = 10 * time.Second

func newRouter(param string) *mux.Router {
	r := mux.NewRouter()
	r.Use(loggingMiddleware, delayMiddleware)

	r.HandleFunc("/countries", handleCountries(param, func(items []country) any {
		return map[string]any{"results": items}
	})).Methods(http.MethodGet)
	r.HandleFunc("/countries/bare", handleCountries(param, func(items []country) any {
		return items
	})).Methods(http.MethodGet)
	r.HandleFunc("/countries/wrapped", handleCountries(param, func(items []country) any {
		return map[string]any{
			"total":     len(items),
			"countries": items,
		}
	})).Methods(http.MethodGet)
	r.HandleFunc("/cities", handleCities(param)).Methods(http.MethodGet)
	r.HandleFunc("/fail", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "lookup backend unavailable", http.StatusInternalServerError)
	}).Methods(http.MethodGet)

	return r
}

func handleCountries(param string, wrap func([]country) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := strings.ToLower(r.URL.Query().Get(param))
		matched := make([]country, 0, len(countries))
		for _, c := range countries {
			if strings.Contains(strings.ToLower(c.Title), term) {
				matched = append(matched, c)
			}
		}
		writeJSON(w, wrap(matched))
	}
}

func handleCities(param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := strings.ToLower(r.URL.Query().Get(param))
		matched := make([]string, 0, len(cities))
		for _, c := range cities {
			if strings.Contains(strings.ToLower(c), term) {
				matched = append(matched, c)
			}
		}
		writeJSON(w, matched)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.GetLogger().Errorf("failed to write response: %v", err)
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.GetLogger().Debugf("%s %s", r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

// delayMiddleware 按 delay 参数（毫秒）延迟响应，客户端断开时立即返回
func delayMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ms, err := strconv.Atoi(r.URL.Query().Get("delay"))
		if err != nil || ms <= 0 {
			next.ServeHTTP(w, r)
			return
		}
		delay := min(time.Duration(ms)*time.Millisecond, maxDelay)
		select {
		case <-time.After(delay):
			next.ServeHTTP(w, r)
		case <-r.Context().Done():
			log.GetLogger().Debugf("client went away during delay: %s", r.URL.RequestURI())
		}
	})
}
