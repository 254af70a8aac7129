package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

func TestNewAPI(t *testing.T) {
	api, router := NewAPI(APIConfig{})

	if api == nil {
		t.Error("NewAPI returned nil API")
	}
	if router == nil {
		t.Error("NewAPI returned nil router")
	}
}

func TestNewAPI_Info(t *testing.T) {
	api, _ := NewAPI(APIConfig{})

	info := api.OpenAPI().Info
	if info.Title != "Webfetch API" {
		t.Errorf("API title = %s, want Webfetch API", info.Title)
	}
	if info.Version != "1.0.0" {
		t.Errorf("API version = %s, want 1.0.0", info.Version)
	}
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI(APIConfig{})

	req := httptest.NewRequest("GET", "/openapi.json", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("OpenAPI endpoint status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/vnd.oai.openapi+json" {
		t.Errorf("OpenAPI content-type = %s, want application/vnd.oai.openapi+json", ct)
	}
}

func TestAPI_RequestIDHeader(t *testing.T) {
	_, router := NewAPI(APIConfig{Logger: nopLogger{}})

	req := httptest.NewRequest("GET", "/openapi.json", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("logging middleware should set X-Request-ID")
	}
}

func TestAPI_RateLimited(t *testing.T) {
	_, router := NewAPI(APIConfig{RateLimit: 1, RateWindow: time.Minute})

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/openapi.json", nil)
		req.RemoteAddr = "192.0.2.10:4000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want [200 429]", codes)
	}
}

func TestAPI_CORSPreflight(t *testing.T) {
	_, router := NewAPI(APIConfig{RateLimit: 1, RateWindow: time.Minute})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("OPTIONS", "/tools/scrape_website", nil)
		req.Header.Set("Origin", "https://assistant.example")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Fatalf("preflight %d missing CORS headers", i)
		}
	}
}
