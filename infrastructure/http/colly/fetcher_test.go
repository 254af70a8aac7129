package colly

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"webfetch-api/core/errors"
	"webfetch-api/core/interfaces"
)

var _ interfaces.PageFetcher = (*PageFetcher)(nil)

func newTestFetcher() *PageFetcher {
	return NewPageFetcher(Options{
		Timeout:      5 * time.Second,
		MaxRedirects: 5,
		UserAgent:    "Mozilla/5.0 test-browser",
	})
}

func TestPageFetcher_Fetch_Success(t *testing.T) {
	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body><article>hello</article></body></html>"))
	}))
	defer server.Close()

	doc, err := newTestFetcher().Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if !strings.Contains(string(doc.Body), "<article>hello</article>") {
		t.Errorf("Body = %s", doc.Body)
	}
	if doc.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", doc.StatusCode)
	}
	if userAgent != "Mozilla/5.0 test-browser" {
		t.Errorf("User-Agent = %q", userAgent)
	}
}

func TestPageFetcher_Fetch_RejectsStatus404(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("missing"))
	}))
	defer server.Close()

	_, err := newTestFetcher().Fetch(context.Background(), server.URL)
	if !errors.IsHTTPStatus(err) {
		t.Errorf("Fetch error = %v, want HTTPStatusError", err)
	}
}

func TestPageFetcher_Fetch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestFetcher().Fetch(ctx, "http://127.0.0.1:1/")
	if err == nil {
		t.Error("Fetch should fail with a cancelled context")
	}
}

func TestPageFetcher_Fetch_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestFetcher().Fetch(context.Background(), url)
	if !errors.IsNetworkUnreachable(err) {
		t.Errorf("Fetch error = %v, want NetworkUnreachableError", err)
	}
}
