package apiadapter

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"

	"webfetch-api/core/interfaces"
)

// mockHTTPClient serves canned responses keyed by URL
type mockHTTPClient struct {
	mu        sync.Mutex
	responses map[string]mockResponse
	errs      map[string]error
	requested []string
	headers   map[string]http.Header
}

func newMockHTTPClient() *mockHTTPClient {
	return &mockHTTPClient{
		responses: make(map[string]mockResponse),
		errs:      make(map[string]error),
		headers:   make(map[string]http.Header),
	}
}

func (m *mockHTTPClient) respond(url string, status int, body string) {
	m.responses[url] = mockResponse{statusCode: status, body: body}
}

func (m *mockHTTPClient) fail(url string, err error) {
	m.errs[url] = err
}

func (m *mockHTTPClient) Get(ctx context.Context, url string, headers http.Header) (interfaces.Response, error) {
	m.mu.Lock()
	m.requested = append(m.requested, url)
	m.headers[url] = headers
	m.mu.Unlock()

	if err, ok := m.errs[url]; ok {
		return nil, err
	}
	if resp, ok := m.responses[url]; ok {
		return &resp, nil
	}
	return &mockResponse{statusCode: http.StatusNotFound, body: "{}"}, nil
}

func (m *mockHTTPClient) Head(ctx context.Context, url string) (interfaces.Response, error) {
	return &mockResponse{statusCode: http.StatusOK}, nil
}

func (m *mockHTTPClient) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requested)
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (r *mockResponse) StatusCode() int          { return r.statusCode }
func (r *mockResponse) Body() io.ReadCloser      { return io.NopCloser(strings.NewReader(r.body)) }
func (r *mockResponse) Header(key string) string { return "" }
func (r *mockResponse) FinalURL() string         { return "" }

// mockLogger records warnings
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (l *mockLogger) Warn(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}
func (l *mockLogger) Error(msg string, fields map[string]interface{}) {}
