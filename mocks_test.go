package rssminer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"rssminer/core/errors"
	"rssminer/core/interfaces"
)

// mockHTTPClient serves canned bodies keyed by exact URL; unknown URLs get 404
type mockHTTPClient struct {
	mu     sync.Mutex
	routes map[string]mockRoute
}

type mockRoute struct {
	body        string
	contentType string
}

func newMockHTTPClient() *mockHTTPClient {
	return &mockHTTPClient{routes: make(map[string]mockRoute)}
}

func (m *mockHTTPClient) route(url, body, contentType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[url] = mockRoute{body: body, contentType: contentType}
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.mu.Lock()
	r, ok := m.routes[url]
	m.mu.Unlock()
	if !ok {
		return nil, &errors.BadStatusError{URL: url, StatusCode: 404}
	}
	return &mockResponse{
		statusCode:  200,
		body:        r.body,
		contentType: r.contentType,
		finalURL:    url,
	}, nil
}

type mockResponse struct {
	statusCode  int
	body        string
	contentType string
	finalURL    string
}

func (r *mockResponse) StatusCode() int { return r.statusCode }

func (r *mockResponse) Body() io.ReadCloser { return io.NopCloser(strings.NewReader(r.body)) }

func (r *mockResponse) Header(key string) string {
	if strings.EqualFold(key, "Content-Type") {
		return r.contentType
	}
	return ""
}

func (r *mockResponse) FinalURL() string { return r.finalURL }

// mockLogger records messages per level
type mockLogger struct {
	mu       sync.Mutex
	messages map[string][]string
}

func newMockLogger() *mockLogger {
	return &mockLogger{messages: make(map[string][]string)}
}

func (l *mockLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages[level] = append(l.messages[level], msg)
}

func (l *mockLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages[level])
}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg) }
func (l *mockLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg) }
func (l *mockLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg) }
func (l *mockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg) }

func siteWithFeed(client *mockHTTPClient, siteURL, feedPath, feedTitle string) {
	feedURL := siteURL + feedPath
	page := fmt.Sprintf(`<html><head>
<link rel="alternate" type="application/rss+xml" href="%s">
</head><body></body></html>`, feedPath)
	feed := fmt.Sprintf(`<?xml version="1.0"?>
<rss version="2.0"><channel>
<title>%s</title>
<link>%s</link>
<description>test feed</description>
</channel></rss>`, feedTitle, siteURL)
	client.route(siteURL, page, "text/html")
	client.route(feedURL, feed, "application/rss+xml")
}
