package discovery

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"rssminer/core/errors"
	"rssminer/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)

	mu       sync.Mutex
	requests []string
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, url)
	m.mu.Unlock()

	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, &errors.NetworkError{URL: url, Cause: io.EOF}
}

func (m *mockHTTPClient) requestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// routedClient serves canned bodies keyed by URL; unknown URLs get a 404
func routedClient(routes map[string]string) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			body, ok := routes[url]
			if !ok {
				return nil, &errors.BadStatusError{URL: url, StatusCode: 404}
			}
			return &mockResponse{statusCode: 200, body: body, finalURL: url}, nil
		},
	}
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
	finalURL   string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

func (m *mockResponse) FinalURL() string {
	return m.finalURL
}

// mockCache is a map-backed implementation of the Cache interface
type mockCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{items: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.items[key]
	if !ok {
		return nil, io.EOF
	}
	return value, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	mu       sync.Mutex
	messages []string
}

func (m *mockLogger) record(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record(msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record(msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record(msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record(msg) }

// Canned documents used across the discovery tests

const rssDocument = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example RSS</title>
    <link>https://example.com</link>
    <description>An example RSS feed</description>
  </channel>
</rss>`

const atomDocument = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Example Atom</title>
  <link rel="alternate" type="text/html" href="https://example.com/"/>
  <link rel="self" href="https://example.com/atom.xml"/>
  <id>urn:uuid:60a76c80-d399-11d9-b93C-0003939e0af6</id>
</feed>`

const rdfDocument = `<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns="http://purl.org/rss/1.0/">
  <channel rdf:about="https://example.com/rss">
    <title>Example RDF</title>
    <link>https://example.com</link>
    <description>An RSS 1.0 feed</description>
  </channel>
</rdf:RDF>`

const untitledRSSDocument = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <link>https://example.com</link>
    <description>No title here</description>
  </channel>
</rss>`

func htmlWithLinks(links string) string {
	return "<html><head>" + links + "</head><body><p>hello</p></body></html>"
}
