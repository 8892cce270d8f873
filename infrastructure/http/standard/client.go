// ABOUTME: Standard HTTP client implementation with bounded redirects
// ABOUTME: Maps transport failures onto the discovery engine's error taxonomy

package standard

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"rssminer/core/errors"
	"rssminer/core/interfaces"
)

const (
	maxRedirects = 5
	userAgent    = "RSSMiner/1.0"
)

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// The timeout covers the whole fetch, connect and read included, not each
// chunk. The client never retries; retry policy belongs to the caller.
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return &errors.TooManyRedirectsError{
						URL:   via[0].URL.String(),
						Limit: maxRedirects,
					}
				}
				return nil
			},
		},
	}
}

// Get performs an HTTP GET request, following up to 5 redirects.
// A non-2xx final status is returned as a BadStatusError; timeouts and
// redirect overruns come back as their structured error types.
func (c *StandardHTTPClient) Get(ctx context.Context, rawURL string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &errors.InvalidURLError{URL: rawURL, Reason: err.Error()}
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html, application/xhtml+xml, application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, mapTransportError(rawURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &errors.BadStatusError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
		}
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
		finalURL:   resp.Request.URL.String(),
	}, nil
}

// mapTransportError converts net/http errors into the engine's error types
func mapTransportError(rawURL string, err error) error {
	var redirectErr *errors.TooManyRedirectsError
	if stderrors.As(err, &redirectErr) {
		return redirectErr
	}

	if stderrors.Is(err, context.DeadlineExceeded) {
		return &errors.TimeoutError{URL: rawURL}
	}

	var urlErr *url.Error
	if stderrors.As(err, &urlErr) && urlErr.Timeout() {
		return &errors.TimeoutError{URL: rawURL}
	}

	return &errors.NetworkError{URL: rawURL, Cause: err}
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
	finalURL   string
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}

// FinalURL returns the URL served after redirects
func (r *httpResponse) FinalURL() string {
	return r.finalURL
}
