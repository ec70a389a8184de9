// Package edamam talks to the external recipe search API. It is the only
// package that performs I/O against the provider; everything above it sees
// typed hits or one of the two error kinds (RequestError for transport
// failures, StatusError for non-2xx responses).
package edamam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/forkfind/forkfind/internal/logging/events"
	"github.com/google/uuid"
)

const defaultTimeout = 15 * time.Second

// RequestError reports that the request could not be sent or its response
// could not be read or decoded.
type RequestError struct {
	Query string
	Err   error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("recipe search %q: %v", e.Query, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusError reports a response with a non-success HTTP status.
type StatusError struct {
	Query      string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("recipe search %q: unexpected status %s", e.Query, e.Status)
}

// Client issues search requests against a single endpoint with fixed
// credentials. The zero value is not usable; construct with NewClient.
type Client struct {
	endpoint   string
	appID      string
	appKey     string
	httpClient *http.Client
}

// NewClient builds a search client for the given endpoint and credentials.
func NewClient(endpoint, appID, appKey string) *Client {
	return &Client{
		endpoint:   endpoint,
		appID:      appID,
		appKey:     appKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Search performs one HTTP GET for the given free-text query and returns the
// decoded response. The caller owns stale-response handling; Search itself
// has no notion of a current query.
func (c *Client) Search(ctx context.Context, query string) (SearchResponse, error) {
	requestID := uuid.NewString()
	events.Search.Request(requestID, query)

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return SearchResponse{}, &RequestError{Query: query, Err: fmt.Errorf("parse endpoint: %w", err)}
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("app_id", c.appID)
	q.Set("app_key", c.appKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return SearchResponse{}, &RequestError{Query: query, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SearchResponse{}, &RequestError{Query: query, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body)
		return SearchResponse{}, &StatusError{Query: query, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var out SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return SearchResponse{}, &RequestError{Query: query, Err: fmt.Errorf("decode response: %w", err)}
	}

	events.Search.Response(requestID, len(out.Hits), resp.StatusCode)
	return out, nil
}
