package atclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/bluesky-social/skycord/atproto/syntax"
)

// XRPC error bodies are small JSON objects; anything larger is not decoded.
const maxErrorBodySize = 64 * 1024

// Upper bound on bytes read when discarding the rest of a response body. Bodies beyond this close the connection instead.
const maxDrainSize = 256 * 1024

// Client for unauthenticated atproto Query endpoints on a single host.
type APIClient struct {
	// Inner HTTP client. Timeouts and retries are configured here.
	Client *http.Client

	// Host URL prefix: scheme, hostname, and port. This field is required.
	Host string

	// Optional HTTP headers which will be included in all requests.
	Headers http.Header
}

// Creates an APIClient for the provided host, using [http.DefaultClient] and a default User-Agent.
func NewAPIClient(host string) *APIClient {
	return &APIClient{
		Client: http.DefaultClient,
		Host:   host,
		Headers: map[string][]string{
			"User-Agent": []string{"skycord"},
		},
	}
}

// High-level helper for simple JSON "Query" API calls.
//
// Non-successful responses are parsed to [APIError]. If `out` is nil the response body is discarded.
func (c *APIClient) Get(ctx context.Context, endpoint syntax.NSID, params map[string]any, out any) error {
	req := NewAPIRequest(http.MethodGet, endpoint)
	req.Headers.Set("Accept", "application/json")

	if params != nil {
		qp, err := ParseParams(params)
		if err != nil {
			return err
		}
		req.QueryParams = qp
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	defer func() {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainSize))
		resp.Body.Close()
	}()

	if !(resp.StatusCode >= 200 && resp.StatusCode < 300) {
		var eb ErrorBody
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&eb); err != nil {
			return &APIError{StatusCode: resp.StatusCode}
		}
		return eb.APIError(resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed decoding JSON response body: %w", err)
	}
	return nil
}

// Sends the request and returns the raw response. The caller must close the body.
func (c *APIClient) Do(ctx context.Context, req *APIRequest) (*http.Response, error) {
	httpClient := c.Client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	httpReq, err := req.HTTPRequest(ctx, c.Host, c.Headers)
	if err != nil {
		return nil, err
	}
	return httpClient.Do(httpReq)
}
