package atclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/bluesky-social/skycord/atproto/syntax"
)

type APIRequest struct {
	// HTTP method as a string (eg "GET") (required)
	Method string

	// atproto API endpoint, as NSID (required)
	Endpoint syntax.NSID

	// Optional query parameters (field may be nil). These will be encoded as provided.
	QueryParams url.Values

	// Optional HTTP headers (field may be nil). Only the first value will be included for each header key ("Set" behavior).
	Headers http.Header
}

// Initializes a new request struct, with Headers and QueryParams ready to be manipulated.
func NewAPIRequest(method string, endpoint syntax.NSID) *APIRequest {
	return &APIRequest{
		Method:      method,
		Endpoint:    endpoint,
		Headers:     map[string][]string{},
		QueryParams: map[string][]string{},
	}
}

// Creates an [http.Request] for this API request.
//
// `host` should be a URL prefix: scheme, hostname, port. `clientHeaders` are client-level defaults, and are clobbered by any request-level header with the same key.
func (r *APIRequest) HTTPRequest(ctx context.Context, host string, clientHeaders http.Header) (*http.Request, error) {
	u, err := url.Parse(host)
	if err != nil {
		return nil, err
	}
	if u.Host == "" {
		return nil, errors.New("empty hostname in host URL")
	}
	if u.Scheme == "" {
		return nil, errors.New("empty scheme in host URL")
	}
	if r.Endpoint == "" {
		return nil, errors.New("empty request endpoint")
	}
	u.Path = "/xrpc/" + r.Endpoint.String()
	u.RawQuery = ""
	if len(r.QueryParams) > 0 {
		u.RawQuery = r.QueryParams.Encode()
	}
	httpReq, err := http.NewRequestWithContext(ctx, r.Method, u.String(), nil)
	if err != nil {
		return nil, err
	}

	for k := range clientHeaders {
		httpReq.Header.Set(k, clientHeaders.Get(k))
	}
	for k := range r.Headers {
		httpReq.Header.Set(k, r.Headers.Get(k))
	}
	return httpReq, nil
}
