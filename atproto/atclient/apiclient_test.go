package atclient

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/bluesky-social/skycord/atproto/syntax"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func xrpcHandler(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/xrpc/com.example.echo":
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"query":     r.URL.Query(),
			"userAgent": r.Header.Get("User-Agent"),
			"accept":    r.Header.Get("Accept"),
		})
	case "/xrpc/com.example.missing":
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"InvalidRequest","message":"Profile not found"}`))
	case "/xrpc/com.example.broken":
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	case "/xrpc/com.example.padded":
		// error object followed by a long tail the decoder never reads
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"InvalidRequest","message":"Actor not found"}`))
		w.Write([]byte(strings.Repeat(" ", 32*1024)))
	case "/xrpc/com.example.huge":
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"InvalidRequest","message":"`))
		w.Write([]byte(strings.Repeat("a", 512*1024)))
		w.Write([]byte(`"}`))
	case "/xrpc/com.example.garbage":
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("{not json"))
	default:
		http.NotFound(w, r)
	}
}

func TestAPIClientGet(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(xrpcHandler))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	c.Client = srv.Client()

	var out struct {
		Query     url.Values `json:"query"`
		UserAgent string     `json:"userAgent"`
		Accept    string     `json:"accept"`
	}
	err := c.Get(ctx, syntax.NSID("com.example.echo"), map[string]any{"actor": "alice.bsky.social", "limit": 100}, &out)
	require.NoError(err)
	assert.Equal("alice.bsky.social", out.Query.Get("actor"))
	assert.Equal("100", out.Query.Get("limit"))
	assert.Equal("skycord", out.UserAgent)
	assert.Equal("application/json", out.Accept)

	// nil output discards the body
	assert.NoError(c.Get(ctx, syntax.NSID("com.example.echo"), nil, nil))
}

func TestAPIClientErrors(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(xrpcHandler))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	c.Client = srv.Client()

	var out map[string]any
	var apiErr *APIError

	err := c.Get(ctx, syntax.NSID("com.example.missing"), nil, &out)
	assert.True(errors.As(err, &apiErr))
	assert.Equal(http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal("InvalidRequest", apiErr.Name)
	assert.Equal("Profile not found", apiErr.Message)
	assert.Equal("API request failed (HTTP 400): InvalidRequest: Profile not found", err.Error())

	err = c.Get(ctx, syntax.NSID("com.example.broken"), nil, &out)
	assert.True(errors.As(err, &apiErr))
	assert.Equal(http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal("", apiErr.Name)

	err = c.Get(ctx, syntax.NSID("com.example.garbage"), nil, &out)
	assert.Error(err)
	assert.False(errors.As(err, &apiErr))

	// bad host
	c.Host = "not-a-url"
	assert.Error(c.Get(ctx, syntax.NSID("com.example.echo"), nil, &out))
}

func TestAPIClientErrorBodies(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	var conns atomic.Int32
	srv := httptest.NewUnstartedServer(http.HandlerFunc(xrpcHandler))
	srv.Config.ConnState = func(c net.Conn, state http.ConnState) {
		if state == http.StateNew {
			conns.Add(1)
		}
	}
	srv.Start()
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	c.Client = srv.Client()

	var apiErr *APIError
	for i := 0; i < 3; i++ {
		err := c.Get(ctx, syntax.NSID("com.example.padded"), nil, nil)
		if assert.True(errors.As(err, &apiErr)) {
			assert.Equal("InvalidRequest", apiErr.Name)
		}
	}
	// the unread tail is drained, so the connection is reused
	assert.Equal(int32(1), conns.Load())

	// oversized error bodies are not decoded, but still produce an APIError
	err := c.Get(ctx, syntax.NSID("com.example.huge"), nil, nil)
	if assert.True(errors.As(err, &apiErr)) {
		assert.Equal(http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal("", apiErr.Name)
	}
}

func TestLexDo(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(xrpcHandler))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	c.Client = srv.Client()

	var out map[string]any
	assert.NoError(c.LexDo(ctx, http.MethodGet, "", "com.example.echo", map[string]any{"handle": "alice.test"}, nil, &out))
	assert.Error(c.LexDo(ctx, http.MethodPost, "application/json", "com.example.echo", nil, map[string]any{}, &out))
	assert.Error(c.LexDo(ctx, http.MethodGet, "", "not an nsid", nil, nil, &out))
}

func TestParseParams(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	input := map[string]any{
		"int":      int(-1),
		"limit":    int64(100),
		"str":      "hello",
		"bool":     true,
		"did":      syntax.DID("did:web:example.com"),
		"multiStr": []string{"a", "b"},
		"multiDID": []syntax.DID{syntax.DID("did:web:example.com"), syntax.DID("did:web:other.com")},
	}
	expect := url.Values(map[string][]string{
		"int":      []string{"-1"},
		"limit":    []string{"100"},
		"str":      []string{"hello"},
		"bool":     []string{"true"},
		"did":      []string{"did:web:example.com"},
		"multiStr": []string{"a", "b"},
		"multiDID": []string{"did:web:example.com", "did:web:other.com"},
	})
	output, err := ParseParams(input)
	require.NoError(err)
	assert.Equal(expect, output)

	_, err = ParseParams(map[string]any{"map": map[string]int{"a": 123}})
	assert.Error(err)
}
