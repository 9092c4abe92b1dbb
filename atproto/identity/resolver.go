package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"
)

var DefaultPLCURL = "https://plc.directory"

// DID documents larger than this are treated as malformed.
const maxDocumentSize = 512 * 1024

// Low-level interface for fetching DID documents.
type Resolver interface {
	ResolveDID(ctx context.Context, loc DIDLocation) (*DIDDocument, error)
}

// Fetches DID documents over HTTP, from did:web hosts or a PLC directory.
//
// The zero value is usable: it talks to [DefaultPLCURL] with [http.DefaultClient].
type DocResolver struct {
	// if non-empty, this string should have URL method, hostname, and optional port; it should not have a path or trailing slash
	PLCURL string
	// HTTP client used for both did:web and PLC fetches
	HTTPClient *http.Client
	Logger     *slog.Logger
}

var _ Resolver = (*DocResolver)(nil)

func (r *DocResolver) plcURL() string {
	if r.PLCURL == "" {
		return DefaultPLCURL
	}
	return r.PLCURL
}

func (r *DocResolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default().With("component", "identity")
	}
	return r.Logger
}

func (r *DocResolver) ResolveDID(ctx context.Context, loc DIDLocation) (*DIDDocument, error) {
	start := time.Now()
	doc, err := r.fetchDocument(ctx, loc)

	status := "success"
	if errors.Is(err, ErrDIDNotFound) {
		status = "not-found"
	} else if err != nil {
		status = "error"
	}
	didResolution.WithLabelValues(loc.Kind.String(), status).Inc()
	didResolutionDuration.WithLabelValues(loc.Kind.String(), status).Observe(time.Since(start).Seconds())

	if err != nil {
		r.logger().Debug("DID resolution failed", "did", loc.DID, "location", loc.Kind, "err", err)
		return nil, err
	}
	return doc, nil
}

func (r *DocResolver) fetchDocument(ctx context.Context, loc DIDLocation) (*DIDDocument, error) {
	docURL := loc.DocumentURL(r.plcURL())
	if docURL == "" {
		return nil, fmt.Errorf("%w: no document location for %s", ErrInvalidDID, loc.DID)
	}

	c := r.HTTPClient
	if c == nil {
		c = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, docURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDIDResolutionFailed, err)
	}
	req.Header.Set("Accept", "application/did+ld+json, application/json")

	resp, err := c.Do(req)
	// look for NXDOMAIN
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
		return nil, fmt.Errorf("%w: %s", ErrDIDNotFound, loc.DID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s document: %w", ErrDIDResolutionFailed, loc.Kind, err)
	}
	// drain so the connection goes back to the pool, whichever way we return
	defer func() {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxDocumentSize))
		resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		return nil, fmt.Errorf("%w: %s (HTTP %d)", ErrDIDNotFound, loc.DID, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s document fetch, HTTP status: %d", ErrDIDResolutionFailed, loc.Kind, resp.StatusCode)
	}

	var doc DIDDocument
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxDocumentSize)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: failed parse of DID document JSON: %w", ErrDIDResolutionFailed, err)
	}
	return &doc, nil
}

// Resolves a raw DID string to the handle declared in its DID document.
//
// Any failure (bad syntax, network error, non-2xx status, malformed JSON, or no declared handle) returns an error and an empty string; partial results are never returned.
func ResolveDeclaredHandle(ctx context.Context, r Resolver, raw string) (string, error) {
	loc, err := ParseDIDLocation(raw)
	if err != nil {
		return "", err
	}
	doc, err := r.ResolveDID(ctx, loc)
	if err != nil {
		return "", err
	}
	return doc.DeclaredHandle()
}
