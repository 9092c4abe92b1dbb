package identity

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bluesky-social/skycord/atproto/syntax"
)

type LocationKind int

const (
	// DID document is served by the DID's own web host (did:web).
	LocationWeb LocationKind = iota + 1
	// DID document is served by a PLC directory, keyed by the full DID.
	LocationDirectory
)

func (k LocationKind) String() string {
	switch k {
	case LocationWeb:
		return "web"
	case LocationDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// Where a DID document can be fetched from. Produced by [ParseDIDLocation]; resolution dispatches on Kind exactly once.
type DIDLocation struct {
	Kind LocationKind
	DID  syntax.DID
	// Hostname (with optional port) for LocationWeb. Empty otherwise.
	Host string
}

// Parses raw user input into a DIDLocation.
//
// A DID whose method is "web" becomes LocationWeb, with Host taken from the first segment of the identifier (percent-decoded, so "did:web:localhost%3A8080" has Host "localhost:8080"). Any further path segments are ignored: "did:web:example.com:user" is fetched from the well-known path on example.com. Any other syntactically valid DID becomes LocationDirectory.
func ParseDIDLocation(raw string) (DIDLocation, error) {
	did, err := syntax.ParseDID(raw)
	if err != nil {
		return DIDLocation{}, fmt.Errorf("%w: %w", ErrInvalidDID, err)
	}

	if did.Method() != "web" {
		return DIDLocation{Kind: LocationDirectory, DID: did}, nil
	}

	encoded, _, _ := strings.Cut(did.Identifier(), ":")
	host, err := url.PathUnescape(encoded)
	if err != nil {
		return DIDLocation{}, fmt.Errorf("%w: did:web hostname not decodable: %w", ErrInvalidDID, err)
	}
	if host == "" || strings.ContainsAny(host, "/?#@ \\") {
		return DIDLocation{}, fmt.Errorf("%w: did:web identifier not a hostname: %s", ErrInvalidDID, host)
	}
	return DIDLocation{Kind: LocationWeb, DID: did, Host: host}, nil
}

// URL the DID document is fetched from. plcURL is only used for LocationDirectory.
func (l DIDLocation) DocumentURL(plcURL string) string {
	switch l.Kind {
	case LocationWeb:
		u := url.URL{Scheme: "https", Host: l.Host, Path: "/.well-known/did.json"}
		return u.String()
	case LocationDirectory:
		return strings.TrimSuffix(plcURL, "/") + "/" + url.PathEscape(l.DID.String())
	default:
		return ""
	}
}
