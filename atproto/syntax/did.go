package syntax

import (
	"errors"
	"regexp"
	"strings"
)

var didRegex = regexp.MustCompile(`^did:[a-z]+:[a-zA-Z0-9._:%-]*[a-zA-Z0-9._-]$`)

// A syntactically valid DID, such as "did:plc:ewvi7nxzyoun6zhxrhs64oiz" or "did:web:example.com".
//
// Always use [ParseDID] instead of wrapping user input directly.
type DID string

func ParseDID(raw string) (DID, error) {
	if raw == "" {
		return "", errors.New("expected DID, got empty string")
	}
	if len(raw) > 2*1024 {
		return "", errors.New("DID is too long (2048 chars max)")
	}
	if !didRegex.MatchString(raw) {
		return "", errors.New("DID syntax didn't validate via regex")
	}
	return DID(raw), nil
}

// The DID method (second colon-separated segment), lower-cased. Returns an empty string if the DID is malformed.
func (d DID) Method() string {
	parts := strings.SplitN(string(d), ":", 3)
	if len(parts) < 2 {
		return ""
	}
	return strings.ToLower(parts[1])
}

// Everything after the method segment. For did:web this is the percent-encoded hostname, followed by any colon-separated path segments.
func (d DID) Identifier() string {
	parts := strings.SplitN(string(d), ":", 3)
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}

func (d DID) AtIdentifier() AtIdentifier {
	return AtIdentifier(d)
}

func (d DID) String() string {
	return string(d)
}
