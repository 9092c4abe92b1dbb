package syntax

import (
	"errors"
	"strings"
)

// Either a [DID] or a [Handle]. API endpoints that take an "actor" parameter accept both.
type AtIdentifier string

func ParseAtIdentifier(raw string) (AtIdentifier, error) {
	if raw == "" {
		return "", errors.New("expected AT account identifier, got empty string")
	}
	if strings.HasPrefix(raw, "did:") {
		did, err := ParseDID(raw)
		if err != nil {
			return "", err
		}
		return did.AtIdentifier(), nil
	}
	handle, err := ParseHandle(raw)
	if err != nil {
		return "", err
	}
	return handle.AtIdentifier(), nil
}

func (a AtIdentifier) String() string {
	return string(a)
}
