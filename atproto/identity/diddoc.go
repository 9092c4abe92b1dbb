package identity

import (
	"strings"

	"github.com/bluesky-social/skycord/atproto/syntax"
)

type DIDDocument struct {
	DID                syntax.DID              `json:"id"`
	AlsoKnownAs        []string                `json:"alsoKnownAs,omitempty"`
	VerificationMethod []DocVerificationMethod `json:"verificationMethod,omitempty"`
	Service            []DocService            `json:"service,omitempty"`
}

type DocVerificationMethod struct {
	ID                 string `json:"id"`
	Type               string `json:"type"`
	Controller         string `json:"controller"`
	PublicKeyMultibase string `json:"publicKeyMultibase"`
}

type DocService struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	ServiceEndpoint string `json:"serviceEndpoint"`
}

const atURIPrefix = "at://"

// Returns the handle from the first alsoKnownAs entry containing an "at://" URI. The handle string is returned as declared, without syntax checks or normalization.
//
// Returns ErrHandleNotDeclared if no entry matches.
func (d *DIDDocument) DeclaredHandle() (string, error) {
	for _, alias := range d.AlsoKnownAs {
		_, handle, found := strings.Cut(alias, atURIPrefix)
		if !found || handle == "" {
			continue
		}
		return handle, nil
	}
	return "", ErrHandleNotDeclared
}
