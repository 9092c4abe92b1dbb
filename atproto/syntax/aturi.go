package syntax

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var aturiRegex = regexp.MustCompile(`^at:\/\/(?P<authority>[a-zA-Z0-9._:%-]+)(\/(?P<collection>[a-zA-Z0-9-.]+)(\/(?P<rkey>[a-zA-Z0-9_~.:-]{1,512}))?)?$`)

// An AT URI without query or fragment, like "at://did:plc:abc123/app.bsky.feed.generator/news".
type ATURI string

func ParseATURI(raw string) (ATURI, error) {
	if len(raw) > 8192 {
		return "", errors.New("AT URI is too long (8192 chars max)")
	}
	parts := aturiRegex.FindStringSubmatch(raw)
	if parts == nil || parts[0] == "" {
		return "", errors.New("AT URI syntax didn't validate via regex")
	}
	if _, err := ParseAtIdentifier(parts[1]); err != nil {
		return "", fmt.Errorf("AT URI authority neither a DID nor a handle: %s", parts[1])
	}
	if parts[3] != "" {
		if _, err := ParseNSID(parts[3]); err != nil {
			return "", fmt.Errorf("AT URI collection segment not an NSID: %s", parts[3])
		}
	}
	if parts[5] != "" {
		if _, err := ParseRecordKey(parts[5]); err != nil {
			return "", fmt.Errorf("AT URI record key segment not valid: %s", parts[5])
		}
	}
	return ATURI(raw), nil
}

func (u ATURI) segments() []string {
	return strings.Split(strings.TrimPrefix(string(u), "at://"), "/")
}

func (u ATURI) Authority() (AtIdentifier, error) {
	return ParseAtIdentifier(u.segments()[0])
}

func (u ATURI) Collection() (NSID, error) {
	segs := u.segments()
	if len(segs) < 2 {
		return "", errors.New("AT URI has no collection segment")
	}
	return ParseNSID(segs[1])
}

func (u ATURI) RecordKey() (RecordKey, error) {
	segs := u.segments()
	if len(segs) < 3 {
		return "", errors.New("AT URI has no record key segment")
	}
	return ParseRecordKey(segs[2])
}

func (u ATURI) String() string {
	return string(u)
}
