package syntax

import (
	"errors"
	"regexp"
)

var recordKeyRegex = regexp.MustCompile(`^[a-zA-Z0-9_~.:-]{1,512}$`)

// Record key: the final path segment of a record AT URI. Feed generators are addressed by record key within their creator's repository.
type RecordKey string

func ParseRecordKey(raw string) (RecordKey, error) {
	if raw == "" {
		return "", errors.New("expected record key, got empty string")
	}
	if len(raw) > 512 {
		return "", errors.New("record key is too long (512 chars max)")
	}
	if raw == "." || raw == ".." {
		return "", errors.New("record key can not be '.' or '..'")
	}
	if !recordKeyRegex.MatchString(raw) {
		return "", errors.New("record key syntax didn't validate via regex")
	}
	return RecordKey(raw), nil
}

func (r RecordKey) String() string {
	return string(r)
}
