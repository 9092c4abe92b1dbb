package lookup

import (
	"errors"
	"fmt"
)

// A lookup succeeded, but nothing matched (eg, no feed with the requested name).
var ErrNotFound = errors.New("no matching record")

// A remote lookup failed or returned nothing usable. Err carries the underlying cause.
type ResolutionFailure struct {
	Op    string
	Input string
	Err   error
}

func (rf *ResolutionFailure) Error() string {
	return fmt.Sprintf("%s %q: %v", rf.Op, rf.Input, rf.Err)
}

func (rf *ResolutionFailure) Unwrap() error {
	return rf.Err
}

func failure(op, input string, err error) error {
	return &ResolutionFailure{Op: op, Input: input, Err: err}
}

// Short outcome label for metrics and logs.
func outcome(err error) string {
	var rf *ResolutionFailure
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNotFound):
		return "not-found"
	case errors.As(err, &rf):
		return "resolution-failure"
	default:
		return "error"
	}
}

// User-facing text for a failed command. The same text is used whatever the underlying cause was.
func FailureMessage(nf *NotFoundResult) string {
	switch nf.Command {
	case CommandProfile:
		return fmt.Sprintf("Could not find user `%s`", nf.Input)
	case CommandFeed:
		return "Could not find the feed"
	default:
		return fmt.Sprintf("Could not resolve `%s`", nf.Input)
	}
}
