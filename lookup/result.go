package lookup

type Command string

const (
	CommandProfile Command = "profile"
	CommandDID     Command = "did"
	CommandHandle  Command = "handle"
	CommandFeed    Command = "feed"
)

var Commands = []Command{CommandProfile, CommandDID, CommandHandle, CommandFeed}

// A single command invocation, as received from the chat platform.
type Request struct {
	Command Command
	// actor for profile and feed, handle for did, DID for handle
	Input string
	// feed display name or record key; only used by CommandFeed
	FeedName string
}

// Optional count from an API response. Absent and zero are different states here, but neither is shown to users.
type Count struct {
	Value int64
	Valid bool
}

func CountFrom(v *int64) Count {
	if v == nil {
		return Count{}
	}
	return Count{Value: *v, Valid: true}
}

// Whether the count should be displayed: present and nonzero.
func (c Count) Shown() bool {
	return c.Valid && c.Value != 0
}

type Profile struct {
	DID    string
	Handle string
	// empty when the account has not set one
	DisplayName string
	Description string
	// image URLs; empty means no image
	Avatar string
	Banner string

	Followers Count
	Following Count
	Posts     Count
}

// Display name, falling back to "@handle".
func (p *Profile) Title() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return "@" + p.Handle
}

type FeedCreator struct {
	DID    string
	Handle string
	Avatar string
}

type Feed struct {
	URI         string
	RecordKey   string
	DisplayName string
	Description string
	Avatar      string
	Likes       Count
	Creator     FeedCreator
}

// Normalized output of a command. Exactly one of the concrete result types below.
type Result interface {
	isResult()
}

type ProfileResult struct {
	Profile *Profile
}

// Input token and what it resolved to: handle -> DID, or DID -> handle.
type IdentityResult struct {
	Input    string
	Resolved string
}

type FeedResult struct {
	Feed *Feed
}

// Any failed command. Reason is for logs and tests; it is never shown to users.
type NotFoundResult struct {
	Command Command
	Input   string
	Reason  error
}

func (*ProfileResult) isResult()  {}
func (*IdentityResult) isResult() {}
func (*FeedResult) isResult()     {}
func (*NotFoundResult) isResult() {}
