package reply

import (
	"testing"

	"github.com/bluesky-social/skycord/lookup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatProfile(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	f := Formatter{}

	msg := f.Format(&lookup.ProfileResult{Profile: &lookup.Profile{
		DID:         "did:plc:alice",
		Handle:      "alice.bsky.social",
		DisplayName: "Alice",
		Description: "first line\nsecond line",
		Avatar:      "https://cdn.example.com/avatar.jpg",
		Banner:      "https://cdn.example.com/banner.jpg",
		Followers:   lookup.Count{Value: 1200, Valid: true},
		Following:   lookup.Count{Value: 0, Valid: true},
		Posts:       lookup.Count{Value: 7, Valid: true},
	}})
	require.NotNil(msg.Embed)
	assert.Empty(msg.Content)

	e := msg.Embed
	assert.Equal("Alice", e.Title)
	assert.Equal("https://bsky.app/profile/did:plc:alice", e.URL)
	assert.Equal(EmbedColor, e.Color)
	assert.Equal(&Author{Name: "@alice.bsky.social", URL: "https://bsky.app/profile/did:plc:alice"}, e.Author)
	assert.Equal("https://cdn.example.com/avatar.jpg", e.Thumbnail)
	assert.Equal("https://cdn.example.com/banner.jpg", e.Image)
	assert.Equal([]Field{
		{Name: "Followers", Value: "1200", Inline: true},
		{Name: "Posts", Value: "7", Inline: true},
		{Name: "Description", Value: "first line\nsecond line"},
	}, e.Fields)
}

func TestFormatProfileBare(t *testing.T) {
	assert := assert.New(t)
	f := Formatter{WebBaseURL: "https://staging.bsky.dev/"}

	msg := f.Format(&lookup.ProfileResult{Profile: &lookup.Profile{
		DID:       "did:plc:bare",
		Handle:    "bare.test",
		Followers: lookup.Count{Value: 0, Valid: true},
	}})
	e := msg.Embed
	assert.Equal("@bare.test", e.Title)
	assert.Equal("https://staging.bsky.dev/profile/did:plc:bare", e.URL)
	assert.Empty(e.Thumbnail)
	assert.Empty(e.Image)
	// zero and absent render the same: no field at all
	assert.Empty(e.Fields)
}

func TestFormatFeed(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	f := Formatter{}

	msg := f.Format(&lookup.FeedResult{Feed: &lookup.Feed{
		URI:         "at://did:plc:alice/app.bsky.feed.generator/news",
		RecordKey:   "news",
		DisplayName: "News",
		Description: "Headlines",
		Avatar:      "https://cdn.example.com/feed.jpg",
		Likes:       lookup.Count{Value: 42, Valid: true},
		Creator: lookup.FeedCreator{
			DID:    "did:plc:alice",
			Handle: "alice.bsky.social",
			Avatar: "https://cdn.example.com/avatar.jpg",
		},
	}})
	require.NotNil(msg.Embed)

	e := msg.Embed
	assert.Equal("News", e.Title)
	assert.Equal("https://bsky.app/profile/did:plc:alice/feed/news", e.URL)
	assert.Equal("https://cdn.example.com/feed.jpg", e.Thumbnail)
	assert.Empty(e.Image)
	assert.Equal(&Author{
		Name:    "@alice.bsky.social",
		URL:     "https://bsky.app/profile/did:plc:alice",
		IconURL: "https://cdn.example.com/avatar.jpg",
	}, e.Author)
	assert.Equal([]Field{
		{Name: "Likes", Value: "42", Inline: true},
		{Name: "Description", Value: "Headlines"},
	}, e.Fields)

	msg = f.Format(&lookup.FeedResult{Feed: &lookup.Feed{
		URI:         "at://did:plc:alice/app.bsky.feed.generator/quiet",
		DisplayName: "Quiet",
		Likes:       lookup.Count{},
	}})
	assert.Empty(msg.Embed.Fields)
	assert.Nil(msg.Embed.Author)
}

func TestFeedURL(t *testing.T) {
	assert := assert.New(t)
	f := Formatter{}

	assert.Equal("https://bsky.app/profile/did:web:feeds.example.com/feed/abc", f.FeedURL("at://did:web:feeds.example.com/app.bsky.feed.generator/abc"))
	assert.Equal("https://bsky.app/profile/alice.example/feed/whats-hot", f.FeedURL("at://alice.example/app.bsky.feed.generator/whats-hot"))
	// other collections are not feed links; the path is left as-is apart from the prefix
	assert.Equal("https://bsky.app/profile/did:plc:alice/app.bsky.feed.post/3k2a", f.FeedURL("at://did:plc:alice/app.bsky.feed.post/3k2a"))
	// malformed URIs still get the segment substitution
	assert.Equal("https://bsky.app/profile/did:plc:alice/feed/a b", f.FeedURL("at://did:plc:alice/app.bsky.feed.generator/a b"))
}

func TestFormatText(t *testing.T) {
	assert := assert.New(t)
	f := Formatter{}

	msg := f.Format(&lookup.IdentityResult{Input: "alice.bsky.social", Resolved: "did:plc:alice"})
	assert.Nil(msg.Embed)
	assert.Equal("`alice.bsky.social` -> `did:plc:alice`", msg.Content)

	msg = f.Format(&lookup.IdentityResult{Input: "did:web:alice.example", Resolved: "alice.example"})
	assert.Equal("`did:web:alice.example` -> `alice.example`", msg.Content)

	msg = f.Format(&lookup.NotFoundResult{Command: lookup.CommandDID, Input: "doesnotexist.test"})
	assert.Nil(msg.Embed)
	assert.Equal("Could not resolve `doesnotexist.test`", msg.Content)

	msg = f.Format(&lookup.NotFoundResult{Command: lookup.CommandProfile, Input: "nobody.test"})
	assert.Equal("Could not find user `nobody.test`", msg.Content)

	msg = f.Format(&lookup.NotFoundResult{Command: lookup.CommandFeed, Input: "alice.bsky.social"})
	assert.Equal("Could not find the feed", msg.Content)

	msg = f.Format(nil)
	assert.NotEmpty(msg.Content)
}

func TestFormatMissingRecord(t *testing.T) {
	assert := assert.New(t)
	f := Formatter{}

	msg := f.Format(&lookup.ProfileResult{})
	assert.Nil(msg.Embed)
	assert.Equal("Could not find user ``", msg.Content)

	msg = f.Format(&lookup.FeedResult{})
	assert.Nil(msg.Embed)
	assert.Equal("Could not find the feed", msg.Content)

	var pr *lookup.ProfileResult
	msg = f.Format(pr)
	assert.Equal("Could not find user ``", msg.Content)

	var fr *lookup.FeedResult
	msg = f.Format(fr)
	assert.Equal("Could not find the feed", msg.Content)

	var ir *lookup.IdentityResult
	assert.Equal("Could not resolve ``", f.Format(ir).Content)
	var nf *lookup.NotFoundResult
	assert.Equal("Could not resolve ``", f.Format(nf).Content)
}

func TestMessageText(t *testing.T) {
	assert := assert.New(t)
	f := Formatter{}

	msg := f.Format(&lookup.IdentityResult{Input: "a.test", Resolved: "did:plc:a"})
	assert.Equal("`a.test` -> `did:plc:a`", msg.Text())

	msg = f.Format(&lookup.ProfileResult{Profile: &lookup.Profile{
		DID:         "did:plc:alice",
		Handle:      "alice.test",
		Description: "one\ntwo",
		Posts:       lookup.Count{Value: 3, Valid: true},
	}})
	assert.Equal("@alice.test <https://bsky.app/profile/did:plc:alice>\n@alice.test\nhttps://bsky.app/profile/did:plc:alice\nPosts: 3\nDescription:\n  one\n  two", msg.Text())
}
