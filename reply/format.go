package reply

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bluesky-social/skycord/atproto/syntax"
	"github.com/bluesky-social/skycord/lookup"
)

const DefaultWebBaseURL = "https://bsky.app"

const feedGeneratorCollection = syntax.NSID("app.bsky.feed.generator")

type Formatter struct {
	// web app used for profile and feed links, without trailing slash. Defaults to DefaultWebBaseURL
	WebBaseURL string
}

func (f *Formatter) webBase() string {
	if f.WebBaseURL == "" {
		return DefaultWebBaseURL
	}
	return strings.TrimSuffix(f.WebBaseURL, "/")
}

// Maps a result to a message. Every result produces a message: a nil result, or a success result missing its record, gets the failure text for its command.
func (f *Formatter) Format(res lookup.Result) *Message {
	switch r := res.(type) {
	case *lookup.ProfileResult:
		if r == nil || r.Profile == nil {
			return failureMessage(lookup.CommandProfile, "")
		}
		return &Message{Embed: f.profileEmbed(r.Profile)}
	case *lookup.FeedResult:
		if r == nil || r.Feed == nil {
			return failureMessage(lookup.CommandFeed, "")
		}
		return &Message{Embed: f.feedEmbed(r.Feed)}
	case *lookup.IdentityResult:
		if r == nil {
			return failureMessage("", "")
		}
		return &Message{Content: fmt.Sprintf("`%s` -> `%s`", r.Input, r.Resolved)}
	case *lookup.NotFoundResult:
		if r == nil {
			return failureMessage("", "")
		}
		return &Message{Content: lookup.FailureMessage(r)}
	default:
		return failureMessage("", "")
	}
}

func failureMessage(cmd lookup.Command, input string) *Message {
	return &Message{Content: lookup.FailureMessage(&lookup.NotFoundResult{Command: cmd, Input: input})}
}

func (f *Formatter) ProfileURL(did string) string {
	return f.webBase() + "/profile/" + did
}

// Web link for a feed generator, from its AT URI (at://<did>/app.bsky.feed.generator/<rkey>).
func (f *Formatter) FeedURL(uri string) string {
	aturi, err := syntax.ParseATURI(uri)
	if err == nil {
		authority, aerr := aturi.Authority()
		collection, cerr := aturi.Collection()
		rkey, rerr := aturi.RecordKey()
		if aerr == nil && cerr == nil && rerr == nil && collection == feedGeneratorCollection {
			return fmt.Sprintf("%s/profile/%s/feed/%s", f.webBase(), authority, rkey)
		}
	}
	// not a well-formed feed URI; substitute path segments in place
	path := strings.Replace(strings.TrimPrefix(uri, "at://"), "/app.bsky.feed.generator/", "/feed/", 1)
	return f.webBase() + "/profile/" + path
}

func (f *Formatter) profileEmbed(p *lookup.Profile) *Embed {
	link := f.ProfileURL(p.DID)
	e := &Embed{
		Title: p.Title(),
		URL:   link,
		Color: EmbedColor,
		Author: &Author{
			Name: "@" + p.Handle,
			URL:  link,
		},
		Thumbnail: p.Avatar,
		Image:     p.Banner,
	}
	e.Fields = appendCount(e.Fields, "Followers", p.Followers)
	e.Fields = appendCount(e.Fields, "Following", p.Following)
	e.Fields = appendCount(e.Fields, "Posts", p.Posts)
	if p.Description != "" {
		e.Fields = append(e.Fields, Field{Name: "Description", Value: p.Description})
	}
	return e
}

func (f *Formatter) feedEmbed(feed *lookup.Feed) *Embed {
	e := &Embed{
		Title:     feed.DisplayName,
		URL:       f.FeedURL(feed.URI),
		Color:     EmbedColor,
		Thumbnail: feed.Avatar,
	}
	if feed.Creator.Handle != "" {
		e.Author = &Author{
			Name:    "@" + feed.Creator.Handle,
			URL:     f.ProfileURL(feed.Creator.DID),
			IconURL: feed.Creator.Avatar,
		}
	}
	e.Fields = appendCount(e.Fields, "Likes", feed.Likes)
	if feed.Description != "" {
		e.Fields = append(e.Fields, Field{Name: "Description", Value: feed.Description})
	}
	return e
}

// zero and absent counts are both left out
func appendCount(fields []Field, name string, c lookup.Count) []Field {
	if !c.Shown() {
		return fields
	}
	return append(fields, Field{Name: name, Value: strconv.FormatInt(c.Value, 10), Inline: true})
}
