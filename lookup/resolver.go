package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	comatproto "github.com/bluesky-social/skycord/api/atproto"
	appbsky "github.com/bluesky-social/skycord/api/bsky"
	"github.com/bluesky-social/skycord/atproto/identity"
	"github.com/bluesky-social/skycord/atproto/syntax"
	lexutil "github.com/bluesky-social/skycord/lex/util"
)

// Number of feeds requested from getActorFeeds. Only the first page is searched; feeds past this are not reachable.
const FeedPageSize = 100

// Resolution logic for each command. All methods are safe for concurrent use.
type Resolver struct {
	// XRPC client for the AppView (resolveHandle, getProfile, getActorFeeds)
	Client lexutil.LexClient
	// DID document resolver, used by ResolveDID
	Docs   identity.Resolver
	Logger *slog.Logger
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default().With("component", "lookup")
	}
	return r.Logger
}

// Resolves a handle to a DID through the AppView. The handle is passed through as given.
//
// Every failure (unknown handle, transport error, bad response) is a [ResolutionFailure].
func (r *Resolver) ResolveHandle(ctx context.Context, handle string) (string, error) {
	out, err := comatproto.IdentityResolveHandle(ctx, r.Client, handle)
	if err != nil {
		return "", failure("resolveHandle", handle, err)
	}
	did, err := syntax.ParseDID(out.Did)
	if err != nil {
		return "", failure("resolveHandle", handle, fmt.Errorf("invalid DID in response: %w", err))
	}
	return did.String(), nil
}

// Resolves a DID to the handle declared in its DID document (did:web host or PLC directory).
func (r *Resolver) ResolveDID(ctx context.Context, did string) (string, error) {
	handle, err := identity.ResolveDeclaredHandle(ctx, r.Docs, did)
	if err != nil {
		return "", failure("resolveDID", did, err)
	}
	return handle, nil
}

// Fetches the profile for an actor (handle or DID) and normalizes optional fields.
func (r *Resolver) FetchProfile(ctx context.Context, actor string) (*Profile, error) {
	atid, err := syntax.ParseAtIdentifier(actor)
	if err != nil {
		return nil, failure("getProfile", actor, err)
	}

	view, err := appbsky.ActorGetProfile(ctx, r.Client, atid.String())
	if err != nil {
		return nil, failure("getProfile", actor, err)
	}
	if view.Did == "" || view.Handle == "" {
		return nil, failure("getProfile", actor, errors.New("profile response missing did or handle"))
	}

	return &Profile{
		DID:         view.Did,
		Handle:      view.Handle,
		DisplayName: deref(view.DisplayName),
		Description: deref(view.Description),
		Avatar:      deref(view.Avatar),
		Banner:      deref(view.Banner),
		Followers:   CountFrom(view.FollowersCount),
		Following:   CountFrom(view.FollowsCount),
		Posts:       CountFrom(view.PostsCount),
	}, nil
}

// Lists the actor's feed generators (first page only) and returns the first one matching name. See [MatchFeed] for the rules.
//
// A failed listing is a [ResolutionFailure]; an empty or non-matching page wraps [ErrNotFound].
func (r *Resolver) FindFeed(ctx context.Context, actor, name string) (*Feed, error) {
	atid, err := syntax.ParseAtIdentifier(actor)
	if err != nil {
		return nil, failure("getActorFeeds", actor, err)
	}

	out, err := appbsky.FeedGetActorFeeds(ctx, r.Client, atid.String(), "", FeedPageSize)
	if err != nil {
		return nil, failure("getActorFeeds", actor, err)
	}
	if out.Cursor != nil && *out.Cursor != "" {
		r.logger().Debug("actor has more feeds than fit in one page; not paginating", "actor", actor, "pageSize", FeedPageSize)
	}

	view := MatchFeed(out.Feeds, name)
	if view == nil {
		return nil, fmt.Errorf("feed %q by %s: %w", name, actor, ErrNotFound)
	}
	return feedFromView(view), nil
}

// Returns the first feed, in list order, whose display name equals name case-insensitively, or whose record key (last URI path segment) equals name exactly. Returns nil if none match.
func MatchFeed(feeds []*appbsky.FeedDefs_GeneratorView, name string) *appbsky.FeedDefs_GeneratorView {
	target := strings.ToLower(name)
	for _, f := range feeds {
		if f == nil {
			continue
		}
		if strings.ToLower(f.DisplayName) == target || recordKey(f.Uri) == name {
			return f
		}
	}
	return nil
}

// last path segment of an AT URI
func recordKey(uri string) string {
	if i := strings.LastIndex(uri, "/"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}

func feedFromView(view *appbsky.FeedDefs_GeneratorView) *Feed {
	feed := Feed{
		URI:         view.Uri,
		RecordKey:   recordKey(view.Uri),
		DisplayName: view.DisplayName,
		Description: deref(view.Description),
		Avatar:      deref(view.Avatar),
		Likes:       CountFrom(view.LikeCount),
	}
	if view.Creator != nil {
		feed.Creator = FeedCreator{
			DID:    view.Creator.Did,
			Handle: view.Creator.Handle,
			Avatar: deref(view.Creator.Avatar),
		}
	}
	return &feed
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
