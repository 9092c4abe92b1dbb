/*
Package atclient is a small client for unauthenticated atproto "XRPC" Query endpoints, as served by a public AppView such as https://public.api.bsky.app.

[APIClient] wraps an [http.Client] and a host URL. [APIClient.Get] handles simple JSON queries, and [APIClient.LexDo] implements the [github.com/bluesky-social/skycord/lex/util.LexClient] interface so the typed helpers in the api/ packages can use it.

Non-2xx responses are decoded to [APIError], which carries the HTTP status and the atproto 'error' and 'message' fields. Callers can use [errors.As] to inspect it.
*/
package atclient
