package atclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bluesky-social/skycord/atproto/syntax"
)

// Implements the [github.com/bluesky-social/skycord/lex/util.LexClient] interface, for use with the typed API helpers.
//
// Only Query (HTTP GET) endpoints without a request body are supported.
func (c *APIClient) LexDo(ctx context.Context, method string, inputEncoding string, endpoint string, params map[string]any, bodyData any, out any) error {
	if method != http.MethodGet {
		return fmt.Errorf("unsupported XRPC method: %s", method)
	}
	if bodyData != nil {
		return fmt.Errorf("request body not supported for Query endpoint: %s", endpoint)
	}

	nsid, err := syntax.ParseNSID(endpoint)
	if err != nil {
		return err
	}
	return c.Get(ctx, nsid, params, out)
}
