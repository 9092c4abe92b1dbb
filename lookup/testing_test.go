package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bluesky-social/skycord/atproto/atclient"
)

// fakeXRPC is an in-memory lexutil.LexClient. Responses are keyed by endpoint and the primary
// parameter ("handle" or "actor"); missing keys produce a 400 InvalidRequest like the AppView.
type fakeXRPC struct {
	mu        sync.Mutex
	responses map[string]any
	failures  map[string]error
	calls     []fakeCall
}

type fakeCall struct {
	Endpoint string
	Params   map[string]any
}

func newFakeXRPC() *fakeXRPC {
	return &fakeXRPC{
		responses: map[string]any{},
		failures:  map[string]error{},
	}
}

func fakeKey(endpoint, param string) string {
	return endpoint + "?" + param
}

func (f *fakeXRPC) set(endpoint, param string, resp any) {
	f.responses[fakeKey(endpoint, param)] = resp
}

func (f *fakeXRPC) fail(endpoint, param string, err error) {
	f.failures[fakeKey(endpoint, param)] = err
}

func (f *fakeXRPC) LexDo(ctx context.Context, method string, inputEncoding string, endpoint string, params map[string]any, bodyData any, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, fakeCall{Endpoint: endpoint, Params: params})

	var param string
	for _, k := range []string{"handle", "actor"} {
		if v, ok := params[k]; ok {
			param = fmt.Sprint(v)
		}
	}
	key := fakeKey(endpoint, param)
	if err, ok := f.failures[key]; ok {
		return err
	}
	resp, ok := f.responses[key]
	if !ok {
		return &atclient.APIError{StatusCode: 400, Name: "InvalidRequest", Message: "not found: " + param}
	}
	// round-trip through JSON, like a real response body
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
