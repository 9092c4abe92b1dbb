package identity

import (
	"context"
	"sync"

	"github.com/bluesky-social/skycord/atproto/syntax"
)

// A fake DID document resolver, for use in tests
type MockResolver struct {
	mu   *sync.RWMutex
	Docs map[syntax.DID]DIDDocument
	// Locations passed to ResolveDID, in call order
	Seen []DIDLocation
}

var _ Resolver = (*MockResolver)(nil)

func NewMockResolver() MockResolver {
	return MockResolver{
		mu:   &sync.RWMutex{},
		Docs: make(map[syntax.DID]DIDDocument),
	}
}

func (r *MockResolver) Insert(doc DIDDocument) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Docs[doc.DID] = doc
}

func (r *MockResolver) ResolveDID(ctx context.Context, loc DIDLocation) (*DIDDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Seen = append(r.Seen, loc)
	doc, ok := r.Docs[loc.DID]
	if !ok {
		return nil, ErrDIDNotFound
	}
	return &doc, nil
}
