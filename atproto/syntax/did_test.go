package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDIDParts(t *testing.T) {
	assert := assert.New(t)

	d, err := ParseDID("did:example:123456789abcDEFghi")
	assert.NoError(err)
	assert.Equal("example", d.Method())
	assert.Equal("123456789abcDEFghi", d.Identifier())
	assert.Equal(d.String(), d.AtIdentifier().String())

	d, err = ParseDID("did:web:localhost%3A8080")
	assert.NoError(err)
	assert.Equal("web", d.Method())
	assert.Equal("localhost%3A8080", d.Identifier())
}

func TestDIDNoPanic(t *testing.T) {
	for _, s := range []string{"", ":", "::", "did"} {
		bad := DID(s)
		_ = bad.Identifier()
		_ = bad.Method()
		_ = bad.AtIdentifier().String()
	}
}
