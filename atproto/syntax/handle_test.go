package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleParse(t *testing.T) {
	assert := assert.New(t)

	handle, err := ParseHandle("JoHn.TeST")
	assert.NoError(err)
	assert.Equal("JoHn.TeST", handle.String())
	assert.Equal("JoHn.TeST", handle.AtIdentifier().String())

	_, err = ParseHandle("JoH!n.TeST")
	assert.Error(err)
}
