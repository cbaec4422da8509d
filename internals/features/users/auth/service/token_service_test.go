package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashRefreshToken(t *testing.T) {
	a := HashRefreshToken("raw-token-one")
	b := HashRefreshToken("raw-token-one")
	c := HashRefreshToken("raw-token-two")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	// sha256 hex fits the 64-char column.
	assert.Len(t, a, 64)
}
