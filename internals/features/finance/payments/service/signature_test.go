package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSignatureMatchesSha512(t *testing.T) {
	sum := sha512.Sum512([]byte("YGM-ABC123" + "200" + "500.00" + "server-key"))
	want := hex.EncodeToString(sum[:])

	got := ComputeSignature("YGM-ABC123", "200", "500.00", "server-key")
	assert.Equal(t, want, got)
	require.Len(t, got, 128)
}

func TestVerifySignature(t *testing.T) {
	sig := ComputeSignature("YGM-ABC123", "200", "500.00", "server-key")

	assert.True(t, VerifySignature("YGM-ABC123", "200", "500.00", "server-key", sig))

	// Any tampered field invalidates the signature.
	assert.False(t, VerifySignature("YGM-ABC124", "200", "500.00", "server-key", sig))
	assert.False(t, VerifySignature("YGM-ABC123", "201", "500.00", "server-key", sig))
	assert.False(t, VerifySignature("YGM-ABC123", "200", "501.00", "server-key", sig))
	assert.False(t, VerifySignature("YGM-ABC123", "200", "500.00", "other-key", sig))
	assert.False(t, VerifySignature("YGM-ABC123", "200", "500.00", "server-key", ""))
}
