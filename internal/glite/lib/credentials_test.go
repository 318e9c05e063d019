package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptCredentials(t *testing.T) {
	creds := NewBcryptCredentials()

	stored, err := creds.Make("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored)

	// The verifier is self-describing: no external state needed to check.
	assert.True(t, creds.Verify(stored, "secret1"))
	assert.False(t, creds.Verify(stored, "wrong"))

	// A second Make yields a different verifier (fresh salt) that still verifies.
	stored2, err := creds.Make("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, stored, stored2)
	assert.True(t, creds.Verify(stored2, "secret1"))
}
