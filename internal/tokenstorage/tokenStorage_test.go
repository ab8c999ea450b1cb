package tokenstorage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevoke(t *testing.T) {
	assert.False(t, IsRevoked("token-a"))

	Revoke("token-a")
	assert.True(t, IsRevoked("token-a"))
	assert.False(t, IsRevoked("token-b"))

	// revoking twice stays revoked
	Revoke("token-a")
	assert.True(t, IsRevoked("token-a"))
}
