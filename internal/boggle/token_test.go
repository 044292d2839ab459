package boggle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// P6: accepted tokens equal the canonical HMAC derivation for their tuple.
func TestTokenMinterCanonicalDerivation(t *testing.T) {
	key, err := NewServerKey()
	require.NoError(t, err)
	minter := NewTokenMinter(key)

	mgmt := minter.ManagementToken(42, "abcd1234")
	assert.Equal(t, mgmt, minter.ManagementToken(42, "abcd1234"), "derivation must be deterministic")

	invite := minter.InvitationToken(42, "abcd1234")
	player := minter.PlayerToken(42, "abcd1234", 7)

	assert.NotEqual(t, mgmt, invite, "different salts must diverge")
	assert.NotEqual(t, invite, player)
}

func TestTokenMinterDivergesOnAnyArgChange(t *testing.T) {
	key, err := NewServerKey()
	require.NoError(t, err)
	minter := NewTokenMinter(key)

	base := minter.PlayerToken(1, "pepper", 1)
	assert.NotEqual(t, base, minter.PlayerToken(2, "pepper", 1), "session id must bind")
	assert.NotEqual(t, base, minter.PlayerToken(1, "other", 1), "pepper must bind")
	assert.NotEqual(t, base, minter.PlayerToken(1, "pepper", 2), "player id must bind")
}

func TestTokenMinterDifferentServerKeysDiverge(t *testing.T) {
	key1, err := NewServerKey()
	require.NoError(t, err)
	key2, err := NewServerKey()
	require.NoError(t, err)

	m1, m2 := NewTokenMinter(key1), NewTokenMinter(key2)
	assert.NotEqual(t, m1.ManagementToken(1, "pep"), m2.ManagementToken(1, "pep"))
}

func TestEqualConstantTime(t *testing.T) {
	assert.True(t, Equal("abc123", "abc123"))
	assert.False(t, Equal("abc123", "abc124"))
	assert.False(t, Equal("abc123", "abc12"))
}
