package boggle

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // required by the token derivation, not used for confidentiality
	"crypto/subtle"
	"fmt"
)

// TokenMinter derives the three token families from a process-wide secret
// key. The key is generated once at startup and held only in memory: a
// restart invalidates every outstanding token, which is deliberate — it
// mirrors the session table being truncated on restart.
type TokenMinter struct {
	serverKey []byte
}

// NewTokenMinter wraps a 32-byte process secret.
func NewTokenMinter(serverKey []byte) *TokenMinter {
	return &TokenMinter{serverKey: serverKey}
}

// salted computes HEX(HMAC-SHA1(SHA1(salt||serverKey), joined args))
// truncated to 20 hex characters by keeping every other digit.
func (m *TokenMinter) salted(salt string, args ...string) string {
	keyBase := sha1.Sum(append([]byte(salt), m.serverKey...)) //nolint:gosec
	mac := hmac.New(sha1.New, keyBase[:])
	for _, a := range args {
		mac.Write([]byte(a))
	}
	full := fmt.Sprintf("%x", mac.Sum(nil))
	truncated := make([]byte, 0, 20)
	for i := 0; i < len(full) && len(truncated) < 20; i += 2 {
		truncated = append(truncated, full[i])
	}
	return string(truncated)
}

// ManagementToken authorises advance/destroy/approve_word on a session.
func (m *TokenMinter) ManagementToken(sessionID int64, pepper string) string {
	return m.salted("sessman", fmt.Sprint(sessionID), pepper)
}

// InvitationToken authorises joining a session and reading its stats.
func (m *TokenMinter) InvitationToken(sessionID int64, pepper string) string {
	return m.salted("session", fmt.Sprint(sessionID), pepper)
}

// PlayerToken binds a single player's submit/read/leave operations.
func (m *TokenMinter) PlayerToken(sessionID int64, pepper string, playerID int64) string {
	return m.salted("player", fmt.Sprint(sessionID), pepper, fmt.Sprint(playerID))
}

// Equal performs a constant-time comparison between a presented token and
// the expected value, so token verification time doesn't leak how many
// leading characters matched.
func Equal(presented, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) == 1
}

// NewPepper mints 8 random bytes, hex-encoded, minted once at session
// creation and handed to the client — never persisted server-side.
func NewPepper() (string, error) {
	return randomHex(8)
}

// NewServerKey mints the 32-byte process-wide HMAC secret.
func NewServerKey() ([]byte, error) {
	return randomBytes(32)
}
