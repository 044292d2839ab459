package middleware

import (
	"net/http"
	"strconv"

	"boggle-server/internal/boggle"

	"github.com/gin-gonic/gin"
)

// Tokens binds path-parameter token checks against a TokenMinter. Unlike
// the teacher's header-based SessionAuth, every credential here travels in
// the URL (spec section 5): session id and pepper are path segments, and
// the token itself is just the last segment of the route.
type Tokens struct {
	minter *boggle.TokenMinter
}

// NewTokens wraps a TokenMinter for use as gin middleware.
func NewTokens(minter *boggle.TokenMinter) *Tokens {
	return &Tokens{minter: minter}
}

func sessionParams(c *gin.Context) (sessionID int64, pepper string, ok bool) {
	raw := c.Param("sid")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed session id"})
		c.Abort()
		return 0, "", false
	}
	return id, c.Param("pep"), true
}

// Management requires the request's :mtok to match the session's
// management token. On success it stashes session_id and pepper in the
// request context.
func (t *Tokens) Management() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, pepper, ok := sessionParams(c)
		if !ok {
			return
		}
		expected := t.minter.ManagementToken(sessionID, pepper)
		if !boggle.Equal(c.Param("mtok"), expected) {
			c.JSON(http.StatusForbidden, gin.H{"error": "bad token"})
			c.Abort()
			return
		}
		c.Set("session_id", sessionID)
		c.Set("pepper", pepper)
		c.Next()
	}
}

// Invitation requires the request's :itok to match the session's
// invitation token.
func (t *Tokens) Invitation() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, pepper, ok := sessionParams(c)
		if !ok {
			return
		}
		expected := t.minter.InvitationToken(sessionID, pepper)
		if !boggle.Equal(c.Param("itok"), expected) {
			c.JSON(http.StatusForbidden, gin.H{"error": "bad token"})
			c.Abort()
			return
		}
		c.Set("session_id", sessionID)
		c.Set("pepper", pepper)
		c.Next()
	}
}

// Player requires the request's :ptok to match the session's token for
// :pid.
func (t *Tokens) Player() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, pepper, ok := sessionParams(c)
		if !ok {
			return
		}
		playerID, err := strconv.ParseInt(c.Param("pid"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed player id"})
			c.Abort()
			return
		}
		expected := t.minter.PlayerToken(sessionID, pepper, playerID)
		if !boggle.Equal(c.Param("ptok"), expected) {
			c.JSON(http.StatusForbidden, gin.H{"error": "bad token"})
			c.Abort()
			return
		}
		c.Set("session_id", sessionID)
		c.Set("pepper", pepper)
		c.Set("player_id", playerID)
		c.Next()
	}
}
