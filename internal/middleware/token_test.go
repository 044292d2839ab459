package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"boggle-server/internal/boggle"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = params
	return c, w
}

func TestManagementAcceptsCanonicalToken(t *testing.T) {
	key, err := boggle.NewServerKey()
	require.NoError(t, err)
	minter := boggle.NewTokenMinter(key)
	tok := NewTokens(minter)

	sessionID := int64(42)
	pepper := "deadbeef"
	token := minter.ManagementToken(sessionID, pepper)

	c, w := testContext(gin.Params{
		{Key: "sid", Value: strconv.FormatInt(sessionID, 10)},
		{Key: "pep", Value: pepper},
		{Key: "mtok", Value: token},
	})

	called := false
	handler := tok.Management()
	handler(c)
	if !c.IsAborted() {
		called = true
	}

	assert.True(t, called)
	assert.Equal(t, sessionID, c.MustGet("session_id").(int64))
	assert.Equal(t, pepper, c.MustGet("pepper").(string))
	assert.NotEqual(t, http.StatusForbidden, w.Code)
}

func TestManagementRejectsBadToken(t *testing.T) {
	key, err := boggle.NewServerKey()
	require.NoError(t, err)
	minter := boggle.NewTokenMinter(key)
	tok := NewTokens(minter)

	c, w := testContext(gin.Params{
		{Key: "sid", Value: "42"},
		{Key: "pep", Value: "deadbeef"},
		{Key: "mtok", Value: "wrong"},
	})

	tok.Management()(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPlayerBindsPlayerID(t *testing.T) {
	key, err := boggle.NewServerKey()
	require.NoError(t, err)
	minter := boggle.NewTokenMinter(key)
	tok := NewTokens(minter)

	sessionID, pepper, playerID := int64(1), "pep", int64(9)
	token := minter.PlayerToken(sessionID, pepper, playerID)

	c, w := testContext(gin.Params{
		{Key: "sid", Value: "1"},
		{Key: "pep", Value: pepper},
		{Key: "pid", Value: "9"},
		{Key: "ptok", Value: token},
	})

	tok.Player()(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, playerID, c.MustGet("player_id").(int64))
	assert.NotEqual(t, http.StatusForbidden, w.Code)
}

func TestPlayerRejectsTokenMintedForDifferentPlayer(t *testing.T) {
	key, err := boggle.NewServerKey()
	require.NoError(t, err)
	minter := boggle.NewTokenMinter(key)
	tok := NewTokens(minter)

	wrongToken := minter.PlayerToken(1, "pep", 99)

	c, w := testContext(gin.Params{
		{Key: "sid", Value: "1"},
		{Key: "pep", Value: "pep"},
		{Key: "pid", Value: "9"},
		{Key: "ptok", Value: wrongToken},
	})

	tok.Player()(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}
