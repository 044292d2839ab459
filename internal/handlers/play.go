package handlers

import (
	"net/http"
	"time"

	"boggle-server/internal/models"

	"github.com/gin-gonic/gin"
)

// GetPlay returns the session's state projection through a player token.
func (h *Handlers) GetPlay(c *gin.Context) {
	sessionID := c.MustGet("session_id").(int64)
	pepper := c.MustGet("pepper").(string)

	state, err := h.projection.State(c.Request.Context(), sessionID, pepper, h.serverKey)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SubmitWords records a player's word list for the current round.
func (h *Handlers) SubmitWords(c *gin.Context) {
	sessionID := c.MustGet("session_id").(int64)
	playerID := c.MustGet("player_id").(int64)

	var req models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed submit body"})
		return
	}

	err := h.store.Submit(c.Request.Context(), sessionID, playerID, req.RoundNo, req.Words, h.roundGrace, time.Now().UTC())
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// LeaveSession removes a player from the session.
func (h *Handlers) LeaveSession(c *gin.Context) {
	sessionID := c.MustGet("session_id").(int64)
	playerID := c.MustGet("player_id").(int64)

	if err := h.store.Leave(c.Request.Context(), sessionID, playerID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
