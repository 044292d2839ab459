package handlers

import (
	"net/http"

	"boggle-server/internal/models"

	"github.com/gin-gonic/gin"
)

// Join adds a new player to a session, through the invitation token.
func (h *Handlers) Join(c *gin.Context) {
	sessionID := c.MustGet("session_id").(int64)
	pepper := c.MustGet("pepper").(string)

	var req models.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if runes := []rune(req.Name); len(runes) > h.maxNameRune {
		req.Name = string(runes[:h.maxNameRune])
	}

	player, err := h.store.Join(c.Request.Context(), sessionID, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.JoinResponse{
		PlayerID:    player.ID,
		PlayerToken: h.tokens.PlayerToken(sessionID, pepper, player.ID),
		Name:        player.Name,
	})
}
