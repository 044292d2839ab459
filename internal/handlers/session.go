package handlers

import (
	"net/http"

	"boggle-server/internal/boggle"
	"boggle-server/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateSession creates a new session and mints its three tokens.
func (h *Handlers) CreateSession(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = models.CreateSessionRequest{}
	}
	if req.DiceConfig == "" {
		req.DiceConfig = h.defaultDiceConfig
	}
	if req.RoundMinutes <= 0 {
		req.RoundMinutes = h.defaultRoundMins
	}

	sess, err := h.store.CreateSession(c.Request.Context(), req.DiceConfig, req.Dictionary, req.RoundMinutes, req.UseMildScoring)
	if err != nil {
		writeError(c, err)
		return
	}

	pepper, err := boggle.NewPepper()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mint pepper"})
		return
	}

	c.JSON(http.StatusCreated, models.CreateSessionResponse{
		SessionID:        sess.ID,
		Pepper:           pepper,
		SessionMgmtToken: h.tokens.ManagementToken(sess.ID, pepper),
		SessionToken:     h.tokens.InvitationToken(sess.ID, pepper),
	})
}

// GetManagement returns the session's state projection through the
// management token.
func (h *Handlers) GetManagement(c *gin.Context) {
	sessionID := c.MustGet("session_id").(int64)
	pepper := c.MustGet("pepper").(string)

	state, err := h.projection.State(c.Request.Context(), sessionID, pepper, h.serverKey)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// AdvanceRound advances the session to its next round.
func (h *Handlers) AdvanceRound(c *gin.Context) {
	sessionID := c.MustGet("session_id").(int64)

	sess, err := h.store.AdvanceRound(c.Request.Context(), sessionID, h.roundCount)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AdvanceResponse{
		RoundNo:    sess.RoundNo,
		RoundStart: models.FormatTimestamp(*sess.RoundStart),
	})
}

// DestroySession deletes a session outright.
func (h *Handlers) DestroySession(c *gin.Context) {
	sessionID := c.MustGet("session_id").(int64)

	if err := h.store.Destroy(c.Request.Context(), sessionID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ApproveWord marks one or more words as dictionary-valid after scoring
// and returns the re-projected scores (spec section 4.6).
func (h *Handlers) ApproveWord(c *gin.Context) {
	sessionID := c.MustGet("session_id").(int64)
	pepper := c.MustGet("pepper").(string)

	var req models.ApproveWordRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Words) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "words is required"})
		return
	}

	if err := h.store.ApproveWord(c.Request.Context(), sessionID, req.Words); err != nil {
		writeError(c, err)
		return
	}

	state, err := h.projection.State(c.Request.Context(), sessionID, pepper, h.serverKey)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Stats returns the aggregate scores for spectators holding the
// invitation token.
func (h *Handlers) Stats(c *gin.Context) {
	sessionID := c.MustGet("session_id").(int64)

	stats, err := h.projection.Stats(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Options lists the available dice configs and dictionaries.
func (h *Handlers) Options(catalog *boggle.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		dice, err := catalog.ListDiceConfigs()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list dice configs"})
			return
		}
		dicts, err := catalog.ListDictionaries()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list dictionaries"})
			return
		}
		c.JSON(http.StatusOK, models.OptionsResponse{
			DiceConfigs:  dice,
			Dictionaries: dicts,
		})
	}
}
