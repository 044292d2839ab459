package handlers

import (
	"time"

	"boggle-server/internal/boggle"
	"boggle-server/internal/projection"
	"boggle-server/internal/store"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	store             *store.Store
	projection        *projection.Projection
	tokens            *boggle.TokenMinter
	serverKey         []byte
	roundGrace        time.Duration
	roundCount        time.Duration
	maxNameRune       int
	defaultDiceConfig string
	defaultRoundMins  int
}

// New creates a new handlers instance
func New(st *store.Store, proj *projection.Projection, tokens *boggle.TokenMinter, serverKey []byte, roundGrace, roundCountdown, defaultRoundDuration time.Duration, maxNameRune int, defaultDiceConfig string) *Handlers {
	return &Handlers{
		store:             st,
		projection:        proj,
		tokens:            tokens,
		serverKey:         serverKey,
		roundGrace:        roundGrace,
		roundCount:        roundCountdown,
		maxNameRune:       maxNameRune,
		defaultDiceConfig: defaultDiceConfig,
		defaultRoundMins:  int(defaultRoundDuration / time.Minute),
	}
}
