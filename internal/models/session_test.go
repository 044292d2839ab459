package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusMarshalsAsName(t *testing.T) {
	payload, err := json.Marshal(StatusScoring)
	require.NoError(t, err)
	assert.Equal(t, `"SCORING"`, string(payload))
}

func TestRoundEndAddsRoundMinutes(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sess := &Session{RoundMinutes: 3, RoundStart: &start}
	assert.Equal(t, start.Add(3*time.Minute), sess.RoundEnd())
}

func TestRoundEndZeroBeforeStart(t *testing.T) {
	sess := &Session{RoundMinutes: 3}
	assert.True(t, sess.RoundEnd().IsZero())
}
