package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobMarshalRoundTrip(t *testing.T) {
	job := Job{
		JobID:      "job-1",
		SessionID:  7,
		RoundNo:    3,
		Seed:       []byte{1, 2, 3, 4},
		DiceConfig: "international",
		BoardRows:  4,
		BoardCols:  4,
	}

	payload, err := json.Marshal(job)
	require.NoError(t, err)

	var decoded Job
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, job, decoded)
}
