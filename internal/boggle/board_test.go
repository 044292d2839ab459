package boggle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classicDice() []Die {
	return []Die{
		{"A", "A", "E", "E", "G", "N"},
		{"A", "B", "B", "J", "O", "O"},
		{"A", "C", "H", "O", "P", "S"},
		{"A", "F", "F", "K", "P", "S"},
		{"A", "O", "O", "T", "T", "W"},
		{"C", "I", "M", "O", "T", "U"},
		{"D", "E", "I", "L", "R", "X"},
		{"D", "E", "L", "R", "V", "Y"},
		{"D", "I", "S", "T", "T", "Y"},
		{"E", "E", "G", "H", "N", "W"},
		{"E", "E", "I", "N", "S", "U"},
		{"E", "H", "R", "T", "V", "W"},
		{"E", "I", "O", "S", "S", "T"},
		{"E", "L", "R", "T", "T", "Y"},
		{"H", "I", "M", "N", "U", "Q"},
		{"H", "L", "N", "N", "R", "Z"},
	}
}

// P1: board determinism.
func TestRollDeterministic(t *testing.T) {
	dice := classicDice()
	seed := []byte("session-7-round-2-pepper")

	b1, err := Roll(seed, dice, 4, 4)
	require.NoError(t, err)
	b2, err := Roll(seed, dice, 4, 4)
	require.NoError(t, err)

	assert.Equal(t, b1.Faces, b2.Faces)
}

func TestRollDifferentSeedsDiffer(t *testing.T) {
	dice := classicDice()

	b1, err := Roll([]byte("seed-a"), dice, 4, 4)
	require.NoError(t, err)
	b2, err := Roll([]byte("seed-b"), dice, 4, 4)
	require.NoError(t, err)

	assert.NotEqual(t, b1.Faces, b2.Faces)
}

func TestRollRequiresPerfectSquareWhenDimsOmitted(t *testing.T) {
	dice := classicDice()[:15] // not a perfect square
	_, err := Roll([]byte("seed"), dice, 0, 0)
	assert.Error(t, err)
}

func TestRollAutoSquareDims(t *testing.T) {
	dice := classicDice()
	b, err := Roll([]byte("seed"), dice, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Rows)
	assert.Equal(t, 4, b.Cols)
}
