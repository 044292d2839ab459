package boggle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioBoard is the fixed board from the spec's worked scoring example:
// "A Q L T / O L E O / F D G I / L H I E".
func scenarioBoard() *Board {
	return &Board{
		Rows: 4, Cols: 4,
		Faces: [][]string{
			{"A", "Q", "L", "T"},
			{"O", "L", "E", "O"},
			{"F", "D", "G", "I"},
			{"L", "H", "I", "E"},
		},
	}
}

// assertValidPath checks P4: path traces the word in equality form over an
// 8-connected, non-repeating chain.
func assertValidPath(t *testing.T, board *Board, word string, path Path) {
	t.Helper()
	require.Equal(t, len(word), len(path))
	seen := map[Cell]bool{}
	for i, cell := range path {
		require.True(t, board.InBounds(cell.Row, cell.Col))
		require.False(t, seen[cell], "path revisits %v", cell)
		seen[cell] = true
		assert.Equal(t, string(word[i]), board.Face(cell.Row, cell.Col))
		if i > 0 {
			dr := cell.Row - path[i-1].Row
			dc := cell.Col - path[i-1].Col
			assert.True(t, dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1 && (dr != 0 || dc != 0),
				"cell %d (%v) not 8-connected to previous (%v)", i, cell, path[i-1])
		}
	}
}

func TestFindFirstPathTracesAqulge(t *testing.T) {
	board := scenarioBoard()
	path, ok := FindFirstPath("AQLGE", board)
	require.True(t, ok)
	assertValidPath(t, board, "AQLGE", path)
}

func TestFindFirstPathTracesLongestWord(t *testing.T) {
	board := scenarioBoard()
	path, ok := FindFirstPath("DGIEIHLFLO", board)
	require.True(t, ok)
	assert.Len(t, path, 10)
	assertValidPath(t, board, "DGIEIHLFLO", path)
}

func TestFindFirstPathMissingSecondOccurrence(t *testing.T) {
	// ALGEIG needs two distinct G cells; the board only has one.
	board := scenarioBoard()
	_, ok := FindFirstPath("ALGEIG", board)
	assert.False(t, ok)
}

func TestFindFirstPathTracesTlegi(t *testing.T) {
	board := scenarioBoard()
	path, ok := FindFirstPath("TLEGI", board)
	require.True(t, ok)
	assertValidPath(t, board, "TLEGI", path)
}

func TestWalkRejectsOutOfRangeLength(t *testing.T) {
	board := scenarioBoard()
	_, ok := FindFirstPath("AB", board) // too short
	assert.False(t, ok)
	_, ok = FindFirstPath("ABCDEFGHIJKLMNOPQ", board) // too long
	assert.False(t, ok)
}
