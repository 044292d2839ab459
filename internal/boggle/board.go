package boggle

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
)

// Die is one die in a dice config: an ordered sequence of face labels.
// A face of "Q" stands for "QU" on the board.
type Die []string

// Board is an R x C grid of die faces.
type Board struct {
	Rows  int
	Cols  int
	Faces [][]string
}

// Face returns the label at (row, col).
func (b *Board) Face(row, col int) string {
	return b.Faces[row][col]
}

// InBounds reports whether (row, col) is a valid board cell.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// Roll deterministically lays out a board from seed and dice. If rows/cols
// are both zero, len(dice) must be a perfect square and the board is laid
// out square. The same (seed, dice, dims) always yields the same board.
func Roll(seed []byte, dice []Die, rows, cols int) (*Board, error) {
	if rows == 0 && cols == 0 {
		n := len(dice)
		root := int(math.Sqrt(float64(n)))
		if root*root != n {
			return nil, fmt.Errorf("boggle: %d dice is not a perfect square, board dims required", n)
		}
		rows, cols = root, root
	}
	if rows*cols != len(dice) {
		return nil, fmt.Errorf("boggle: board is %dx%d but %d dice were supplied", rows, cols, len(dice))
	}

	rng := rand.New(rand.NewSource(seedToInt64(seed)))

	shuffled := make([]Die, len(dice))
	copy(shuffled, dice)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	flat := make([]string, len(shuffled))
	for i, die := range shuffled {
		flat[i] = die[rng.Intn(len(die))]
	}

	faces := make([][]string, rows)
	for r := 0; r < rows; r++ {
		faces[r] = append([]string(nil), flat[r*cols:(r+1)*cols]...)
	}

	return &Board{Rows: rows, Cols: cols, Faces: faces}, nil
}

// seedToInt64 collapses an arbitrary-length seed into the int64 math/rand
// wants, via a SHA-256 digest so short and long seeds spread evenly.
func seedToInt64(seed []byte) int64 {
	sum := sha256.Sum256(seed)
	return int64(binary.BigEndian.Uint64(sum[:8]))
}
