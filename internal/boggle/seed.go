package boggle

import "fmt"

// RoundSeed derives the deterministic board seed for one round:
// round_no || pepper || server_key. Passing the same three inputs, on the
// same or a different process, always yields the same board — this is how
// the scoring worker sees exactly the board the players saw.
func RoundSeed(roundNo int, pepper string, serverKey []byte) []byte {
	seed := []byte(fmt.Sprintf("%d%s", roundNo, pepper))
	return append(seed, serverKey...)
}
