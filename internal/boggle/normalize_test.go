package boggle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// R1: normaliser idempotence.
func TestDisplayIdempotent(t *testing.T) {
	cases := []string{"hello", "DGIÉÎHLFLO", "qulge", "Été", "already-upper"}
	for _, c := range cases {
		once := Display(c)
		twice := Display(once)
		assert.Equal(t, once, twice, "Display(%q)", c)
	}
}

func TestDisplayFoldsDiacriticsAndUppercases(t *testing.T) {
	assert.Equal(t, "DGIEIHLFLO", Display("DGIÉÎHLFLO"))
	assert.Equal(t, "ETE", Display("été"))
}

func TestEqualityCollapsesQU(t *testing.T) {
	display, equality := Normalize("AQULGE")
	assert.Equal(t, "AQULGE", display)
	assert.Equal(t, "AQLGE", equality)
}

func TestEqualityMakesQuVariantsEquivalent(t *testing.T) {
	_, eq1 := Normalize("QLGE")
	_, eq2 := Normalize("QULGE")
	assert.Equal(t, eq1, eq2)
}
