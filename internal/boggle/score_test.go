package boggle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordsOf(scored []ScoredWord) map[string]ScoredWord {
	out := map[string]ScoredWord{}
	for _, sw := range scored {
		out[sw.Word] = sw
	}
	return out
}

// spec section 8 scenario 2: single-player scoring against a dictionary.
func TestScoreRoundSinglePlayerScenario(t *testing.T) {
	board := scenarioBoard()
	dictionary := map[string]struct{}{
		"AQULGE":     {},
		"QLGE":       {},
		"ALGEIG":     {},
		"DGIEIHLFLO": {},
		"QULGE":      {},
	}
	words := map[PlayerKey][]RawWord{
		{PlayerID: 1, PlayerName: "alice"}: {
			{WordID: 1, Word: "AQULGE"},
			{WordID: 2, Word: "QLGE"},
			{WordID: 3, Word: "ALGEIG"},
			{WordID: 4, Word: "DGIEIHLFLO"},
			{WordID: 5, Word: "QULGE"},
			{WordID: 6, Word: "TLEGI"},
		},
	}

	scored := ScoreRound(words, board, dictionary, VariantBasic)
	by := wordsOf(scored)

	require.Contains(t, by, "ALGEIG")
	alg := by["ALGEIG"]
	assert.Equal(t, 0, EffectiveScore(alg.Score, alg.Duplicate, alg.DictionaryValid, alg.LongestBonus, VariantBasic))
	assert.False(t, alg.HasPath)
	assert.True(t, alg.DictionaryValid)

	aqulge := by["AQULGE"]
	assert.Equal(t, 3, EffectiveScore(aqulge.Score, aqulge.Duplicate, aqulge.DictionaryValid, aqulge.LongestBonus, VariantBasic))
	assert.Len(t, aqulge.Path, 5)

	dgi := by["DGIEIHLFLO"]
	assert.Equal(t, 22, EffectiveScore(dgi.Score, dgi.Duplicate, dgi.DictionaryValid, dgi.LongestBonus, VariantBasic))
	assert.True(t, dgi.LongestBonus)
	assert.Len(t, dgi.Path, 10)

	// QLGE/QULGE collapse per-player (same equality form); exactly one
	// survives the submission and scores 1 (length <= 4 -> lengthScore 1,
	// it isn't a duplicate since it collapsed before reaching the
	// cross-player occurrence count).
	_, hasQLGE := by["QLGE"]
	_, hasQULGE := by["QULGE"]
	assert.True(t, hasQLGE != hasQULGE, "exactly one of QLGE/QULGE should survive per-player collapse")
	var surviving ScoredWord
	if hasQLGE {
		surviving = by["QLGE"]
	} else {
		surviving = by["QULGE"]
	}
	assert.Equal(t, 1, EffectiveScore(surviving.Score, surviving.Duplicate, surviving.DictionaryValid, surviving.LongestBonus, VariantBasic))

	tlegi := by["TLEGI"]
	assert.True(t, tlegi.HasPath)
	assert.False(t, tlegi.DictionaryValid)
	assert.Equal(t, 0, EffectiveScore(tlegi.Score, tlegi.Duplicate, tlegi.DictionaryValid, tlegi.LongestBonus, VariantBasic))

	// approve_word flips dictionary_valid and revives the raw score.
	assert.Equal(t, 2, EffectiveScore(tlegi.Score, tlegi.Duplicate, true, tlegi.LongestBonus, VariantBasic))
}

// spec section 8 scenario 3 + P5: duplicate symmetry across players.
func TestScoreRoundCrossPlayerDuplicateScenario(t *testing.T) {
	board := scenarioBoard()
	words := map[PlayerKey][]RawWord{
		{PlayerID: 1, PlayerName: "p1"}: {
			{WordID: 1, Word: "AQULGE"},
			{WordID: 2, Word: "ALGEIG"},
			{WordID: 3, Word: "DGIEIHL"},
		},
		{PlayerID: 2, PlayerName: "p2"}: {
			{WordID: 4, Word: "AQULGE"},
			{WordID: 5, Word: "ALGEIG"},
			{WordID: 6, Word: "DGIEIHLFOLEO"},
		},
	}

	scored := ScoreRound(words, board, nil, VariantBasic)

	var p1Aqulge, p2Aqulge ScoredWord
	var p1Unique, p2Unique ScoredWord
	for _, sw := range scored {
		switch {
		case sw.Word == "AQULGE" && sw.PlayerID == 1:
			p1Aqulge = sw
		case sw.Word == "AQULGE" && sw.PlayerID == 2:
			p2Aqulge = sw
		case sw.Word == "DGIEIHL" && sw.PlayerID == 1:
			p1Unique = sw
		case sw.Word == "DGIEIHLFOLEO" && sw.PlayerID == 2:
			p2Unique = sw
		}
	}

	// P5: duplicate flag agrees across both players for the shared word.
	assert.True(t, p1Aqulge.Duplicate)
	assert.Equal(t, p1Aqulge.Duplicate, p2Aqulge.Duplicate)
	assert.Equal(t, 0, EffectiveScore(p1Aqulge.Score, p1Aqulge.Duplicate, p1Aqulge.DictionaryValid, p1Aqulge.LongestBonus, VariantBasic))
	assert.Equal(t, 0, EffectiveScore(p2Aqulge.Score, p2Aqulge.Duplicate, p2Aqulge.DictionaryValid, p2Aqulge.LongestBonus, VariantBasic))

	assert.False(t, p1Unique.Duplicate)
	assert.Equal(t, 5, EffectiveScore(p1Unique.Score, p1Unique.Duplicate, p1Unique.DictionaryValid, p1Unique.LongestBonus, VariantBasic))

	assert.False(t, p2Unique.Duplicate)
	assert.True(t, p2Unique.LongestBonus)
	assert.Equal(t, 22, EffectiveScore(p2Unique.Score, p2Unique.Duplicate, p2Unique.DictionaryValid, p2Unique.LongestBonus, VariantBasic))
}

func TestLengthScoreTable(t *testing.T) {
	assert.Equal(t, 1, lengthScore(3))
	assert.Equal(t, 1, lengthScore(4))
	assert.Equal(t, 2, lengthScore(5))
	assert.Equal(t, 3, lengthScore(6))
	assert.Equal(t, 5, lengthScore(7))
	assert.Equal(t, 11, lengthScore(8))
	assert.Equal(t, 11, lengthScore(20))
}

func TestLongestBonusSuppressedOnTie(t *testing.T) {
	board := scenarioBoard()
	// TLEG and AQLG are both valid 4-letter traces on scenarioBoard
	// (prefixes of the TLEGI and AQLGE paths), so they tie for longest.
	words := map[PlayerKey][]RawWord{
		{PlayerID: 1, PlayerName: "p1"}: {{WordID: 1, Word: "TLEG"}},
		{PlayerID: 2, PlayerName: "p2"}: {{WordID: 2, Word: "AQLG"}},
	}
	scored := ScoreRound(words, board, nil, VariantBasic)
	require.Len(t, scored, 2)
	for _, sw := range scored {
		require.True(t, sw.HasPath, "%s should trace on scenarioBoard", sw.Word)
		assert.False(t, sw.LongestBonus, "tie on longest should suppress bonus for %s", sw.Word)
	}
}

func TestEffectiveScoreMildVariantKeepsDuplicates(t *testing.T) {
	assert.Equal(t, 5, EffectiveScore(5, true, true, false, VariantMild))
	assert.Equal(t, 0, EffectiveScore(5, true, true, false, VariantBasic))
}
