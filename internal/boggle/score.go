package boggle

// Variant selects the scoring rules applied to a round. SQL behaves
// identically to Basic (it only changes which engine — this one or a SQL
// aggregate query — produces the numbers); it's kept as a distinct value
// so callers that care about the session's configured variant name can
// still tell the two apart.
type Variant int

const (
	VariantBasic Variant = iota
	VariantSQL
	VariantMild
)

// ScoredWord is a Word annotated with this round's scoring outcome. Score
// is the raw, pre-dictionary-gate score (see EffectiveScore); a manual
// approval can later revive it without re-running the solver.
type ScoredWord struct {
	PlayerID   int64
	PlayerName string
	WordID     int64
	Word       string // display form
	Equality   string

	Score           int
	Path            Path
	HasPath         bool
	Duplicate       bool
	DictionaryValid bool
	LongestBonus    bool
}

// lengthScore implements the score table from spec: len<=4 -> 1, 5 -> 2,
// 6 -> 3, 7 -> 5, >=8 -> 11.
func lengthScore(displayLen int) int {
	switch {
	case displayLen <= 4:
		return 1
	case displayLen == 5:
		return 2
	case displayLen == 6:
		return 3
	case displayLen == 7:
		return 5
	default:
		return 11
	}
}

// ScoreRound scores every word across every player's submissions for one
// round. wordsByPlayer groups raw words (display form, as stored) by
// (player_id, player_name); dictionary is nil when no dictionary is
// configured for the session.
func ScoreRound(wordsByPlayer map[PlayerKey][]RawWord, board *Board, dictionary map[string]struct{}, variant Variant) []ScoredWord {
	type occurrence struct {
		count int
	}
	seenEquality := map[string]*occurrence{}

	type pending struct {
		key      PlayerKey
		raw      RawWord
		display  string
		equality string
	}

	var all []pending
	for key, words := range wordsByPlayer {
		// a player's own duplicate equality-forms only count once
		// towards cross-player duplicate detection, so dedupe per
		// player before accumulating global occurrence counts.
		seenForPlayer := map[string]bool{}
		for _, w := range words {
			display, equality := Normalize(w.Word)
			if seenForPlayer[equality] {
				continue
			}
			seenForPlayer[equality] = true
			all = append(all, pending{key: key, raw: w, display: display, equality: equality})

			occ, ok := seenEquality[equality]
			if !ok {
				occ = &occurrence{}
				seenEquality[equality] = occ
			}
			occ.count++
		}
	}

	out := make([]ScoredWord, 0, len(all))
	maxLen := -1

	for _, p := range all {
		path, found := FindFirstPath(p.equality, board)
		base := lengthScore(len(p.display))
		score := 0
		if found {
			score = base
		}

		duplicate := seenEquality[p.equality].count > 1
		dictionaryValid := dictionary == nil
		if !dictionaryValid {
			_, dictionaryValid = dictionary[p.display]
		}

		sw := ScoredWord{
			PlayerID:        p.key.PlayerID,
			PlayerName:      p.key.PlayerName,
			WordID:          p.raw.WordID,
			Word:            p.display,
			Equality:        p.equality,
			Score:           score,
			Path:            path,
			HasPath:         found,
			Duplicate:       duplicate,
			DictionaryValid: dictionaryValid,
		}
		out = append(out, sw)

		if inBonusPool(sw, variant) {
			l := len(p.display)
			if l > maxLen {
				maxLen = l
			}
		}
	}

	// longest-bonus: exactly one player may hold the uniquely longest
	// scored-valid word. Tally how many distinct players have a
	// scored-valid word at maxLen; a tie suppresses the bonus entirely.
	if maxLen > 0 {
		holders := map[int64]bool{}
		for _, sw := range out {
			if inBonusPool(sw, variant) && len(sw.Word) == maxLen {
				holders[sw.PlayerID] = true
			}
		}
		if len(holders) == 1 {
			for i := range out {
				sw := &out[i]
				if inBonusPool(*sw, variant) && len(sw.Word) == maxLen {
					sw.LongestBonus = true
				}
			}
		}
	}

	return out
}

// inBonusPool reports whether a word counts towards the round's
// longest-word competition: it must have a valid path and pass the
// dictionary gate. Duplicates are excluded under the basic/SQL variants
// (they score 0 and so can't be the round's longest "scored" word) but
// included under mild scoring, where duplicates still earn their base
// score.
func inBonusPool(sw ScoredWord, variant Variant) bool {
	if !sw.HasPath || !sw.DictionaryValid || len(sw.Word) == 0 {
		return false
	}
	if sw.Duplicate && variant != VariantMild {
		return false
	}
	return true
}

// PlayerKey identifies a player for grouping purposes in the scorer's
// intermediate maps.
type PlayerKey struct {
	PlayerID   int64
	PlayerName string
}

// RawWord is the minimal input the scorer needs per submitted word.
type RawWord struct {
	WordID int64
	Word   string // as stored (already uppercased on ingress)
}

// EffectiveScore applies the duplicate/dictionary/longest-bonus/variant
// projection described in spec section 4.4 on top of a word's stored raw
// score and flags, computed fresh on every read so approving a word or
// changing nothing about storage still re-derives the right number.
func EffectiveScore(raw int, duplicate, dictionaryValid, longestBonus bool, variant Variant) int {
	if !dictionaryValid {
		return 0
	}
	if duplicate && variant != VariantMild {
		return 0
	}
	score := raw
	if longestBonus {
		if variant == VariantMild {
			score *= 3
		} else {
			score *= 2
		}
	}
	return score
}
