package store

import (
	"context"
	"encoding/json"
	"fmt"

	"boggle-server/internal/apierr"
	"boggle-server/internal/boggle"
	"boggle-server/internal/models"

	"github.com/jackc/pgx/v5"
)

// AllSubmitted reports whether every player in the session has a
// submission for roundNo — the single aggregate query from spec section
// 4.7: "does any player in the session lack a Submission for the current
// round."
func (s *Store) AllSubmitted(ctx context.Context, sessionID int64, roundNo int) (bool, error) {
	const query = `
		SELECT NOT EXISTS (
			SELECT 1 FROM players p
			WHERE p.session_id = $1
			AND NOT EXISTS (
				SELECT 1 FROM submissions sub
				WHERE sub.player_id = p.id AND sub.round_no = $2
			)
		)
	`
	var all bool
	if err := s.db.QueryRow(ctx, query, sessionID, roundNo).Scan(&all); err != nil {
		return false, fmt.Errorf("all submitted: %w", err)
	}
	return all, nil
}

// LoadRoundWords loads every word submitted for (sessionID, roundNo),
// grouped by (player id, player name), for the scorer.
func (s *Store) LoadRoundWords(ctx context.Context, sessionID int64, roundNo int) (map[boggle.PlayerKey][]boggle.RawWord, error) {
	const query = `
		SELECT p.id, p.name, w.id, w.word
		FROM words w
		JOIN submissions sub ON sub.id = w.submission_id
		JOIN players p ON p.id = sub.player_id
		WHERE p.session_id = $1 AND sub.round_no = $2
	`
	rows, err := s.db.Query(ctx, query, sessionID, roundNo)
	if err != nil {
		return nil, fmt.Errorf("load round words: %w", err)
	}
	defer rows.Close()

	out := map[boggle.PlayerKey][]boggle.RawWord{}
	for rows.Next() {
		var key boggle.PlayerKey
		var raw boggle.RawWord
		if err := rows.Scan(&key.PlayerID, &key.PlayerName, &raw.WordID, &raw.Word); err != nil {
			return nil, fmt.Errorf("scan round word: %w", err)
		}
		out[key] = append(out[key], raw)
	}
	return out, rows.Err()
}

// WriteScores bulk-updates Word rows with the scorer's output, mirroring
// the teacher's bulk_save_objects step from the original source: a plain
// update per row inside one transaction, no cross-table joins needed
// since each ScoredWord already carries its WordID.
func (s *Store) WriteScores(ctx context.Context, scored []boggle.ScoredWord) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const query = `
		UPDATE words SET score = $1, duplicate = $2, dictionary_valid = $3,
			longest_bonus = $4, path_array = $5
		WHERE id = $6
	`
	for _, sw := range scored {
		pathJSON, err := json.Marshal(pathOrNil(sw))
		if err != nil {
			return fmt.Errorf("marshal path: %w", err)
		}
		_, err = tx.Exec(ctx, query, sw.Score, sw.Duplicate, sw.DictionaryValid, sw.LongestBonus, string(pathJSON), sw.WordID)
		if err != nil {
			return fmt.Errorf("write score for word %d: %w", sw.WordID, err)
		}
	}
	return tx.Commit(ctx)
}

func pathOrNil(sw boggle.ScoredWord) interface{} {
	if !sw.HasPath {
		return nil
	}
	return sw.Path
}

// ScoredWordRow is one persisted word row joined with its player, as read
// back for the scores payload (spec section 6).
type ScoredWordRow struct {
	PlayerID        int64
	PlayerName      string
	Word            string
	Score           *int
	Duplicate       *bool
	DictionaryValid *bool
	LongestBonus    *bool
	pathArray       *string
}

// Path decodes the row's stored path, if any.
func (r ScoredWordRow) Path() ([]boggle.Cell, bool) {
	if r.pathArray == nil {
		return nil, false
	}
	var cells []boggle.Cell
	if err := json.Unmarshal([]byte(*r.pathArray), &cells); err != nil {
		return nil, false
	}
	return cells, len(cells) > 0
}

// LoadScoredWords loads every word submitted in (sessionID, roundNo) along
// with its scoring columns, for read-path payload assembly. Unlike
// LoadRoundWords (scorer input), this returns persisted scorer output.
func (s *Store) LoadScoredWords(ctx context.Context, sessionID int64, roundNo int) ([]ScoredWordRow, error) {
	const query = `
		SELECT p.id, p.name, w.word, w.score, w.duplicate, w.dictionary_valid, w.longest_bonus, w.path_array
		FROM words w
		JOIN submissions sub ON sub.id = w.submission_id
		JOIN players p ON p.id = sub.player_id
		WHERE p.session_id = $1 AND sub.round_no = $2
		ORDER BY p.id, w.id
	`
	rows, err := s.db.Query(ctx, query, sessionID, roundNo)
	if err != nil {
		return nil, fmt.Errorf("load scored words: %w", err)
	}
	defer rows.Close()

	var out []ScoredWordRow
	for rows.Next() {
		var r ScoredWordRow
		if err := rows.Scan(&r.PlayerID, &r.PlayerName, &r.Word, &r.Score, &r.Duplicate, &r.DictionaryValid, &r.LongestBonus, &r.pathArray); err != nil {
			return nil, fmt.Errorf("scan scored word: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// SetRoundScored is the worker's claim/commit primitive (spec section
// 4.8). It takes the session row lock, and if the session's round_scored
// is already non-nil (another worker claimed it, or it's done) it leaves
// the row untouched and reports claimed=false. Otherwise it sets
// round_scored to value and reports claimed=true. The worker passes
// value=false to claim the round; once claimed, round_scored is non-nil,
// so results are committed through CommitScored instead.
func (s *Store) SetRoundScored(ctx context.Context, sessionID int64, roundNo int, value bool) (claimed bool, err error) {
	err = s.withSessionLock(ctx, sessionID, false, func(tx pgx.Tx, sess *models.Session) error {
		if sess.RoundNo != roundNo {
			// session has moved on to a new round since the job
			// was dispatched; nothing to claim
			return nil
		}
		if sess.RoundScored != nil {
			return nil
		}
		if _, err := tx.Exec(ctx, `UPDATE sessions SET round_scored = $1 WHERE id = $2`, value, sessionID); err != nil {
			return fmt.Errorf("set round_scored: %w", err)
		}
		claimed = true
		return nil
	})
	return claimed, err
}

// CommitScored marks round_scored = true unconditionally for
// (sessionID, roundNo), so long as the session still exists and hasn't
// moved to a later round. Used by the worker's final step after writing
// results; it tolerates the session having been destroyed mid-scoring
// (spec section 4.8 step 7: "if session gone, exit without error").
func (s *Store) CommitScored(ctx context.Context, sessionID int64, roundNo int) error {
	return s.withSessionLock(ctx, sessionID, true, func(tx pgx.Tx, sess *models.Session) error {
		if sess == nil {
			return nil
		}
		if sess.RoundNo != roundNo {
			return nil
		}
		_, err := tx.Exec(ctx, `UPDATE sessions SET round_scored = true WHERE id = $1`, sessionID)
		if err != nil {
			return fmt.Errorf("commit scored: %w", err)
		}
		return nil
	})
}

// ApproveWord implements spec section 4.6 "Approve word": for each
// supplied word (uppercased), set dictionary_valid := true on every Word
// row in the current round whose word equals it. Only permitted once the
// round has been scored.
func (s *Store) ApproveWord(ctx context.Context, sessionID int64, words []string) error {
	return s.withSessionLock(ctx, sessionID, false, func(tx pgx.Tx, sess *models.Session) error {
		if sess.RoundScored == nil || !*sess.RoundScored {
			return apierr.StateViolation("cannot approve words before scoring completes")
		}
		const query = `
			UPDATE words SET dictionary_valid = true
			WHERE word = $1 AND dictionary_valid = false
			AND submission_id IN (
				SELECT sub.id FROM submissions sub
				JOIN players p ON p.id = sub.player_id
				WHERE p.session_id = $2 AND sub.round_no = $3
			)
		`
		for _, w := range words {
			display := boggle.Display(w)
			if _, err := tx.Exec(ctx, query, display, sessionID, sess.RoundNo); err != nil {
				return fmt.Errorf("approve word %q: %w", display, err)
			}
		}
		return nil
	})
}
