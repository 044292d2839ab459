package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boggle-server/internal/apierr"
	"boggle-server/internal/boggle"
	"boggle-server/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const maxWordChars = 20

// CreateSession inserts a new session row. round_no starts at 0 and
// round_start stays unset until the first advance (spec section 3).
func (s *Store) CreateSession(ctx context.Context, diceConfig string, dictionary *string, roundMinutes int, useMildScoring bool) (*models.Session, error) {
	const query = `
		INSERT INTO sessions (dice_config, dictionary, round_minutes, use_mild_scoring)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created, round_no
	`
	sess := &models.Session{
		DiceConfig:     diceConfig,
		Dictionary:     dictionary,
		RoundMinutes:   roundMinutes,
		UseMildScoring: useMildScoring,
	}
	err := s.db.QueryRow(ctx, query, diceConfig, dictionary, roundMinutes, useMildScoring).
		Scan(&sess.ID, &sess.Created, &sess.RoundNo)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

const selectSessionCols = `id, created, dice_config, dictionary, round_minutes, use_mild_scoring, round_no, round_start, round_scored`

func scanSession(row pgx.Row) (*models.Session, error) {
	sess := &models.Session{}
	err := row.Scan(
		&sess.ID, &sess.Created, &sess.DiceConfig, &sess.Dictionary,
		&sess.RoundMinutes, &sess.UseMildScoring, &sess.RoundNo,
		&sess.RoundStart, &sess.RoundScored,
	)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// GetSession loads a session without taking a lock, for the read path.
func (s *Store) GetSession(ctx context.Context, sessionID int64) (*models.Session, error) {
	row := s.db.QueryRow(ctx, `SELECT `+selectSessionCols+` FROM sessions WHERE id = $1`, sessionID)
	sess, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apierr.Gone("session does not exist")
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

// ListPlayers returns every player belonging to a session, in join order.
func (s *Store) ListPlayers(ctx context.Context, sessionID int64) ([]models.Player, error) {
	rows, err := s.db.Query(ctx, `SELECT id, session_id, name FROM players WHERE session_id = $1 ORDER BY id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.SessionID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// GetPlayer loads a single player by id.
func (s *Store) GetPlayer(ctx context.Context, playerID int64) (*models.Player, error) {
	row := s.db.QueryRow(ctx, `SELECT id, session_id, name FROM players WHERE id = $1`, playerID)
	var p models.Player
	err := row.Scan(&p.ID, &p.SessionID, &p.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apierr.Gone("player has left")
	}
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}
	return &p, nil
}

// withSessionLock runs fn inside a transaction holding an exclusive row
// lock on the session. fn receives the locked session row (nil if
// allowMissing and the row doesn't exist). The transaction commits if fn
// returns nil, rolls back otherwise.
func (s *Store) withSessionLock(ctx context.Context, sessionID int64, allowMissing bool, fn func(tx pgx.Tx, sess *models.Session) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `SELECT `+selectSessionCols+` FROM sessions WHERE id = $1 FOR UPDATE`, sessionID)
	sess, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) {
		if allowMissing {
			if ferr := fn(tx, nil); ferr != nil {
				return ferr
			}
			return tx.Commit(ctx)
		}
		return apierr.Gone("session does not exist")
	}
	if err != nil {
		return fmt.Errorf("lock session: %w", err)
	}

	if err := fn(tx, sess); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// AdvanceRound implements spec section 4.6 "Advance round". Preconditions:
// session exists, at least one player exists, round_scored != false.
func (s *Store) AdvanceRound(ctx context.Context, sessionID int64, countdown time.Duration) (*models.Session, error) {
	var result *models.Session
	err := s.withSessionLock(ctx, sessionID, false, func(tx pgx.Tx, sess *models.Session) error {
		if sess.RoundScored != nil && !*sess.RoundScored {
			return apierr.StateViolation("round cannot be advanced mid-scoring")
		}

		var playerCount int
		if err := tx.QueryRow(ctx, `SELECT count(*) FROM players WHERE session_id = $1`, sessionID).Scan(&playerCount); err != nil {
			return fmt.Errorf("count players: %w", err)
		}
		if playerCount == 0 {
			return apierr.StateViolation("cannot advance a round with no players")
		}

		newRoundStart := time.Now().UTC().Add(countdown)
		newRoundNo := sess.RoundNo + 1
		_, err := tx.Exec(ctx, `
			UPDATE sessions SET round_scored = NULL, round_start = $1, round_no = $2
			WHERE id = $3
		`, newRoundStart, newRoundNo, sessionID)
		if err != nil {
			return fmt.Errorf("advance round: %w", err)
		}

		sess.RoundScored = nil
		sess.RoundStart = &newRoundStart
		sess.RoundNo = newRoundNo
		result = sess
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Join implements spec section 4.6 "Join": insert a player, permitted in
// any state, under the session row lock like the other transitions.
func (s *Store) Join(ctx context.Context, sessionID int64, name string) (*models.Player, error) {
	// taking the lock first means a join against a destroyed session
	// surfaces 410 rather than a dangling foreign key error
	const query = `INSERT INTO players (session_id, name) VALUES ($1, $2) RETURNING id`
	p := &models.Player{SessionID: sessionID, Name: name}
	err := s.withSessionLock(ctx, sessionID, false, func(tx pgx.Tx, sess *models.Session) error {
		if err := tx.QueryRow(ctx, query, sessionID, name).Scan(&p.ID); err != nil {
			return fmt.Errorf("join: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Leave implements spec section 4.6 "Leave": delete a player, disallowed
// mid-scoring.
func (s *Store) Leave(ctx context.Context, sessionID, playerID int64) error {
	return s.withSessionLock(ctx, sessionID, false, func(tx pgx.Tx, sess *models.Session) error {
		if sess.RoundScored != nil && !*sess.RoundScored {
			return apierr.StateViolation("cannot leave mid-scoring")
		}
		tag, err := tx.Exec(ctx, `DELETE FROM players WHERE id = $1 AND session_id = $2`, playerID, sessionID)
		if err != nil {
			return fmt.Errorf("leave: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apierr.Gone("player has already left")
		}
		return nil
	})
}

// Destroy implements spec section 4.6 "Destroy": delete the session
// (cascading to players/submissions/words).
func (s *Store) Destroy(ctx context.Context, sessionID int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierr.Gone("session does not exist")
	}
	return nil
}

// Submit implements spec section 4.6 "Submit". Preconditions: session and
// player exist, round started, round_scored unset, now within
// round_end+grace, supplied round equals current round.
func (s *Store) Submit(ctx context.Context, sessionID, playerID int64, roundNoSupplied int, words []string, gracePeriod time.Duration, now time.Time) error {
	return s.withSessionLock(ctx, sessionID, false, func(tx pgx.Tx, sess *models.Session) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM players WHERE id = $1 AND session_id = $2)`, playerID, sessionID).Scan(&exists); err != nil {
			return fmt.Errorf("check player: %w", err)
		}
		if !exists {
			return apierr.Gone("player has left")
		}

		if sess.RoundStart == nil {
			return apierr.StateViolation("round not started")
		}
		deadline := sess.RoundStart.Add(time.Duration(sess.RoundMinutes)*time.Minute + gracePeriod)
		if sess.RoundScored != nil || now.After(deadline) {
			return apierr.StateViolation("round already ended")
		}
		if roundNoSupplied != sess.RoundNo {
			return apierr.StateViolation(fmt.Sprintf("wrong round %d, currently round %d", roundNoSupplied, sess.RoundNo))
		}

		var submissionID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO submissions (player_id, round_no) VALUES ($1, $2) RETURNING id`,
			playerID, sess.RoundNo,
		).Scan(&submissionID)
		if isUniqueViolation(err) {
			return apierr.StateViolation("you can only submit once per round")
		}
		if err != nil {
			return fmt.Errorf("insert submission: %w", err)
		}

		// duplicates in the player's own word list are silently
		// collapsed rather than rejected (spec section 4.6 Submit
		// effect)
		seen := map[string]bool{}
		for _, raw := range words {
			word := boggle.Display(raw)
			if len(word) > maxWordChars {
				word = word[:maxWordChars]
			}
			if word == "" || seen[word] {
				continue
			}
			seen[word] = true
			_, err := tx.Exec(ctx, `INSERT INTO words (submission_id, word) VALUES ($1, $2)`, submissionID, word)
			if err != nil {
				return fmt.Errorf("insert word: %w", err)
			}
		}
		return nil
	})
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
