package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations executes all database migrations
func RunMigrations(db *pgxpool.Pool) error {
	migrations := []string{
		createSessionsTable,
		createPlayersTable,
		createSubmissionsTable,
		createWordsTable,
		createIndexes,
	}

	for i, migration := range migrations {
		if err := executeMigration(db, migration, i+1); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}

// executeMigration runs a single migration
func executeMigration(db *pgxpool.Pool, migration string, version int) error {
	_, err := db.Exec(context.Background(), migration)
	if err != nil {
		return fmt.Errorf("failed to execute migration %d: %w", version, err)
	}
	return nil
}

// TruncateSessions wipes the sessions table, cascading to players,
// submissions and words. The round state machine leans on wall-clock
// comparisons and in-memory worker state, neither of which survives a
// restart, so old sessions are discarded rather than resumed.
func TruncateSessions(db *pgxpool.Pool) error {
	_, err := db.Exec(context.Background(), `TRUNCATE sessions RESTART IDENTITY CASCADE;`)
	return err
}

// Database schema migrations
const createSessionsTable = `
CREATE TABLE IF NOT EXISTS sessions (
    id BIGSERIAL PRIMARY KEY,
    created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    dice_config VARCHAR(100) NOT NULL,
    dictionary VARCHAR(100),
    round_minutes INTEGER NOT NULL,
    use_mild_scoring BOOLEAN NOT NULL DEFAULT false,
    round_no INTEGER NOT NULL DEFAULT 0,
    round_start TIMESTAMP,
    round_scored BOOLEAN
);
`

const createPlayersTable = `
CREATE TABLE IF NOT EXISTS players (
    id BIGSERIAL PRIMARY KEY,
    session_id BIGINT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
    name VARCHAR(250) NOT NULL
);
`

const createSubmissionsTable = `
CREATE TABLE IF NOT EXISTS submissions (
    id BIGSERIAL PRIMARY KEY,
    player_id BIGINT NOT NULL REFERENCES players(id) ON DELETE CASCADE,
    round_no INTEGER NOT NULL,
    UNIQUE (player_id, round_no)
);
`

const createWordsTable = `
CREATE TABLE IF NOT EXISTS words (
    id BIGSERIAL PRIMARY KEY,
    submission_id BIGINT NOT NULL REFERENCES submissions(id) ON DELETE CASCADE,
    word VARCHAR(20) NOT NULL,
    score INTEGER,
    duplicate BOOLEAN,
    dictionary_valid BOOLEAN,
    longest_bonus BOOLEAN,
    path_array TEXT,
    UNIQUE (submission_id, word)
);
`

const createIndexes = `
CREATE INDEX IF NOT EXISTS idx_players_session ON players(session_id);
CREATE INDEX IF NOT EXISTS idx_submissions_player ON submissions(player_id);
CREATE INDEX IF NOT EXISTS idx_words_submission ON words(submission_id);
`
