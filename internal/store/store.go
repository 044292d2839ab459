// Package store implements the per-session finite-state machine (spec
// section 4.6) on top of a Postgres connection pool. Every transition
// that mutates a session row takes an exclusive row lock
// (SELECT ... FOR UPDATE) inside one transaction, the way
// BoggleSession.for_update does in the source this was distilled from and
// the way the teacher repo scopes its service-layer queries to a single
// pgxpool call per operation.
package store

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the session store and state machine.
type Store struct {
	db *pgxpool.Pool
}

// New wraps a connection pool.
func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}
