// Package worker implements the scoring worker (spec section 4.8): the
// background task that loads a round's submissions, invokes the scorer,
// and writes results atomically, with the session row lock providing
// idempotency across concurrent claimants.
package worker

import (
	"context"
	"log"

	"boggle-server/internal/boggle"
	"boggle-server/internal/queue"
	"boggle-server/internal/store"
)

// Worker scores rounds. It also satisfies queue.Dispatcher, so the
// projection's read path can invoke it directly in synchronous/test mode
// instead of going through the queue.
type Worker struct {
	store   *store.Store
	catalog *boggle.Catalog
}

// New builds a Worker against a store and catalog.
func New(st *store.Store, catalog *boggle.Catalog) *Worker {
	return &Worker{store: st, catalog: catalog}
}

// Dispatch runs the job inline and logs (but does not return) errors —
// matching the "synchronously in test mode" contract from spec section
// 4.7, where the caller just wants the session's round_scored flag to
// reflect reality by the time the HTTP response is built.
func (w *Worker) Dispatch(ctx context.Context, job queue.Job) error {
	if err := w.Score(ctx, job); err != nil {
		log.Printf("worker: inline job (session %d round %d) failed: %v", job.SessionID, job.RoundNo, err)
	}
	return nil
}

// Run pulls jobs from q until ctx is cancelled, scoring each in turn.
// Safe to run from multiple goroutines/processes concurrently — that's
// the whole point of the row-lock-based claim in Score.
func (w *Worker) Run(ctx context.Context, q *queue.Queue) {
	for {
		job, err := q.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("worker: dequeue failed: %v", err)
			continue
		}
		if err := w.Score(ctx, job); err != nil {
			log.Printf("worker: job %s (session %d round %d) failed: %v", job.JobID, job.SessionID, job.RoundNo, err)
		}
	}
}

// Score implements spec section 4.8's procedure.
func (w *Worker) Score(ctx context.Context, job queue.Job) error {
	// step 1+2: claim the round under the session row lock
	claimed, err := w.store.SetRoundScored(ctx, job.SessionID, job.RoundNo, false)
	if err != nil {
		return err
	}
	if !claimed {
		// either already scored, already in progress, or the
		// session has moved to a later round — idempotent no-op
		return nil
	}

	// step 3: load submissions
	wordsByPlayer, err := w.store.LoadRoundWords(ctx, job.SessionID, job.RoundNo)
	if err != nil {
		return err
	}

	// step 4: nothing submitted, nothing to score
	if len(wordsByPlayer) == 0 {
		return w.store.CommitScored(ctx, job.SessionID, job.RoundNo)
	}

	// step 5: regenerate the board, load the dictionary if named
	dice, err := w.catalog.Dice(job.DiceConfig)
	if err != nil {
		return err
	}
	board, err := boggle.Roll(job.Seed, dice, job.BoardRows, job.BoardCols)
	if err != nil {
		return err
	}

	sess, err := w.store.GetSession(ctx, job.SessionID)
	if err != nil {
		// session was destroyed mid-scoring: nothing left to commit
		// results to, exit quietly (spec section 4.8 step 7)
		return nil
	}

	var dictionary map[string]struct{}
	if sess.Dictionary != nil {
		dictionary, err = w.catalog.Dictionary(*sess.Dictionary)
		if err != nil {
			// logged inside Catalog.Dictionary; proceed ungated
			dictionary = nil
		}
	}

	variant := boggle.VariantBasic
	if sess.UseMildScoring {
		variant = boggle.VariantMild
	}

	// step 6: score
	scored := boggle.ScoreRound(wordsByPlayer, board, dictionary, variant)

	// step 7: write results and commit
	if err := w.store.WriteScores(ctx, scored); err != nil {
		return err
	}
	return w.store.CommitScored(ctx, job.SessionID, job.RoundNo)
}
