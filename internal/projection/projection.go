// Package projection implements the state projection / read path (spec
// section 4.7): deriving the client-visible Status and payload from
// stored state and wall-clock time, and opportunistically triggering
// scoring.
package projection

import (
	"context"
	"time"

	"boggle-server/internal/apierr"
	"boggle-server/internal/boggle"
	"boggle-server/internal/models"
	"boggle-server/internal/queue"
	"boggle-server/internal/store"
)

// Projection computes read-path responses.
type Projection struct {
	store     *store.Store
	catalog   *boggle.Catalog
	dispatch  queue.Dispatcher
	boardRows int
	boardCols int
}

// New wires a Projection. dispatch is whatever should receive scoring
// jobs — a *queue.Queue in production, or the worker itself in
// synchronous/test mode.
func New(st *store.Store, catalog *boggle.Catalog, dispatch queue.Dispatcher, boardRows, boardCols int) *Projection {
	return &Projection{
		store:     st,
		catalog:   catalog,
		dispatch:  dispatch,
		boardRows: boardRows,
		boardCols: boardCols,
	}
}

// State computes the full state response for a session as seen through a
// given pepper (spec section 4.7 steps 1-6).
func (p *Projection) State(ctx context.Context, sessionID int64, pepper string, serverKey []byte) (*models.StateResponse, error) {
	sess, err := p.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	players, err := p.store.ListPlayers(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resp := &models.StateResponse{
		Created: models.FormatTimestamp(sess.Created),
		Players: make([]models.PlayerSummary, len(players)),
	}
	for i, pl := range players {
		resp.Players[i] = models.PlayerSummary{PlayerID: pl.ID, Name: pl.Name}
	}

	if sess.RoundStart == nil {
		resp.Status = models.StatusInitial
		return resp, nil
	}

	roundNo := sess.RoundNo
	roundStart := *sess.RoundStart
	roundEnd := sess.RoundEnd()
	now := time.Now().UTC()

	resp.RoundNo = &roundNo
	startStr := models.FormatTimestamp(roundStart)
	endStr := models.FormatTimestamp(roundEnd)
	resp.RoundStart = &startStr
	resp.RoundEnd = &endStr

	if now.Before(roundStart) {
		resp.Status = models.StatusPreStart
		return resp, nil
	}

	seed := boggle.RoundSeed(roundNo, pepper, serverKey)
	dice, err := p.catalog.Dice(sess.DiceConfig)
	if err != nil {
		return nil, apierr.NotFound("unknown dice config")
	}
	board, err := boggle.Roll(seed, dice, p.boardRows, p.boardCols)
	if err != nil {
		return nil, err
	}
	resp.Board = &models.BoardPayload{Rows: board.Rows, Cols: board.Cols, Dice: board.Faces}

	if sess.RoundScored != nil && *sess.RoundScored {
		resp.Status = models.StatusScored
		scores, err := p.assembleScores(ctx, sessionID, roundNo, sess.UseMildScoring)
		if err != nil {
			return nil, err
		}
		resp.Scores = scores
		return resp, nil
	}

	allSubmitted, err := p.store.AllSubmitted(ctx, sessionID, roundNo)
	if err != nil {
		return nil, err
	}

	if now.Before(roundEnd) && !allSubmitted {
		resp.Status = models.StatusPlaying
		return resp, nil
	}

	// past round end, or everyone already submitted: scoring is owed.
	// Dispatch if nobody has claimed the round yet.
	if sess.RoundScored == nil {
		job := queue.Job{
			SessionID:  sessionID,
			RoundNo:    roundNo,
			Seed:       seed,
			DiceConfig: sess.DiceConfig,
			BoardRows:  p.boardRows,
			BoardCols:  p.boardCols,
		}
		if err := p.dispatch.Dispatch(ctx, job); err != nil {
			return nil, err
		}
	}

	// re-read: synchronous dispatch may already have scored the round
	sess, err = p.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.RoundScored != nil && *sess.RoundScored {
		resp.Status = models.StatusScored
		scores, err := p.assembleScores(ctx, sessionID, roundNo, sess.UseMildScoring)
		if err != nil {
			return nil, err
		}
		resp.Scores = scores
		return resp, nil
	}

	resp.Status = models.StatusScoring
	return resp, nil
}

// Stats is a read-only, invitation-token-gated summary (spec section 6):
// current round and, once scored, the same scores payload as State.
func (p *Projection) Stats(ctx context.Context, sessionID int64) (*models.StatsResponse, error) {
	sess, err := p.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := &models.StatsResponse{RoundNo: sess.RoundNo}
	if sess.RoundScored != nil && *sess.RoundScored {
		out.Status = models.StatusScored
		scores, err := p.assembleScores(ctx, sessionID, sess.RoundNo, sess.UseMildScoring)
		if err != nil {
			return nil, err
		}
		out.Scores = scores
	} else if sess.RoundStart == nil {
		out.Status = models.StatusInitial
	} else if time.Now().UTC().Before(*sess.RoundStart) {
		out.Status = models.StatusPreStart
	} else if time.Now().UTC().Before(sess.RoundEnd()) {
		out.Status = models.StatusPlaying
	} else {
		out.Status = models.StatusScoring
	}
	return out, nil
}

func (p *Projection) assembleScores(ctx context.Context, sessionID int64, roundNo int, mild bool) ([]models.PlayerScorePayload, error) {
	rows, err := p.store.LoadScoredWords(ctx, sessionID, roundNo)
	if err != nil {
		return nil, err
	}

	variant := boggle.VariantBasic
	if mild {
		variant = boggle.VariantMild
	}

	order := []int64{}
	byPlayer := map[int64]*models.PlayerScorePayload{}
	for _, row := range rows {
		payload, ok := byPlayer[row.PlayerID]
		if !ok {
			payload = &models.PlayerScorePayload{PlayerID: row.PlayerID, Name: row.PlayerName}
			byPlayer[row.PlayerID] = payload
			order = append(order, row.PlayerID)
		}

		effective := 0
		if row.Score != nil {
			dup := row.Duplicate != nil && *row.Duplicate
			valid := row.DictionaryValid == nil || *row.DictionaryValid
			bonus := row.LongestBonus != nil && *row.LongestBonus
			effective = boggle.EffectiveScore(*row.Score, dup, valid, bonus, variant)
		}

		var path []models.Cell
		hasPath := false
		if cells, ok := row.Path(); ok {
			hasPath = true
			for _, c := range cells {
				path = append(path, models.Cell{Row: c.Row, Col: c.Col})
			}
		}

		payload.Words = append(payload.Words, models.ScoredWordPayload{
			Word:            row.Word,
			Score:           effective,
			Path:            path,
			Duplicate:       row.Duplicate != nil && *row.Duplicate,
			DictionaryValid: row.DictionaryValid == nil || *row.DictionaryValid,
			LongestBonus:    row.LongestBonus != nil && *row.LongestBonus,
			InGrid:          hasPath,
		})
	}

	out := make([]models.PlayerScorePayload, 0, len(order))
	for _, id := range order {
		out = append(out, *byPlayer[id])
	}
	return out, nil
}
