// Package queue is the external message-queue transport for asynchronous
// scoring (spec section 9: "rewrite as a dispatch to a job queue...").
// Redis is the transport because it's already the teacher's second
// datastore; the job contract itself — the only thing spec.md actually
// specifies — is the Job type below.
package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Job is the scoring job payload from spec section 4.9/9:
// (session_id, round_no, seed, dice_config). JobID is a correlation id
// stamped at enqueue time so worker logs can be traced end to end —
// useful when diagnosing the stuck-SCORING failure mode from spec
// section 9 (O1).
type Job struct {
	JobID      string `json:"job_id"`
	SessionID  int64  `json:"session_id"`
	RoundNo    int    `json:"round_no"`
	Seed       []byte `json:"seed"`
	DiceConfig string `json:"dice_config"`
	BoardRows  int    `json:"board_rows"`
	BoardCols  int    `json:"board_cols"`
}

// Dispatcher is anything that can accept a scoring job: the real Redis
// queue in production, or the scoring worker itself when the caller wants
// scoring to happen inline (test mode, spec section 4.7 step 5).
type Dispatcher interface {
	Dispatch(ctx context.Context, job Job) error
}

// Queue is a Redis-list-backed FIFO job queue.
type Queue struct {
	client  *redis.Client
	listKey string
}

// New wraps a Redis client. listKey is the list used as the queue.
func New(client *redis.Client, listKey string) *Queue {
	if listKey == "" {
		listKey = "boggle:scoring"
	}
	return &Queue{client: client, listKey: listKey}
}

// Dispatch stamps a job id (if unset) and pushes the job onto the queue.
func (q *Queue) Dispatch(ctx context.Context, job Job) error {
	if job.JobID == "" {
		job.JobID = uuid.NewString()
	}
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}
	if err := q.client.RPush(ctx, q.listKey, payload).Err(); err != nil {
		return fmt.Errorf("enqueue job: %w", err)
	}
	return nil
}

// Dequeue blocks until a job is available or the context is done.
func (q *Queue) Dequeue(ctx context.Context) (Job, error) {
	res, err := q.client.BLPop(ctx, 0, q.listKey).Result()
	if err != nil {
		return Job{}, err
	}
	if len(res) != 2 {
		return Job{}, fmt.Errorf("unexpected BLPOP reply: %v", res)
	}
	var job Job
	if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
		return Job{}, fmt.Errorf("unmarshal job: %w", err)
	}
	return job, nil
}
