package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"iso-evidence-gateway/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	queueKey       = "jobs:receipts"
	inflightPrefix = "jobs:inflight:"

	// inflightTTL bounds how long a crashed worker can block re-enqueueing
	// its receipt.
	inflightTTL = 10 * time.Minute

	popTimeout = 1 * time.Second
)

// JobQueue implements ports.JobQueue on a Redis list. A per-receipt dedupe
// key enforces at most one queued-or-executing job per receipt; workers Ack
// to release it.
type JobQueue struct {
	client *goredis.Client
	log    zerolog.Logger
}

// NewJobQueue creates a Redis-backed job queue.
func NewJobQueue(client *goredis.Client, log zerolog.Logger) *JobQueue {
	return &JobQueue{client: client, log: log}
}

// Enqueue pushes the job unless its receipt already has one in flight.
func (q *JobQueue) Enqueue(ctx context.Context, job ports.ReceiptJob) error {
	acquired, err := q.client.SetNX(ctx, inflightPrefix+job.ReceiptID.String(), "1", inflightTTL).Result()
	if err != nil {
		return fmt.Errorf("redis job dedupe: %w", err)
	}
	if !acquired {
		q.log.Debug().Str("receipt_id", job.ReceiptID.String()).
			Msg("receipt job already in flight, enqueue skipped")
		return nil
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encoding receipt job: %w", err)
	}
	if err := q.client.LPush(ctx, queueKey, payload).Err(); err != nil {
		// Roll back the dedupe key so a retry is not locked out.
		q.client.Del(ctx, inflightPrefix+job.ReceiptID.String())
		return fmt.Errorf("redis job enqueue: %w", err)
	}
	return nil
}

// Dequeue blocks until a job is available or ctx is done.
func (q *JobQueue) Dequeue(ctx context.Context) (ports.ReceiptJob, error) {
	for {
		if err := ctx.Err(); err != nil {
			return ports.ReceiptJob{}, err
		}
		vals, err := q.client.BRPop(ctx, popTimeout, queueKey).Result()
		if err != nil {
			if errors.Is(err, goredis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				return ports.ReceiptJob{}, ctx.Err()
			}
			return ports.ReceiptJob{}, fmt.Errorf("redis job dequeue: %w", err)
		}
		var job ports.ReceiptJob
		if err := json.Unmarshal([]byte(vals[1]), &job); err != nil {
			q.log.Error().Err(err).Str("payload", vals[1]).Msg("dropping undecodable job")
			continue
		}
		return job, nil
	}
}

// Ack releases the receipt's dedupe key after a finished execution.
func (q *JobQueue) Ack(ctx context.Context, job ports.ReceiptJob) error {
	if err := q.client.Del(ctx, inflightPrefix+job.ReceiptID.String()).Err(); err != nil {
		return fmt.Errorf("redis job ack: %w", err)
	}
	return nil
}
