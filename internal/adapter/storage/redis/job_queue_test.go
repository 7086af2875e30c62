package redis

import (
	"context"
	"testing"
	"time"

	"iso-evidence-gateway/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(t *testing.T) (*JobQueue, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewJobQueue(client, zerolog.Nop()), mr
}

func TestJobQueue_RoundTrip(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	job := ports.ReceiptJob{
		ReceiptID:   uuid.New(),
		CallbackURL: "https://example.com/cb",
		IsRefund:    true,
		ReasonCode:  "CUST",
	}
	require.NoError(t, q.Enqueue(ctx, job))

	got, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, job, got)
}

func TestJobQueue_DedupesInflightReceipt(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	job := ports.ReceiptJob{ReceiptID: uuid.New()}
	require.NoError(t, q.Enqueue(ctx, job))
	require.NoError(t, q.Enqueue(ctx, job), "duplicate enqueue is a silent no-op")

	_, err := q.Dequeue(ctx)
	require.NoError(t, err)

	// Still deduped while executing; released by Ack.
	require.NoError(t, q.Enqueue(ctx, job))
	dequeCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	_, err = q.Dequeue(dequeCtx)
	assert.Error(t, err, "the second enqueue must not have queued anything")

	require.NoError(t, q.Ack(ctx, job))
	require.NoError(t, q.Enqueue(ctx, job))
	got, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, job.ReceiptID, got.ReceiptID)
}

func TestJobQueue_DistinctReceiptsIndependent(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	a := ports.ReceiptJob{ReceiptID: uuid.New()}
	b := ports.ReceiptJob{ReceiptID: uuid.New()}
	require.NoError(t, q.Enqueue(ctx, a))
	require.NoError(t, q.Enqueue(ctx, b))

	first, err := q.Dequeue(ctx)
	require.NoError(t, err)
	second, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]uuid.UUID{a.ReceiptID, b.ReceiptID},
		[]uuid.UUID{first.ReceiptID, second.ReceiptID})
}

func TestJobQueue_DequeueHonorsContext(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := q.Dequeue(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestJobQueue_SkipsUndecodablePayload(t *testing.T) {
	q, mr := newTestQueue(t)
	ctx := context.Background()

	mr.Lpush(queueKey, "not json")
	job := ports.ReceiptJob{ReceiptID: uuid.New()}
	require.NoError(t, q.Enqueue(ctx, job))

	got, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, job.ReceiptID, got.ReceiptID, "garbage entries are dropped, not returned")
}
