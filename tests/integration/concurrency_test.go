package integration

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	redisStorage "iso-evidence-gateway/internal/adapter/storage/redis"
	"iso-evidence-gateway/internal/core/ports"
	"iso-evidence-gateway/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentDuplicateReceipts fires the same receipt payload from many
// goroutines. Exactly one creation may win; every other attempt must be
// rejected, and exactly one receipt may exist afterwards.
func TestConcurrentDuplicateReceipts(t *testing.T) {
	app := newTestApp(t)
	_, token := app.createProject(t, map[string]any{"name": "race-shop"})

	const attempts = 25
	var created int64
	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			resp, _ := app.post(t, "/v1/receipts", token, receiptBody("race-1"))
			if resp.StatusCode == http.StatusCreated {
				atomic.AddInt64(&created, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), created, "exactly one concurrent create may succeed")

	resp, list := app.get(t, "/v1/receipts?reference=race-1", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), list["total"])
}

// TestJobQueueDeduplication proves the queue's at-most-one-in-flight
// guarantee per receipt: concurrent enqueues of the same receipt yield a
// single queued job until the worker acks it.
func TestJobQueueDeduplication(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	log := logger.NewWithWriter("error", testWriter{t})
	queue := redisStorage.NewJobQueue(rdb, log)
	ctx := context.Background()
	job := ports.ReceiptJob{ReceiptID: uuid.New()}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, queue.Enqueue(ctx, job))
		}()
	}
	wg.Wait()

	queued, err := rdb.LLen(ctx, "jobs:receipts").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), queued)

	// Dequeue does not release the slot; Ack does.
	got, err := queue.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, job.ReceiptID, got.ReceiptID)

	require.NoError(t, queue.Enqueue(ctx, job))
	queued, err = rdb.LLen(ctx, "jobs:receipts").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), queued, "in-flight receipt must not be re-enqueued")

	require.NoError(t, queue.Ack(ctx, job))
	require.NoError(t, queue.Enqueue(ctx, job))
	queued, err = rdb.LLen(ctx, "jobs:receipts").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), queued)
}

// TestConcurrentAnchorConfirmations hits confirm-anchor with the same valid
// transaction from many goroutines. Every call must land on a consistent
// receipt: one anchor row, status anchored, one anchor txid.
func TestConcurrentAnchorConfirmations(t *testing.T) {
	app := newTestApp(t)

	_, token := app.createProject(t, map[string]any{
		"name": "race-tenant",
		"anchoring": map[string]any{
			"execution_mode": "tenant",
			"chains": []map[string]any{
				{"name": "flare", "contract": "0xTenantContract"},
			},
		},
	})

	resp, data := app.post(t, "/v1/receipts", token, receiptBody("race-confirm"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	receiptID := data["id"].(string)

	ready := app.waitForStatus(t, token, receiptID, "awaiting_anchor")
	txid := app.chain.submit(ready["bundle_hash"].(string))

	const confirmers = 10
	var wg sync.WaitGroup
	var okCount int64
	wg.Add(confirmers)
	for i := 0; i < confirmers; i++ {
		go func() {
			defer wg.Done()
			resp, _ := app.post(t, "/v1/iso/confirm-anchor", token, map[string]any{
				"receipt_id": receiptID,
				"txid":       txid,
			})
			if resp.StatusCode == http.StatusOK {
				atomic.AddInt64(&okCount, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(confirmers), okCount, "confirmations are idempotent")

	final := app.waitForStatus(t, token, receiptID, "anchored")
	assert.Equal(t, txid, final["anchor_txid"])
	anchors, ok := final["chain_anchors"].([]any)
	require.True(t, ok)
	assert.Len(t, anchors, 1)
}

// TestWorkerProcessesBacklog enqueues a burst of receipts and expects the
// single worker to drain them all.
func TestWorkerProcessesBacklog(t *testing.T) {
	app := newTestApp(t)
	_, token := app.createProject(t, map[string]any{"name": "backlog-shop"})

	const n = 10
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		resp, data := app.post(t, "/v1/receipts", token, receiptBody("bulk-"+time.Now().Format("150405.000")+"-"+uuid.NewString()))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		ids = append(ids, data["id"].(string))
	}

	for _, id := range ids {
		app.waitForStatus(t, token, id, "anchored")
	}
}
