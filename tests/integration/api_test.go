package integration

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"iso-evidence-gateway/config"
	httpAdapter "iso-evidence-gateway/internal/adapter/http"
	"iso-evidence-gateway/internal/adapter/storage/artifacts"
	redisStorage "iso-evidence-gateway/internal/adapter/storage/redis"
	"iso-evidence-gateway/internal/core/domain"
	"iso-evidence-gateway/internal/core/ports"
	"iso-evidence-gateway/internal/iso"
	"iso-evidence-gateway/internal/service"
	"iso-evidence-gateway/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp runs the full stack short of postgres and real chains: the actual
// HTTP layer, services, pipeline worker and Redis (miniredis) queue/bus, with
// in-memory repositories and an in-process fake chain.
type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
	chain  *fakeChain
	queue  ports.JobQueue
	stop   context.CancelFunc
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	cfg := &config.Config{
		Server: config.ServerConfig{CallbackTO: 2 * time.Second},
		JWT: config.JWTConfig{
			Secret: "integration-test-secret",
			Expiry: time.Hour,
			Issuer: "iso-evidence-gateway",
		},
		Signing:  config.SigningConfig{KeysDir: t.TempDir()},
		Evidence: config.EvidenceConfig{ArtifactsDir: t.TempDir()},
		Anchor: config.AnchorConfig{
			FallbackChain:    "flare",
			FallbackContract: "0x0690d8cFb1897c12B2C0b34660edBDE4E20ff4d8",
			FallbackRPCURL:   "http://fake-rpc.invalid",
			Attempts:         1,
			ReceiptTimeout:   time.Second,
		},
	}
	log := logger.NewWithWriter("error", testWriter{t})

	receiptRepo := newInMemoryReceiptRepo()
	anchorRepo := newInMemoryAnchorRepo()
	projectRepo := newInMemoryProjectRepo()
	artifactRepo := newInMemoryArtifactRepo()
	chainBackend := newFakeChain()

	keyring := service.NewKeyring(cfg.Signing, log)
	store := artifacts.NewLocalStore(cfg.Evidence.ArtifactsDir)
	httpClient := &http.Client{Timeout: 5 * time.Second}
	queue := redisStorage.NewJobQueue(rdb, log)
	bus := redisStorage.NewEventBus(rdb, log)

	pipeline := service.NewPipelineService(service.PipelineDeps{
		Receipts:   receiptRepo,
		Anchors:    anchorRepo,
		Projects:   projectRepo,
		Artifacts:  artifactRepo,
		Compliance: service.NewComplianceService(httpClient, log),
		FX:         service.NewFXService("", httpClient, log),
		Messages:   iso.NewGenerator("Integration Test Org"),
		Bundles:    service.NewBundleService(keyring, store, log),
		Creds:      service.NewCredentialService(keyring),
		Store:      store,
		Uploader:   artifacts.NoopUploader{},
		Factory:    chainBackend,
		Bus:        bus,
		HTTPClient: httpClient,
	}, cfg, log)

	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	confirmSvc := service.NewConfirmService(receiptRepo, anchorRepo, projectRepo, chainBackend, bus, cfg, log)
	verifySvc := service.NewVerifyService(httpClient, nil, chainBackend, service.DefaultChains(cfg.Anchor), log)

	router := httpAdapter.SetupRouter(httpAdapter.RouterDeps{
		Receipts: receiptRepo,
		Anchors:  anchorRepo,
		Projects: projectRepo,
		Queue:    queue,
		Bus:      bus,
		Confirm:  confirmSvc,
		Verifier: verifySvc,
		Tokens:   tokenSvc,
		Logger:   log,
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for {
			job, err := queue.Dequeue(ctx)
			if err != nil {
				return
			}
			_ = pipeline.Process(ctx, job)
			_ = queue.Ack(context.Background(), job)
		}
	}()

	app := &testApp{
		server: httptest.NewServer(router),
		redis:  mr,
		chain:  chainBackend,
		queue:  queue,
		stop:   cancel,
	}
	t.Cleanup(app.close)
	return app
}

func (a *testApp) close() {
	a.stop()
	a.server.Close()
	a.redis.Close()
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(bytes.TrimSpace(p)))
	return len(p), nil
}

// --- HTTP helpers ---

func (a *testApp) post(t *testing.T, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, a.server.URL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp, decodeEnvelope(t, resp)
}

func (a *testApp) get(t *testing.T, path, token string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, a.server.URL+path, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp, decodeEnvelope(t, resp)
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var envelope map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	if data, ok := envelope["data"].(map[string]any); ok {
		return data
	}
	return envelope
}

func (a *testApp) createProject(t *testing.T, body map[string]any) (projectID, token string) {
	t.Helper()
	resp, data := a.post(t, "/v1/projects", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return data["project_id"].(string), data["token"].(string)
}

func receiptBody(reference string) map[string]any {
	return map[string]any{
		"reference":       reference,
		"tip_tx_hash":     "0xtip-" + reference,
		"chain":           "flare",
		"amount":          "2.25",
		"currency":        "FLR",
		"sender_wallet":   "0x1111111111111111111111111111111111111111",
		"receiver_wallet": "0x2222222222222222222222222222222222222222",
	}
}

// waitForStatus polls the receipt until it reaches want or the deadline hits.
func (a *testApp) waitForStatus(t *testing.T, token, receiptID, want string) map[string]any {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	var last map[string]any
	for time.Now().Before(deadline) {
		resp, data := a.get(t, "/v1/receipts/"+receiptID, token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		last = data
		if data["status"] == want {
			return data
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("receipt %s never reached %q, last: %v", receiptID, want, last)
	return nil
}

// --- Flows ---

func TestPlatformFlow_CreateToAnchoredToVerified(t *testing.T) {
	app := newTestApp(t)

	_, token := app.createProject(t, map[string]any{"name": "platform-shop"})

	resp, data := app.post(t, "/v1/receipts", token, receiptBody("plat-1"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "pending", data["status"])
	receiptID := data["id"].(string)

	final := app.waitForStatus(t, token, receiptID, "anchored")
	bundleHash := final["bundle_hash"].(string)
	assert.Regexp(t, "^0x[0-9a-f]{64}$", bundleHash)
	assert.Contains(t, final["anchor_txid"], "0xfaketx")
	assert.NotEmpty(t, final["anchored_at"])

	anchors, ok := final["chain_anchors"].([]any)
	require.True(t, ok, "expected chain_anchors in response")
	require.Len(t, anchors, 1)
	assert.Equal(t, "flare", anchors[0].(map[string]any)["chain"])

	// The fake chain must hold the bundle hash under the reported txid.
	proof, err := app.chain.ForChain(domain.ChainConfig{Name: "flare"}, "")
	require.NoError(t, err)
	txProof, err := proof.VerifyTx(context.Background(), final["anchor_txid"].(string), bundleHash)
	require.NoError(t, err)
	assert.True(t, txProof.Matches)

	// Verify the stored bundle end to end via the public endpoint.
	bundlePath := final["bundle_url"].(string)
	require.NotEmpty(t, bundlePath)
	resp, verdict := app.post(t, "/v1/verify", "", map[string]any{"locator": bundlePath})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, verdict["valid"], "verify errors: %v", verdict["errors"])
	assert.Equal(t, bundleHash, verdict["bundle_hash"])
	assert.Equal(t, true, verdict["matches_onchain"], "the anchored hash must be found on chain")
	assert.Equal(t, final["anchor_txid"], verdict["anchor_txid"])
}

func TestTenantFlow_AwaitingAnchorThenConfirm(t *testing.T) {
	app := newTestApp(t)

	_, token := app.createProject(t, map[string]any{
		"name": "tenant-shop",
		"anchoring": map[string]any{
			"execution_mode": "tenant",
			"chains": []map[string]any{
				{"name": "flare", "contract": "0xTenantContract"},
			},
		},
	})

	resp, data := app.post(t, "/v1/receipts", token, receiptBody("ten-1"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	receiptID := data["id"].(string)

	ready := app.waitForStatus(t, token, receiptID, "awaiting_anchor")
	bundleHash := ready["bundle_hash"].(string)
	require.NotEmpty(t, bundleHash)
	assert.Nil(t, ready["anchor_txid"])

	// A transaction that never anchored the hash is rejected.
	resp, _ = app.post(t, "/v1/iso/confirm-anchor", token, map[string]any{
		"receipt_id": receiptID,
		"txid":       "0xbogus",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// The tenant anchors with its own key, then reports the transaction.
	txid := app.chain.submit(bundleHash)
	resp, confirm := app.post(t, "/v1/iso/confirm-anchor", token, map[string]any{
		"receipt_id": receiptID,
		"txid":       txid,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "anchored", confirm["status"])
	assert.Equal(t, txid, confirm["anchor_txid"])

	// Re-confirming is idempotent.
	resp, confirm = app.post(t, "/v1/iso/confirm-anchor", token, map[string]any{
		"receipt_id": receiptID,
		"txid":       txid,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "anchored", confirm["status"])
}

func TestEventStream_DeliversConfirmation(t *testing.T) {
	app := newTestApp(t)

	_, token := app.createProject(t, map[string]any{
		"name": "stream-shop",
		"anchoring": map[string]any{
			"execution_mode": "tenant",
			"chains": []map[string]any{
				{"name": "flare", "contract": "0xTenantContract"},
			},
		},
	})

	resp, data := app.post(t, "/v1/receipts", token, receiptBody("sse-1"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	receiptID := data["id"].(string)
	ready := app.waitForStatus(t, token, receiptID, "awaiting_anchor")

	// Attach the stream first; once headers arrive the subscription is live.
	streamCtx, cancelStream := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelStream()
	req, err := http.NewRequestWithContext(streamCtx, http.MethodGet, app.server.URL+"/v1/receipts/"+receiptID+"/events", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	stream, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer stream.Body.Close()
	require.Equal(t, http.StatusOK, stream.StatusCode)
	require.Contains(t, stream.Header.Get("Content-Type"), "text/event-stream")

	txid := app.chain.submit(ready["bundle_hash"].(string))
	resp, _ = app.post(t, "/v1/iso/confirm-anchor", token, map[string]any{
		"receipt_id": receiptID,
		"txid":       txid,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	reader := bufio.NewReader(stream.Body)
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err, "stream ended before the anchored event arrived")
		if strings.Contains(line, `"status":"anchored"`) {
			assert.Contains(t, line, txid)
			return
		}
	}
}

func TestReceiptIsolation_AcrossProjects(t *testing.T) {
	app := newTestApp(t)

	_, tokenA := app.createProject(t, map[string]any{"name": "project-a"})
	_, tokenB := app.createProject(t, map[string]any{"name": "project-b"})

	resp, data := app.post(t, "/v1/receipts", tokenA, receiptBody("iso-1"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	receiptID := data["id"].(string)

	resp, _ = app.get(t, "/v1/receipts/"+receiptID, tokenB)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = app.get(t, "/v1/receipts/"+receiptID, tokenA)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Project B's list must not contain project A's receipt.
	resp, list := app.get(t, "/v1/receipts", tokenB)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), list["total"])
}

func TestDuplicateReceiptRejected(t *testing.T) {
	app := newTestApp(t)

	_, token := app.createProject(t, map[string]any{"name": "dup-shop"})

	resp, _ := app.post(t, "/v1/receipts", token, receiptBody("dup-1"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = app.post(t, "/v1/receipts", token, receiptBody("dup-1"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Same chain tx under a fresh reference is also a duplicate.
	body := receiptBody("dup-1")
	body["reference"] = "dup-2"
	resp, _ = app.post(t, "/v1/receipts", token, body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
