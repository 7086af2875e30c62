package integration

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"iso-evidence-gateway/internal/core/domain"
	"iso-evidence-gateway/internal/core/ports"

	"github.com/google/uuid"
)

// In-memory repository implementations backing the integration stack. They
// mirror the postgres repos' contracts: lookups return (nil, nil) on a miss
// and uniqueness violations surface as errors.

// --- Receipts ---

type inMemoryReceiptRepo struct {
	mu       sync.RWMutex
	receipts map[uuid.UUID]*domain.Receipt
}

func newInMemoryReceiptRepo() *inMemoryReceiptRepo {
	return &inMemoryReceiptRepo{receipts: make(map[uuid.UUID]*domain.Receipt)}
}

func (r *inMemoryReceiptRepo) Create(ctx context.Context, receipt *domain.Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.receipts {
		if existing.Reference == receipt.Reference {
			return fmt.Errorf("duplicate reference %q", receipt.Reference)
		}
		if existing.Chain == receipt.Chain && existing.TipTxHash == receipt.TipTxHash {
			return fmt.Errorf("duplicate chain tx %s/%s", receipt.Chain, receipt.TipTxHash)
		}
	}
	cp := *receipt
	r.receipts[receipt.ID] = &cp
	return nil
}

func (r *inMemoryReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if rec, ok := r.receipts[id]; ok {
		cp := *rec
		return &cp, nil
	}
	return nil, nil
}

func (r *inMemoryReceiptRepo) GetByReference(ctx context.Context, reference string) (*domain.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.receipts {
		if rec.Reference == reference {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryReceiptRepo) GetByChainTx(ctx context.Context, chain, tipTxHash string) (*domain.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.receipts {
		if rec.Chain == chain && rec.TipTxHash == tipTxHash {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryReceiptRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReceiptStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.receipts[id]
	if !ok {
		return fmt.Errorf("receipt %s not found", id)
	}
	rec.Status = status
	return nil
}

func (r *inMemoryReceiptRepo) SetBundleHash(ctx context.Context, id uuid.UUID, bundleHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.receipts[id]
	if !ok {
		return fmt.Errorf("receipt %s not found", id)
	}
	rec.BundleHash = bundleHash
	return nil
}

func (r *inMemoryReceiptRepo) SetAnchorResult(ctx context.Context, id uuid.UUID, txid string, anchoredAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.receipts[id]
	if !ok {
		return fmt.Errorf("receipt %s not found", id)
	}
	rec.AnchorTxID = txid
	at := anchoredAt
	rec.AnchoredAt = &at
	return nil
}

func (r *inMemoryReceiptRepo) SetArtifactPaths(ctx context.Context, id uuid.UUID, xmlPath, bundlePath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.receipts[id]
	if !ok {
		return fmt.Errorf("receipt %s not found", id)
	}
	rec.XMLPath = xmlPath
	rec.BundlePath = bundlePath
	return nil
}

func (r *inMemoryReceiptRepo) List(ctx context.Context, params ports.ReceiptListParams) ([]domain.Receipt, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []domain.Receipt
	for _, rec := range r.receipts {
		if params.ProjectID != nil && (rec.ProjectID == nil || *rec.ProjectID != *params.ProjectID) {
			continue
		}
		if params.Status != nil && rec.Status != *params.Status {
			continue
		}
		if params.Chain != nil && rec.Chain != *params.Chain {
			continue
		}
		if params.Reference != nil && !strings.Contains(rec.Reference, *params.Reference) {
			continue
		}
		matched = append(matched, *rec)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	page, size := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	start := (page - 1) * size
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// --- Chain anchors ---

type inMemoryAnchorRepo struct {
	mu      sync.RWMutex
	anchors map[uuid.UUID]map[string]domain.ChainAnchor
}

func newInMemoryAnchorRepo() *inMemoryAnchorRepo {
	return &inMemoryAnchorRepo{anchors: make(map[uuid.UUID]map[string]domain.ChainAnchor)}
}

func (r *inMemoryAnchorRepo) Upsert(ctx context.Context, anchor *domain.ChainAnchor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows, ok := r.anchors[anchor.ReceiptID]
	if !ok {
		rows = make(map[string]domain.ChainAnchor)
		r.anchors[anchor.ReceiptID] = rows
	}
	rows[anchor.Chain] = *anchor
	return nil
}

func (r *inMemoryAnchorRepo) ListByReceipt(ctx context.Context, receiptID uuid.UUID) ([]domain.ChainAnchor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.ChainAnchor
	for _, a := range r.anchors[receiptID] {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AnchoredAt.Before(out[j].AnchoredAt) })
	return out, nil
}

func (r *inMemoryAnchorRepo) Exists(ctx context.Context, receiptID uuid.UUID, chain string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.anchors[receiptID][chain]
	return ok, nil
}

// --- Projects ---

type inMemoryProjectRepo struct {
	mu       sync.RWMutex
	projects map[uuid.UUID]*domain.Project
}

func newInMemoryProjectRepo() *inMemoryProjectRepo {
	return &inMemoryProjectRepo{projects: make(map[uuid.UUID]*domain.Project)}
}

func (r *inMemoryProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *project
	r.projects[project.ID] = &cp
	return nil
}

func (r *inMemoryProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.projects[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *inMemoryProjectRepo) UpdateAnchoring(ctx context.Context, id uuid.UUID, cfg domain.AnchoringConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[id]
	if !ok {
		return fmt.Errorf("project %s not found", id)
	}
	p.Anchoring = cfg
	return nil
}

// --- Artifacts ---

type inMemoryArtifactRepo struct {
	mu        sync.RWMutex
	artifacts []domain.Artifact
	nextID    int64
}

func newInMemoryArtifactRepo() *inMemoryArtifactRepo {
	return &inMemoryArtifactRepo{}
}

func (r *inMemoryArtifactRepo) Create(ctx context.Context, artifact *domain.Artifact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	artifact.ID = r.nextID
	r.artifacts = append(r.artifacts, *artifact)
	return nil
}

func (r *inMemoryArtifactRepo) ListByReceipt(ctx context.Context, receiptID uuid.UUID) ([]domain.Artifact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Artifact
	for _, a := range r.artifacts {
		if a.ReceiptID == receiptID {
			out = append(out, a)
		}
	}
	return out, nil
}

// --- Fake chain ---

// fakeChain simulates anchoring contracts shared across every configured
// chain: Anchor records the fingerprint, VerifyTx proves it.
type fakeChain struct {
	mu       sync.Mutex
	nextTx   int
	anchored map[string]string // txid -> fingerprint
}

func newFakeChain() *fakeChain {
	return &fakeChain{anchored: make(map[string]string)}
}

func (f *fakeChain) ForChain(chain domain.ChainConfig, privateKeyHex string) (ports.AnchorClient, error) {
	return &fakeAnchorClient{backend: f, chain: chain}, nil
}

// submit records a fingerprint and returns a synthetic txid. Tests call it
// directly to simulate a tenant anchoring with its own key.
func (f *fakeChain) submit(fingerprint string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextTx++
	txid := fmt.Sprintf("0xfaketx%04d", f.nextTx)
	f.anchored[txid] = fingerprint
	return txid
}

type fakeAnchorClient struct {
	backend *fakeChain
	chain   domain.ChainConfig
}

func (c *fakeAnchorClient) Anchor(ctx context.Context, fingerprint string) (domain.AnchorResult, error) {
	txid := c.backend.submit(fingerprint)
	return domain.AnchorResult{TxID: txid, Block: 1}, nil
}

func (c *fakeAnchorClient) FindAnchor(ctx context.Context, fingerprint string) domain.ChainMatch {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	for txid, fp := range c.backend.anchored {
		if fp == fingerprint {
			return domain.ChainMatch{Matches: true, TxID: txid}
		}
	}
	return domain.ChainMatch{}
}

func (c *fakeAnchorClient) VerifyTx(ctx context.Context, txid, fingerprint string) (domain.TxProof, error) {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	fp, ok := c.backend.anchored[txid]
	if !ok || fp != fingerprint {
		return domain.TxProof{}, nil
	}
	return domain.TxProof{Matches: true, Block: 1}, nil
}
