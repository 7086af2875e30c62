package ports

import (
	"context"
	"crypto/ed25519"
	"time"

	"iso-evidence-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// KeyProvider resolves the Ed25519 manifest-signing key. Implementations may
// fall back to generating and persisting a local development key when none
// is configured.
type KeyProvider interface {
	// SigningKey returns the private key and the PEM encoding of its public
	// half as embedded into bundles.
	SigningKey() (ed25519.PrivateKey, []byte, error)
}

// BundleBuilder assembles, signs and hashes a deterministic evidence bundle.
type BundleBuilder interface {
	// Build returns the archive bytes and the 0x-prefixed SHA-256 of those
	// bytes. Hashing or signing failures are fatal; artifact persistence is
	// best-effort and never affects the returned values.
	Build(ctx context.Context, receipt *domain.Receipt, xmlBytes []byte, extras map[string][]byte) ([]byte, string, error)
}

// BundleVerifier recomputes and cross-checks every hash and the manifest
// signature of a stored bundle. Integrity findings are reported as data in
// the returned report, never as errors.
type BundleVerifier interface {
	Verify(ctx context.Context, locator string) domain.VerificationReport
}

// AnchorClient talks to one chain's anchoring contract.
type AnchorClient interface {
	// Anchor submits the 32-byte fingerprint and waits for inclusion.
	Anchor(ctx context.Context, fingerprint string) (domain.AnchorResult, error)
	// FindAnchor scans recent contract logs for the fingerprint. Advisory:
	// unreachable chains yield a non-match, not an error.
	FindAnchor(ctx context.Context, fingerprint string) domain.ChainMatch
	// VerifyTx checks that txid anchored the expected fingerprint on the
	// configured contract. An error means the chain was unreachable, which
	// callers must distinguish from Matches=false.
	VerifyTx(ctx context.Context, txid, fingerprint string) (domain.TxProof, error)
}

// AnchorClientFactory builds an AnchorClient for a resolved chain config,
// optionally with a platform signing key.
type AnchorClientFactory interface {
	ForChain(chain domain.ChainConfig, privateKeyHex string) (AnchorClient, error)
}

// ComplianceService runs the pipeline's pre-anchoring checks.
type ComplianceService interface {
	EvaluateTravelRule(ctx context.Context, amount string, threshold string, provider string) domain.ComplianceResult
	CheckSanctions(ctx context.Context, senderWallet, receiverWallet, provider string, metadata map[string]string) domain.ComplianceResult
}

// MessageGenerator produces ISO 20022 payment message XML for a receipt.
type MessageGenerator interface {
	GeneratePain001(receipt *domain.Receipt, fx *FXDetail) ([]byte, error)
	GeneratePacs004(original *domain.Receipt, refundID, reasonCode string) ([]byte, error)
	GeneratePain002(receipt *domain.Receipt) ([]byte, error)
	GenerateCamt054(receipt *domain.Receipt) ([]byte, error)
}

// FXDetail is the rate enrichment attached to generated messages.
type FXDetail struct {
	BaseCurrency  string `json:"base_ccy"`
	QuoteCurrency string `json:"quote_ccy"`
	Provider      string `json:"provider"`
	Rate          string `json:"rate"`
	Source        string `json:"source"`
	Timestamp     string `json:"ts"`
}

// FXService resolves an indicative FX rate for artifact enrichment.
type FXService interface {
	RateDetail(ctx context.Context, baseCcy, quoteCcy string) (*FXDetail, error)
}

// CredentialIssuer issues a verifiable-credential JSON object binding a
// bundle hash to a receipt summary.
type CredentialIssuer interface {
	Issue(bundleHash string, receipt *domain.Receipt) (map[string]any, error)
}

// ArtifactStore writes receipt artifacts to local evidence storage.
type ArtifactStore interface {
	// Write persists one file under the receipt's directory and returns its
	// path on disk.
	Write(receiptID, filename string, data []byte) (string, error)
	// Read returns a previously written artifact's bytes.
	Read(receiptID, filename string) ([]byte, error)
}

// BundleUploader pushes a built bundle to secondary content-addressed
// storage (IPFS/Arweave). Returns the storage identifier, or "" when the
// configured mode is local-only.
type BundleUploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}

// EventBus publishes receipt status events to subscribers keyed by receipt
// id. Publishing is fire-and-forget; failures never fail the pipeline.
type EventBus interface {
	Publish(ctx context.Context, receiptID string, event domain.StatusEvent) error
	Subscribe(ctx context.Context, receiptID string) (<-chan domain.StatusEvent, func(), error)
}

// JobQueue hands receipt processing jobs to background workers. The queue
// guarantees at most one in-flight execution per receipt id.
type JobQueue interface {
	// Enqueue adds a job unless one for the same receipt is already queued
	// or executing, in which case it is a no-op.
	Enqueue(ctx context.Context, job ReceiptJob) error
	// Dequeue blocks until a job is available or ctx is done.
	Dequeue(ctx context.Context) (ReceiptJob, error)
	// Ack marks the job's execution finished, allowing the receipt to be
	// enqueued again.
	Ack(ctx context.Context, job ReceiptJob) error
}

// ReceiptJob is one unit of pipeline work.
type ReceiptJob struct {
	ReceiptID   uuid.UUID `json:"receipt_id"`
	CallbackURL string    `json:"callback_url,omitempty"`
	ReasonCode  string    `json:"reason_code,omitempty"`
	IsRefund    bool      `json:"is_refund,omitempty"`
}

// ReceiptPipeline is the background orchestrator for one receipt.
type ReceiptPipeline interface {
	Process(ctx context.Context, job ReceiptJob) error
}

// ConfirmationService validates tenant-submitted anchor transactions and
// drives the receipt status machine.
type ConfirmationService interface {
	Confirm(ctx context.Context, req ConfirmRequest) (*ConfirmResult, error)
}

// ConfirmRequest is the tenant confirmation input.
type ConfirmRequest struct {
	ReceiptID uuid.UUID
	TxID      string
	Chain     string // optional; inferred when the project has exactly one chain
}

// ConfirmResult reports the receipt state after a confirmation.
type ConfirmResult struct {
	ReceiptID  uuid.UUID
	Status     domain.ReceiptStatus
	AnchorTxID string
	AnchoredAt *time.Time
}

// TokenService handles project-scoped API token operations.
type TokenService interface {
	Generate(projectID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed token claims.
type TokenClaims struct {
	ProjectID uuid.UUID
}
