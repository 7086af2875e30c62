package service

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"iso-evidence-gateway/internal/core/domain"
	"iso-evidence-gateway/internal/core/ports"
	"iso-evidence-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// BundleArchiveName is the archive filename under a receipt's artifact dir.
const BundleArchiveName = "evidence.zip"

// Fixed ZIP entry timestamp. Entry times must not leak build time or the
// archive stops being reproducible.
var zipEpoch = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

// BundleService implements ports.BundleBuilder. Archives are deterministic:
// sorted entry names, fixed timestamps, fixed 0644 permissions, no
// compression. The same logical inputs always produce byte-identical output.
type BundleService struct {
	keys  ports.KeyProvider
	store ports.ArtifactStore
	log   zerolog.Logger
}

// NewBundleService creates a BundleService.
func NewBundleService(keys ports.KeyProvider, store ports.ArtifactStore, log zerolog.Logger) *BundleService {
	return &BundleService{keys: keys, store: store, log: log}
}

// Build assembles the evidence bundle for a receipt and returns the archive
// bytes and its 0x-prefixed SHA-256. Anchoring uses the hash of the whole
// archive, which binds every file including the manifest signature itself.
// Artifact persistence is best-effort; hashing and signing failures abort.
func (s *BundleService) Build(ctx context.Context, receipt *domain.Receipt, xmlBytes []byte, extras map[string][]byte) ([]byte, string, error) {
	receiptJSON, err := receiptSummaryJSON(receipt)
	if err != nil {
		return nil, "", apperror.ErrBundleBuildFailure(fmt.Errorf("receipt summary: %w", err))
	}
	tipJSON, err := tipSummaryJSON(receipt)
	if err != nil {
		return nil, "", apperror.ErrBundleBuildFailure(fmt.Errorf("tip summary: %w", err))
	}

	payload := map[string][]byte{
		domain.BundleFilePainXML: xmlBytes,
		domain.BundleFileReceipt: receiptJSON,
		domain.BundleFileTip:     tipJSON,
	}
	for name, data := range extras {
		if data != nil {
			payload[name] = data
		}
	}

	manifest := buildManifest(receipt, payload)
	manifestBytes, err := Canonicalize(manifest)
	if err != nil {
		return nil, "", apperror.ErrBundleBuildFailure(fmt.Errorf("canonical manifest: %w", err))
	}

	priv, pubPEM, err := s.keys.SigningKey()
	if err != nil {
		return nil, "", apperror.ErrSigningFailure(err)
	}
	signature := ed25519.Sign(priv, manifestBytes)

	files := make(map[string][]byte, len(payload)+3)
	for name, data := range payload {
		files[name] = data
	}
	files[domain.BundleFileManifest] = manifestBytes
	files[domain.BundleFileSignature] = signature
	files[domain.BundleFilePublicKey] = pubPEM

	archive, err := deterministicZip(files)
	if err != nil {
		return nil, "", apperror.ErrBundleBuildFailure(err)
	}

	sum := sha256.Sum256(archive)
	bundleHash := "0x" + hex.EncodeToString(sum[:])

	s.persist(receipt.ID.String(), archive, xmlBytes, manifestBytes, signature, pubPEM)

	return archive, bundleHash, nil
}

// persist writes the archive and convenience copies to the artifact store.
// Failures are logged and swallowed: the returned bytes and hash stay valid.
func (s *BundleService) persist(receiptID string, archive, xmlBytes, manifestBytes, signature, pubPEM []byte) {
	writes := []struct {
		name string
		data []byte
	}{
		{BundleArchiveName, archive},
		{domain.BundleFilePainXML, xmlBytes},
		{domain.BundleFileManifest, manifestBytes},
		{domain.BundleFileSignature, []byte(hex.EncodeToString(signature))},
		{domain.BundleFilePublicKey, pubPEM},
	}
	for _, w := range writes {
		if _, err := s.store.Write(receiptID, w.name, w.data); err != nil {
			s.log.Warn().Err(err).Str("receipt_id", receiptID).Str("file", w.name).
				Msg("best-effort artifact write failed")
		}
	}
}

func buildManifest(receipt *domain.Receipt, payload map[string][]byte) domain.Manifest {
	names := make([]string, 0, len(payload))
	for name := range payload {
		names = append(names, name)
	}
	sort.Strings(names)

	files := make([]domain.ManifestFile, 0, len(names))
	for _, name := range names {
		sum := sha256.Sum256(payload[name])
		files = append(files, domain.ManifestFile{
			Name:   name,
			SHA256: "0x" + hex.EncodeToString(sum[:]),
			Size:   len(payload[name]),
		})
	}

	return domain.Manifest{
		Version:   domain.ManifestVersion,
		Reference: receipt.Reference,
		ReceiptID: receipt.ID.String(),
		CreatedAt: FormatTimestamp(receipt.CreatedAt),
		Files:     files,
	}
}

// receiptSummaryJSON is the human-readable receipt.json bundle entry.
func receiptSummaryJSON(r *domain.Receipt) ([]byte, error) {
	return json.MarshalIndent(struct {
		ID             string `json:"id"`
		Reference      string `json:"reference"`
		TipTxHash      string `json:"tip_tx_hash"`
		Chain          string `json:"chain"`
		Amount         string `json:"amount"`
		Currency       string `json:"currency"`
		SenderWallet   string `json:"sender_wallet"`
		ReceiverWallet string `json:"receiver_wallet"`
		Status         string `json:"status"`
		CreatedAt      string `json:"created_at"`
	}{
		ID:             r.ID.String(),
		Reference:      r.Reference,
		TipTxHash:      r.TipTxHash,
		Chain:          r.Chain,
		Amount:         r.Amount,
		Currency:       r.Currency,
		SenderWallet:   r.SenderWallet,
		ReceiverWallet: r.ReceiverWallet,
		Status:         string(r.Status),
		CreatedAt:      FormatTimestamp(r.CreatedAt),
	}, "", "  ")
}

// tipSummaryJSON is the tip.json bundle entry: the raw payment facts.
func tipSummaryJSON(r *domain.Receipt) ([]byte, error) {
	return json.MarshalIndent(struct {
		Reference      string `json:"reference"`
		TipTxHash      string `json:"tip_tx_hash"`
		Chain          string `json:"chain"`
		Amount         string `json:"amount"`
		Currency       string `json:"currency"`
		SenderWallet   string `json:"sender_wallet"`
		ReceiverWallet string `json:"receiver_wallet"`
	}{
		Reference:      r.Reference,
		TipTxHash:      r.TipTxHash,
		Chain:          r.Chain,
		Amount:         r.Amount,
		Currency:       r.Currency,
		SenderWallet:   r.SenderWallet,
		ReceiverWallet: r.ReceiverWallet,
	}, "", "  ")
}

// deterministicZip writes the file map as an uncompressed archive with
// sorted entries, the fixed 1980-01-01 timestamp and 0644 permissions.
func deterministicZip(files map[string][]byte) ([]byte, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		hdr := &zip.FileHeader{
			Name:     name,
			Method:   zip.Store,
			Modified: zipEpoch,
		}
		hdr.SetMode(0o644)
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return nil, fmt.Errorf("zip entry %s: %w", name, err)
		}
		if _, err := w.Write(files[name]); err != nil {
			return nil, fmt.Errorf("zip write %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip close: %w", err)
	}
	return buf.Bytes(), nil
}
