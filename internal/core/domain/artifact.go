package domain

import (
	"time"

	"github.com/google/uuid"
)

// Artifact is a persisted file produced while processing a receipt
// (ISO messages, compliance decision, credential, the bundle itself).
type Artifact struct {
	ID        int64     `json:"id"`
	ReceiptID uuid.UUID `json:"receipt_id"`
	Type      string    `json:"type"` // pain.001, pacs.004, compliance, vc, fx, ...
	Path      string    `json:"path"`
	SHA256    string    `json:"sha256"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusEvent is published on the event bus whenever a receipt's status
// changes, and POSTed to the receipt's callback URL when one was supplied.
type StatusEvent struct {
	ReceiptID  string  `json:"receipt_id"`
	Status     string  `json:"status"`
	BundleHash string  `json:"bundle_hash,omitempty"`
	AnchorTxID string  `json:"anchor_txid,omitempty"`
	XMLURL     string  `json:"xml_url,omitempty"`
	BundleURL  string  `json:"bundle_url,omitempty"`
	CreatedAt  string  `json:"created_at,omitempty"`
	AnchoredAt *string `json:"anchored_at,omitempty"`
}
