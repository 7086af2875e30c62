package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChainAnchor records that a receipt's fingerprint was anchored on a chain
// via a specific transaction. One row per (receipt, chain); a row may be
// replaced by a resubmitted confirmation until the receipt is anchored.
type ChainAnchor struct {
	ReceiptID  uuid.UUID `json:"receipt_id"`
	Chain      string    `json:"chain"`
	TxID       string    `json:"txid"`
	AnchoredAt time.Time `json:"anchored_at"`
}

// AnchorResult is the outcome of a platform-mode anchor submission.
type AnchorResult struct {
	TxID  string
	Block uint64
}

// ChainMatch is the advisory result of an on-chain anchor lookup.
type ChainMatch struct {
	Matches    bool       `json:"matches"`
	TxID       string     `json:"txid,omitempty"`
	AnchoredAt *time.Time `json:"anchored_at,omitempty"`
}

// TxProof is the authoritative result of transaction-level verification,
// used by the tenant self-anchoring confirmation path.
type TxProof struct {
	Matches    bool
	Block      uint64
	AnchoredAt *time.Time
}
