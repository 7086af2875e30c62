package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptStatus represents the lifecycle state of a payment receipt.
type ReceiptStatus string

const (
	ReceiptStatusPending        ReceiptStatus = "pending"
	ReceiptStatusAwaitingAnchor ReceiptStatus = "awaiting_anchor"
	ReceiptStatusAnchored       ReceiptStatus = "anchored"
	ReceiptStatusFailed         ReceiptStatus = "failed"
)

// Receipt is the per-payment-event record driven through the evidence
// pipeline. It is created once per observed payment and mutated only by the
// pipeline and the anchor-confirmation endpoint; it is never deleted.
type Receipt struct {
	ID             uuid.UUID     `json:"id"`
	ProjectID      *uuid.UUID    `json:"project_id,omitempty"`
	Reference      string        `json:"reference"`
	TipTxHash      string        `json:"tip_tx_hash"`
	Chain          string        `json:"chain"`
	Amount         string        `json:"amount"` // decimal string, plain fixed-point
	Currency       string        `json:"currency"`
	SenderWallet   string        `json:"sender_wallet"`
	ReceiverWallet string        `json:"receiver_wallet"`
	Status         ReceiptStatus `json:"status"`
	BundleHash     string        `json:"bundle_hash,omitempty"` // 0x-prefixed sha256 of evidence.zip
	AnchorTxID     string        `json:"anchor_txid,omitempty"` // first anchor tx, convenience
	RefundOf       *uuid.UUID    `json:"refund_of,omitempty"`
	XMLPath        string        `json:"xml_url,omitempty"`
	BundlePath     string        `json:"bundle_url,omitempty"`
	CallbackURL    *string       `json:"-"`
	CreatedAt      time.Time     `json:"created_at"`
	AnchoredAt     *time.Time    `json:"anchored_at,omitempty"`
}

// IsTerminal returns true once no further pipeline work applies.
func (r *Receipt) IsTerminal() bool {
	return r.Status == ReceiptStatusAnchored || r.Status == ReceiptStatusFailed
}

// CanConfirmAnchor reports whether a tenant confirmation may be accepted.
// "pending" is accepted for backward compatibility with receipts created
// before the awaiting_anchor state existed.
func (r *Receipt) CanConfirmAnchor() bool {
	return r.Status == ReceiptStatusAwaitingAnchor || r.Status == ReceiptStatusPending
}

// IsRefund reports whether this receipt reverses an earlier one.
func (r *Receipt) IsRefund() bool {
	return r.RefundOf != nil
}
