package dto

// CreateReceiptRequest is the request body for receipt creation.
type CreateReceiptRequest struct {
	Reference      string  `json:"reference" binding:"required,max=140,safe_id"`
	TipTxHash      string  `json:"tip_tx_hash" binding:"required,max=120"`
	Chain          string  `json:"chain" binding:"required,max=40,safe_id"`
	Amount         string  `json:"amount" binding:"required,decimal"`
	Currency       string  `json:"currency" binding:"required,min=2,max=10"`
	SenderWallet   string  `json:"sender_wallet" binding:"required,max=120"`
	ReceiverWallet string  `json:"receiver_wallet" binding:"required,max=120"`
	CallbackURL    *string `json:"callback_url,omitempty" binding:"omitempty,safe_url"`
	RefundOf       *string `json:"refund_of,omitempty" binding:"omitempty,uuid"`
	ReasonCode     string  `json:"reason_code,omitempty" binding:"omitempty,max=35"`
}

// ReceiptResponse is the receipt representation returned by the API.
type ReceiptResponse struct {
	ID             string          `json:"id"`
	ProjectID      *string         `json:"project_id,omitempty"`
	Reference      string          `json:"reference"`
	TipTxHash      string          `json:"tip_tx_hash"`
	Chain          string          `json:"chain"`
	Amount         string          `json:"amount"`
	Currency       string          `json:"currency"`
	SenderWallet   string          `json:"sender_wallet"`
	ReceiverWallet string          `json:"receiver_wallet"`
	Status         string          `json:"status"`
	BundleHash     string          `json:"bundle_hash,omitempty"`
	AnchorTxID     string          `json:"anchor_txid,omitempty"`
	RefundOf       *string         `json:"refund_of,omitempty"`
	XMLURL         string          `json:"xml_url,omitempty"`
	BundleURL      string          `json:"bundle_url,omitempty"`
	CreatedAt      string          `json:"created_at"`
	AnchoredAt     *string         `json:"anchored_at,omitempty"`
	ChainAnchors   []AnchorSummary `json:"chain_anchors,omitempty"`
}

// AnchorSummary is one per-chain anchor row on a receipt response.
type AnchorSummary struct {
	Chain      string `json:"chain"`
	TxID       string `json:"txid"`
	AnchoredAt string `json:"anchored_at"`
}

// ListReceiptsResponse is the paginated receipt list envelope.
type ListReceiptsResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// ConfirmAnchorRequest is the request body for tenant anchor confirmation.
type ConfirmAnchorRequest struct {
	ReceiptID string `json:"receipt_id" binding:"required,uuid"`
	TxID      string `json:"txid" binding:"required,max=120"`
	Chain     string `json:"chain,omitempty" binding:"omitempty,max=40,safe_id"`
}

// ConfirmAnchorResponse reports the receipt state after a confirmation.
type ConfirmAnchorResponse struct {
	ReceiptID  string  `json:"receipt_id"`
	Status     string  `json:"status"`
	AnchorTxID string  `json:"anchor_txid,omitempty"`
	AnchoredAt *string `json:"anchored_at,omitempty"`
}

// VerifyRequest asks for an integrity check of a stored bundle. Locator is a
// local path or an http(s) URL.
type VerifyRequest struct {
	Locator string `json:"locator" binding:"required,max=2048"`
}

// VerifyResponse is the bundle verification report. The on-chain fields are
// advisory and absent when no anchor lookup is configured.
type VerifyResponse struct {
	Valid          bool     `json:"valid"`
	BundleHash     string   `json:"bundle_hash,omitempty"`
	MatchesOnChain *bool    `json:"matches_onchain,omitempty"`
	AnchorTxID     string   `json:"anchor_txid,omitempty"`
	AnchoredAt     *string  `json:"anchored_at,omitempty"`
	Errors         []string `json:"errors,omitempty"`
}

// CreateProjectRequest is the request body for project provisioning.
type CreateProjectRequest struct {
	Name      string           `json:"name" binding:"required,min=1,max=100"`
	Anchoring *AnchoringConfig `json:"anchoring,omitempty"`
}

// AnchoringConfig mirrors the per-project anchoring policy.
type AnchoringConfig struct {
	ExecutionMode string        `json:"execution_mode,omitempty" binding:"omitempty,oneof=platform tenant"`
	KeyRef        string        `json:"key_ref,omitempty" binding:"omitempty,max=200"`
	Chains        []ChainConfig `json:"chains,omitempty" binding:"omitempty,dive"`
}

// ChainConfig is one chain entry of an anchoring policy.
type ChainConfig struct {
	Name            string `json:"name" binding:"omitempty,max=40,safe_id"`
	Contract        string `json:"contract" binding:"required,max=64"`
	RPCURL          string `json:"rpc_url,omitempty" binding:"omitempty,safe_url"`
	ExplorerBaseURL string `json:"explorer_base_url,omitempty" binding:"omitempty,safe_url"`
}

// CreateProjectResponse returns the new project and its API token.
type CreateProjectResponse struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Token     string `json:"token"`
	Expiry    int64  `json:"expiry"` // Unix timestamp
}
