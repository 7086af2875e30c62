package handler

import (
	"time"

	"iso-evidence-gateway/internal/adapter/http/dto"
	"iso-evidence-gateway/internal/core/ports"
	"iso-evidence-gateway/pkg/apperror"
	"iso-evidence-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EvidenceHandler handles anchor confirmation and bundle verification.
type EvidenceHandler struct {
	receipts ports.ReceiptRepository
	confirm  ports.ConfirmationService
	verifier ports.BundleVerifier
	log      zerolog.Logger
}

// NewEvidenceHandler creates a new EvidenceHandler.
func NewEvidenceHandler(receipts ports.ReceiptRepository, confirm ports.ConfirmationService, verifier ports.BundleVerifier, log zerolog.Logger) *EvidenceHandler {
	return &EvidenceHandler{receipts: receipts, confirm: confirm, verifier: verifier, log: log}
}

// ConfirmAnchor handles POST /v1/iso/confirm-anchor: a tenant reports the
// transaction it submitted itself and we verify it on chain.
func (h *EvidenceHandler) ConfirmAnchor(c *gin.Context) {
	projectID, ok := authedProject(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ConfirmAnchorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	receiptID, err := uuid.Parse(req.ReceiptID)
	if err != nil {
		response.Error(c, apperror.Validation("receipt_id must be a uuid"))
		return
	}

	ctx := c.Request.Context()
	rec, err := h.receipts.GetByID(ctx, receiptID)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if rec == nil {
		response.Error(c, apperror.ErrReceiptNotFound())
		return
	}
	if rec.ProjectID != nil && *rec.ProjectID != projectID {
		response.Error(c, apperror.ErrForbiddenProject())
		return
	}

	result, err := h.confirm.Confirm(ctx, ports.ConfirmRequest{
		ReceiptID: receiptID,
		TxID:      req.TxID,
		Chain:     req.Chain,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	out := dto.ConfirmAnchorResponse{
		ReceiptID:  result.ReceiptID.String(),
		Status:     string(result.Status),
		AnchorTxID: result.AnchorTxID,
	}
	if result.AnchoredAt != nil {
		s := result.AnchoredAt.UTC().Format(time.RFC3339)
		out.AnchoredAt = &s
	}
	response.OK(c, out)
}

// Verify handles POST /v1/verify. Verification findings are part of the
// report, not transport errors, so the response is always 200.
func (h *EvidenceHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	report := h.verifier.Verify(c.Request.Context(), req.Locator)
	out := dto.VerifyResponse{
		Valid:      report.OK(),
		BundleHash: report.BundleHash,
		Errors:     report.Errors,
	}
	if report.OnChain != nil {
		out.MatchesOnChain = &report.OnChain.Matches
		out.AnchorTxID = report.OnChain.TxID
		if report.OnChain.AnchoredAt != nil {
			s := report.OnChain.AnchoredAt.UTC().Format(time.RFC3339)
			out.AnchoredAt = &s
		}
	}
	response.OK(c, out)
}
