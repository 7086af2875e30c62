package handler

import (
	"strconv"
	"time"

	"iso-evidence-gateway/internal/adapter/http/dto"
	"iso-evidence-gateway/internal/adapter/http/middleware"
	"iso-evidence-gateway/internal/core/domain"
	"iso-evidence-gateway/internal/core/ports"
	"iso-evidence-gateway/pkg/apperror"
	"iso-evidence-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReceiptHandler handles receipt endpoints.
type ReceiptHandler struct {
	receipts ports.ReceiptRepository
	anchors  ports.ChainAnchorRepository
	queue    ports.JobQueue
	bus      ports.EventBus
	log      zerolog.Logger
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(receipts ports.ReceiptRepository, anchors ports.ChainAnchorRepository, queue ports.JobQueue, bus ports.EventBus, log zerolog.Logger) *ReceiptHandler {
	return &ReceiptHandler{receipts: receipts, anchors: anchors, queue: queue, bus: bus, log: log}
}

// Create handles POST /v1/receipts: records the payment event and enqueues
// the evidence pipeline.
func (h *ReceiptHandler) Create(c *gin.Context) {
	projectID, ok := authedProject(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	ctx := c.Request.Context()
	if existing, err := h.receipts.GetByReference(ctx, req.Reference); err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	} else if existing != nil {
		response.Error(c, apperror.ErrDuplicateReference())
		return
	}
	if existing, err := h.receipts.GetByChainTx(ctx, req.Chain, req.TipTxHash); err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	} else if existing != nil {
		response.Error(c, apperror.ErrDuplicateChainTx())
		return
	}

	rec := &domain.Receipt{
		ID:             uuid.New(),
		ProjectID:      &projectID,
		Reference:      req.Reference,
		TipTxHash:      req.TipTxHash,
		Chain:          req.Chain,
		Amount:         req.Amount,
		Currency:       req.Currency,
		SenderWallet:   req.SenderWallet,
		ReceiverWallet: req.ReceiverWallet,
		Status:         domain.ReceiptStatusPending,
		CallbackURL:    req.CallbackURL,
		CreatedAt:      time.Now().UTC(),
	}
	if req.RefundOf != nil {
		originalID, err := uuid.Parse(*req.RefundOf)
		if err != nil {
			response.Error(c, apperror.Validation("refund_of must be a receipt id"))
			return
		}
		original, err := h.receipts.GetByID(ctx, originalID)
		if err != nil {
			response.Error(c, apperror.ErrDatabaseError(err))
			return
		}
		if original == nil {
			response.Error(c, apperror.ErrRefundOriginalNotFound())
			return
		}
		rec.RefundOf = &originalID
	}

	if err := h.receipts.Create(ctx, rec); err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	job := ports.ReceiptJob{
		ReceiptID:  rec.ID,
		ReasonCode: req.ReasonCode,
		IsRefund:   rec.RefundOf != nil,
	}
	if req.CallbackURL != nil {
		job.CallbackURL = *req.CallbackURL
	}
	if err := h.queue.Enqueue(ctx, job); err != nil {
		// The receipt row exists either way; the worker's queue is the only
		// part that lost the event.
		h.log.Error().Err(err).Str("receipt_id", rec.ID.String()).Msg("enqueue failed")
	}

	response.Created(c, toReceiptResponse(rec, nil))
}

// Get handles GET /v1/receipts/:id.
func (h *ReceiptHandler) Get(c *gin.Context) {
	projectID, ok := authedProject(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a uuid"))
		return
	}

	rec, err := h.receipts.GetByID(c.Request.Context(), id)
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

	anchors, err := h.anchors.ListByReceipt(c.Request.Context(), rec.ID)
	if err != nil {
		h.log.Warn().Err(err).Msg("listing chain anchors failed")
	}
	response.OK(c, toReceiptResponse(rec, anchors))
}

// List handles GET /v1/receipts with status/chain/reference filters.
func (h *ReceiptHandler) List(c *gin.Context) {
	projectID, ok := authedProject(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	params := ports.ReceiptListParams{
		ProjectID: &projectID,
		Page:      intQuery(c, "page", 1),
		PageSize:  intQuery(c, "page_size", 20),
	}
	if s := c.Query("status"); s != "" {
		status := domain.ReceiptStatus(s)
		params.Status = &status
	}
	if chain := c.Query("chain"); chain != "" {
		params.Chain = &chain
	}
	if ref := c.Query("reference"); ref != "" {
		params.Reference = &ref
	}

	receipts, total, err := h.receipts.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	out := dto.ListReceiptsResponse{
		Receipts: make([]dto.ReceiptResponse, 0, len(receipts)),
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	}
	for i := range receipts {
		out.Receipts = append(out.Receipts, toReceiptResponse(&receipts[i], nil))
	}
	response.OK(c, out)
}

// Events handles GET /v1/receipts/:id/events: a server-sent event stream of
// the receipt's status changes. Only events published while the client is
// attached are delivered; the current state is available via Get.
func (h *ReceiptHandler) Events(c *gin.Context) {
	projectID, ok := authedProject(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a uuid"))
		return
	}

	ctx := c.Request.Context()
	rec, err := h.receipts.GetByID(ctx, id)
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

	events, cancel, err := h.bus.Subscribe(ctx, id.String())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	// Headers go out before the first event so the client knows the
	// subscription is live.
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	for {
		select {
		case event, open := <-events:
			if !open {
				return
			}
			c.SSEvent("status", event)
			c.Writer.Flush()
		case <-ctx.Done():
			return
		}
	}
}

func authedProject(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxProjectID)
	if !ok {
		return uuid.UUID{}, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func intQuery(c *gin.Context, key string, def int) int {
	out, err := strconv.Atoi(c.Query(key))
	if err != nil || out < 1 {
		return def
	}
	return out
}

func toReceiptResponse(rec *domain.Receipt, anchors []domain.ChainAnchor) dto.ReceiptResponse {
	resp := dto.ReceiptResponse{
		ID:             rec.ID.String(),
		Reference:      rec.Reference,
		TipTxHash:      rec.TipTxHash,
		Chain:          rec.Chain,
		Amount:         rec.Amount,
		Currency:       rec.Currency,
		SenderWallet:   rec.SenderWallet,
		ReceiverWallet: rec.ReceiverWallet,
		Status:         string(rec.Status),
		BundleHash:     rec.BundleHash,
		AnchorTxID:     rec.AnchorTxID,
		XMLURL:         rec.XMLPath,
		BundleURL:      rec.BundlePath,
		CreatedAt:      rec.CreatedAt.UTC().Format(time.RFC3339),
	}
	if rec.ProjectID != nil {
		s := rec.ProjectID.String()
		resp.ProjectID = &s
	}
	if rec.RefundOf != nil {
		s := rec.RefundOf.String()
		resp.RefundOf = &s
	}
	if rec.AnchoredAt != nil {
		s := rec.AnchoredAt.UTC().Format(time.RFC3339)
		resp.AnchoredAt = &s
	}
	for _, a := range anchors {
		resp.ChainAnchors = append(resp.ChainAnchors, dto.AnchorSummary{
			Chain:      a.Chain,
			TxID:       a.TxID,
			AnchoredAt: a.AnchoredAt.UTC().Format(time.RFC3339),
		})
	}
	return resp
}
