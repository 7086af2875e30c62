package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"iso-evidence-gateway/config"
	"iso-evidence-gateway/internal/core/domain"
	"iso-evidence-gateway/internal/core/ports"
	"iso-evidence-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// ConfirmService validates tenant-submitted anchor transactions against the
// chain and advances the receipt status machine. Verification is
// authoritative: a transaction that does not prove the receipt's bundle hash
// on the resolved chain's contract is rejected, and an unreachable chain is
// reported as unavailable rather than as a mismatch.
type ConfirmService struct {
	receipts ports.ReceiptRepository
	anchors  ports.ChainAnchorRepository
	projects ports.ProjectRepository
	factory  ports.AnchorClientFactory
	bus      ports.EventBus
	cfg      *config.Config
	log      zerolog.Logger
	now      func() time.Time
}

// NewConfirmService creates a ConfirmService.
func NewConfirmService(
	receipts ports.ReceiptRepository,
	anchors ports.ChainAnchorRepository,
	projects ports.ProjectRepository,
	factory ports.AnchorClientFactory,
	bus ports.EventBus,
	cfg *config.Config,
	log zerolog.Logger,
) *ConfirmService {
	return &ConfirmService{
		receipts: receipts,
		anchors:  anchors,
		projects: projects,
		factory:  factory,
		bus:      bus,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// Confirm records one chain's anchor for a receipt. Re-confirming a chain
// that already has an anchor row replaces the row; the receipt only reaches
// anchored once every required chain is confirmed.
func (s *ConfirmService) Confirm(ctx context.Context, req ports.ConfirmRequest) (*ports.ConfirmResult, error) {
	receipt, err := s.receipts.GetByID(ctx, req.ReceiptID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.ErrReceiptNotFound()
	}
	if receipt.Status == domain.ReceiptStatusAnchored {
		// Idempotent re-confirmation of a finished receipt.
		return s.result(receipt), nil
	}
	if !receipt.CanConfirmAnchor() {
		return nil, apperror.ErrInvalidStatusTransition()
	}
	if receipt.BundleHash == "" {
		return nil, apperror.ErrMissingBundleHash()
	}

	project := s.project(ctx, receipt)
	chainCfg, err := s.resolveChain(project, req.Chain)
	if err != nil {
		return nil, err
	}

	client, err := s.factory.ForChain(chainCfg, "")
	if err != nil {
		return nil, fmt.Errorf("building anchor client for %s: %w", chainCfg.Name, err)
	}
	proof, err := client.VerifyTx(ctx, req.TxID, receipt.BundleHash)
	if err != nil {
		return nil, apperror.ErrAnchorLookupUnavailable(err)
	}
	if !proof.Matches {
		return nil, apperror.ErrTxDoesNotMatchBundleHash()
	}

	anchoredAt := s.now().UTC()
	if proof.AnchoredAt != nil {
		anchoredAt = proof.AnchoredAt.UTC()
	}
	if err := s.anchors.Upsert(ctx, &domain.ChainAnchor{
		ReceiptID:  receipt.ID,
		Chain:      chainCfg.Name,
		TxID:       req.TxID,
		AnchoredAt: anchoredAt,
	}); err != nil {
		return nil, fmt.Errorf("persisting chain anchor: %w", err)
	}

	complete, err := s.allRequiredConfirmed(ctx, receipt, project)
	if err != nil {
		return nil, err
	}
	if !complete {
		s.log.Info().Str("receipt_id", receipt.ID.String()).Str("chain", chainCfg.Name).
			Msg("chain confirmed, waiting on remaining chains")
		return s.result(receipt), nil
	}

	if err := s.receipts.SetAnchorResult(ctx, receipt.ID, req.TxID, anchoredAt); err != nil {
		return nil, fmt.Errorf("persisting anchor result: %w", err)
	}
	if err := s.receipts.UpdateStatus(ctx, receipt.ID, domain.ReceiptStatusAnchored); err != nil {
		return nil, fmt.Errorf("persisting anchored status: %w", err)
	}
	receipt.Status = domain.ReceiptStatusAnchored
	receipt.AnchorTxID = req.TxID
	receipt.AnchoredAt = &anchoredAt

	if s.bus != nil {
		if err := s.bus.Publish(ctx, receipt.ID.String(), statusEvent(receipt)); err != nil {
			s.log.Warn().Err(err).Msg("status event publish failed")
		}
	}
	s.log.Info().Str("receipt_id", receipt.ID.String()).Str("chain", chainCfg.Name).
		Str("txid", req.TxID).Msg("receipt anchored by tenant confirmation")
	return s.result(receipt), nil
}

func (s *ConfirmService) project(ctx context.Context, receipt *domain.Receipt) *domain.Project {
	if receipt.ProjectID == nil || s.projects == nil {
		return nil
	}
	project, err := s.projects.GetByID(ctx, *receipt.ProjectID)
	if err != nil {
		s.log.Warn().Err(err).Msg("project lookup failed during confirmation")
		return nil
	}
	return project
}

// resolveChain picks the chain a confirmation applies to. An explicit name
// must match the project config (or the org defaults when the project has
// none); no name is accepted only when exactly one chain is configured.
func (s *ConfirmService) resolveChain(project *domain.Project, name string) (domain.ChainConfig, error) {
	if chains := project.ConfiguredChains(); len(chains) > 0 {
		if c, ok := project.ResolveChain(name); ok {
			return s.inheritRPC(c), nil
		}
		if name == "" {
			return domain.ChainConfig{}, apperror.ErrChainRequired()
		}
		return domain.ChainConfig{}, apperror.ErrUnknownChain()
	}

	// No project chains: fall back to the org defaults, then the fixed
	// fallback chain.
	orgChains := s.cfg.Anchor.Chains
	if len(orgChains) == 0 {
		fallback := domain.ChainConfig{
			Name:     s.cfg.Anchor.FallbackChain,
			Contract: s.cfg.Anchor.FallbackContract,
			RPCURL:   s.cfg.Anchor.FallbackRPCURL,
		}
		if name != "" && !strings.EqualFold(name, fallback.Name) {
			return domain.ChainConfig{}, apperror.ErrUnknownChain()
		}
		return fallback, nil
	}
	if name != "" {
		for _, c := range orgChains {
			if strings.EqualFold(c.Name, name) {
				return s.inheritRPC(domain.ChainConfig{
					Name: c.Name, Contract: c.Contract, RPCURL: c.RPCURL, ExplorerBaseURL: c.ExplorerBaseURL,
				}), nil
			}
		}
		return domain.ChainConfig{}, apperror.ErrUnknownChain()
	}
	if len(orgChains) == 1 {
		c := orgChains[0]
		return s.inheritRPC(domain.ChainConfig{
			Name: c.Name, Contract: c.Contract, RPCURL: c.RPCURL, ExplorerBaseURL: c.ExplorerBaseURL,
		}), nil
	}
	return domain.ChainConfig{}, apperror.ErrChainRequired()
}

func (s *ConfirmService) inheritRPC(c domain.ChainConfig) domain.ChainConfig {
	if c.RPCURL != "" {
		return c
	}
	for _, org := range s.cfg.Anchor.Chains {
		if strings.EqualFold(org.Name, c.Name) && org.RPCURL != "" {
			c.RPCURL = org.RPCURL
			return c
		}
	}
	c.RPCURL = s.cfg.Anchor.FallbackRPCURL
	return c
}

// allRequiredConfirmed reports whether every named chain the project
// requires now has an anchor row. Projects without named chains use
// single-chain semantics: the confirmation that just landed completes the
// receipt.
func (s *ConfirmService) allRequiredConfirmed(ctx context.Context, receipt *domain.Receipt, project *domain.Project) (bool, error) {
	required := project.RequiredChainNames()
	if len(required) <= 1 {
		return true, nil
	}
	rows, err := s.anchors.ListByReceipt(ctx, receipt.ID)
	if err != nil {
		return false, fmt.Errorf("listing chain anchors: %w", err)
	}
	confirmed := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		confirmed[strings.ToLower(row.Chain)] = struct{}{}
	}
	for name := range required {
		if _, ok := confirmed[name]; !ok {
			return false, nil
		}
	}
	return true, nil
}

func (s *ConfirmService) result(receipt *domain.Receipt) *ports.ConfirmResult {
	return &ports.ConfirmResult{
		ReceiptID:  receipt.ID,
		Status:     receipt.Status,
		AnchorTxID: receipt.AnchorTxID,
		AnchoredAt: receipt.AnchoredAt,
	}
}
