package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"iso-evidence-gateway/config"
	"iso-evidence-gateway/internal/core/domain"
	"iso-evidence-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PipelineDeps bundles the pipeline's collaborators.
type PipelineDeps struct {
	Receipts   ports.ReceiptRepository
	Anchors    ports.ChainAnchorRepository
	Projects   ports.ProjectRepository
	Artifacts  ports.ArtifactRepository
	Compliance ports.ComplianceService
	FX         ports.FXService
	Messages   ports.MessageGenerator
	Bundles    ports.BundleBuilder
	Creds      ports.CredentialIssuer
	Store      ports.ArtifactStore
	Uploader   ports.BundleUploader
	Factory    ports.AnchorClientFactory
	Bus        ports.EventBus
	HTTPClient *http.Client
}

// PipelineService implements ports.ReceiptPipeline: the background workflow
// that turns a created receipt into evidence and, in platform mode, anchors
// it. Writes are committed incrementally per external call; a crash leaves
// partial but self-consistent state. Only compliance denial and bundle
// failure are fatal; artifact rows, events and callbacks are best-effort.
type PipelineService struct {
	deps PipelineDeps
	cfg  *config.Config
	log  zerolog.Logger
	now  func() time.Time
}

// NewPipelineService creates a PipelineService.
func NewPipelineService(deps PipelineDeps, cfg *config.Config, log zerolog.Logger) *PipelineService {
	if deps.HTTPClient == nil {
		deps.HTTPClient = &http.Client{}
	}
	return &PipelineService{deps: deps, cfg: cfg, log: log, now: time.Now}
}

// Process runs the full pipeline for one receipt job.
func (s *PipelineService) Process(ctx context.Context, job ports.ReceiptJob) error {
	log := s.log.With().Str("receipt_id", job.ReceiptID.String()).Logger()

	receipt, err := s.deps.Receipts.GetByID(ctx, job.ReceiptID)
	if err != nil {
		return fmt.Errorf("loading receipt: %w", err)
	}
	if receipt == nil {
		log.Warn().Msg("job references a missing receipt, dropping")
		return nil
	}
	if receipt.IsTerminal() {
		log.Info().Str("status", string(receipt.Status)).Msg("receipt already terminal, skipping")
		return nil
	}

	project := s.loadProject(ctx, receipt)

	// Compliance gate. Denial by an enforced check is terminal.
	outcome := s.runCompliance(ctx, receipt)
	s.writeArtifactJSON(ctx, receipt.ID, "compliance", "compliance.json", outcome)
	if outcome.Denied(s.cfg.Compliance.TravelRuleEnforce, s.cfg.Compliance.SanctionsEnforce) {
		log.Warn().Interface("outcome", outcome).Msg("receipt denied by compliance")
		s.fail(ctx, receipt, job.CallbackURL)
		return nil
	}

	fx := s.fxDetail(ctx, receipt)
	if fx != nil {
		s.writeArtifactJSON(ctx, receipt.ID, "fx", "fx.json", fx)
	}

	xmlBytes, xmlType, err := s.generateMessage(ctx, receipt, job, fx)
	if err != nil {
		log.Error().Err(err).Msg("iso message generation failed")
		s.fail(ctx, receipt, job.CallbackURL)
		return err
	}
	xmlPath := s.writeArtifact(ctx, receipt.ID, xmlType, domain.BundleFilePainXML, xmlBytes)

	// Bundle build is fatal: no bundle, nothing to anchor.
	archive, bundleHash, err := s.deps.Bundles.Build(ctx, receipt, xmlBytes, nil)
	if err != nil {
		log.Error().Err(err).Msg("bundle build failed")
		s.fail(ctx, receipt, job.CallbackURL)
		return err
	}
	receipt.BundleHash = bundleHash
	if err := s.deps.Receipts.SetBundleHash(ctx, receipt.ID, bundleHash); err != nil {
		return fmt.Errorf("persisting bundle hash: %w", err)
	}
	bundlePath := s.writeArtifact(ctx, receipt.ID, "bundle", BundleArchiveName, archive)
	if err := s.deps.Receipts.SetArtifactPaths(ctx, receipt.ID, xmlPath, bundlePath); err != nil {
		log.Warn().Err(err).Msg("persisting artifact paths failed")
	}
	receipt.XMLPath, receipt.BundlePath = xmlPath, bundlePath

	// Secondary storage and credential issuance never block anchoring.
	if s.deps.Uploader != nil {
		if id, err := s.deps.Uploader.Upload(ctx, bundlePath); err != nil {
			log.Warn().Err(err).Msg("bundle upload failed")
		} else if id != "" {
			log.Info().Str("storage_id", id).Msg("bundle uploaded")
		}
	}
	if s.deps.Creds != nil {
		if vc, err := s.deps.Creds.Issue(bundleHash, receipt); err != nil {
			log.Warn().Err(err).Msg("credential issuance failed")
		} else {
			s.writeArtifactJSON(ctx, receipt.ID, "vc", "credential.json", vc)
		}
	}

	if project.Mode() == domain.ExecutionModeTenant {
		receipt.Status = domain.ReceiptStatusAwaitingAnchor
		if err := s.deps.Receipts.UpdateStatus(ctx, receipt.ID, domain.ReceiptStatusAwaitingAnchor); err != nil {
			return fmt.Errorf("setting awaiting_anchor: %w", err)
		}
		s.writeStatusArtifacts(ctx, receipt)
		s.notify(ctx, receipt, job.CallbackURL)
		log.Info().Msg("evidence ready, anchoring delegated to tenant")
		return nil
	}

	s.anchorPlatform(ctx, receipt, project, log)

	s.writeStatusArtifacts(ctx, receipt)
	s.notify(ctx, receipt, job.CallbackURL)
	return nil
}

// anchorPlatform anchors on every configured chain that does not already
// have an anchor row. Chains are independent: one failure never rolls back
// another's success. At least one anchored chain makes the receipt
// anchored; none makes it failed.
func (s *PipelineService) anchorPlatform(ctx context.Context, receipt *domain.Receipt, project *domain.Project, log zerolog.Logger) {
	chains := s.platformChains(project)
	keyHex := config.ResolveKeyRef(s.keyRef(project))

	succeeded := 0
	for _, chainCfg := range chains {
		exists, err := s.deps.Anchors.Exists(ctx, receipt.ID, chainCfg.Name)
		if err != nil {
			log.Warn().Err(err).Str("chain", chainCfg.Name).Msg("anchor row lookup failed")
		} else if exists {
			// Re-processing after partial completion must not anchor twice.
			log.Info().Str("chain", chainCfg.Name).Msg("chain already anchored, skipping")
			succeeded++
			continue
		}

		client, err := s.deps.Factory.ForChain(chainCfg, keyHex)
		if err != nil {
			log.Error().Err(err).Str("chain", chainCfg.Name).Msg("anchor client construction failed")
			continue
		}
		res, err := client.Anchor(ctx, receipt.BundleHash)
		if err != nil {
			log.Error().Err(err).Str("chain", chainCfg.Name).Msg("anchoring failed")
			continue
		}

		anchoredAt := s.now().UTC()
		if err := s.deps.Anchors.Upsert(ctx, &domain.ChainAnchor{
			ReceiptID:  receipt.ID,
			Chain:      chainCfg.Name,
			TxID:       res.TxID,
			AnchoredAt: anchoredAt,
		}); err != nil {
			log.Error().Err(err).Str("chain", chainCfg.Name).Msg("persisting chain anchor failed")
		}
		if succeeded == 0 {
			if err := s.deps.Receipts.SetAnchorResult(ctx, receipt.ID, res.TxID, anchoredAt); err != nil {
				log.Error().Err(err).Msg("persisting anchor result failed")
			}
			receipt.AnchorTxID = res.TxID
			receipt.AnchoredAt = &anchoredAt
		}
		succeeded++
	}

	if succeeded > 0 {
		receipt.Status = domain.ReceiptStatusAnchored
	} else {
		receipt.Status = domain.ReceiptStatusFailed
	}
	if err := s.deps.Receipts.UpdateStatus(ctx, receipt.ID, receipt.Status); err != nil {
		log.Error().Err(err).Msg("persisting final status failed")
	}
	log.Info().Str("status", string(receipt.Status)).Int("chains_anchored", succeeded).
		Int("chains_configured", len(chains)).Msg("platform anchoring finished")
}

func (s *PipelineService) loadProject(ctx context.Context, receipt *domain.Receipt) *domain.Project {
	if receipt.ProjectID == nil || s.deps.Projects == nil {
		return nil
	}
	project, err := s.deps.Projects.GetByID(ctx, *receipt.ProjectID)
	if err != nil {
		s.log.Warn().Err(err).Str("project_id", receipt.ProjectID.String()).
			Msg("project lookup failed, using defaults")
		return nil
	}
	return project
}

func (s *PipelineService) runCompliance(ctx context.Context, receipt *domain.Receipt) domain.ComplianceOutcome {
	cc := s.cfg.Compliance
	return domain.ComplianceOutcome{
		TravelRule: s.deps.Compliance.EvaluateTravelRule(ctx, receipt.Amount, cc.TravelRuleThreshold, cc.TravelRuleProvider),
		Sanctions: s.deps.Compliance.CheckSanctions(ctx, receipt.SenderWallet, receipt.ReceiverWallet, cc.SanctionsProvider, map[string]string{
			"reference": receipt.Reference,
			"chain":     receipt.Chain,
		}),
	}
}

func (s *PipelineService) fxDetail(ctx context.Context, receipt *domain.Receipt) *ports.FXDetail {
	if s.deps.FX == nil {
		return nil
	}
	fx, err := s.deps.FX.RateDetail(ctx, s.cfg.FX.BaseCurrency, receipt.Currency)
	if err != nil {
		s.log.Warn().Err(err).Msg("fx rate lookup failed")
		return nil
	}
	return fx
}

// generateMessage produces the receipt's primary ISO message: pacs.004 for
// refunds whose original receipt is loadable, pain.001 otherwise.
func (s *PipelineService) generateMessage(ctx context.Context, receipt *domain.Receipt, job ports.ReceiptJob, fx *ports.FXDetail) ([]byte, string, error) {
	if (job.IsRefund || receipt.IsRefund()) && receipt.RefundOf != nil {
		original, err := s.deps.Receipts.GetByID(ctx, *receipt.RefundOf)
		if err == nil && original != nil {
			xmlBytes, err := s.deps.Messages.GeneratePacs004(original, receipt.ID.String(), job.ReasonCode)
			return xmlBytes, "pacs.004", err
		}
		// A missing row comes back as (nil, nil), not an error.
		s.log.Warn().Err(err).Str("original_id", receipt.RefundOf.String()).
			Msg("refund original not loadable, falling back to pain.001")
	}
	xmlBytes, err := s.deps.Messages.GeneratePain001(receipt, fx)
	return xmlBytes, "pain.001", err
}

// writeStatusArtifacts persists pain.002 and camt.054 snapshots of the
// receipt's final state. Best-effort.
func (s *PipelineService) writeStatusArtifacts(ctx context.Context, receipt *domain.Receipt) {
	if out, err := s.deps.Messages.GeneratePain002(receipt); err == nil {
		s.writeArtifact(ctx, receipt.ID, "pain.002", "pain002.xml", out)
	} else {
		s.log.Warn().Err(err).Msg("pain.002 generation failed")
	}
	if out, err := s.deps.Messages.GenerateCamt054(receipt); err == nil {
		s.writeArtifact(ctx, receipt.ID, "camt.054", "camt054.xml", out)
	} else {
		s.log.Warn().Err(err).Msg("camt.054 generation failed")
	}
}

func (s *PipelineService) fail(ctx context.Context, receipt *domain.Receipt, callbackURL string) {
	receipt.Status = domain.ReceiptStatusFailed
	if err := s.deps.Receipts.UpdateStatus(ctx, receipt.ID, domain.ReceiptStatusFailed); err != nil {
		s.log.Error().Err(err).Str("receipt_id", receipt.ID.String()).Msg("persisting failed status")
	}
	s.notify(ctx, receipt, callbackURL)
}

// notify publishes the status event and fires the callback. Both are
// fire-and-forget.
func (s *PipelineService) notify(ctx context.Context, receipt *domain.Receipt, callbackURL string) {
	event := statusEvent(receipt)
	if s.deps.Bus != nil {
		if err := s.deps.Bus.Publish(ctx, receipt.ID.String(), event); err != nil {
			s.log.Warn().Err(err).Msg("status event publish failed")
		}
	}
	if callbackURL == "" && receipt.CallbackURL != nil {
		callbackURL = *receipt.CallbackURL
	}
	if callbackURL != "" {
		s.postCallback(ctx, callbackURL, event)
	}
}

func (s *PipelineService) postCallback(ctx context.Context, url string, event domain.StatusEvent) {
	timeout := s.cfg.Server.CallbackTO
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	cbCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(event)
	if err != nil {
		return
	}
	req, err := http.NewRequestWithContext(cbCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		s.log.Warn().Err(err).Str("url", url).Msg("callback request build failed")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.deps.HTTPClient.Do(req)
	if err != nil {
		s.log.Warn().Err(err).Str("url", url).Msg("callback delivery failed")
		return
	}
	resp.Body.Close()
	if resp.StatusCode >= 300 {
		s.log.Warn().Int("status", resp.StatusCode).Str("url", url).Msg("callback rejected")
	}
}

// platformChains resolves the chains to anchor on: project override, else
// the organization default list, else the hard-coded fallback chain.
// Entries missing an RPC URL inherit it from the org chain with the same
// name, or from the fallback.
func (s *PipelineService) platformChains(project *domain.Project) []domain.ChainConfig {
	orgByName := make(map[string]config.AnchorChain, len(s.cfg.Anchor.Chains))
	for _, c := range s.cfg.Anchor.Chains {
		orgByName[strings.ToLower(c.Name)] = c
	}

	if chains := project.ConfiguredChains(); len(chains) > 0 {
		out := make([]domain.ChainConfig, 0, len(chains))
		for _, c := range chains {
			if c.RPCURL == "" {
				if org, ok := orgByName[strings.ToLower(c.Name)]; ok {
					c.RPCURL = org.RPCURL
				} else {
					c.RPCURL = s.cfg.Anchor.FallbackRPCURL
				}
			}
			out = append(out, c)
		}
		return out
	}

	return DefaultChains(s.cfg.Anchor)
}

// DefaultChains resolves the organization-wide chain list: the configured
// chains, or the fallback chain when none are configured.
func DefaultChains(cfg config.AnchorConfig) []domain.ChainConfig {
	if len(cfg.Chains) > 0 {
		out := make([]domain.ChainConfig, 0, len(cfg.Chains))
		for _, c := range cfg.Chains {
			out = append(out, domain.ChainConfig{
				Name:            c.Name,
				Contract:        c.Contract,
				RPCURL:          c.RPCURL,
				ExplorerBaseURL: c.ExplorerBaseURL,
			})
		}
		return out
	}

	return []domain.ChainConfig{{
		Name:     cfg.FallbackChain,
		Contract: cfg.FallbackContract,
		RPCURL:   cfg.FallbackRPCURL,
	}}
}

func (s *PipelineService) keyRef(project *domain.Project) string {
	if project != nil && project.Anchoring.KeyRef != "" {
		return project.Anchoring.KeyRef
	}
	return s.cfg.Anchor.PrivateKeyRef
}

// writeArtifact stores one artifact file and records its row. Best-effort:
// failures log and return an empty path.
func (s *PipelineService) writeArtifact(ctx context.Context, receiptID uuid.UUID, artifactType, filename string, data []byte) string {
	path, err := s.deps.Store.Write(receiptID.String(), filename, data)
	if err != nil {
		s.log.Warn().Err(err).Str("file", filename).Msg("artifact write failed")
		return ""
	}
	if s.deps.Artifacts != nil {
		sum := sha256.Sum256(data)
		if err := s.deps.Artifacts.Create(ctx, &domain.Artifact{
			ReceiptID: receiptID,
			Type:      artifactType,
			Path:      path,
			SHA256:    "0x" + hex.EncodeToString(sum[:]),
			CreatedAt: s.now().UTC(),
		}); err != nil {
			s.log.Warn().Err(err).Str("type", artifactType).Msg("artifact row insert failed")
		}
	}
	return path
}

func (s *PipelineService) writeArtifactJSON(ctx context.Context, receiptID uuid.UUID, artifactType, filename string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.log.Warn().Err(err).Str("type", artifactType).Msg("artifact encode failed")
		return
	}
	s.writeArtifact(ctx, receiptID, artifactType, filename, data)
}

func statusEvent(receipt *domain.Receipt) domain.StatusEvent {
	event := domain.StatusEvent{
		ReceiptID:  receipt.ID.String(),
		Status:     string(receipt.Status),
		BundleHash: receipt.BundleHash,
		AnchorTxID: receipt.AnchorTxID,
		XMLURL:     receipt.XMLPath,
		BundleURL:  receipt.BundlePath,
		CreatedAt:  FormatTimestamp(receipt.CreatedAt),
	}
	if receipt.AnchoredAt != nil {
		at := FormatTimestamp(*receipt.AnchoredAt)
		event.AnchoredAt = &at
	}
	return event
}
