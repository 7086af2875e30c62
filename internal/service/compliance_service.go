package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"iso-evidence-gateway/internal/core/domain"

	"github.com/rs/zerolog"
)

const providerTimeout = 10 * time.Second

// ComplianceService implements ports.ComplianceService with pluggable
// provider hooks:
//
//	http+json:<url>                 POST the check input, expect {decision, reason?}
//	mock:deny_if_amount_gt:<value>  travel rule only, for testing
//	mock:deny_all                   sanctions only, for testing
//
// Provider failures never block a payment: they degrade to allow with a
// marker reason. Denial only ever comes from an answering provider or the
// local threshold policy.
type ComplianceService struct {
	httpClient *http.Client
	log        zerolog.Logger
}

// NewComplianceService creates a ComplianceService.
func NewComplianceService(httpClient *http.Client, log zerolog.Logger) *ComplianceService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: providerTimeout}
	}
	return &ComplianceService{httpClient: httpClient, log: log}
}

// EvaluateTravelRule applies the local threshold policy (amount >= threshold
// flags) and merges in the provider's decision, which may escalate.
func (s *ComplianceService) EvaluateTravelRule(ctx context.Context, amount, threshold, provider string) domain.ComplianceResult {
	local := domain.ComplianceResult{Decision: domain.DecisionAllow}
	if threshold != "" {
		amt, aok := new(big.Rat).SetString(amount)
		thr, tok := new(big.Rat).SetString(threshold)
		if aok && tok && amt.Cmp(thr) >= 0 {
			local = domain.ComplianceResult{
				Decision: domain.DecisionFlag,
				Reason:   fmt.Sprintf("amount %s >= threshold %s", amount, threshold),
			}
		}
	}

	prov := s.callProvider(ctx, provider, map[string]any{
		"amount":    amount,
		"threshold": threshold,
	}, s.travelRuleMock(amount))

	merged := domain.MergeDecisions(prov.Decision, local.Decision)
	reason := prov.Reason
	if reason == "" {
		reason = local.Reason
	}
	return domain.ComplianceResult{Decision: merged, Reason: reason}
}

// CheckSanctions delegates entirely to the provider hook; no provider means
// allow.
func (s *ComplianceService) CheckSanctions(ctx context.Context, senderWallet, receiverWallet, provider string, metadata map[string]string) domain.ComplianceResult {
	if metadata == nil {
		metadata = map[string]string{}
	}
	return s.callProvider(ctx, provider, map[string]any{
		"sender_wallet":   senderWallet,
		"receiver_wallet": receiverWallet,
		"metadata":        metadata,
	}, s.sanctionsMock())
}

// mockHandler resolves mock: provider schemes; returns false when the
// scheme is not recognized.
type mockHandler func(provider string) (domain.ComplianceResult, bool)

func (s *ComplianceService) travelRuleMock(amount string) mockHandler {
	return func(provider string) (domain.ComplianceResult, bool) {
		thrStr, ok := strings.CutPrefix(provider, "mock:deny_if_amount_gt:")
		if !ok {
			return domain.ComplianceResult{}, false
		}
		amt, aok := new(big.Rat).SetString(amount)
		thr, tok := new(big.Rat).SetString(thrStr)
		if aok && tok && amt.Cmp(thr) > 0 {
			return domain.ComplianceResult{
				Decision: domain.DecisionDeny,
				Reason:   fmt.Sprintf("amount %s > %s", amount, thrStr),
			}, true
		}
		return domain.ComplianceResult{Decision: domain.DecisionAllow}, true
	}
}

func (s *ComplianceService) sanctionsMock() mockHandler {
	return func(provider string) (domain.ComplianceResult, bool) {
		if provider == "mock:deny_all" {
			return domain.ComplianceResult{Decision: domain.DecisionDeny, Reason: "mock_policy"}, true
		}
		return domain.ComplianceResult{}, false
	}
}

func (s *ComplianceService) callProvider(ctx context.Context, provider string, payload map[string]any, mock mockHandler) domain.ComplianceResult {
	allow := domain.ComplianceResult{Decision: domain.DecisionAllow}
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return allow
	}

	if url, ok := strings.CutPrefix(provider, "http+json:"); ok {
		res, err := s.postJSON(ctx, url, payload)
		if err != nil {
			s.log.Warn().Err(err).Str("provider", provider).Msg("compliance provider error ignored")
			return domain.ComplianceResult{Decision: domain.DecisionAllow, Reason: "provider_error_ignored"}
		}
		return res
	}
	if res, ok := mock(provider); ok {
		return res
	}
	return allow
}

func (s *ComplianceService) postJSON(ctx context.Context, url string, payload map[string]any) (domain.ComplianceResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.ComplianceResult{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return domain.ComplianceResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.ComplianceResult{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.ComplianceResult{}, fmt.Errorf("provider status %d", resp.StatusCode)
	}

	var out struct {
		Decision string `json:"decision"`
		Reason   string `json:"reason"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.ComplianceResult{}, err
	}
	switch domain.Decision(out.Decision) {
	case domain.DecisionAllow, domain.DecisionFlag, domain.DecisionDeny:
		return domain.ComplianceResult{Decision: domain.Decision(out.Decision), Reason: out.Reason}, nil
	default:
		return domain.ComplianceResult{}, fmt.Errorf("provider returned unknown decision %q", out.Decision)
	}
}
