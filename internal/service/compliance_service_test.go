package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"iso-evidence-gateway/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplianceService_TravelRule_NoThresholdNoProvider(t *testing.T) {
	svc := NewComplianceService(nil, zerolog.Nop())
	res := svc.EvaluateTravelRule(context.Background(), "100", "", "")
	assert.Equal(t, domain.DecisionAllow, res.Decision)
}

func TestComplianceService_TravelRule_ThresholdFlags(t *testing.T) {
	svc := NewComplianceService(nil, zerolog.Nop())

	res := svc.EvaluateTravelRule(context.Background(), "1000", "1000", "")
	assert.Equal(t, domain.DecisionFlag, res.Decision, "amount == threshold flags")
	assert.NotEmpty(t, res.Reason)

	res = svc.EvaluateTravelRule(context.Background(), "999.99", "1000", "")
	assert.Equal(t, domain.DecisionAllow, res.Decision)
}

func TestComplianceService_TravelRule_MockDeny(t *testing.T) {
	svc := NewComplianceService(nil, zerolog.Nop())

	res := svc.EvaluateTravelRule(context.Background(), "50", "", "mock:deny_if_amount_gt:10")
	assert.Equal(t, domain.DecisionDeny, res.Decision)

	res = svc.EvaluateTravelRule(context.Background(), "10", "", "mock:deny_if_amount_gt:10")
	assert.Equal(t, domain.DecisionAllow, res.Decision, "equal is not greater")
}

func TestComplianceService_TravelRule_ProviderEscalates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "5", in["amount"])
		json.NewEncoder(w).Encode(map[string]string{"decision": "deny", "reason": "listed"})
	}))
	defer srv.Close()

	svc := NewComplianceService(srv.Client(), zerolog.Nop())
	res := svc.EvaluateTravelRule(context.Background(), "5", "1000", "http+json:"+srv.URL)
	assert.Equal(t, domain.DecisionDeny, res.Decision)
	assert.Equal(t, "listed", res.Reason)
}

func TestComplianceService_ProviderErrorDefaultsAllow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewComplianceService(srv.Client(), zerolog.Nop())
	res := svc.EvaluateTravelRule(context.Background(), "5", "", "http+json:"+srv.URL)
	assert.Equal(t, domain.DecisionAllow, res.Decision)
	assert.Equal(t, "provider_error_ignored", res.Reason)
}

func TestComplianceService_ProviderUnknownDecisionIgnored(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"decision": "maybe"})
	}))
	defer srv.Close()

	svc := NewComplianceService(srv.Client(), zerolog.Nop())
	res := svc.CheckSanctions(context.Background(), "0xa", "0xb", "http+json:"+srv.URL, nil)
	assert.Equal(t, domain.DecisionAllow, res.Decision)
	assert.Equal(t, "provider_error_ignored", res.Reason)
}

func TestComplianceService_Sanctions(t *testing.T) {
	svc := NewComplianceService(nil, zerolog.Nop())

	res := svc.CheckSanctions(context.Background(), "0xa", "0xb", "", nil)
	assert.Equal(t, domain.DecisionAllow, res.Decision)

	res = svc.CheckSanctions(context.Background(), "0xa", "0xb", "mock:deny_all", nil)
	assert.Equal(t, domain.DecisionDeny, res.Decision)
	assert.Equal(t, "mock_policy", res.Reason)
}

func TestComplianceService_Sanctions_ProviderPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "0xa", in["sender_wallet"])
		assert.Equal(t, "0xb", in["receiver_wallet"])
		json.NewEncoder(w).Encode(map[string]string{"decision": "flag", "reason": "review"})
	}))
	defer srv.Close()

	svc := NewComplianceService(srv.Client(), zerolog.Nop())
	res := svc.CheckSanctions(context.Background(), "0xa", "0xb", "http+json:"+srv.URL, map[string]string{"k": "v"})
	assert.Equal(t, domain.DecisionFlag, res.Decision)
	assert.Equal(t, "review", res.Reason)
}

func TestMergeDecisions(t *testing.T) {
	assert.Equal(t, domain.DecisionDeny, domain.MergeDecisions(domain.DecisionDeny, domain.DecisionAllow))
	assert.Equal(t, domain.DecisionDeny, domain.MergeDecisions(domain.DecisionFlag, domain.DecisionDeny))
	assert.Equal(t, domain.DecisionFlag, domain.MergeDecisions(domain.DecisionAllow, domain.DecisionFlag))
	assert.Equal(t, domain.DecisionAllow, domain.MergeDecisions(domain.DecisionAllow, domain.DecisionAllow))
}

func TestComplianceOutcome_Denied(t *testing.T) {
	outcome := domain.ComplianceOutcome{
		TravelRule: domain.ComplianceResult{Decision: domain.DecisionDeny},
		Sanctions:  domain.ComplianceResult{Decision: domain.DecisionAllow},
	}
	assert.True(t, outcome.Denied(true, true))
	assert.False(t, outcome.Denied(false, true), "unenforced checks never deny")
}
