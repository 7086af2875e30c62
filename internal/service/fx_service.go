package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"iso-evidence-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// FXService implements ports.FXService. Rate discovery itself lives behind
// provider hooks; this service only shapes the detail attached to generated
// messages:
//
//	static:<rate>    fixed rate, useful for tests and closed deployments
//	http+json:<url>  POST {base_ccy, quote_ccy}, expect {rate, source?}
//
// An empty provider disables enrichment (nil detail, no error).
type FXService struct {
	provider   string
	httpClient *http.Client
	log        zerolog.Logger
	now        func() time.Time
}

// NewFXService creates an FXService for the configured provider.
func NewFXService(provider string, httpClient *http.Client, log zerolog.Logger) *FXService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: providerTimeout}
	}
	return &FXService{provider: provider, httpClient: httpClient, log: log, now: time.Now}
}

// RateDetail resolves an indicative rate for one base/quote pair.
func (s *FXService) RateDetail(ctx context.Context, baseCcy, quoteCcy string) (*ports.FXDetail, error) {
	provider := strings.TrimSpace(s.provider)
	if provider == "" {
		return nil, nil
	}

	detail := &ports.FXDetail{
		BaseCurrency:  baseCcy,
		QuoteCurrency: quoteCcy,
		Provider:      provider,
		Timestamp:     FormatTimestamp(s.now()),
	}

	if rate, ok := strings.CutPrefix(provider, "static:"); ok {
		if rate == "" {
			return nil, fmt.Errorf("static fx provider has no rate")
		}
		detail.Rate = rate
		detail.Source = "static"
		return detail, nil
	}

	if url, ok := strings.CutPrefix(provider, "http+json:"); ok {
		rate, source, err := s.fetchRate(ctx, url, baseCcy, quoteCcy)
		if err != nil {
			return nil, err
		}
		detail.Rate = rate
		detail.Source = source
		return detail, nil
	}

	return nil, fmt.Errorf("unknown fx provider %q", provider)
}

func (s *FXService) fetchRate(ctx context.Context, url, baseCcy, quoteCcy string) (string, string, error) {
	body, err := json.Marshal(map[string]string{"base_ccy": baseCcy, "quote_ccy": quoteCcy})
	if err != nil {
		return "", "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("fx provider: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("fx provider status %d", resp.StatusCode)
	}

	var out struct {
		Rate   string `json:"rate"`
		Source string `json:"source"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", "", fmt.Errorf("fx provider response: %w", err)
	}
	if out.Rate == "" {
		return "", "", fmt.Errorf("fx provider returned no rate")
	}
	if out.Source == "" {
		out.Source = "provider"
	}
	return out.Rate, out.Source, nil
}
