package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ExecutionMode selects who submits anchoring transactions for a project.
type ExecutionMode string

const (
	// ExecutionModePlatform means the service holds anchoring keys and
	// submits transactions itself.
	ExecutionModePlatform ExecutionMode = "platform"
	// ExecutionModeTenant means the tenant anchors with its own key and the
	// service only verifies the submitted transaction.
	ExecutionModeTenant ExecutionMode = "tenant"
)

// ChainConfig describes one chain a project anchors on.
type ChainConfig struct {
	Name            string `json:"name"`
	Contract        string `json:"contract"`
	RPCURL          string `json:"rpc_url,omitempty"`
	ExplorerBaseURL string `json:"explorer_base_url,omitempty"`
}

// AnchoringConfig is the per-project anchoring policy.
type AnchoringConfig struct {
	ExecutionMode ExecutionMode `json:"execution_mode"`
	KeyRef        string        `json:"key_ref,omitempty"` // env:NAME indirection for platform signing keys
	Chains        []ChainConfig `json:"chains"`
}

// Project is a tenant. Its config drives which chains a receipt must be
// anchored on before it counts as fully anchored.
type Project struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Anchoring AnchoringConfig `json:"anchoring"`
	CreatedAt time.Time       `json:"created_at"`
}

// Mode returns the project's execution mode, defaulting to platform.
func (p *Project) Mode() ExecutionMode {
	if p == nil || p.Anchoring.ExecutionMode == "" {
		return ExecutionModePlatform
	}
	return p.Anchoring.ExecutionMode
}

// ConfiguredChains returns the project's chains that carry a contract
// address. Entries without a contract are ignored.
func (p *Project) ConfiguredChains() []ChainConfig {
	if p == nil {
		return nil
	}
	var out []ChainConfig
	for _, c := range p.Anchoring.Chains {
		if c.Contract != "" {
			out = append(out, c)
		}
	}
	return out
}

// ResolveChain picks the chain a confirmation applies to: by explicit name,
// or the sole configured chain when exactly one exists. Zero usable chains,
// an unknown name, or an ambiguous multi-chain config all return false.
func (p *Project) ResolveChain(name string) (ChainConfig, bool) {
	chains := p.ConfiguredChains()
	if len(chains) == 0 {
		return ChainConfig{}, false
	}
	if name != "" {
		for _, c := range chains {
			if strings.EqualFold(c.Name, name) {
				return c, true
			}
		}
		return ChainConfig{}, false
	}
	if len(chains) == 1 {
		return chains[0], true
	}
	return ChainConfig{}, false
}

// RequiredChainNames returns the lowercase set of named chains that must all
// be confirmed before the receipt becomes anchored. Unnamed legacy entries
// contribute nothing; callers fall back to single-chain semantics.
func (p *Project) RequiredChainNames() map[string]struct{} {
	out := make(map[string]struct{})
	for _, c := range p.ConfiguredChains() {
		if c.Name != "" {
			out[strings.ToLower(c.Name)] = struct{}{}
		}
	}
	return out
}
