package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "evidence_gateway", cfg.Database.DBName)
	assert.Equal(t, uint64(50000), cfg.Anchor.LookbackBlocks)
	assert.Equal(t, 3, cfg.Anchor.Attempts)
	assert.Equal(t, 180*time.Second, cfg.Anchor.ReceiptTimeout)
	assert.Equal(t, uint64(200000), cfg.Anchor.GasCeiling)
	assert.Equal(t, "flare", cfg.Anchor.FallbackChain)
	assert.Equal(t, "artifacts", cfg.Evidence.ArtifactsDir)
	assert.Equal(t, "local", cfg.Evidence.StoreMode)
	assert.False(t, cfg.Compliance.TravelRuleEnforce)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
server:
  port: 9090
anchor:
  lookback_blocks: 1000
  chains:
    - name: flare
      contract: "0x0690d8cFb1897c12B2C0b34660edBDE4E20ff4d8"
      rpc_url: "http://localhost:8545"
compliance:
  travel_rule_threshold: "1000"
  travel_rule_enforce: true
`)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, uint64(1000), cfg.Anchor.LookbackBlocks)
	require.Len(t, cfg.Anchor.Chains, 1)
	assert.Equal(t, "flare", cfg.Anchor.Chains[0].Name)
	assert.Equal(t, "http://localhost:8545", cfg.Anchor.Chains[0].RPCURL)
	assert.Equal(t, "1000", cfg.Compliance.TravelRuleThreshold)
	assert.True(t, cfg.Compliance.TravelRuleEnforce)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("IEG_DATABASE_HOST", "db.internal")
	t.Setenv("IEG_ANCHOR_FALLBACK_CHAIN", "coston2")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "coston2", cfg.Anchor.FallbackChain)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p",
		DBName: "evidence_gateway", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/evidence_gateway?sslmode=disable", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}
