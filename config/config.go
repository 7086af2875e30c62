package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Log        LogConfig        `mapstructure:"log"`
	Signing    SigningConfig    `mapstructure:"signing"`
	Anchor     AnchorConfig     `mapstructure:"anchor"`
	Compliance ComplianceConfig `mapstructure:"compliance"`
	Evidence   EvidenceConfig   `mapstructure:"evidence"`
	FX         FXConfig         `mapstructure:"fx"`
}

type ServerConfig struct {
	Host          string        `mapstructure:"host"`
	Port          int           `mapstructure:"port"`
	Mode          string        `mapstructure:"mode"` // debug, release, test
	PublicBaseURL string        `mapstructure:"public_base_url"`
	CallbackTO    time.Duration `mapstructure:"callback_timeout"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// SigningConfig locates the Ed25519 manifest-signing key. When both paths
// are empty, a development keypair is generated under keys_dir.
type SigningConfig struct {
	PrivateKeyPath string `mapstructure:"private_key_path"` // file holding a 32-byte hex seed
	PublicKeyPath  string `mapstructure:"public_key_path"`  // PEM file
	KeysDir        string `mapstructure:"keys_dir"`
}

// AnchorChain is one chain in the organization-level default chain set used
// when a project does not override anchoring chains.
type AnchorChain struct {
	Name            string `mapstructure:"name"`
	Contract        string `mapstructure:"contract"`
	RPCURL          string `mapstructure:"rpc_url"`
	ExplorerBaseURL string `mapstructure:"explorer_base_url"`
}

type AnchorConfig struct {
	Chains         []AnchorChain `mapstructure:"chains"`
	PrivateKeyRef  string        `mapstructure:"private_key_ref"` // env:NAME indirection
	LookbackBlocks uint64        `mapstructure:"lookback_blocks"`
	Attempts       int           `mapstructure:"attempts"`
	ReceiptTimeout time.Duration `mapstructure:"receipt_timeout"`
	GasCeiling     uint64        `mapstructure:"gas_ceiling"`
	// Fallback chain used when neither project nor org config names one.
	FallbackChain    string `mapstructure:"fallback_chain"`
	FallbackContract string `mapstructure:"fallback_contract"`
	FallbackRPCURL   string `mapstructure:"fallback_rpc_url"`
}

type ComplianceConfig struct {
	TravelRuleThreshold string `mapstructure:"travel_rule_threshold"` // decimal string, "" disables
	TravelRuleProvider  string `mapstructure:"travel_rule_provider"`
	TravelRuleEnforce   bool   `mapstructure:"travel_rule_enforce"`
	SanctionsProvider   string `mapstructure:"sanctions_provider"`
	SanctionsEnforce    bool   `mapstructure:"sanctions_enforce"`
}

type EvidenceConfig struct {
	ArtifactsDir string `mapstructure:"artifacts_dir"`
	StoreMode    string `mapstructure:"store_mode"` // local, ipfs, arweave
}

type FXConfig struct {
	Provider     string `mapstructure:"provider"` // "" disables enrichment
	BaseCurrency string `mapstructure:"base_currency"`
}

// ResolveKeyRef dereferences an anchoring key reference. "env:NAME" reads
// the named environment variable; anything else is taken as literal hex.
// An empty ref or unset variable resolves to "" (no platform key).
func ResolveKeyRef(ref string) string {
	if name, ok := strings.CutPrefix(ref, "env:"); ok {
		return os.Getenv(name)
	}
	return ref
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: IEG_ (ISO Evidence
// Gateway). Nested keys use underscore: IEG_DATABASE_HOST, IEG_JWT_SECRET.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.public_base_url", "")
	v.SetDefault("server.callback_timeout", "15s")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "evidence_gateway")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "iso-evidence-gateway")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("signing.private_key_path", "")
	v.SetDefault("signing.public_key_path", "")
	v.SetDefault("signing.keys_dir", ".keys")
	v.SetDefault("anchor.private_key_ref", "env:ANCHOR_PRIVATE_KEY")
	v.SetDefault("anchor.lookback_blocks", 50000)
	v.SetDefault("anchor.attempts", 3)
	v.SetDefault("anchor.receipt_timeout", "180s")
	v.SetDefault("anchor.gas_ceiling", 200000)
	v.SetDefault("anchor.fallback_chain", "flare")
	v.SetDefault("anchor.fallback_contract", "0x0690d8cFb1897c12B2C0b34660edBDE4E20ff4d8")
	v.SetDefault("anchor.fallback_rpc_url", "https://flare-api.flare.network/ext/C/rpc")
	v.SetDefault("compliance.travel_rule_threshold", "")
	v.SetDefault("compliance.travel_rule_provider", "")
	v.SetDefault("compliance.travel_rule_enforce", false)
	v.SetDefault("compliance.sanctions_provider", "")
	v.SetDefault("compliance.sanctions_enforce", false)
	v.SetDefault("evidence.artifacts_dir", "artifacts")
	v.SetDefault("evidence.store_mode", "local")
	v.SetDefault("fx.provider", "")
	v.SetDefault("fx.base_currency", "USD")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: IEG_DATABASE_HOST -> database.host
	v.SetEnvPrefix("IEG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
