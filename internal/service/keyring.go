package service

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"iso-evidence-gateway/config"

	"github.com/rs/zerolog"
)

const (
	devSeedFile   = "service_sk.hex"
	devPubFile    = "service_pk.pem"
	publicKeyType = "ED25519 PUBLIC KEY"
)

// Keyring implements ports.KeyProvider. Key resolution order:
//  1. configured seed file (32-byte hex seed, 64-byte expanded keys accepted)
//     plus optional PEM public key file
//  2. previously persisted development keypair under the keys dir
//  3. freshly generated development keypair, persisted for reuse
//
// The resolved key is cached for the process lifetime.
type Keyring struct {
	cfg config.SigningConfig
	log zerolog.Logger

	mu   sync.Mutex
	priv ed25519.PrivateKey
	pem  []byte
}

// NewKeyring creates a Keyring from signing configuration.
func NewKeyring(cfg config.SigningConfig, log zerolog.Logger) *Keyring {
	return &Keyring{cfg: cfg, log: log}
}

// SigningKey returns the Ed25519 private key and the PEM encoding of its
// public half.
func (k *Keyring) SigningKey() (ed25519.PrivateKey, []byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.priv != nil {
		return k.priv, k.pem, nil
	}

	if k.cfg.PrivateKeyPath != "" {
		priv, pemBytes, err := k.loadConfigured()
		if err != nil {
			return nil, nil, err
		}
		k.priv, k.pem = priv, pemBytes
		return priv, pemBytes, nil
	}

	priv, pemBytes, err := k.loadOrCreateDev()
	if err != nil {
		return nil, nil, err
	}
	k.priv, k.pem = priv, pemBytes
	return priv, pemBytes, nil
}

func (k *Keyring) loadConfigured() (ed25519.PrivateKey, []byte, error) {
	raw, err := os.ReadFile(k.cfg.PrivateKeyPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading signing key: %w", err)
	}
	priv, err := privateKeyFromSeedHex(string(raw))
	if err != nil {
		return nil, nil, err
	}

	var pemBytes []byte
	if k.cfg.PublicKeyPath != "" {
		pemBytes, err = os.ReadFile(k.cfg.PublicKeyPath)
		if err != nil {
			return nil, nil, fmt.Errorf("reading public key PEM: %w", err)
		}
	} else {
		pemBytes = PublicKeyPEM(priv.Public().(ed25519.PublicKey))
	}
	return priv, pemBytes, nil
}

func (k *Keyring) loadOrCreateDev() (ed25519.PrivateKey, []byte, error) {
	dir := k.cfg.KeysDir
	if dir == "" {
		dir = ".keys"
	}
	seedPath := filepath.Join(dir, devSeedFile)
	pubPath := filepath.Join(dir, devPubFile)

	if raw, err := os.ReadFile(seedPath); err == nil {
		priv, err := privateKeyFromSeedHex(string(raw))
		if err != nil {
			return nil, nil, err
		}
		pemBytes, err := os.ReadFile(pubPath)
		if err != nil {
			pemBytes = PublicKeyPEM(priv.Public().(ed25519.PublicKey))
		}
		return priv, pemBytes, nil
	}

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generating dev signing key: %w", err)
	}
	pemBytes := PublicKeyPEM(pub)

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("creating keys dir: %w", err)
	}
	if err := os.WriteFile(seedPath, []byte(hex.EncodeToString(priv.Seed())), 0o600); err != nil {
		return nil, nil, fmt.Errorf("persisting dev seed: %w", err)
	}
	if err := os.WriteFile(pubPath, pemBytes, 0o644); err != nil {
		return nil, nil, fmt.Errorf("persisting dev public key: %w", err)
	}

	k.log.Warn().Str("dir", dir).Msg("no signing key configured, generated development keypair")
	return priv, pemBytes, nil
}

func privateKeyFromSeedHex(s string) (ed25519.PrivateKey, error) {
	cleaned := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	seed, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("decoding signing key hex: %w", err)
	}
	switch len(seed) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(seed), nil
	case ed25519.PrivateKeySize:
		// Expanded private key: first 32 bytes are the seed.
		return ed25519.NewKeyFromSeed(seed[:ed25519.SeedSize]), nil
	default:
		return nil, fmt.Errorf("signing key must be a 32-byte seed or 64-byte expanded key, got %d bytes", len(seed))
	}
}

// PublicKeyPEM wraps a raw Ed25519 public key in a PEM block. Bundles embed
// this so any holder can verify the manifest signature offline.
func PublicKeyPEM(pub ed25519.PublicKey) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: publicKeyType, Bytes: pub})
}

// PublicKeyFromPEM extracts the raw Ed25519 public key from a PEM block.
func PublicKeyFromPEM(data []byte) (ed25519.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("no PEM block in public key data")
	}
	if len(block.Bytes) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(block.Bytes))
	}
	return ed25519.PublicKey(block.Bytes), nil
}
