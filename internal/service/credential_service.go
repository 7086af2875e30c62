package service

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"iso-evidence-gateway/internal/core/domain"
	"iso-evidence-gateway/internal/core/ports"
)

// CredentialService implements ports.CredentialIssuer: a minimal W3C-style
// verifiable credential binding a bundle hash to its receipt, signed as a
// compact EdDSA JWS with the manifest-signing key.
type CredentialService struct {
	keys ports.KeyProvider
	now  func() time.Time
}

// NewCredentialService creates a CredentialService.
func NewCredentialService(keys ports.KeyProvider) *CredentialService {
	return &CredentialService{keys: keys, now: time.Now}
}

// Issue builds and signs the credential JSON object.
func (s *CredentialService) Issue(bundleHash string, receipt *domain.Receipt) (map[string]any, error) {
	priv, _, err := s.keys.SigningKey()
	if err != nil {
		return nil, fmt.Errorf("resolving credential key: %w", err)
	}
	pub := priv.Public().(ed25519.PublicKey)
	issuer := didKeyFromPublic(pub)
	now := s.now().UTC()

	vc := map[string]any{
		"@context":     []string{"https://www.w3.org/2018/credentials/v1"},
		"type":         []string{"VerifiableCredential"},
		"issuer":       issuer,
		"issuanceDate": now.Format("2006-01-02T15:04:05Z"),
		"credentialSubject": map[string]any{
			"bundle_hash": bundleHash,
			"receipt_id":  receipt.ID.String(),
			"reference":   receipt.Reference,
			"status":      string(receipt.Status),
		},
	}

	header, err := json.Marshal(map[string]string{"alg": "EdDSA", "typ": "JWT"})
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(map[string]any{
		"iss": issuer,
		"nbf": now.Unix(),
		"vc":  vc,
	})
	if err != nil {
		return nil, err
	}

	signingInput := b64url(header) + "." + b64url(payload)
	sig := ed25519.Sign(priv, []byte(signingInput))

	vc["proof"] = map[string]any{
		"type":               "Ed25519Signature2020",
		"created":            now.Format("2006-01-02T15:04:05Z"),
		"proofPurpose":       "assertionMethod",
		"verificationMethod": issuer,
		"jws":                signingInput + "." + b64url(sig),
	}
	return vc, nil
}

func b64url(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// didKeyFromPublic renders a did:key identifier for an Ed25519 public key:
// multicodec 0xed 0x01 prefix, base58btc multibase.
func didKeyFromPublic(pub ed25519.PublicKey) string {
	multicodec := append([]byte{0xed, 0x01}, pub...)
	return "did:key:z" + base58Encode(multicodec)
}

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

func base58Encode(data []byte) string {
	zeros := 0
	for zeros < len(data) && data[zeros] == 0 {
		zeros++
	}

	n := new(big.Int).SetBytes(data)
	radix := big.NewInt(58)
	mod := new(big.Int)
	var out []byte
	for n.Sign() > 0 {
		n.DivMod(n, radix, mod)
		out = append(out, base58Alphabet[mod.Int64()])
	}
	for i := 0; i < zeros; i++ {
		out = append(out, base58Alphabet[0])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}
