package service

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"iso-evidence-gateway/internal/core/domain"
	"iso-evidence-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// XMLValidator optionally checks the bundled payment message against a
// schema. A nil validator skips the check.
type XMLValidator func(xml []byte) error

// VerifyService implements ports.BundleVerifier. Integrity findings are
// collected into the report so a single pass can surface every problem;
// only the inability to fetch the archive short-circuits. When a chain
// factory is configured the report also carries an advisory on-chain
// anchor lookup for the recomputed hash.
type VerifyService struct {
	httpClient  *http.Client
	validateXML XMLValidator
	factory     ports.AnchorClientFactory
	chains      []domain.ChainConfig
	log         zerolog.Logger
}

// NewVerifyService creates a VerifyService. validateXML may be nil; a nil
// factory or empty chain list disables the on-chain lookup.
func NewVerifyService(httpClient *http.Client, validateXML XMLValidator, factory ports.AnchorClientFactory, chains []domain.ChainConfig, log zerolog.Logger) *VerifyService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &VerifyService{httpClient: httpClient, validateXML: validateXML, factory: factory, chains: chains, log: log}
}

// Verify fetches the bundle at locator (http(s) URL or local path),
// recomputes its hash and cross-checks the manifest, every file hash and
// the manifest signature.
func (s *VerifyService) Verify(ctx context.Context, locator string) domain.VerificationReport {
	var errs []string

	data, bundleHash, err := s.fetch(ctx, locator)
	if err != nil {
		return domain.VerificationReport{
			Errors: []string{fmt.Sprintf("%s: %v", domain.VerifyErrDownloadFailed, err)},
		}
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return domain.VerificationReport{
			BundleHash: bundleHash,
			Errors:     []string{fmt.Sprintf("%s: %v", domain.VerifyErrArchiveOpen, err)},
			OnChain:    s.findAnchor(ctx, bundleHash),
		}
	}

	read := func(name string) []byte {
		f, err := zr.Open(name)
		if err != nil {
			errs = append(errs, domain.VerifyErrMissingFile+":"+name)
			return nil
		}
		defer f.Close()
		content, err := io.ReadAll(f)
		if err != nil {
			errs = append(errs, domain.VerifyErrMissingFile+":"+name)
			return nil
		}
		return content
	}

	manifestBytes := read(domain.BundleFileManifest)
	sigBytes := read(domain.BundleFileSignature)
	xmlBytes := read(domain.BundleFilePainXML)
	pubPEM := read(domain.BundleFilePublicKey)

	// Manifest structure, canonical encoding, per-file hashes.
	if manifestBytes != nil {
		var manifest domain.Manifest
		if err := json.Unmarshal(manifestBytes, &manifest); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", domain.VerifyErrManifestInvalid, err))
		} else {
			// The stored bytes must equal the canonical re-encoding of their
			// own parse, or the signature covers something we cannot
			// reproduce. Not proof of tampering, but not our builder either.
			canon, cerr := Canonicalize(manifest)
			if cerr != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", domain.VerifyErrManifestInvalid, cerr))
			} else if !bytes.Equal(canon, manifestBytes) {
				errs = append(errs, domain.VerifyErrNotCanonical)
			}

			for _, entry := range manifest.Files {
				if entry.Name == "" || entry.SHA256 == "" {
					errs = append(errs, domain.VerifyErrEntryInvalid)
					continue
				}
				content := read(entry.Name)
				sum := sha256.Sum256(content)
				if "0x"+hex.EncodeToString(sum[:]) != entry.SHA256 {
					errs = append(errs, domain.VerifyErrFileHashMismatch+":"+entry.Name)
				}
			}
		}
	}

	// Optional schema validation of the payment message.
	if s.validateXML != nil && len(xmlBytes) > 0 {
		if err := s.validateXML(xmlBytes); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", domain.VerifyErrXMLInvalid, err))
		}
	}

	// Ed25519 signature over the stored manifest bytes, using the key
	// embedded in the bundle.
	if manifestBytes != nil && pubPEM != nil {
		pub, err := PublicKeyFromPEM(pubPEM)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", domain.VerifyErrSignatureCheck, err))
		} else if !ed25519.Verify(pub, manifestBytes, sigBytes) {
			errs = append(errs, domain.VerifyErrBadSignature)
		}
	}

	return domain.VerificationReport{
		BundleHash: bundleHash,
		Errors:     errs,
		OnChain:    s.findAnchor(ctx, bundleHash),
	}
}

// findAnchor scans the configured chains for the recomputed hash. The first
// match wins; an unreachable chain counts as a non-match, never a finding.
func (s *VerifyService) findAnchor(ctx context.Context, bundleHash string) *domain.ChainMatch {
	if s.factory == nil || len(s.chains) == 0 || bundleHash == "" {
		return nil
	}
	for _, chainCfg := range s.chains {
		client, err := s.factory.ForChain(chainCfg, "")
		if err != nil {
			s.log.Warn().Err(err).Str("chain", chainCfg.Name).Msg("anchor lookup client unavailable")
			continue
		}
		if match := client.FindAnchor(ctx, bundleHash); match.Matches {
			return &match
		}
	}
	return &domain.ChainMatch{}
}

// fetch retrieves the archive while streaming a running SHA-256, so the
// hash never requires a second pass over the bytes.
func (s *VerifyService) fetch(ctx context.Context, locator string) ([]byte, string, error) {
	var src io.ReadCloser

	if strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
		if err != nil {
			return nil, "", err
		}
		resp, err := s.httpClient.Do(req)
		if err != nil {
			return nil, "", err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, "", fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		src = resp.Body
	} else {
		f, err := os.Open(locator)
		if err != nil {
			return nil, "", err
		}
		src = f
	}
	defer src.Close()

	hasher := sha256.New()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.TeeReader(src, hasher)); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "0x" + hex.EncodeToString(hasher.Sum(nil)), nil
}
