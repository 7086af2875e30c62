package service

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"iso-evidence-gateway/internal/core/domain"
	"iso-evidence-gateway/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func buildTestBundle(t *testing.T) []byte {
	t.Helper()
	svc := NewBundleService(newStubKeys(3), newMemStore(), zerolog.Nop())
	archive, _, err := svc.Build(context.Background(), testReceipt(), []byte(`<?xml version="1.0"?><Document/>`), nil)
	require.NoError(t, err)
	return archive
}

// unzipAll expands an archive into a name -> content map for tamper tests.
func unzipAll(t *testing.T, archive []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)
	out := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		r, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		r.Close()
		out[f.Name] = data
	}
	return out
}

func rezip(t *testing.T, files map[string][]byte) string {
	t.Helper()
	archive, err := deterministicZip(files)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "bundle.zip")
	require.NoError(t, os.WriteFile(path, archive, 0o644))
	return path
}

func writeTemp(t *testing.T, archive []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.zip")
	require.NoError(t, os.WriteFile(path, archive, 0o644))
	return path
}

func TestVerifyService_ValidBundle(t *testing.T) {
	svc := NewVerifyService(nil, nil, nil, nil, zerolog.Nop())
	report := svc.Verify(context.Background(), writeTemp(t, buildTestBundle(t)))

	assert.True(t, report.OK(), "unexpected findings: %v", report.Errors)
	assert.Regexp(t, `^0x[0-9a-f]{64}$`, report.BundleHash)
}

func TestVerifyService_HTTPFetch(t *testing.T) {
	archive := buildTestBundle(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	}))
	defer srv.Close()

	svc := NewVerifyService(srv.Client(), nil, nil, nil, zerolog.Nop())
	report := svc.Verify(context.Background(), srv.URL+"/bundle.zip")
	assert.True(t, report.OK(), "unexpected findings: %v", report.Errors)
}

func TestVerifyService_DownloadFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := NewVerifyService(srv.Client(), nil, nil, nil, zerolog.Nop())
	report := svc.Verify(context.Background(), srv.URL+"/gone.zip")

	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], domain.VerifyErrDownloadFailed)
	assert.Empty(t, report.BundleHash)
}

func TestVerifyService_NotAZip(t *testing.T) {
	path := writeTemp(t, []byte("this is not an archive"))
	svc := NewVerifyService(nil, nil, nil, nil, zerolog.Nop())
	report := svc.Verify(context.Background(), path)

	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], domain.VerifyErrArchiveOpen)
	assert.NotEmpty(t, report.BundleHash, "hash of the raw bytes is still reported")
}

func TestVerifyService_TamperedFile(t *testing.T) {
	files := unzipAll(t, buildTestBundle(t))
	files[domain.BundleFileTip] = append(files[domain.BundleFileTip], ' ')

	svc := NewVerifyService(nil, nil, nil, nil, zerolog.Nop())
	report := svc.Verify(context.Background(), rezip(t, files))

	require.Len(t, report.Errors, 1, "exactly the modified entry must be flagged: %v", report.Errors)
	assert.Equal(t, domain.VerifyErrFileHashMismatch+":"+domain.BundleFileTip, report.Errors[0])
}

func TestVerifyService_MissingPayloadFile(t *testing.T) {
	files := unzipAll(t, buildTestBundle(t))
	delete(files, domain.BundleFileReceipt)

	svc := NewVerifyService(nil, nil, nil, nil, zerolog.Nop())
	report := svc.Verify(context.Background(), rezip(t, files))

	assert.Contains(t, report.Errors, domain.VerifyErrMissingFile+":"+domain.BundleFileReceipt)
	// A missing entry also fails its manifest hash (hash of nothing).
	assert.Contains(t, report.Errors, domain.VerifyErrFileHashMismatch+":"+domain.BundleFileReceipt)
}

func TestVerifyService_TamperedManifest(t *testing.T) {
	files := unzipAll(t, buildTestBundle(t))
	manifest := bytes.Replace(files[domain.BundleFileManifest], []byte("tip-001"), []byte("tip-002"), 1)
	require.NotEqual(t, files[domain.BundleFileManifest], manifest)
	files[domain.BundleFileManifest] = manifest

	svc := NewVerifyService(nil, nil, nil, nil, zerolog.Nop())
	report := svc.Verify(context.Background(), rezip(t, files))

	assert.Contains(t, report.Errors, domain.VerifyErrBadSignature,
		"an edited manifest must no longer verify against the signature")
}

func TestVerifyService_SignatureFromDifferentKey(t *testing.T) {
	files := unzipAll(t, buildTestBundle(t))
	other := newStubKeys(9)
	files[domain.BundleFileSignature] = ed25519.Sign(other.priv, files[domain.BundleFileManifest])

	svc := NewVerifyService(nil, nil, nil, nil, zerolog.Nop())
	report := svc.Verify(context.Background(), rezip(t, files))

	assert.Contains(t, report.Errors, domain.VerifyErrBadSignature)
	// The embedded key did not change, so every file hash still holds.
	for _, e := range report.Errors {
		assert.NotContains(t, e, domain.VerifyErrFileHashMismatch)
	}
}

func TestVerifyService_NonCanonicalManifest(t *testing.T) {
	files := unzipAll(t, buildTestBundle(t))
	// Re-indent the manifest; same logical content, different bytes. The
	// matching signature is re-made so only the canonicality finding fires.
	var pretty bytes.Buffer
	require.NoError(t, json.Indent(&pretty, files[domain.BundleFileManifest], "", "  "))
	files[domain.BundleFileManifest] = pretty.Bytes()
	signer := newStubKeys(3)
	files[domain.BundleFileSignature] = ed25519.Sign(signer.priv, pretty.Bytes())

	svc := NewVerifyService(nil, nil, nil, nil, zerolog.Nop())
	report := svc.Verify(context.Background(), rezip(t, files))

	assert.Contains(t, report.Errors, domain.VerifyErrNotCanonical)
	assert.NotContains(t, report.Errors, domain.VerifyErrBadSignature)
}

func TestVerifyService_ReportsOnChainMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chains := []domain.ChainConfig{{Name: "flare", Contract: "0xC", RPCURL: "http://flare"}}
	anchoredAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	factory := mocks.NewMockAnchorClientFactory(ctrl)
	client := mocks.NewMockAnchorClient(ctrl)
	factory.EXPECT().ForChain(chains[0], "").Return(client, nil)
	client.EXPECT().FindAnchor(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fingerprint string) domain.ChainMatch {
			assert.Regexp(t, `^0x[0-9a-f]{64}$`, fingerprint, "lookup uses the recomputed hash")
			return domain.ChainMatch{Matches: true, TxID: "0xanchor", AnchoredAt: &anchoredAt}
		})

	svc := NewVerifyService(nil, nil, factory, chains, zerolog.Nop())
	report := svc.Verify(context.Background(), writeTemp(t, buildTestBundle(t)))

	assert.True(t, report.OK(), "unexpected findings: %v", report.Errors)
	require.NotNil(t, report.OnChain)
	assert.True(t, report.OnChain.Matches)
	assert.Equal(t, "0xanchor", report.OnChain.TxID)
}

func TestVerifyService_OnChainNonMatchIsNotAFinding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The first chain's client cannot even be built; the second answers with
	// a clean non-match. Neither may taint the integrity verdict.
	chains := []domain.ChainConfig{
		{Name: "flare", Contract: "0xA"},
		{Name: "songbird", Contract: "0xB", RPCURL: "http://songbird"},
	}
	factory := mocks.NewMockAnchorClientFactory(ctrl)
	client := mocks.NewMockAnchorClient(ctrl)
	factory.EXPECT().ForChain(chains[0], "").Return(nil, assert.AnError)
	factory.EXPECT().ForChain(chains[1], "").Return(client, nil)
	client.EXPECT().FindAnchor(gomock.Any(), gomock.Any()).Return(domain.ChainMatch{})

	svc := NewVerifyService(nil, nil, factory, chains, zerolog.Nop())
	report := svc.Verify(context.Background(), writeTemp(t, buildTestBundle(t)))

	assert.True(t, report.OK())
	require.NotNil(t, report.OnChain)
	assert.False(t, report.OnChain.Matches)
}

func TestVerifyService_XMLValidatorFindings(t *testing.T) {
	validator := func(xml []byte) error {
		return assert.AnError
	}
	svc := NewVerifyService(nil, validator, nil, nil, zerolog.Nop())
	report := svc.Verify(context.Background(), writeTemp(t, buildTestBundle(t)))

	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], domain.VerifyErrXMLInvalid)
}
