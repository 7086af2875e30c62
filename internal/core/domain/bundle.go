package domain

// Fixed file names inside an evidence bundle archive.
const (
	BundleFilePainXML    = "pain001.xml"
	BundleFileReceipt    = "receipt.json"
	BundleFileTip        = "tip.json"
	BundleFileManifest   = "manifest.json"
	BundleFileSignature  = "manifest.sig"
	BundleFilePublicKey  = "public_key.pem"
	BundleFileCredential = "credential.json"
	BundleFileIVMS       = "ivms101.json"
)

// ManifestVersion is the current manifest schema version.
const ManifestVersion = "1.0"

// ManifestFile is one entry of the bundle manifest: the file's name, its
// SHA-256 as a 0x hex string, and its size in bytes.
type ManifestFile struct {
	Name   string `json:"name"`
	SHA256 string `json:"sha256"`
	Size   int    `json:"size"`
}

// Manifest lists every payload file of an evidence bundle. Its canonical
// JSON serialization is exactly what gets signed; verifiers must re-derive
// canonical bytes and byte-compare before trusting the signature.
type Manifest struct {
	Version   string         `json:"version"`
	Reference string         `json:"reference"`
	ReceiptID string         `json:"receipt_id"`
	CreatedAt string         `json:"created_at"`
	Files     []ManifestFile `json:"files"`
}

// Verification error codes. Integrity findings are collected, not raised, so
// one report can carry several at once.
const (
	VerifyErrDownloadFailed   = "download_failed"
	VerifyErrArchiveOpen      = "zip_open_failed"
	VerifyErrMissingFile      = "missing_file"
	VerifyErrManifestInvalid  = "manifest_invalid"
	VerifyErrNotCanonical     = "manifest_not_canonical"
	VerifyErrEntryInvalid     = "manifest_entry_invalid"
	VerifyErrFileHashMismatch = "file_hash_mismatch"
	VerifyErrXMLInvalid       = "xml_invalid"
	VerifyErrBadSignature     = "signature_invalid"
	VerifyErrSignatureCheck   = "signature_check_failed"
)

// VerificationReport is the complete result of verifying a bundle. Errors is
// empty for a fully valid bundle; callers decide which entries are fatal.
// OnChain carries the advisory anchor lookup and is nil when no lookup ran.
type VerificationReport struct {
	BundleHash string      `json:"bundle_hash"`
	Errors     []string    `json:"errors"`
	OnChain    *ChainMatch `json:"onchain,omitempty"`
}

// OK reports whether integrity checking produced no findings. The on-chain
// lookup is advisory and never taints OK.
func (r VerificationReport) OK() bool {
	return len(r.Errors) == 0
}
