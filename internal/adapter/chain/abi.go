package chain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Contract surface of the anchoring registry:
//
//	function anchorEvidence(bytes32 fingerprint)
//	event EvidenceAnchored(bytes32 fingerprint, address indexed sender, uint256 timestamp)
//
// The fingerprint is not indexed, so it lives at offset 0 of the log data.
var (
	anchorSelector = keccak256([]byte("anchorEvidence(bytes32)"))[:4]

	// AnchoredTopic0 is the event signature hash used to filter logs.
	AnchoredTopic0 = "0x" + hex.EncodeToString(keccak256([]byte("EvidenceAnchored(bytes32,address,uint256)")))
)

func keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// ParseFingerprint decodes a 0x-prefixed 32-byte hex fingerprint.
func ParseFingerprint(s string) ([32]byte, error) {
	var fp [32]byte
	cleaned := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	raw, err := hex.DecodeString(cleaned)
	if err != nil {
		return fp, fmt.Errorf("fingerprint is not hex: %w", err)
	}
	if len(raw) != 32 {
		return fp, fmt.Errorf("fingerprint must be 32 bytes, got %d", len(raw))
	}
	copy(fp[:], raw)
	return fp, nil
}

// anchorCalldata is the anchorEvidence call: 4-byte selector then the
// fingerprint as one ABI word.
func anchorCalldata(fp [32]byte) []byte {
	data := make([]byte, 0, 4+32)
	data = append(data, anchorSelector...)
	return append(data, fp[:]...)
}

// fingerprintFromLogData reads the first ABI word of 0x-hex log data.
func fingerprintFromLogData(data string) ([32]byte, error) {
	var fp [32]byte
	raw, err := hex.DecodeString(strings.TrimPrefix(data, "0x"))
	if err != nil {
		return fp, fmt.Errorf("log data is not hex: %w", err)
	}
	if len(raw) < 32 {
		return fp, fmt.Errorf("log data too short: %d bytes", len(raw))
	}
	copy(fp[:], raw[:32])
	return fp, nil
}

func hexEncode(b []byte) string {
	return hex.EncodeToString(b)
}
