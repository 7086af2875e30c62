package chain

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFingerprint(t *testing.T) {
	hexFP := strings.Repeat("ab", 32)

	fp, err := ParseFingerprint("0x" + hexFP)
	require.NoError(t, err)
	assert.Equal(t, "0x"+hexFP, "0x"+hex.EncodeToString(fp[:]))

	// Without prefix and with mixed case.
	fp2, err := ParseFingerprint(strings.ToUpper(hexFP))
	require.NoError(t, err)
	assert.Equal(t, fp, fp2)

	_, err = ParseFingerprint("0x1234")
	assert.Error(t, err, "short fingerprints are rejected")
	_, err = ParseFingerprint("0x" + strings.Repeat("zz", 32))
	assert.Error(t, err, "non-hex fingerprints are rejected")
}

func TestAnchorCalldata(t *testing.T) {
	fp, err := ParseFingerprint("0x" + strings.Repeat("cd", 32))
	require.NoError(t, err)

	data := anchorCalldata(fp)
	require.Len(t, data, 36)
	assert.Equal(t, anchorSelector, data[:4])
	assert.Equal(t, fp[:], data[4:])
	assert.Len(t, anchorSelector, 4)
}

func TestAnchoredTopic0_Shape(t *testing.T) {
	assert.Regexp(t, `^0x[0-9a-f]{64}$`, AnchoredTopic0)
}

func TestFingerprintFromLogData(t *testing.T) {
	fpHex := strings.Repeat("ef", 32)
	// Event data: fingerprint word, then a padded timestamp word.
	data := "0x" + fpHex + strings.Repeat("00", 32)

	got, err := fingerprintFromLogData(data)
	require.NoError(t, err)
	assert.Equal(t, fpHex, hex.EncodeToString(got[:]))

	_, err = fingerprintFromLogData("0x1234")
	assert.Error(t, err, "truncated data is rejected")
	_, err = fingerprintFromLogData("0xzz")
	assert.Error(t, err)
}
