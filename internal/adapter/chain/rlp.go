package chain

import "math/big"

// Minimal RLP encoding, enough to serialize the two transaction envelopes
// the signer produces. Strings and lists only; no decoding.

// rlpBytes encodes b as an RLP string item.
func rlpBytes(b []byte) []byte {
	if len(b) == 1 && b[0] < 0x80 {
		return b
	}
	return append(rlpLength(len(b), 0x80), b...)
}

// rlpUint encodes v as a minimal big-endian string item. Zero and nil encode
// as the empty string, per the yellow paper's integer convention.
func rlpUint(v *big.Int) []byte {
	if v == nil || v.Sign() == 0 {
		return []byte{0x80}
	}
	return rlpBytes(v.Bytes())
}

func rlpUint64(v uint64) []byte {
	return rlpUint(new(big.Int).SetUint64(v))
}

// rlpList concatenates already-encoded items under a list header.
func rlpList(items ...[]byte) []byte {
	var payload []byte
	for _, item := range items {
		payload = append(payload, item...)
	}
	return append(rlpLength(len(payload), 0xc0), payload...)
}

func rlpLength(n int, offset byte) []byte {
	if n <= 55 {
		return []byte{offset + byte(n)}
	}
	size := big.NewInt(int64(n)).Bytes()
	header := make([]byte, 0, 1+len(size))
	header = append(header, offset+55+byte(len(size)))
	return append(header, size...)
}
