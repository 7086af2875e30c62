package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize_SortsKeys(t *testing.T) {
	in := map[string]any{"zeta": 1, "alpha": 2, "mid": map[string]any{"b": 1, "a": 2}}

	out, err := Canonicalize(in)
	require.NoError(t, err)

	assert.Equal(t, `{"alpha":2,"mid":{"a":2,"b":1},"zeta":1}`, string(out))
}

func TestCanonicalize_NoWhitespace(t *testing.T) {
	out, err := Canonicalize(map[string]any{"files": []any{map[string]any{"name": "a", "size": 3}}})
	require.NoError(t, err)
	assert.NotContains(t, string(out), " ")
	assert.NotContains(t, string(out), "\n")
}

func TestCanonicalize_PreservesNumberLiterals(t *testing.T) {
	// Large integers and high-precision decimals must survive untouched;
	// a float64 round-trip would mangle both.
	raw := json.RawMessage(`{"size":9007199254740993,"amount":"0.000000000000000001"}`)
	var v any
	require.NoError(t, json.Unmarshal(raw, &v))

	out, err := Canonicalize(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"amount":"0.000000000000000001","size":9007199254740993}`, string(out))
}

func TestCanonicalize_RoundTripStable(t *testing.T) {
	in := map[string]any{
		"version":    "1.0",
		"reference":  "tip-001",
		"receipt_id": "8a2b6f2e-4242-4ef5-9572-000000000001",
		"files": []any{
			map[string]any{"name": "pain001.xml", "sha256": "0xabc", "size": 120},
			map[string]any{"name": "receipt.json", "sha256": "0xdef", "size": 64},
		},
	}

	first, err := Canonicalize(in)
	require.NoError(t, err)

	// canonicalize(parse(canonicalize(m))) == canonicalize(m)
	var parsed any
	require.NoError(t, json.Unmarshal(first, &parsed))
	second, err := Canonicalize(parsed)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCanonicalize_StructInput(t *testing.T) {
	type entry struct {
		Name string `json:"name"`
		Size int    `json:"size"`
	}
	out, err := Canonicalize(struct {
		B entry  `json:"b"`
		A string `json:"a"`
	}{B: entry{Name: "x", Size: 1}, A: "y"})
	require.NoError(t, err)
	assert.Equal(t, `{"a":"y","b":{"name":"x","size":1}}`, string(out))
}

func TestCanonicalize_EscapesStrings(t *testing.T) {
	out, err := Canonicalize(map[string]any{"s": "a\"b\n"})
	require.NoError(t, err)
	assert.Equal(t, `{"s":"a\"b\n"}`, string(out))
}

func TestFormatTimestamp(t *testing.T) {
	whole := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-01T12:00:00Z", FormatTimestamp(whole))

	micros := time.Date(2024, 3, 1, 12, 0, 0, 123456000, time.UTC)
	assert.Equal(t, "2024-03-01T12:00:00.123456Z", FormatTimestamp(micros))

	est := time.FixedZone("EST", -5*3600)
	offset := time.Date(2024, 3, 1, 7, 0, 0, 0, est)
	assert.Equal(t, "2024-03-01T12:00:00Z", FormatTimestamp(offset))
}
