package iso

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"iso-evidence-gateway/internal/core/domain"
	"iso-evidence-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isoTestReceipt() *domain.Receipt {
	return &domain.Receipt{
		ID:             uuid.MustParse("5d3f2c8e-0000-4000-8000-000000000042"),
		Reference:      "tip-xyz",
		Chain:          "flare",
		Amount:         "12.5",
		Currency:       "FLR",
		SenderWallet:   "0xaaaa",
		ReceiverWallet: "0xbbbb",
		Status:         domain.ReceiptStatusPending,
		CreatedAt:      time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestGeneratePain001(t *testing.T) {
	g := NewGenerator("Acme Payments")
	out, err := g.GeneratePain001(isoTestReceipt(), nil)
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, xmlHeader))
	assert.Contains(t, s, nsPain001)
	assert.Contains(t, s, "<MsgId>tip-xyz</MsgId>")
	assert.Contains(t, s, "<CreDtTm>2024-06-01T10:30:00Z</CreDtTm>")
	assert.Contains(t, s, "<ReqdExctnDt>2024-06-01</ReqdExctnDt>")
	assert.Contains(t, s, "<Nm>Acme Payments</Nm>")
	assert.Contains(t, s, `<InstdAmt Ccy="FLR">12.5</InstdAmt>`)
	assert.Contains(t, s, "<Prtry>WALLET</Prtry>")
	assert.Contains(t, s, "<Id>NOTPROVIDED</Id>")
	assert.Contains(t, s, "<Ustrd>tip-xyz</Ustrd>")
	assert.NotContains(t, s, "EqvtAmt", "no FX detail, no equivalent amount")

	// Must stay well-formed.
	assert.NoError(t, xml.Unmarshal(out, new(pain001Document)))
}

func TestGeneratePain001_WithFX(t *testing.T) {
	g := NewGenerator("")
	fx := &ports.FXDetail{BaseCurrency: "USD", QuoteCurrency: "FLR", Rate: "0.02"}

	out, err := g.GeneratePain001(isoTestReceipt(), fx)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `<EqvtAmt Ccy="USD">0.25</EqvtAmt>`)
	assert.Contains(t, s, "<XchgRate>0.02</XchgRate>")
}

func TestGeneratePain001_UnusableFXDegrades(t *testing.T) {
	g := NewGenerator("")
	fx := &ports.FXDetail{BaseCurrency: "USD", Rate: "not-a-number"}

	out, err := g.GeneratePain001(isoTestReceipt(), fx)
	require.NoError(t, err, "a bad rate must not fail message generation")
	assert.NotContains(t, string(out), "EqvtAmt")
}

func TestGeneratePacs004(t *testing.T) {
	g := NewGenerator("")
	original := isoTestReceipt()

	out, err := g.GeneratePacs004(original, "refund-123", "CUST")
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, nsPacs004)
	assert.Contains(t, s, "<RtrId>refund-123</RtrId>")
	assert.Contains(t, s, "<OrgnlEndToEndId>"+original.ID.String()+"</OrgnlEndToEndId>")
	assert.Contains(t, s, `<RtrdInstdAmt Ccy="FLR">12.5</RtrdInstdAmt>`)
	assert.Contains(t, s, "<Cd>CUST</Cd>")
	// The return flows receiver -> sender.
	dbtrIdx := strings.Index(s, "0xbbbb")
	cdtrIdx := strings.Index(s, "0xaaaa")
	assert.True(t, dbtrIdx > 0 && cdtrIdx > dbtrIdx, "return chain must reverse the parties")
}

func TestGeneratePacs004_NoReason(t *testing.T) {
	g := NewGenerator("")
	out, err := g.GeneratePacs004(isoTestReceipt(), "refund-123", "")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "RtrRsnInf")
}

func TestGeneratePain002_StatusCodes(t *testing.T) {
	tests := []struct {
		status domain.ReceiptStatus
		code   string
	}{
		{domain.ReceiptStatusAnchored, "ACSC"},
		{domain.ReceiptStatusFailed, "RJCT"},
		{domain.ReceiptStatusAwaitingAnchor, "PDNG"},
		{domain.ReceiptStatusPending, "PDNG"},
	}
	g := NewGenerator("")
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			rec := isoTestReceipt()
			rec.Status = tt.status
			out, err := g.GeneratePain002(rec)
			require.NoError(t, err)
			assert.Contains(t, string(out), "<GrpSts>"+tt.code+"</GrpSts>")
		})
	}
}

func TestGenerateCamt054(t *testing.T) {
	g := NewGenerator("")

	rec := isoTestReceipt()
	out, err := g.GenerateCamt054(rec)
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, nsCamt054)
	assert.Contains(t, s, "<CdtDbtInd>PDNG</CdtDbtInd>")
	assert.Contains(t, s, "<Id>0xbbbb</Id>")

	rec.Status = domain.ReceiptStatusAnchored
	out, err = g.GenerateCamt054(rec)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<CdtDbtInd>CRDT</CdtDbtInd>")
}

func TestMulRound2(t *testing.T) {
	tests := []struct {
		amount, rate, want string
	}{
		{"12.5", "0.02", "0.25"},
		{"1", "1", "1.00"},
		{"0.005", "1", "0.00"},  // tie rounds to even (0)
		{"0.015", "1", "0.02"},  // tie rounds to even (2)
		{"0.000000000000000001", "1000000000000000000", "1.00"},
	}
	for _, tt := range tests {
		got, err := mulRound2(tt.amount, tt.rate)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s * %s", tt.amount, tt.rate)
	}

	_, err := mulRound2("x", "1")
	assert.Error(t, err)
}
