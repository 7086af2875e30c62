// Package iso generates ISO 20022 payment message artifacts for receipts.
// The messages are pragmatic, minimal renditions of each type, shaped for
// wallet-to-wallet payments: party identifiers carry the wallet address
// under a proprietary WALLET scheme and agents are NOTPROVIDED.
package iso

import (
	"encoding/xml"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const (
	nsPain001 = "urn:iso:std:iso:20022:tech:xsd:pain.001.001.09"
	nsPain002 = "urn:iso:std:iso:20022:tech:xsd:pain.002.001.10"
	nsPacs004 = "urn:iso:std:iso:20022:tech:xsd:pacs.004.001.09"
	nsCamt054 = "urn:iso:std:iso:20022:tech:xsd:camt.054.001.09"

	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

	defaultInitiatingParty = "ISO Evidence Gateway"
)

// Generator implements ports.MessageGenerator.
type Generator struct {
	orgName string
}

// NewGenerator creates a Generator. orgName becomes the initiating party
// name on pain.001 messages; empty uses a generic default.
func NewGenerator(orgName string) *Generator {
	if orgName == "" {
		orgName = defaultInitiatingParty
	}
	return &Generator{orgName: orgName}
}

func isoDateTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

func isoDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func marshalDocument(doc any) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding iso document: %w", err)
	}
	return append([]byte(xmlHeader), append(body, '\n')...), nil
}

// Shared ISO party/account building blocks.

type schemeName struct {
	Prtry string `xml:"Prtry"`
}

type otherID struct {
	ID      string      `xml:"Id"`
	SchmeNm *schemeName `xml:"SchmeNm,omitempty"`
}

type privateID struct {
	Othr otherID `xml:"Othr"`
}

type partyChoiceID struct {
	PrvtID privateID `xml:"PrvtId"`
}

type party struct {
	Nm string         `xml:"Nm,omitempty"`
	ID *partyChoiceID `xml:"Id,omitempty"`
}

type accountID struct {
	Othr otherID `xml:"Othr"`
}

type account struct {
	ID accountID `xml:"Id"`
}

type finInstitutionID struct {
	Othr otherID `xml:"Othr"`
}

type agent struct {
	FinInstnID finInstitutionID `xml:"FinInstnId"`
}

type currencyAmount struct {
	Ccy   string `xml:"Ccy,attr"`
	Value string `xml:",chardata"`
}

func walletParty(addr string) party {
	return party{ID: &partyChoiceID{PrvtID: privateID{Othr: otherID{
		ID:      addr,
		SchmeNm: &schemeName{Prtry: "WALLET"},
	}}}}
}

func walletAccount(addr string) account {
	return account{ID: accountID{Othr: otherID{
		ID:      addr,
		SchmeNm: &schemeName{Prtry: "WALLET_ACCOUNT"},
	}}}
}

func notProvidedAgent() agent {
	return agent{FinInstnID: finInstitutionID{Othr: otherID{ID: "NOTPROVIDED"}}}
}

// mulRound2 multiplies two decimal strings and rounds the product to two
// places, ties to even. Used for fiat-equivalent amounts.
func mulRound2(amount, rate string) (string, error) {
	a, ok := new(big.Rat).SetString(amount)
	if !ok {
		return "", fmt.Errorf("invalid decimal amount %q", amount)
	}
	r, ok := new(big.Rat).SetString(rate)
	if !ok {
		return "", fmt.Errorf("invalid decimal rate %q", rate)
	}

	cents := new(big.Rat).Mul(a, r)
	cents.Mul(cents, big.NewRat(100, 1))

	q, rem := new(big.Int).QuoRem(cents.Num(), cents.Denom(), new(big.Int))
	twice := new(big.Int).Lsh(new(big.Int).Abs(rem), 1)
	switch twice.Cmp(cents.Denom()) {
	case 1:
		q.Add(q, big.NewInt(1))
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}

	s := q.String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	for len(s) < 3 {
		s = "0" + s
	}
	out := s[:len(s)-2] + "." + s[len(s)-2:]
	if neg {
		out = "-" + out
	}
	return out, nil
}
