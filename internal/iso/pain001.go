package iso

import (
	"encoding/xml"

	"iso-evidence-gateway/internal/core/domain"
	"iso-evidence-gateway/internal/core/ports"
)

type pain001Document struct {
	XMLName xml.Name       `xml:"Document"`
	Xmlns   string         `xml:"xmlns,attr"`
	Initn   cstmrCdtTrfInitn `xml:"CstmrCdtTrfInitn"`
}

type cstmrCdtTrfInitn struct {
	GrpHdr pain001GrpHdr `xml:"GrpHdr"`
	PmtInf pmtInf        `xml:"PmtInf"`
}

type pain001GrpHdr struct {
	MsgID    string `xml:"MsgId"`
	CreDtTm  string `xml:"CreDtTm"`
	NbOfTxs  string `xml:"NbOfTxs"`
	InitgPty party  `xml:"InitgPty"`
}

type pmtInf struct {
	PmtInfID    string        `xml:"PmtInfId"`
	PmtMtd      string        `xml:"PmtMtd"`
	NbOfTxs     string        `xml:"NbOfTxs"`
	CtrlSum     string        `xml:"CtrlSum"`
	ReqdExctnDt string        `xml:"ReqdExctnDt"`
	Dbtr        party         `xml:"Dbtr"`
	DbtrAcct    account       `xml:"DbtrAcct"`
	DbtrAgt     agent         `xml:"DbtrAgt"`
	ChrgBr      string        `xml:"ChrgBr"`
	CdtTrfTxInf cdtTrfTxInf   `xml:"CdtTrfTxInf"`
}

type cdtTrfTxInf struct {
	PmtID    pmtID    `xml:"PmtId"`
	Amt      txAmount `xml:"Amt"`
	CdtrAgt  agent    `xml:"CdtrAgt"`
	Cdtr     party    `xml:"Cdtr"`
	CdtrAcct account  `xml:"CdtrAcct"`
	RmtInf   rmtInf   `xml:"RmtInf"`
}

type pmtID struct {
	EndToEndID string `xml:"EndToEndId"`
}

type txAmount struct {
	InstdAmt    currencyAmount  `xml:"InstdAmt"`
	EqvtAmt     *currencyAmount `xml:"EqvtAmt,omitempty"`
	XchgRateInf *xchgRateInf    `xml:"XchgRateInf,omitempty"`
}

type xchgRateInf struct {
	XchgRate string `xml:"XchgRate"`
}

type rmtInf struct {
	Ustrd string `xml:"Ustrd"`
}

// GeneratePain001 builds a single-transfer customer credit transfer
// initiation for the receipt. When fx carries a usable rate, the instructed
// amount is enriched with a fiat equivalent and the exchange rate; a rate
// that cannot be applied degrades to the plain message rather than failing.
func (g *Generator) GeneratePain001(receipt *domain.Receipt, fx *ports.FXDetail) ([]byte, error) {
	rid := receipt.ID.String()

	amt := txAmount{
		InstdAmt: currencyAmount{Ccy: receipt.Currency, Value: receipt.Amount},
	}
	if fx != nil && fx.Rate != "" && fx.BaseCurrency != "" {
		if eqvt, err := mulRound2(receipt.Amount, fx.Rate); err == nil {
			amt.EqvtAmt = &currencyAmount{Ccy: fx.BaseCurrency, Value: eqvt}
			amt.XchgRateInf = &xchgRateInf{XchgRate: fx.Rate}
		}
	}

	doc := pain001Document{
		Xmlns: nsPain001,
		Initn: cstmrCdtTrfInitn{
			GrpHdr: pain001GrpHdr{
				MsgID:    receipt.Reference,
				CreDtTm:  isoDateTime(receipt.CreatedAt),
				NbOfTxs:  "1",
				InitgPty: party{Nm: g.orgName},
			},
			PmtInf: pmtInf{
				PmtInfID:    rid,
				PmtMtd:      "TRF",
				NbOfTxs:     "1",
				CtrlSum:     receipt.Amount,
				ReqdExctnDt: isoDate(receipt.CreatedAt),
				Dbtr:        walletParty(receipt.SenderWallet),
				DbtrAcct:    walletAccount(receipt.SenderWallet),
				DbtrAgt:     notProvidedAgent(),
				ChrgBr:      "SLEV",
				CdtTrfTxInf: cdtTrfTxInf{
					PmtID:    pmtID{EndToEndID: rid},
					Amt:      amt,
					CdtrAgt:  notProvidedAgent(),
					Cdtr:     walletParty(receipt.ReceiverWallet),
					CdtrAcct: walletAccount(receipt.ReceiverWallet),
					RmtInf:   rmtInf{Ustrd: receipt.Reference},
				},
			},
		},
	}
	return marshalDocument(doc)
}
