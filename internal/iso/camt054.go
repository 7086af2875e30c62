package iso

import (
	"encoding/xml"

	"iso-evidence-gateway/internal/core/domain"
)

type camt054Document struct {
	XMLName xml.Name        `xml:"Document"`
	Xmlns   string          `xml:"xmlns,attr"`
	Ntfctn  bkToCstmrNtfctn `xml:"BkToCstmrDbtCdtNtfctn"`
}

type bkToCstmrNtfctn struct {
	GrpHdr camt054GrpHdr `xml:"GrpHdr"`
	Ntfctn notification  `xml:"Ntfctn"`
}

type camt054GrpHdr struct {
	MsgID   string `xml:"MsgId"`
	CreDtTm string `xml:"CreDtTm"`
}

type notification struct {
	ID   string  `xml:"Id"`
	Acct account `xml:"Acct"`
	Ntry entry   `xml:"Ntry"`
}

type entry struct {
	Amt           currencyAmount `xml:"Amt"`
	CdtDbtInd     string         `xml:"CdtDbtInd"`
	AddtlNtryInf  string         `xml:"AddtlNtryInf"`
}

// GenerateCamt054 builds a debit/credit notification for the receipt's
// receiving wallet. The entry reads CRDT once anchored, PDNG before.
func (g *Generator) GenerateCamt054(receipt *domain.Receipt) ([]byte, error) {
	ind := "PDNG"
	if receipt.Status == domain.ReceiptStatusAnchored {
		ind = "CRDT"
	}

	doc := camt054Document{
		Xmlns: nsCamt054,
		Ntfctn: bkToCstmrNtfctn{
			GrpHdr: camt054GrpHdr{
				MsgID:   receipt.Reference,
				CreDtTm: isoDateTime(receipt.CreatedAt),
			},
			Ntfctn: notification{
				ID: receipt.ID.String(),
				Acct: account{ID: accountID{Othr: otherID{
					ID: receipt.ReceiverWallet,
				}}},
				Ntry: entry{
					Amt:          currencyAmount{Ccy: receipt.Currency, Value: receipt.Amount},
					CdtDbtInd:    ind,
					AddtlNtryInf: receipt.Reference,
				},
			},
		},
	}
	return marshalDocument(doc)
}
