package iso

import (
	"encoding/xml"

	"iso-evidence-gateway/internal/core/domain"
)

type pacs004Document struct {
	XMLName xml.Name `xml:"Document"`
	Xmlns   string   `xml:"xmlns,attr"`
	PmtRtr  pmtRtr   `xml:"PmtRtr"`
}

type pmtRtr struct {
	GrpHdr pacs004GrpHdr `xml:"GrpHdr"`
	TxInf  rtrTxInf      `xml:"TxInf"`
}

type pacs004GrpHdr struct {
	MsgID   string `xml:"MsgId"`
	CreDtTm string `xml:"CreDtTm"`
	NbOfTxs string `xml:"NbOfTxs"`
}

type rtrTxInf struct {
	RtrID           string         `xml:"RtrId"`
	OrgnlEndToEndID string         `xml:"OrgnlEndToEndId"`
	RtrdInstdAmt    currencyAmount `xml:"RtrdInstdAmt"`
	RtrRsnInf       *rtrRsnInf     `xml:"RtrRsnInf,omitempty"`
	RtrChain        rtrChain       `xml:"RtrChain"`
}

type rtrRsnInf struct {
	Rsn rtrRsn `xml:"Rsn"`
}

type rtrRsn struct {
	Cd string `xml:"Cd"`
}

// rtrChain reverses the original parties: the payment returns from the
// original receiver back to the original sender.
type rtrChain struct {
	Dbtr party `xml:"Dbtr"`
	Cdtr party `xml:"Cdtr"`
}

// GeneratePacs004 builds a payment return for a refund receipt, referencing
// the original receipt's end-to-end id and returning its amount.
func (g *Generator) GeneratePacs004(original *domain.Receipt, refundID, reasonCode string) ([]byte, error) {
	tx := rtrTxInf{
		RtrID:           refundID,
		OrgnlEndToEndID: original.ID.String(),
		RtrdInstdAmt:    currencyAmount{Ccy: original.Currency, Value: original.Amount},
		RtrChain: rtrChain{
			Dbtr: walletParty(original.ReceiverWallet),
			Cdtr: walletParty(original.SenderWallet),
		},
	}
	if reasonCode != "" {
		tx.RtrRsnInf = &rtrRsnInf{Rsn: rtrRsn{Cd: reasonCode}}
	}

	doc := pacs004Document{
		Xmlns: nsPacs004,
		PmtRtr: pmtRtr{
			GrpHdr: pacs004GrpHdr{
				MsgID:   refundID,
				CreDtTm: isoDateTime(original.CreatedAt),
				NbOfTxs: "1",
			},
			TxInf: tx,
		},
	}
	return marshalDocument(doc)
}
