package iso

import (
	"encoding/xml"

	"iso-evidence-gateway/internal/core/domain"
)

type pain002Document struct {
	XMLName xml.Name      `xml:"Document"`
	Xmlns   string        `xml:"xmlns,attr"`
	Rpt     cstmrPmtStsRpt `xml:"CstmrPmtStsRpt"`
}

type cstmrPmtStsRpt struct {
	GrpHdr           pain002GrpHdr    `xml:"GrpHdr"`
	OrgnlGrpInfAndSts orgnlGrpInfAndSts `xml:"OrgnlGrpInfAndSts"`
	OrgnlPmtInfAndSts orgnlPmtInfAndSts `xml:"OrgnlPmtInfAndSts"`
}

type pain002GrpHdr struct {
	MsgID   string `xml:"MsgId"`
	CreDtTm string `xml:"CreDtTm"`
}

type orgnlGrpInfAndSts struct {
	OrgnlMsgID  string `xml:"OrgnlMsgId"`
	OrgnlNbOfTxs string `xml:"OrgnlNbOfTxs"`
	GrpSts      string `xml:"GrpSts"`
}

type orgnlPmtInfAndSts struct {
	OrgnlPmtInfID string       `xml:"OrgnlPmtInfId"`
	TxInfAndSts   txInfAndSts  `xml:"TxInfAndSts"`
}

type txInfAndSts struct {
	OrgnlEndToEndID string `xml:"OrgnlEndToEndId"`
}

// StatusCode maps a receipt status to the external payment status code
// reported in pain.002 messages.
func StatusCode(status domain.ReceiptStatus) string {
	switch status {
	case domain.ReceiptStatusAnchored:
		return "ACSC"
	case domain.ReceiptStatusFailed:
		return "RJCT"
	default:
		return "PDNG"
	}
}

// GeneratePain002 builds a payment status report reflecting the receipt's
// current lifecycle state.
func (g *Generator) GeneratePain002(receipt *domain.Receipt) ([]byte, error) {
	rid := receipt.ID.String()
	doc := pain002Document{
		Xmlns: nsPain002,
		Rpt: cstmrPmtStsRpt{
			GrpHdr: pain002GrpHdr{
				MsgID:   receipt.Reference,
				CreDtTm: isoDateTime(receipt.CreatedAt),
			},
			OrgnlGrpInfAndSts: orgnlGrpInfAndSts{
				OrgnlMsgID:  receipt.Reference,
				OrgnlNbOfTxs: "1",
				GrpSts:      StatusCode(receipt.Status),
			},
			OrgnlPmtInfAndSts: orgnlPmtInfAndSts{
				OrgnlPmtInfID: rid,
				TxInfAndSts:   txInfAndSts{OrgnlEndToEndID: rid},
			},
		},
	}
	return marshalDocument(doc)
}
