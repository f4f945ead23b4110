package response

import (
	"time"

	"mtr_backend/internal/domain/entities"
)

type ClientResponse struct {
	UserID  string `json:"user_id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	TaxCode string `json:"tax_code,omitempty"`
}

type QuoteLineResponse struct {
	Reference   string  `json:"reference,omitempty"`
	Designation string  `json:"designation"`
	Unit        string  `json:"unite"`
	Quantity    float64 `json:"quantite"`
	UnitPriceHT float64 `json:"puht"`
	DiscountPct float64 `json:"remise_pct"`
	VATPct      float64 `json:"tva_pct"`
	TotalHT     float64 `json:"total_ht"`
}

type QuoteTotalsResponse struct {
	TotalHT  float64 `json:"mtht"`
	NetHT    float64 `json:"mtnetht"`
	VAT      float64 `json:"mttva"`
	FodecPct float64 `json:"fodec_pct"`
	Fodec    float64 `json:"mfodec"`
	Stamp    float64 `json:"timbre"`
	TotalTTC float64 `json:"mttc"`
}

type QuoteResponse struct {
	ID                  string              `json:"id"`
	Number              string              `json:"numero"`
	SourceRequestID     string              `json:"source_request_id,omitempty"`
	SourceRequestNumber string              `json:"source_request_numero,omitempty"`
	SourceFamily        string              `json:"source_family,omitempty"`
	Client              ClientResponse      `json:"client"`
	Lines               []QuoteLineResponse `json:"items"`
	Totals              QuoteTotalsResponse `json:"totals"`
	EmailSent           bool                `json:"email_sent"`
	CreatedAt           time.Time           `json:"created_at"`
}

func FromIssuedQuote(q entities.IssuedQuote, emailSent bool) QuoteResponse {
	resp := QuoteResponse{
		ID:                  q.ID,
		Number:              q.Number,
		SourceRequestID:     q.SourceRequestID,
		SourceRequestNumber: q.SourceRequestNumber,
		SourceFamily:        string(q.SourceFamily),
		Client: ClientResponse{
			UserID:  q.Client.UserID,
			Name:    q.Client.Name,
			Email:   q.Client.Email,
			Address: q.Client.Address,
			Phone:   q.Client.Phone,
			TaxCode: q.Client.TaxCode,
		},
		Totals: QuoteTotalsResponse{
			TotalHT:  q.Totals.TotalHT,
			NetHT:    q.Totals.NetHT,
			VAT:      q.Totals.VAT,
			FodecPct: q.Totals.FodecPct,
			Fodec:    q.Totals.Fodec,
			Stamp:    q.Totals.Stamp,
			TotalTTC: q.Totals.TotalTTC,
		},
		EmailSent: emailSent,
		CreatedAt: q.CreatedAt,
	}
	for _, line := range q.Lines {
		resp.Lines = append(resp.Lines, QuoteLineResponse{
			Reference:   line.Reference,
			Designation: line.Designation,
			Unit:        line.Unit,
			Quantity:    line.Quantity,
			UnitPriceHT: line.UnitPriceHT,
			DiscountPct: line.DiscountPct,
			VATPct:      line.VATPct,
			TotalHT:     line.TotalHT,
		})
	}
	return resp
}

// NextNumberResponse previews the number the next issued quote would take.
// Informational only: the preview does not reserve anything.
type NextNumberResponse struct {
	Number string `json:"numero"`
}
