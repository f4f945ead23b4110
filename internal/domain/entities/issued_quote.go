package entities

import "time"

// ClientSnapshot denormalizes the customer's contact details onto the quote
// at creation time, so the document stays readable even if the user record
// changes later.
type ClientSnapshot struct {
	UserID  string `json:"user_id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	TaxCode string `json:"tax_code,omitempty"`
}

// QuoteLine is one priced line of an issued quote.
type QuoteLine struct {
	Reference   string  `json:"reference,omitempty"`
	Designation string  `json:"designation"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	UnitPriceHT float64 `json:"unit_price_ht"`
	DiscountPct float64 `json:"discount_pct"`
	VATPct      float64 `json:"vat_pct"`
	TotalHT     float64 `json:"total_ht"`
}

// QuoteTotals carries the Tunisian invoice arithmetic: net HT after
// discounts, VAT by rate, FODEC levy, fiscal stamp, total TTC.
type QuoteTotals struct {
	TotalHT  float64 `json:"mtht"`
	NetHT    float64 `json:"mtnetht"`
	VAT      float64 `json:"mttva"`
	FodecPct float64 `json:"fodec_pct"`
	Fodec    float64 `json:"mfodec"`
	Stamp    float64 `json:"timbre"`
	TotalTTC float64 `json:"mttc"`
}

// IssuedQuote is a staff-confirmed quote (devis) derived from a quote
// request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - numero carries its own DV sequence, independent from the DDV one.
//
// SourceRequestNumber exists because historical quotes were sometimes linked
// to their request only by the human-readable number, not by id. Lookups and
// the reconciliation scan therefore match on either field.

type IssuedQuote struct {
	ID                  string         `json:"id"`
	Number              string         `json:"numero"`
	SourceRequestID     string         `json:"source_request_id,omitempty"`
	SourceRequestNumber string         `json:"source_request_numero,omitempty"`
	SourceFamily        Family         `json:"source_family,omitempty"`
	Client              ClientSnapshot `json:"client"`
	Lines               []QuoteLine    `json:"items"`
	Totals              QuoteTotals    `json:"totals"`
	CreatedAt           time.Time      `json:"created_at"`
}

// ConversionRef is the issued-quote side projection used by the
// reconciliation scan: which request ids/numbers already have a quote.
type ConversionRef struct {
	SourceRequestID     string `json:"source_request_id,omitempty"`
	SourceRequestNumber string `json:"source_request_numero,omitempty"`
}
