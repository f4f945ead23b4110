package response

import (
	"testing"
	"time"

	"mtr_backend/internal/domain/entities"
)

func TestFromQuoteRequest(t *testing.T) {
	qr := entities.QuoteRequest{
		ID:      "id-1",
		Family:  entities.FamilyGrid,
		Number:  "DDV2500008",
		OwnerID: "user-1",
		Attachments: []entities.Attachment{
			{Filename: "plan.dxf", MimeType: "application/dxf", Size: 42, Data: []byte("secret")},
		},
		Rendered:  &entities.RenderedDocument{Data: []byte("%PDF"), ContentType: "application/pdf"},
		CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	resp := FromQuoteRequest(qr)
	if resp.Number != "DDV2500008" || resp.Family != "grille" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if !resp.HasPDF {
		t.Fatal("expected has_pdf")
	}
	if len(resp.Attachments) != 1 || resp.Attachments[0].Size != 42 {
		t.Fatalf("unexpected attachments: %+v", resp.Attachments)
	}
}

func TestFromQuoteRequestWithoutDocument(t *testing.T) {
	resp := FromQuoteRequest(entities.QuoteRequest{ID: "id-1", Family: entities.FamilyOther})
	if resp.HasPDF {
		t.Fatal("expected has_pdf false before finalize runs")
	}
}

func TestFromIssuedQuoteCopiesTotals(t *testing.T) {
	q := entities.IssuedQuote{
		ID:     "q-1",
		Number: "DV2500012",
		Lines:  []entities.QuoteLine{{Designation: "Ressort", Quantity: 100, UnitPriceHT: 1.25, TotalHT: 125}},
		Totals: entities.QuoteTotals{TotalHT: 125, NetHT: 125, VAT: 23.75, FodecPct: 1, Fodec: 1.25, TotalTTC: 150},
	}
	resp := FromIssuedQuote(q, true)
	if !resp.EmailSent {
		t.Fatal("expected email_sent")
	}
	if resp.Totals.TotalTTC != 150 || len(resp.Lines) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
