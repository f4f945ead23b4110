package pdf

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"mtr_backend/internal/domain/entities"

	"github.com/go-pdf/fpdf"
)

// Renderer produces the PDF documents attached to notification emails and
// stored back on the source records.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

var familyTitles = map[entities.Family]string{
	entities.FamilyCompression: "Ressort de compression",
	entities.FamilyTraction:    "Ressort de traction",
	entities.FamilyTorsion:     "Ressort de torsion",
	entities.FamilyWire:        "Fil dressé coupé",
	entities.FamilyGrid:        "Grille métallique",
	entities.FamilyOther:       "Autre article",
}

type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// newDocument initializes an A4 page with the cp1252 translator so the
// French labels (é, è, à) survive the core-font encoding.
func newDocument(title string) *document {
	p := fpdf.New("P", "mm", "A4", "")
	tr := p.UnicodeTranslatorFromDescriptor("")
	p.SetTitle(tr(title), false)
	p.SetAutoPageBreak(true, 18)
	p.AddPage()

	p.SetFont("Helvetica", "B", 16)
	p.SetTextColor(20, 20, 20)
	p.CellFormat(0, 10, tr("MTR — Manufacture Tunisienne des Ressorts"), "", 1, "C", false, 0, "")
	p.SetFont("Helvetica", "B", 13)
	p.CellFormat(0, 9, tr(title), "", 1, "C", false, 0, "")
	p.Ln(4)

	return &document{pdf: p, tr: tr}
}

func (d *document) section(label string) {
	d.pdf.SetFont("Helvetica", "B", 11)
	d.pdf.SetFillColor(235, 235, 235)
	d.pdf.CellFormat(0, 7, d.tr(label), "", 1, "L", true, 0, "")
	d.pdf.Ln(1)
}

func (d *document) row(label, value string) {
	if value == "" {
		return
	}
	d.pdf.SetFont("Helvetica", "B", 10)
	d.pdf.CellFormat(55, 6, d.tr(label), "", 0, "L", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.MultiCell(0, 6, d.tr(value), "", "L", false)
}

func (d *document) paragraph(text string) {
	if text == "" {
		return
	}
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.MultiCell(0, 5.5, d.tr(text), "", "L", false)
	d.pdf.Ln(2)
}

func (d *document) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func num(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.3g", v)
}

func money(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

func (r *Renderer) RenderQuoteRequest(ctx context.Context, qr entities.QuoteRequest, owner entities.User) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d := newDocument("Demande de devis " + qr.Number)

	d.section("Demande")
	d.row("Numéro", qr.Number)
	d.row("Type", familyTitles[qr.Family])
	d.row("Date", qr.CreatedAt.Format("02/01/2006 15:04"))

	d.section("Client")
	d.row("Nom", owner.FullName())
	d.row("Email", owner.Email)
	d.row("Téléphone", owner.Phone)
	d.row("Adresse", owner.Address)

	d.section("Caractéristiques")
	writeSpec(d, qr.Family, qr.Spec)

	if qr.Requirements != "" {
		d.section("Exigences particulières")
		d.paragraph(qr.Requirements)
	}
	if qr.Remarks != "" {
		d.section("Remarques")
		d.paragraph(qr.Remarks)
	}
	if len(qr.Attachments) > 0 {
		d.section("Pièces jointes")
		for _, a := range qr.Attachments {
			d.row("-", a.Filename)
		}
	}

	return d.output()
}

func writeSpec(d *document, family entities.Family, spec entities.QuoteRequestSpec) {
	switch family {
	case entities.FamilyCompression:
		s := spec.Compression
		d.row("Diamètre du fil (d)", num(s.WireDiameter)+" mm")
		d.row("Diamètre extérieur (De)", num(s.OuterDiameter)+" mm")
		d.row("Diamètre intérieur (Di)", num(s.InnerDiameter)+" mm")
		d.row("Longueur libre (Lo)", num(s.FreeLength)+" mm")
		d.row("Nombre de spires", num(s.TotalCoils))
		if s.Pitch > 0 {
			d.row("Pas", num(s.Pitch)+" mm")
		}
		d.row("Sens d'enroulement", s.WindingSense)
		d.row("Type d'extrémité", s.EndType)
		d.row("Matière", s.Material)
		d.row("Quantité", num(s.Quantity))
	case entities.FamilyTraction:
		s := spec.Traction
		d.row("Diamètre du fil (d)", num(s.WireDiameter)+" mm")
		d.row("Diamètre extérieur (De)", num(s.OuterDiameter)+" mm")
		d.row("Longueur du corps (Lo)", num(s.BodyLength)+" mm")
		d.row("Nombre de spires", num(s.TotalCoils))
		d.row("Type d'accrochage", s.HookType)
		d.row("Position des anneaux", s.HookPosition)
		d.row("Matière", s.Material)
		d.row("Quantité", num(s.Quantity))
	case entities.FamilyTorsion:
		s := spec.Torsion
		d.row("Diamètre du fil (d)", num(s.WireDiameter)+" mm")
		d.row("Diamètre extérieur (De)", num(s.OuterDiameter)+" mm")
		d.row("Longueur du corps (Lc)", num(s.BodyLength)+" mm")
		d.row("Nombre de spires", num(s.TotalCoils))
		if s.LegLength1 > 0 {
			d.row("Longueur branche 1", num(s.LegLength1)+" mm")
		}
		if s.LegLength2 > 0 {
			d.row("Longueur branche 2", num(s.LegLength2)+" mm")
		}
		if s.LegAngle > 0 {
			d.row("Angle entre branches", num(s.LegAngle)+"°")
		}
		d.row("Matière", s.Material)
		d.row("Quantité", num(s.Quantity))
	case entities.FamilyWire:
		s := spec.Wire
		d.row("Longueur", num(s.LengthValue)+" "+s.LengthUnit)
		d.row("Diamètre", num(s.Diameter)+" mm")
		d.row("Matière", s.Material)
		d.row("Quantité", num(s.QuantityValue)+" "+s.QuantityUnit)
	case entities.FamilyGrid:
		s := spec.Grid
		d.row("Longueur", num(s.Length)+" mm")
		d.row("Largeur", num(s.Width)+" mm")
		if s.MeshSpacing > 0 {
			d.row("Maille", num(s.MeshSpacing)+" mm")
		}
		d.row("Diamètre du fil", num(s.WireDiameter)+" mm")
		d.row("Finition", s.Finish)
		d.row("Matière", s.Material)
		d.row("Quantité", num(s.Quantity))
	case entities.FamilyOther:
		s := spec.Other
		d.row("Désignation", s.Designation)
		d.row("Dimensions", s.Dimensions)
		d.row("Matière", s.Material)
		d.row("Quantité", num(s.Quantity))
		d.row("Description", s.Description)
	}
}

var natureLabels = map[entities.ComplaintNature]string{
	entities.NatureNonConforming:    "Produit non conforme",
	entities.NatureTransportDamage:  "Détérioration pendant le transport",
	entities.NatureQuantityError:    "Erreur de quantité",
	entities.NatureLateDelivery:     "Retard de livraison",
	entities.NatureFunctionalDefect: "Défaut fonctionnel",
	entities.NatureOther:            "Autre",
}

var expectationLabels = map[entities.ComplaintExpectation]string{
	entities.ExpectReplacement: "Remplacement",
	entities.ExpectRepair:      "Réparation",
	entities.ExpectRefund:      "Remboursement",
	entities.ExpectOther:       "Autre",
}

var docTypeLabels = map[entities.OrderDocType]string{
	entities.OrderDocInvoice:      "Facture",
	entities.OrderDocDeliveryNote: "Bon de livraison",
	entities.OrderDocPurchase:     "Bon de commande",
	entities.OrderDocQuote:        "Devis",
}

func (r *Renderer) RenderComplaint(ctx context.Context, c entities.Complaint, owner entities.User) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d := newDocument("Réclamation client")

	d.section("Client")
	d.row("Nom", owner.FullName())
	d.row("Email", owner.Email)
	d.row("Téléphone", owner.Phone)
	d.row("Date", c.CreatedAt.Format("02/01/2006 15:04"))

	d.section("Commande concernée")
	d.row("Document", docTypeLabels[c.Order.DocType])
	d.row("Numéro", c.Order.Number)
	if c.Order.DeliveryDate != nil {
		d.row("Date de livraison", c.Order.DeliveryDate.Format("02/01/2006"))
	}
	d.row("Référence produit", c.Order.ProductRef)
	if c.Order.Quantity > 0 {
		d.row("Quantité concernée", num(c.Order.Quantity))
	}

	d.section("Réclamation")
	d.row("Nature", natureLabels[c.Nature])
	d.row("Attente", expectationLabels[c.Expectation])
	if c.Description != "" {
		d.paragraph(c.Description)
	}

	if len(c.Attachments) > 0 {
		d.section("Pièces jointes")
		for _, a := range c.Attachments {
			d.row("-", a.Filename)
		}
	}

	return d.output()
}

func (r *Renderer) RenderIssuedQuote(ctx context.Context, q entities.IssuedQuote) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d := newDocument("Devis " + q.Number)
	p := d.pdf

	d.section("Client")
	d.row("Nom", q.Client.Name)
	d.row("Adresse", q.Client.Address)
	d.row("Téléphone", q.Client.Phone)
	d.row("Matricule fiscal", q.Client.TaxCode)
	d.row("Date", q.CreatedAt.Format("02/01/2006"))
	if q.SourceRequestNumber != "" {
		d.row("Demande d'origine", q.SourceRequestNumber)
	}

	d.section("Articles")

	widths := []float64{28, 62, 12, 16, 24, 14, 14, 20}
	headers := []string{"Référence", "Désignation", "Unité", "Qté", "P.U. HT", "Rem. %", "TVA %", "Total HT"}
	p.SetFont("Helvetica", "B", 9)
	p.SetFillColor(245, 245, 245)
	for i, h := range headers {
		p.CellFormat(widths[i], 7, d.tr(h), "1", 0, "C", true, 0, "")
	}
	p.Ln(-1)

	p.SetFont("Helvetica", "", 9)
	for _, line := range q.Lines {
		cols := []string{
			line.Reference,
			line.Designation,
			line.Unit,
			num(line.Quantity),
			money(line.UnitPriceHT),
			num(line.DiscountPct),
			num(line.VATPct),
			money(line.TotalHT),
		}
		for i, c := range cols {
			align := "R"
			if i < 3 {
				align = "L"
			}
			p.CellFormat(widths[i], 6, d.tr(c), "1", 0, align, false, 0, "")
		}
		p.Ln(-1)
	}
	p.Ln(4)

	d.section("Totaux")
	d.row("Total HT", money(q.Totals.TotalHT)+" TND")
	d.row("Net HT", money(q.Totals.NetHT)+" TND")
	d.row(fmt.Sprintf("FODEC (%s%%)", num(q.Totals.FodecPct)), money(q.Totals.Fodec)+" TND")
	d.row("TVA", money(q.Totals.VAT)+" TND")
	d.row("Timbre fiscal", money(q.Totals.Stamp)+" TND")
	p.SetFont("Helvetica", "B", 11)
	p.CellFormat(55, 8, d.tr("Total TTC"), "", 0, "L", false, 0, "")
	p.CellFormat(0, 8, d.tr(money(q.Totals.TotalTTC)+" TND"), "", 1, "L", false, 0, "")

	p.Ln(6)
	p.SetFont("Helvetica", "I", 8)
	p.SetTextColor(100, 100, 100)
	p.CellFormat(0, 5, d.tr("Devis généré le "+time.Now().Format("02/01/2006")+" — valable 30 jours."), "", 1, "L", false, 0, "")

	return d.output()
}
