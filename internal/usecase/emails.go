package usecase

import (
	"fmt"
	"strings"

	"mtr_backend/internal/domain/entities"
	"mtr_backend/internal/usecase/interfaces"
)

var familyLabels = map[entities.Family]string{
	entities.FamilyCompression: "Ressort de Compression",
	entities.FamilyTraction:    "Ressort de Traction",
	entities.FamilyTorsion:     "Ressort de Torsion",
	entities.FamilyWire:        "Fil Dressé",
	entities.FamilyGrid:        "Grille Métallique",
	entities.FamilyOther:       "Autre Article",
}

// FamilyLabel returns the human label used in documents and email subjects.
func FamilyLabel(f entities.Family) string {
	if l, ok := familyLabels[f]; ok {
		return l
	}
	return string(f)
}

// humanSize formats a byte count the way the operational emails list
// attachments: "829 B", "1.5 MB".
func humanSize(n int64) string {
	units := []string{"B", "KB", "MB", "GB"}
	v := float64(n)
	i := 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}
	if v < 10 && i > 0 {
		return fmt.Sprintf("%.1f %s", v, units[i])
	}
	return fmt.Sprintf("%.0f %s", v, units[i])
}

// attachmentList renders the client-file section of the email body, skipping
// the generated PDF which always sits first.
func attachmentList(parts []interfaces.EmailPart) string {
	if len(parts) <= 1 {
		return "(aucun document client)"
	}
	lines := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		lines = append(lines, fmt.Sprintf("- %s (%s)", p.Filename, humanSize(int64(len(p.Data)))))
	}
	return strings.Join(lines, "\n")
}

func composeQuoteRequestEmail(qr entities.QuoteRequest, owner entities.User, parts []interfaces.EmailPart, from, to string) interfaces.Email {
	label := FamilyLabel(qr.Family)
	docs := attachmentList(parts)
	primary := parts[0]

	clientEmail := owner.Email
	if clientEmail == "" {
		clientEmail = "-"
	}
	clientPhone := owner.Phone
	if clientPhone == "" {
		clientPhone = "-"
	}
	clientAddr := owner.Address
	if clientAddr == "" {
		clientAddr = "-"
	}

	text := fmt.Sprintf(`Nouvelle demande de devis – %s

Numéro: %s
Date: %s

Infos client
- Nom: %s
- Email: %s
- Téléphone: %s
- Adresse: %s

Pièces jointes:
- PDF de la demande: %s (%s)
Documents client:
%s
`, label, qr.Number, qr.CreatedAt.Format("02/01/2006 15:04"),
		owner.FullName(), clientEmail, clientPhone, clientAddr,
		primary.Filename, humanSize(int64(len(primary.Data))), docs)

	html := fmt.Sprintf(`<h2>Nouvelle demande de devis – %s</h2>
<ul>
  <li><b>Numéro:</b> %s</li>
  <li><b>Date:</b> %s</li>
</ul>
<h3>Infos client</h3>
<ul>
  <li><b>Nom:</b> %s</li>
  <li><b>Email:</b> %s</li>
  <li><b>Téléphone:</b> %s</li>
  <li><b>Adresse:</b> %s</li>
</ul>
<h3>Pièces jointes</h3>
<ul>
  <li>PDF de la demande: <code>%s</code> (%s)</li>
</ul>
<h3>Documents client</h3>
<pre>%s</pre>`, label, qr.Number, qr.CreatedAt.Format("02/01/2006 15:04"),
		owner.FullName(), clientEmail, clientPhone, clientAddr,
		primary.Filename, humanSize(int64(len(primary.Data))), docs)

	replyTo := ""
	if owner.Email != "" {
		replyTo = owner.Email
	}

	return interfaces.Email{
		To:          to,
		From:        from,
		ReplyTo:     replyTo,
		Subject:     fmt.Sprintf("Nouvelle demande de devis %s (%s)", qr.Number, label),
		Text:        text,
		HTML:        html,
		Attachments: parts,
	}
}

func composeComplaintEmail(c entities.Complaint, owner entities.User, parts []interfaces.EmailPart, from, to string) interfaces.Email {
	desc := c.Description
	if desc == "" {
		desc = "-"
	}
	clientEmail := owner.Email
	if clientEmail == "" {
		clientEmail = "-"
	}
	clientPhone := owner.Phone
	if clientPhone == "" {
		clientPhone = "-"
	}
	clientAddr := owner.Address
	if clientAddr == "" {
		clientAddr = "-"
	}

	text := fmt.Sprintf(`Nouvelle réclamation

Document: %s %s
Nature  : %s
Attente : %s
Desc.   : %s

Client  : %s
Email   : %s
Téléphone: %s
Adresse : %s`,
		c.Order.DocType, c.Order.Number, c.Nature, c.Expectation, desc,
		owner.FullName(), clientEmail, clientPhone, clientAddr)

	html := fmt.Sprintf(`<h2>Nouvelle réclamation</h2>
<ul>
  <li><b>Document:</b> %s %s</li>
  <li><b>Nature:</b> %s</li>
  <li><b>Attente:</b> %s</li>
  <li><b>Description:</b> %s</li>
</ul>
<h3>Client</h3>
<ul>
  <li><b>Nom:</b> %s</li>
  <li><b>Email:</b> %s</li>
  <li><b>Téléphone:</b> %s</li>
  <li><b>Adresse:</b> %s</li>
</ul>`,
		c.Order.DocType, c.Order.Number, c.Nature, c.Expectation, desc,
		owner.FullName(), clientEmail, clientPhone, clientAddr)

	replyTo := ""
	if owner.Email != "" {
		replyTo = owner.Email
	}

	return interfaces.Email{
		To:          to,
		From:        from,
		ReplyTo:     replyTo,
		Subject:     fmt.Sprintf("Réclamation %s – %s", c.ID, owner.FullName()),
		Text:        text,
		HTML:        html,
		Attachments: parts,
	}
}

func composeIssuedQuoteEmail(q entities.IssuedQuote, pdf []byte, from string) interfaces.Email {
	filename := q.Number + ".pdf"
	return interfaces.Email{
		To:      q.Client.Email,
		From:    from,
		Subject: fmt.Sprintf("Votre devis %s", q.Number),
		Text:    fmt.Sprintf("Bonjour,\nVeuillez trouver ci-joint le devis %s.\nCordialement.", q.Number),
		Attachments: []interfaces.EmailPart{
			{Filename: filename, MimeType: "application/pdf", Data: pdf},
		},
	}
}
