package entities

import "time"

// OrderDocType identifies the commercial document a complaint refers to.

type OrderDocType string

const (
	OrderDocInvoice      OrderDocType = "facture"
	OrderDocDeliveryNote OrderDocType = "bon_livraison"
	OrderDocPurchase     OrderDocType = "bon_commande"
	OrderDocQuote        OrderDocType = "devis"
)

func (t OrderDocType) Valid() bool {
	switch t {
	case OrderDocInvoice, OrderDocDeliveryNote, OrderDocPurchase, OrderDocQuote:
		return true
	}
	return false
}

// ComplaintNature classifies what went wrong.

type ComplaintNature string

const (
	NatureNonConforming    ComplaintNature = "produit_non_conforme"
	NatureTransportDamage  ComplaintNature = "deterioration_transport"
	NatureQuantityError    ComplaintNature = "erreur_quantite"
	NatureLateDelivery     ComplaintNature = "retard_livraison"
	NatureFunctionalDefect ComplaintNature = "defaut_fonctionnel"
	NatureOther            ComplaintNature = "autre"
)

func (n ComplaintNature) Valid() bool {
	switch n {
	case NatureNonConforming, NatureTransportDamage, NatureQuantityError,
		NatureLateDelivery, NatureFunctionalDefect, NatureOther:
		return true
	}
	return false
}

// ComplaintExpectation is the resolution the customer asks for.

type ComplaintExpectation string

const (
	ExpectReplacement ComplaintExpectation = "remplacement"
	ExpectRepair      ComplaintExpectation = "reparation"
	ExpectRefund      ComplaintExpectation = "remboursement"
	ExpectOther       ComplaintExpectation = "autre"
)

func (e ComplaintExpectation) Valid() bool {
	switch e {
	case ExpectReplacement, ExpectRepair, ExpectRefund, ExpectOther:
		return true
	}
	return false
}

// OrderReference points a complaint at the document it disputes.
type OrderReference struct {
	DocType      OrderDocType `json:"type_doc"`
	Number       string       `json:"numero"`
	DeliveryDate *time.Time   `json:"delivery_date,omitempty"`
	ProductRef   string       `json:"product_ref,omitempty"`
	Quantity     float64      `json:"quantity,omitempty"`
}

// Complaint is a customer complaint (réclamation) tied to an order document.
// It follows the same two-phase issuance shape as QuoteRequest (synchronous
// create, detached render+notify) but carries no assigned number.
//
// Storage model (DynamoDB):
//   - PK: id

type Complaint struct {
	ID          string               `json:"id"`
	OwnerID     string               `json:"owner_id"`
	Order       OrderReference       `json:"commande"`
	Nature      ComplaintNature      `json:"nature"`
	Expectation ComplaintExpectation `json:"attente"`
	Description string               `json:"description,omitempty"`
	Attachments []Attachment         `json:"attachments,omitempty"`
	Rendered    *RenderedDocument    `json:"rendered_document,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}
