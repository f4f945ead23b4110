package request

import (
	"time"

	"mtr_backend/internal/domain/entities"
)

type OrderReferenceRequest struct {
	DocType      string  `json:"type_doc" binding:"required"`
	Number       string  `json:"numero" binding:"required"`
	DeliveryDate string  `json:"date_livraison"`
	ProductRef   string  `json:"ref_produit"`
	Quantity     float64 `json:"quantite"`
}

// ComplaintRequest is the customer complaint intake payload.
type ComplaintRequest struct {
	OwnerID     string                `json:"owner_id" binding:"required"`
	Order       OrderReferenceRequest `json:"commande" binding:"required"`
	Nature      string                `json:"nature" binding:"required"`
	Expectation string                `json:"attente" binding:"required"`
	Description string                `json:"description"`
	Attachments []AttachmentRequest   `json:"pieces_jointes"`
}

// ResolveOrder maps the order block, parsing the optional delivery date. An
// unparseable date is dropped rather than rejected: the date is contextual
// information on the complaint document, not a processing input.
func (r ComplaintRequest) ResolveOrder() entities.OrderReference {
	ref := entities.OrderReference{
		DocType:    entities.OrderDocType(r.Order.DocType),
		Number:     r.Order.Number,
		ProductRef: r.Order.ProductRef,
		Quantity:   r.Order.Quantity,
	}
	if r.Order.DeliveryDate != "" {
		if d, err := time.Parse("2006-01-02", r.Order.DeliveryDate); err == nil {
			ref.DeliveryDate = &d
		}
	}
	return ref
}

func (r ComplaintRequest) ResolveAttachments() []entities.Attachment {
	return attachmentsToEntities(r.Attachments)
}
