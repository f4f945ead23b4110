package response

import (
	"time"

	"mtr_backend/internal/domain/entities"
)

type OrderReferenceResponse struct {
	DocType      string     `json:"type_doc"`
	Number       string     `json:"numero"`
	DeliveryDate *time.Time `json:"date_livraison,omitempty"`
	ProductRef   string     `json:"ref_produit,omitempty"`
	Quantity     float64    `json:"quantite,omitempty"`
}

type ComplaintResponse struct {
	ID          string                 `json:"id"`
	OwnerID     string                 `json:"owner_id"`
	Order       OrderReferenceResponse `json:"commande"`
	Nature      string                 `json:"nature"`
	Expectation string                 `json:"attente"`
	Description string                 `json:"description,omitempty"`
	Attachments []AttachmentResponse   `json:"pieces_jointes,omitempty"`
	HasPDF      bool                   `json:"has_pdf"`
	CreatedAt   time.Time              `json:"created_at"`
}

func FromComplaint(c entities.Complaint) ComplaintResponse {
	resp := ComplaintResponse{
		ID:      c.ID,
		OwnerID: c.OwnerID,
		Order: OrderReferenceResponse{
			DocType:      string(c.Order.DocType),
			Number:       c.Order.Number,
			DeliveryDate: c.Order.DeliveryDate,
			ProductRef:   c.Order.ProductRef,
			Quantity:     c.Order.Quantity,
		},
		Nature:      string(c.Nature),
		Expectation: string(c.Expectation),
		Description: c.Description,
		HasPDF:      c.Rendered != nil && len(c.Rendered.Data) > 0,
		CreatedAt:   c.CreatedAt,
	}
	for _, a := range c.Attachments {
		resp.Attachments = append(resp.Attachments, AttachmentResponse{
			Filename: a.Filename,
			MimeType: a.MimeType,
			Size:     a.Size,
		})
	}
	return resp
}
