package response

import (
	"time"

	"mtr_backend/internal/domain/entities"
)

// SubmitReceiptResponse acknowledges a committed submission. The PDF and the
// notification email are produced after this response is sent.
type SubmitReceiptResponse struct {
	ID     string `json:"id"`
	Number string `json:"numero"`
}

type AttachmentResponse struct {
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

type QuoteRequestResponse struct {
	ID           string                    `json:"id"`
	Family       string                    `json:"family"`
	Number       string                    `json:"numero"`
	OwnerID      string                    `json:"owner_id"`
	Spec         entities.QuoteRequestSpec `json:"spec"`
	Requirements string                    `json:"exigences,omitempty"`
	Remarks      string                    `json:"remarques,omitempty"`
	Attachments  []AttachmentResponse      `json:"documents,omitempty"`
	HasPDF       bool                      `json:"has_pdf"`
	CreatedAt    time.Time                 `json:"created_at"`
}

func FromQuoteRequest(qr entities.QuoteRequest) QuoteRequestResponse {
	resp := QuoteRequestResponse{
		ID:           qr.ID,
		Family:       string(qr.Family),
		Number:       qr.Number,
		OwnerID:      qr.OwnerID,
		Spec:         qr.Spec,
		Requirements: qr.Requirements,
		Remarks:      qr.Remarks,
		HasPDF:       qr.Rendered != nil && len(qr.Rendered.Data) > 0,
		CreatedAt:    qr.CreatedAt,
	}
	for _, a := range qr.Attachments {
		resp.Attachments = append(resp.Attachments, AttachmentResponse{
			Filename: a.Filename,
			MimeType: a.MimeType,
			Size:     a.Size,
		})
	}
	return resp
}

// UnconvertedRowResponse is one reconciliation scan row.
type UnconvertedRowResponse struct {
	Number string `json:"numero"`
	Family string `json:"family,omitempty"`
}

// FromUnconvertedNumbers keeps the historical shape: a plain array of
// numbers.
func FromUnconvertedNumbers(numbers []string) []string {
	if numbers == nil {
		return []string{}
	}
	return numbers
}
