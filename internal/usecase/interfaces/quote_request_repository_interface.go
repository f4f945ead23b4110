package interfaces

import (
	"context"

	"mtr_backend/internal/domain/entities"
)

// IQuoteRequestRepository abstracts DynamoDB persistence for quote requests,
// one table per family.
//
// The issuance pipeline must be able to:
//   - create a request with its assigned number and raw attachment buffers
//   - re-read a full request during the finalize phase
//   - attach the rendered PDF once generated
//
// The reconciliation scan and the quote conversion additionally need:
//   - a light id/numero projection per family (ListNumbers)
//   - a polymorphic probe across every family table (FindAnyByID)

type IQuoteRequestRepository interface {
	Create(ctx context.Context, qr entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, family entities.Family, id string) (entities.QuoteRequest, error)
	FindAnyByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	SetRenderedDocument(ctx context.Context, family entities.Family, id string, doc entities.RenderedDocument) error
	ListNumbers(ctx context.Context, family entities.Family, pattern string) ([]entities.NumberRef, error)
}
