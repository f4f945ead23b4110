package interfaces

import (
	"context"

	"mtr_backend/internal/domain/entities"
)

// IIssuedQuoteRepository abstracts DynamoDB persistence for issued quotes.
//
// FindBySource and ListConversions match on source request id OR on the
// denormalized request number: historical quotes sometimes recorded only the
// number. Both paths must stay, and ListConversions returns enough for the
// scanner to build its done-id and done-number sets.

type IIssuedQuoteRepository interface {
	Create(ctx context.Context, q entities.IssuedQuote) (entities.IssuedQuote, error)
	GetByID(ctx context.Context, id string) (entities.IssuedQuote, error)
	FindBySource(ctx context.Context, requestID, requestNumber string) (entities.IssuedQuote, error)
	ListConversions(ctx context.Context, requestIDs, requestNumbers []string) ([]entities.ConversionRef, error)
}
