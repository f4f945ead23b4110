package interfaces

import (
	"context"

	"mtr_backend/internal/domain/entities"
)

// IDocumentRenderer turns an entity snapshot into a binary PDF document.
//
// Rendering may be slow; callers bound it with the context. A render failure
// is terminal for the current finalize attempt, never for the entity itself.

type IDocumentRenderer interface {
	RenderQuoteRequest(ctx context.Context, qr entities.QuoteRequest, owner entities.User) ([]byte, error)
	RenderComplaint(ctx context.Context, c entities.Complaint, owner entities.User) ([]byte, error)
	RenderIssuedQuote(ctx context.Context, q entities.IssuedQuote) ([]byte, error)
}
