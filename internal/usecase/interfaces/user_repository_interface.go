package interfaces

import (
	"context"

	"mtr_backend/internal/domain/entities"
)

// IUserRepository resolves owner contact details for documents and emails.
// Read-only: account management is out of scope for this service.

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
}
