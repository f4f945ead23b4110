package interfaces

import (
	"context"

	"mtr_backend/internal/domain/entities"
)

// IComplaintRepository abstracts DynamoDB persistence for complaints.

type IComplaintRepository interface {
	Create(ctx context.Context, c entities.Complaint) (entities.Complaint, error)
	GetByID(ctx context.Context, id string) (entities.Complaint, error)
	SetRenderedDocument(ctx context.Context, id string, doc entities.RenderedDocument) error
}
