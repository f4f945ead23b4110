package interfaces

import (
	"context"

	"mtr_backend/internal/domain/entities"
)

// IArticleRepository resolves catalog items used to price issued quotes.

type IArticleRepository interface {
	GetByID(ctx context.Context, id string) (entities.Article, error)
}
