package articles

import (
	"context"

	"github.com/dmitrijs2005/cmskeeper/internal/server/models"
)

type Repository interface {
	// List returns all articles, newest first.
	List(ctx context.Context) ([]models.Article, error)
	Get(ctx context.Context, id int64) (*models.Article, error)
	Create(ctx context.Context, article *models.Article) (*models.Article, error)
	Update(ctx context.Context, article *models.Article) (*models.Article, error)
	Delete(ctx context.Context, id int64) error
}
