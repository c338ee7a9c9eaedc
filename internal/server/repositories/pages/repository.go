package pages

import (
	"context"

	"github.com/dmitrijs2005/cmskeeper/internal/server/models"
)

type Repository interface {
	// List returns all pages, newest first.
	List(ctx context.Context) ([]models.Page, error)
	Get(ctx context.Context, id int64) (*models.Page, error)
	Create(ctx context.Context, page *models.Page) (*models.Page, error)
	Update(ctx context.Context, page *models.Page) (*models.Page, error)
	Delete(ctx context.Context, id int64) error
}
