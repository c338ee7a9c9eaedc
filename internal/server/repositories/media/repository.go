package media

import (
	"context"

	"github.com/dmitrijs2005/cmskeeper/internal/server/models"
)

type Repository interface {
	// List returns all media records, newest first.
	List(ctx context.Context) ([]models.Media, error)
	Get(ctx context.Context, id int64) (*models.Media, error)
	Create(ctx context.Context, m *models.Media) (*models.Media, error)
	Delete(ctx context.Context, id int64) error
}
