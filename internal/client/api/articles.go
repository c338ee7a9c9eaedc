package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/cmskeeper/internal/client/models"
)

// ArticlesAPI is the typed CRUD set for articles. All operations are
// pass-through request builders over the gateway: no caching, no retries.
type ArticlesAPI struct {
	c *Client
}

func (a *ArticlesAPI) List(ctx context.Context) ([]models.Article, error) {
	var out []models.Article
	if err := a.c.doJSON(ctx, http.MethodGet, "/articles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *ArticlesAPI) Get(ctx context.Context, id int64) (*models.Article, error) {
	var out models.Article
	if err := a.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/articles/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ArticlesAPI) Create(ctx context.Context, in models.ArticleInput) (*models.Article, error) {
	var out models.Article
	if err := a.c.doJSON(ctx, http.MethodPost, "/articles", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ArticlesAPI) Update(ctx context.Context, id int64, in models.ArticleInput) (*models.Article, error) {
	var out models.Article
	if err := a.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/articles/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ArticlesAPI) Delete(ctx context.Context, id int64) error {
	return a.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/articles/%d", id), nil, nil)
}
