package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/cmskeeper/internal/client/models"
)

// PagesAPI is the typed CRUD set for pages.
type PagesAPI struct {
	c *Client
}

func (p *PagesAPI) List(ctx context.Context) ([]models.Page, error) {
	var out []models.Page
	if err := p.c.doJSON(ctx, http.MethodGet, "/pages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *PagesAPI) Get(ctx context.Context, id int64) (*models.Page, error) {
	var out models.Page
	if err := p.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/pages/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PagesAPI) Create(ctx context.Context, in models.PageInput) (*models.Page, error) {
	var out models.Page
	if err := p.c.doJSON(ctx, http.MethodPost, "/pages", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PagesAPI) Update(ctx context.Context, id int64, in models.PageInput) (*models.Page, error) {
	var out models.Page
	if err := p.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/pages/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PagesAPI) Delete(ctx context.Context, id int64) error {
	return p.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/pages/%d", id), nil, nil)
}
