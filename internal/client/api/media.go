package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/cmskeeper/internal/client/models"
)

// uploadFieldName is the multipart form field the backend expects the file
// payload under.
const uploadFieldName = "file"

// MediaAPI is the typed operation set for media files. Media has no update:
// assets are uploaded once and only ever deleted.
type MediaAPI struct {
	c *Client
}

func (m *MediaAPI) List(ctx context.Context) ([]models.Media, error) {
	var out []models.Media
	if err := m.c.doJSON(ctx, http.MethodGet, "/media", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Upload submits one file as a single multipart request and returns the
// created asset. The server chooses the storage filename; size and mime type
// in the result are authoritative.
func (m *MediaAPI) Upload(ctx context.Context, name string, r io.Reader) (*models.Media, error) {
	var out models.Media
	if err := m.c.doMultipart(ctx, "/media", uploadFieldName, name, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadFile uploads the local file at path under its base name.
func (m *MediaAPI) UploadFile(ctx context.Context, path string) (*models.Media, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return m.Upload(ctx, filepath.Base(path), f)
}

func (m *MediaAPI) Delete(ctx context.Context, id int64) error {
	return m.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/media/%d", id), nil, nil)
}
