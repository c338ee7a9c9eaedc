package controllers

import (
	"context"

	"github.com/dmitrijs2005/cmskeeper/internal/client/models"
)

// MediaUploader is the slice of the gateway the upload controller needs.
type MediaUploader interface {
	UploadFile(ctx context.Context, path string) (*models.Media, error)
}

// UploadController stages exactly one local file and submits it as a single
// multipart unit. The operation is atomic from the screen's perspective: on
// success the returned asset is prepended to the collection, on failure a
// blocking alert is raised, and in both cases the staged file is cleared so
// the same name can be re-selected.
type UploadController struct {
	api  MediaUploader
	list *ListController[models.Media]
	ui   UI

	staged    string
	uploading bool
}

func NewUploadController(api MediaUploader, list *ListController[models.Media], ui UI) *UploadController {
	return &UploadController{api: api, list: list, ui: ui}
}

// Stage records the local file to upload next. Ignored while an upload is in
// flight.
func (u *UploadController) Stage(path string) {
	if u.uploading {
		return
	}
	u.staged = path
}

func (u *UploadController) Staged() string  { return u.staged }
func (u *UploadController) Uploading() bool { return u.uploading }

// Upload submits the staged file.
func (u *UploadController) Upload(ctx context.Context) {
	if u.uploading || u.staged == "" {
		return
	}

	u.uploading = true
	asset, err := u.api.UploadFile(ctx, u.staged)
	u.uploading = false
	u.staged = ""

	if err != nil {
		u.ui.Alert("Failed to upload file")
		return
	}
	u.list.Prepend(*asset)
}
