package httpapi

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/cmskeeper/internal/common"
	"github.com/dmitrijs2005/cmskeeper/internal/server/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (a *API) listMedia(w http.ResponseWriter, r *http.Request) {
	items, err := a.repos.Media(a.db).List(r.Context())
	if err != nil {
		a.logger.Error(r.Context(), "media list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch media")
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (a *API) uploadMedia(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	// The stored name is server-assigned so uploads cannot collide or
	// traverse outside the upload directory.
	ext := filepath.Ext(header.Filename)
	filename := uuid.New().String() + ext

	if err := a.store.Save(r.Context(), filename, file); err != nil {
		a.logger.Error(r.Context(), "media save failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save file")
		return
	}

	m := &models.Media{
		Filename:     filename,
		OriginalName: header.Filename,
		MimeType:     header.Header.Get("Content-Type"),
		Size:         header.Size,
		CreatedAt:    time.Now(),
	}

	created, err := a.repos.Media(a.db).Create(r.Context(), m)
	if err != nil {
		a.store.Remove(r.Context(), filename)
		a.logger.Error(r.Context(), "media record create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save media record")
		return
	}

	a.metrics.RecordUpload()
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) deleteMedia(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid media ID")
		return
	}

	m, err := a.repos.Media(a.db).Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Media not found")
			return
		}
		a.logger.Error(r.Context(), "media fetch failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch media")
		return
	}

	if err := a.repos.Media(a.db).Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Media not found")
			return
		}
		a.logger.Error(r.Context(), "media delete failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete media")
		return
	}

	// The record is gone either way, a leftover blob is only logged.
	if err := a.store.Remove(r.Context(), m.Filename); err != nil {
		a.logger.Warn(r.Context(), "media blob remove failed", "filename", m.Filename, "error", err)
	}

	writeMessage(w, "Media deleted")
}

// serveUpload streams a stored blob. Only flat server-assigned filenames are
// accepted.
func (a *API) serveUpload(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if filename == "" || strings.ContainsAny(filename, "/\\") || strings.Contains(filename, "..") {
		http.NotFound(w, r)
		return
	}

	rc, err := a.store.Open(r.Context(), filename)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)

	io.Copy(w, rc)
}
