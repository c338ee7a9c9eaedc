package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/cmskeeper/internal/common"
	"github.com/dmitrijs2005/cmskeeper/internal/server/models"
)

func (a *API) listPages(w http.ResponseWriter, r *http.Request) {
	items, err := a.repos.Pages(a.db).List(r.Context())
	if err != nil {
		a.logger.Error(r.Context(), "page list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch pages")
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (a *API) getPage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid page ID")
		return
	}

	page, err := a.repos.Pages(a.db).Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Page not found")
			return
		}
		a.logger.Error(r.Context(), "page fetch failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch page")
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (a *API) createPage(w http.ResponseWriter, r *http.Request) {
	var page models.Page
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	now := time.Now()
	page.CreatedAt = now
	page.UpdatedAt = now

	created, err := a.repos.Pages(a.db).Create(r.Context(), &page)
	if err != nil {
		// The slug column is unique, a duplicate surfaces as a DB error here.
		a.logger.Error(r.Context(), "page create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create page. Slug may already exist.")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (a *API) updatePage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid page ID")
		return
	}

	var page models.Page
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	page.ID = id
	page.UpdatedAt = time.Now()

	updated, err := a.repos.Pages(a.db).Update(r.Context(), &page)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Page not found")
			return
		}
		a.logger.Error(r.Context(), "page update failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update page")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (a *API) deletePage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid page ID")
		return
	}

	if err := a.repos.Pages(a.db).Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Page not found")
			return
		}
		a.logger.Error(r.Context(), "page delete failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete page")
		return
	}

	writeMessage(w, "Page deleted")
}
