package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/cmskeeper/internal/common"
	"github.com/dmitrijs2005/cmskeeper/internal/server/models"
	"github.com/go-chi/chi/v5"
)

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (a *API) listArticles(w http.ResponseWriter, r *http.Request) {
	items, err := a.repos.Articles(a.db).List(r.Context())
	if err != nil {
		a.logger.Error(r.Context(), "article list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (a *API) getArticle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid article ID")
		return
	}

	article, err := a.repos.Articles(a.db).Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Article not found")
			return
		}
		a.logger.Error(r.Context(), "article fetch failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch article")
		return
	}

	writeJSON(w, http.StatusOK, article)
}

func (a *API) createArticle(w http.ResponseWriter, r *http.Request) {
	var article models.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if article.Status == "" {
		article.Status = "draft"
	}

	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now

	created, err := a.repos.Articles(a.db).Create(r.Context(), &article)
	if err != nil {
		a.logger.Error(r.Context(), "article create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create article")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (a *API) updateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid article ID")
		return
	}

	var article models.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	article.ID = id
	article.UpdatedAt = time.Now()

	updated, err := a.repos.Articles(a.db).Update(r.Context(), &article)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Article not found")
			return
		}
		a.logger.Error(r.Context(), "article update failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update article")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (a *API) deleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid article ID")
		return
	}

	if err := a.repos.Articles(a.db).Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Article not found")
			return
		}
		a.logger.Error(r.Context(), "article delete failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete article")
		return
	}

	writeMessage(w, "Article deleted")
}
