package controllers

import (
	"context"

	"github.com/dmitrijs2005/cmskeeper/internal/client/api"
	"github.com/dmitrijs2005/cmskeeper/internal/client/models"
	"github.com/dmitrijs2005/cmskeeper/internal/common"
	"github.com/dmitrijs2005/cmskeeper/internal/slug"
)

// ArticleAPI is the slice of the gateway an article form needs.
type ArticleAPI interface {
	Get(ctx context.Context, id int64) (*models.Article, error)
	Create(ctx context.Context, in models.ArticleInput) (*models.Article, error)
	Update(ctx context.Context, id int64, in models.ArticleInput) (*models.Article, error)
}

// PageAPI is the slice of the gateway a page form needs.
type PageAPI interface {
	Get(ctx context.Context, id int64) (*models.Page, error)
	Create(ctx context.Context, in models.PageInput) (*models.Page, error)
	Update(ctx context.Context, id int64, in models.PageInput) (*models.Page, error)
}

// ArticleForm is the create/edit state machine for articles. Field values
// survive a failed submit untouched: the operator's input is never cleared
// on error.
type ArticleForm struct {
	api  ArticleAPI
	id   int64
	back Navigator

	Title   string
	Content string
	Author  string
	Status  string

	submitting bool
	errMsg     string
}

// NewArticleForm starts a blank form; status defaults to draft.
func NewArticleForm(api ArticleAPI, back Navigator) *ArticleForm {
	return &ArticleForm{api: api, back: back, Status: common.StatusDraft}
}

// EditArticleForm starts a form bound to an existing article. Call Load to
// hydrate the fields.
func EditArticleForm(api ArticleAPI, id int64, back Navigator) *ArticleForm {
	return &ArticleForm{api: api, id: id, back: back, Status: common.StatusDraft}
}

func (f *ArticleForm) IsEdit() bool     { return f.id != 0 }
func (f *ArticleForm) Submitting() bool { return f.submitting }
func (f *ArticleForm) Err() string      { return f.errMsg }

// Load hydrates an edit form. Fetch failure surfaces an error banner and
// leaves the form neutral but still editable, not locked.
func (f *ArticleForm) Load(ctx context.Context) {
	if f.id == 0 {
		return
	}
	a, err := f.api.Get(ctx, f.id)
	if err != nil {
		f.errMsg = "Failed to load article"
		return
	}
	f.Title = a.Title
	f.Content = a.Content
	f.Author = a.Author
	f.Status = a.Status
}

// Submit validates and sends the form. It returns true when the save
// succeeded and the back navigation fired. On failure the backend's message
// is shown when present, a generic fallback otherwise, and every field
// keeps its value.
func (f *ArticleForm) Submit(ctx context.Context) bool {
	if f.submitting {
		return false
	}
	f.errMsg = ""

	if f.Title == "" {
		f.errMsg = "Title is required"
		return false
	}
	if f.Status != common.StatusDraft && f.Status != common.StatusPublished {
		f.errMsg = "Status must be draft or published"
		return false
	}

	f.submitting = true
	in := models.ArticleInput{Title: f.Title, Content: f.Content, Author: f.Author, Status: f.Status}

	var err error
	if f.id != 0 {
		_, err = f.api.Update(ctx, f.id, in)
	} else {
		_, err = f.api.Create(ctx, in)
	}
	f.submitting = false

	if err != nil {
		f.errMsg = api.Message(err, "Failed to save article")
		return false
	}
	f.back()
	return true
}

// SlugState tracks who owns the slug field. It starts Derived (the slug
// follows the title) and moves to UserEdited on the first direct edit. The
// transition is one-way for the life of the form.
type SlugState int

const (
	SlugDerived SlugState = iota
	SlugUserEdited
)

// PageForm is the create/edit state machine for pages.
type PageForm struct {
	api  PageAPI
	id   int64
	back Navigator

	Title   string
	Slug    string
	Content string

	slugState  SlugState
	submitting bool
	errMsg     string
}

// NewPageForm starts a blank form with slug derivation active.
func NewPageForm(api PageAPI, back Navigator) *PageForm {
	return &PageForm{api: api, back: back}
}

// EditPageForm starts a form bound to an existing page. Editing an existing
// page never re-derives its slug.
func EditPageForm(api PageAPI, id int64, back Navigator) *PageForm {
	return &PageForm{api: api, id: id, back: back, slugState: SlugUserEdited}
}

func (f *PageForm) IsEdit() bool         { return f.id != 0 }
func (f *PageForm) Submitting() bool     { return f.submitting }
func (f *PageForm) Err() string          { return f.errMsg }
func (f *PageForm) SlugOwner() SlugState { return f.slugState }

// SetTitle records a title keystroke. While the form is New and the slug is
// still Derived, the slug is re-derived from the full title on every change.
func (f *PageForm) SetTitle(title string) {
	f.Title = title
	if f.id == 0 && f.slugState == SlugDerived {
		f.Slug = slug.Derive(title)
	}
}

// SetSlug records a direct slug edit and permanently hands the field to the
// operator: later title changes never overwrite it again.
func (f *PageForm) SetSlug(s string) {
	f.Slug = s
	f.slugState = SlugUserEdited
}

// Load hydrates an edit form.
func (f *PageForm) Load(ctx context.Context) {
	if f.id == 0 {
		return
	}
	p, err := f.api.Get(ctx, f.id)
	if err != nil {
		f.errMsg = "Failed to load page"
		return
	}
	f.Title = p.Title
	f.Slug = p.Slug
	f.Content = p.Content
}

// Submit validates and sends the form; see ArticleForm.Submit for the
// submit/error contract.
func (f *PageForm) Submit(ctx context.Context) bool {
	if f.submitting {
		return false
	}
	f.errMsg = ""

	if f.Title == "" {
		f.errMsg = "Title is required"
		return false
	}
	if f.Slug == "" {
		f.errMsg = "Slug is required"
		return false
	}
	if !slug.Valid(f.Slug) {
		f.errMsg = "Slug may only contain lowercase letters, digits and hyphens"
		return false
	}

	f.submitting = true
	in := models.PageInput{Title: f.Title, Slug: f.Slug, Content: f.Content}

	var err error
	if f.id != 0 {
		_, err = f.api.Update(ctx, f.id, in)
	} else {
		_, err = f.api.Create(ctx, in)
	}
	f.submitting = false

	if err != nil {
		f.errMsg = api.Message(err, "Failed to save page")
		return false
	}
	f.back()
	return true
}
