package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/cmskeeper/internal/server/metrics"
	"github.com/go-chi/chi/v5"
)

// RouterOptions tunes the middleware around the route table.
type RouterOptions struct {
	// LoginLimiter throttles POST /api/auth/login. Nil disables throttling.
	LoginLimiter *LoginLimiter

	// CORSAllowedOrigin enables CORS headers for the given origin when
	// non-empty. The console CLI does not need it, browser frontends do.
	CORSAllowedOrigin string
}

// Router builds the full route table of the admin API.
func (a *API) Router(opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	if opts.CORSAllowedOrigin != "" {
		r.Use(withCORS(opts.CORSAllowedOrigin))
	}
	r.Use(a.withMetrics)

	r.Route("/api", func(r chi.Router) {
		login := http.HandlerFunc(a.login)
		if opts.LoginLimiter != nil {
			r.With(opts.LoginLimiter.Middleware).Post("/auth/login", login)
		} else {
			r.Post("/auth/login", login)
		}

		r.Group(func(r chi.Router) {
			r.Use(a.requireAuth)

			r.Get("/auth/me", a.currentUser)

			r.Route("/articles", func(r chi.Router) {
				r.Get("/", a.listArticles)
				r.Post("/", a.createArticle)
				r.Get("/{id}", a.getArticle)
				r.Put("/{id}", a.updateArticle)
				r.Delete("/{id}", a.deleteArticle)
			})

			r.Route("/pages", func(r chi.Router) {
				r.Get("/", a.listPages)
				r.Post("/", a.createPage)
				r.Get("/{id}", a.getPage)
				r.Put("/{id}", a.updatePage)
				r.Delete("/{id}", a.deletePage)
			})

			r.Route("/media", func(r chi.Router) {
				r.Get("/", a.listMedia)
				r.Post("/", a.uploadMedia)
				r.Delete("/{id}", a.deleteMedia)
			})
		})
	})

	r.Get("/uploads/{filename}", a.serveUpload)

	if a.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(a.gatherer))
	}

	return r
}
