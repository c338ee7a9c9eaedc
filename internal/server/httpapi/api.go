// Package httpapi implements the REST endpoints of the CMS admin API.
//
// All responses are JSON. Errors use the envelope {"error": "<message>"},
// successful deletes use {"message": "<resource> deleted"}, and everything
// else returns the entity itself. Routes under /api (except /api/auth/login)
// require a Bearer token issued by the login endpoint.
package httpapi

import (
	"database/sql"
	"time"

	"github.com/dmitrijs2005/cmskeeper/internal/logging"
	"github.com/dmitrijs2005/cmskeeper/internal/server/metrics"
	"github.com/dmitrijs2005/cmskeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/cmskeeper/internal/server/storage"
	"github.com/prometheus/client_golang/prometheus"
)

// Deps bundles everything the API handlers need.
type Deps struct {
	DB        *sql.DB
	Repos     repomanager.RepositoryManager
	Store     storage.Store
	SecretKey []byte
	TokenTTL  time.Duration
	Logger    logging.Logger
	Metrics   *metrics.Collector
	Gatherer  prometheus.Gatherer
}

// API holds the HTTP handlers for the admin console backend.
type API struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	store    storage.Store
	secret   []byte
	tokenTTL time.Duration
	logger   logging.Logger
	metrics  *metrics.Collector
	gatherer prometheus.Gatherer
}

func New(deps Deps) *API {
	return &API{
		db:       deps.DB,
		repos:    deps.Repos,
		store:    deps.Store,
		secret:   deps.SecretKey,
		tokenTTL: deps.TokenTTL,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		gatherer: deps.Gatherer,
	}
}
