package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/cmskeeper/internal/dbx"
	"github.com/dmitrijs2005/cmskeeper/internal/server/repositories/articles"
	"github.com/dmitrijs2005/cmskeeper/internal/server/repositories/media"
	"github.com/dmitrijs2005/cmskeeper/internal/server/repositories/pages"
	"github.com/dmitrijs2005/cmskeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Articles(db dbx.DBTX) articles.Repository
	Pages(db dbx.DBTX) pages.Repository
	Media(db dbx.DBTX) media.Repository
}
