package pages

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/cmskeeper/internal/common"
	"github.com/dmitrijs2005/cmskeeper/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_DuplicateSlugSurfacesDBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+pages`).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "pages_slug_key"`))

	_, err := repo.Create(context.Background(), &models.Page{Title: "About", Slug: "about"})
	if err == nil {
		t.Fatal("expected error for duplicate slug")
	}
}

func TestGet_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "slug", "content", "created_at", "updated_at"}).
		AddRow(5, "About", "about", "body", now, now)
	mock.ExpectQuery(`(?s)^SELECT`).WithArgs(int64(5)).WillReturnRows(rows)

	got, err := repo.Get(context.Background(), 5)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Slug != "about" {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^UPDATE\s+pages`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), &models.Page{ID: 99, Title: "X", Slug: "x"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
