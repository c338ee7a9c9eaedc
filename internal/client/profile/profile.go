package profile

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/cmskeeper/internal/client/migrations"
	"github.com/dmitrijs2005/cmskeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/cmskeeper/internal/filex"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// Profile is the operator's local state: an SQLite database holding the
// persisted session credential.
type Profile struct {
	DB       *sql.DB
	Metadata metadata.Repository
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open creates (if needed) and opens the profile database in dir and applies
// migrations. An empty dir resolves to a cmskeeper subdirectory of the
// per-user config directory.
func Open(ctx context.Context, dir string) (*Profile, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "cmskeeper")
	}
	dir, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "profile.db"))
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Profile{
		DB:       db,
		Metadata: metadata.NewSQLiteRepository(db),
	}, nil
}

// Close releases the underlying database handle.
func (p *Profile) Close() error {
	return p.DB.Close()
}
