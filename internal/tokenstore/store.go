// Package tokenstore persists the OAuth token set between CLI invocations in
// a local SQLite database. It implements identity.TokenSink so the provider
// pushes every rotation through it, and LoadTokens seeds the provider on
// startup.
package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/siteshield/siteshield-go/internal/tokenstore/migrations"
	"github.com/siteshield/siteshield-go/pkg/identity"

	_ "modernc.org/sqlite"
)

// ErrNoTokens is returned by LoadTokens when nothing has been persisted yet.
var ErrNoTokens = errors.New("tokenstore: no stored tokens")

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the token database at dsn and applies any pending
// migrations.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db, now: time.Now}
	if err := s.applyMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) applyMigrations() error {
	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return err
	}

	source, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return err
	}

	instance, err := migrate.NewWithInstance("iofs", source, "", driver)
	if err != nil {
		return err
	}

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// StoreTokens upserts the single token row. Refresh tokens rotate on every
// grant, so each call replaces the previous row wholesale.
func (s *Store) StoreTokens(ctx context.Context, set identity.TokenSet) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tokens (id, access_token, refresh_token, scope, expires_at, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			access_token  = excluded.access_token,
			refresh_token = excluded.refresh_token,
			scope         = excluded.scope,
			expires_at    = excluded.expires_at,
			updated_at    = excluded.updated_at`,
		set.AccessToken, set.RefreshToken, set.Scope,
		set.ExpiresAt.UTC(), s.now().UTC(),
	)
	return err
}

// ClearTokens removes the persisted token row. Called on logout and after a
// terminal refresh failure.
func (s *Store) ClearTokens(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM tokens WHERE id = 1`)
	return err
}

// LoadTokens returns the persisted token set, or ErrNoTokens if the store is
// empty.
func (s *Store) LoadTokens(ctx context.Context) (identity.TokenSet, error) {
	var set identity.TokenSet
	err := s.db.QueryRowContext(ctx, `
		SELECT access_token, refresh_token, scope, expires_at
		FROM tokens WHERE id = 1`,
	).Scan(&set.AccessToken, &set.RefreshToken, &set.Scope, &set.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return identity.TokenSet{}, ErrNoTokens
	}
	if err != nil {
		return identity.TokenSet{}, err
	}
	return set, nil
}
