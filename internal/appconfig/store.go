// internal/appconfig/store.go
//
// App-scoped key-value settings backed by the `app_config` table.  The
// theme service persists its custom-themes list here as one serialized
// value; nothing in this package interprets the values.
package appconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Store reads and writes settings for one application name.
type Store struct {
	db  *sqlx.DB
	app string
}

// New returns a Store scoped to the given application name.
func New(db *sqlx.DB, app string) *Store {
	return &Store{db: db, app: app}
}

// Value returns the setting for key, or the empty string when unset.
func (s *Store) Value(ctx context.Context, key string) (string, error) {
	const q = `
        SELECT value
        FROM   app_config
        WHERE  app = ? AND ` + "`key`" + ` = ?
        LIMIT  1`
	var val string
	err := s.db.GetContext(ctx, &val, q, s.app, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetValue inserts or replaces the setting for key.
func (s *Store) SetValue(ctx context.Context, key, value string) error {
	const q = `
        INSERT INTO app_config (app, ` + "`key`" + `, value)
        VALUES (?, ?, ?)
        ON DUPLICATE KEY UPDATE value = VALUES(value)`
	_, err := s.db.ExecContext(ctx, q, s.app, key, value)
	return err
}

// DeleteValue removes the setting for key.  Missing keys are not an error.
func (s *Store) DeleteValue(ctx context.Context, key string) error {
	const q = `
        DELETE FROM app_config
        WHERE  app = ? AND ` + "`key`" + ` = ?`
	_, err := s.db.ExecContext(ctx, q, s.app, key)
	return err
}
