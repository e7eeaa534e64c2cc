// internal/website/repository.go
//
// Query helpers for the `website` table.  Options travel as one JSON text
// column so settings can grow without schema churn; the helpers here fold
// that column in and out of Website.Options.
package website

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// record mirrors the raw row; Options stays serialized here.
type record struct {
	ID        int64     `db:"id"`
	Site      string    `db:"site"`
	Name      string    `db:"name"`
	UserID    string    `db:"user_id"`
	Path      string    `db:"path"`
	Theme     string    `db:"theme"`
	Options   string    `db:"options"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const selectCols = `id, site, name, user_id, path, theme, options, created_at, updated_at`

// ByID fetches one website row.
func ByID(ctx context.Context, db *sqlx.DB, id int64) (*Website, error) {
	const q = `SELECT ` + selectCols + ` FROM website WHERE id = ? LIMIT 1`
	return getOne(ctx, db, q, id)
}

// BySite fetches one website row by its unique slug.
func BySite(ctx context.Context, db *sqlx.DB, site string) (*Website, error) {
	const q = `SELECT ` + selectCols + ` FROM website WHERE site = ? LIMIT 1`
	return getOne(ctx, db, q, site)
}

// ByUser returns every website owned by one account, oldest first.
func ByUser(ctx context.Context, db *sqlx.DB, userID string) ([]Website, error) {
	const q = `SELECT ` + selectCols + ` FROM website WHERE user_id = ? ORDER BY id`
	var rows []record
	if err := db.SelectContext(ctx, &rows, q, userID); err != nil {
		return nil, err
	}
	out := make([]Website, 0, len(rows))
	for i := range rows {
		w, err := rows[i].toWebsite()
		if err != nil {
			return nil, err
		}
		out = append(out, *w)
	}
	return out, nil
}

// Insert persists a new website and fills in its assigned ID.  A taken
// site slug surfaces as ErrSiteExists.
func Insert(ctx context.Context, db *sqlx.DB, w *Website) error {
	opts, err := marshalOptions(w.Options)
	if err != nil {
		return err
	}
	const q = `
        INSERT INTO website (site, name, user_id, path, theme, options)
        VALUES (?, ?, ?, ?, ?, ?)`
	res, err := db.ExecContext(ctx, q, w.Site, w.Name, w.UserID, w.Path, w.Theme, opts)
	if isDuplicate(err) {
		return fmt.Errorf("%w: %s", ErrSiteExists, w.Site)
	}
	if err != nil {
		return err
	}
	w.ID, err = res.LastInsertId()
	return err
}

// Update rewrites the mutable columns of an existing row.
func Update(ctx context.Context, db *sqlx.DB, w *Website) error {
	opts, err := marshalOptions(w.Options)
	if err != nil {
		return err
	}
	const q = `
        UPDATE website
        SET    name = ?, path = ?, theme = ?, options = ?
        WHERE  id = ?`
	res, err := db.ExecContext(ctx, q, w.Name, w.Path, w.Theme, opts, w.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// Delete removes one website row.
func Delete(ctx context.Context, db *sqlx.DB, id int64) error {
	res, err := db.ExecContext(ctx, `DELETE FROM website WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

//
// Helpers
//

func getOne(ctx context.Context, db *sqlx.DB, q string, arg any) (*Website, error) {
	var rec record
	err := db.GetContext(ctx, &rec, q, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWebsiteNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.toWebsite()
}

func (r *record) toWebsite() (*Website, error) {
	w := &Website{
		ID:        r.ID,
		Site:      r.Site,
		Name:      r.Name,
		UserID:    r.UserID,
		Path:      r.Path,
		Theme:     r.Theme,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Options != "" {
		if err := json.Unmarshal([]byte(r.Options), &w.Options); err != nil {
			return nil, fmt.Errorf("website %d: options corrupt: %w", r.ID, err)
		}
	}
	return w, nil
}

func marshalOptions(opts map[string]string) (string, error) {
	if len(opts) == 0 {
		return "{}", nil
	}
	raw, err := json.Marshal(opts)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrWebsiteNotFound
	}
	return nil
}

// isDuplicate recognises the MySQL duplicate-key error.
func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
