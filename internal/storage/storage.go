// internal/storage/storage.go
//
// Host storage abstraction.
//
// Context
// -------
// Every account owns a virtual folder tree rooted at `<root>/<user>/files/`.
// The index of that tree lives in the `storage_entry` table: one row per
// entry *per view*, so a file shared into another account appears as a
// second row with the same `file_id` but that account's `user_id` and path.
// The `readable` flag is per-row, which is how share permissions surface.
//
// Paths stored in the table are slash-separated and relative to the user's
// files root, with no leading slash.  Absolute paths (used for containment
// checks and disk reads) are produced by View.
//
// Notes
// -----
// • All queries are parameterised and scoped to one user_id.
// • Oxford commas, two spaces after periods.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
)

// ErrEntryNotFound is returned when no storage row matches a lookup.
var ErrEntryNotFound = errors.New("storage: entry not found")

// Entry mirrors one row in `storage_entry`.
type Entry struct {
	ID       int64  `db:"id"`
	FileID   int64  `db:"file_id"`
	UserID   string `db:"user_id"`
	Path     string `db:"path"`
	IsDir    bool   `db:"is_dir"`
	Readable bool   `db:"readable"`
}

// Store hands out per-account views and answers share-aware queries.
type Store struct {
	db   *sqlx.DB
	root string // absolute on-disk storage root
}

// New returns a Store over the given pool and on-disk root.
func New(db *sqlx.DB, root string) *Store {
	return &Store{db: db, root: strings.TrimRight(root, "/")}
}

// View returns the folder view of one account.  Views are cheap; callers
// may construct them per request.
func (s *Store) View(userID string) *View {
	return &View{store: s, userID: userID}
}

// EntriesByFileID returns every row the viewer can see for one file ID.
// A file shared into the viewer's tree yields a row with the viewer's
// user_id; no rows means the viewer cannot see the file at all.
func (s *Store) EntriesByFileID(ctx context.Context, viewerID string, fileID int64) ([]Entry, error) {
	const q = `
        SELECT id, file_id, user_id, path, is_dir, readable
        FROM   storage_entry
        WHERE  file_id = ?
          AND  user_id = ?`
	var rows []Entry
	if err := s.db.SelectContext(ctx, &rows, q, fileID, viewerID); err != nil {
		return nil, err
	}
	return rows, nil
}

//
// Per-account view
//

// View resolves paths inside one account's files root.
type View struct {
	store  *Store
	userID string
}

// UserID reports the owning account of this view.
func (v *View) UserID() string { return v.userID }

// Root returns the view's absolute root, always with a trailing slash.
func (v *View) Root() string {
	return v.store.root + "/" + v.userID + "/files/"
}

// AbsolutePath resolves rel against the view root.  The result carries no
// trailing slash unless rel is empty.
func (v *View) AbsolutePath(rel string) string {
	rel = CleanPath(rel)
	if rel == "" {
		return v.Root()
	}
	return v.Root() + rel
}

// EntryByPath fetches the storage row at rel, or ErrEntryNotFound.
func (v *View) EntryByPath(ctx context.Context, rel string) (*Entry, error) {
	const q = `
        SELECT id, file_id, user_id, path, is_dir, readable
        FROM   storage_entry
        WHERE  user_id = ?
          AND  path    = ?
        LIMIT  1`
	var e Entry
	err := v.store.db.GetContext(ctx, &e, q, v.userID, CleanPath(rel))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ReadFile reads the on-disk bytes behind rel.  Callers must have resolved
// access beforehand; this is a plain disk read.
func (v *View) ReadFile(rel string) ([]byte, error) {
	return os.ReadFile(filepath.FromSlash(v.AbsolutePath(rel)))
}

//
// Path helpers
//

// CleanPath normalises a storage-relative path: slash form, no leading or
// trailing slash, and "." collapses to the empty string.
func CleanPath(p string) string {
	p = path.Clean("/" + strings.ReplaceAll(p, "\\", "/"))
	return strings.Trim(p, "/")
}
