// internal/website/model.go
//
// Website aggregate: one mapping from a user's storage folder to a
// generated static site.
//
// Context
// -------
// A Website row is loaded per incoming request, decorated with the
// requesting viewer, access-checked, and discarded.  The struct is plain
// data; every rule lives in Service so the model stays serialisable and
// test-friendly.
package website

import (
	"time"

	"github.com/yanizio/picohost/internal/storage"
)

// Length floors enforced before persistence.
const (
	MinSiteLength = 3
	MinNameLength = 5
)

// Option keys interpreted by the platform.
const (
	// OptionPrivate marks the whole website private when set to "1".
	OptionPrivate = "private"

	// OptionContentSource optionally redirects the content folder; it
	// must resolve inside the owner's storage (AssertContentIsLocal).
	OptionContentSource = "content_source"
)

// Website mirrors one row in the `website` table plus per-request state.
type Website struct {
	ID        int64     `db:"id"`
	Site      string    `db:"site"`    // short unique slug
	Name      string    `db:"name"`    // display name
	UserID    string    `db:"user_id"` // owning account
	Path      string    `db:"path"`    // folder relative to the owner's files root
	Theme     string    `db:"theme"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// Options holds string settings such as the private flag.  Persisted
	// as one JSON column; see repository.go.
	Options map[string]string `db:"-"`

	// Viewer is the account requesting a page.  Set per request, never
	// persisted.
	Viewer string `db:"-"`

	// ownerView is memoized on first use and reused for this instance's
	// lifetime.  Only Service touches it.
	ownerView *storage.View
}

// Option returns the value for key, or the empty string when unset.
func (w *Website) Option(key string) string {
	return w.Options[key]
}

// SetOption stores one option value, allocating the map on first use.
func (w *Website) SetOption(key, value string) {
	if w.Options == nil {
		w.Options = make(map[string]string, 4)
	}
	w.Options[key] = value
}
