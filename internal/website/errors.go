// internal/website/errors.go
//
// Sentinel error kinds for website validation and access control.  Every
// failure wraps exactly one sentinel so callers discriminate with
// errors.Is while the wrapped text carries the translated, user-facing
// message.
package website

import "errors"

var (
	// ErrMinLength marks a site or name below its length floor.
	ErrMinLength = errors.New("website: below minimum length")

	// ErrInvalidChars marks a site slug with characters outside
	// [A-Za-z0-9_-].
	ErrInvalidChars = errors.New("website: invalid characters")

	// ErrInvalidPath marks a path with `.` or `..` segments, or a
	// candidate path outside the website root.
	ErrInvalidPath = errors.New("website: invalid path")

	// ErrContentNotLocal marks content resolving outside the owner's
	// declared directory.
	ErrContentNotLocal = errors.New("website: content not local")

	// ErrNotOwner marks an operation attempted by a non-owner.
	ErrNotOwner = errors.New("website: not owner")

	// ErrPageNotFound marks a page path with no storage entry behind it.
	ErrPageNotFound = errors.New("website: page not found")

	// ErrAccessDenied marks a private page refused to the viewer.
	ErrAccessDenied = errors.New("website: access denied")

	// ErrWebsiteNotFound marks a repository lookup with no matching row.
	ErrWebsiteNotFound = errors.New("website: not found")

	// ErrSiteExists marks an insert with an already-taken site slug.
	ErrSiteExists = errors.New("website: site already exists")
)
