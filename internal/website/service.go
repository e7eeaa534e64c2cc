// internal/website/service.go
//
// Validation, path resolution, and access control for websites.
//
// Context
// -------
// Service holds the injected collaborators (storage, translation) and
// operates on plain Website values by reference.  The guard methods are
// independent predicates; the controller calls the right one at the right
// lifecycle point:
//
//	save     → ValidateForSave
//	request  → AssertViewerHasAccess (and PageFileID underneath)
//	admin    → AssertOwnedBy
//
// Check order inside ValidateForSave is fixed—site length, name length,
// path segments, site charset—with early exit on the first violation, so
// error reporting stays deterministic.
//
// Notes
// -----
// • Storage paths are slash-separated; see internal/storage.
// • Oxford commas, two spaces after periods.
package website

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yanizio/picohost/internal/l10n"
	"github.com/yanizio/picohost/internal/storage"
)

// Service runs website rules against injected collaborators.
type Service struct {
	store *storage.Store
	trans l10n.Translator
}

// NewService returns a Service bound to the given storage and translator.
func NewService(store *storage.Store, trans l10n.Translator) *Service {
	return &Service{store: store, trans: trans}
}

// WithTranslator returns a copy of the Service rendering messages through
// trans.  The HTTP layer uses it to honor Accept-Language per request.
func (s *Service) WithTranslator(trans l10n.Translator) *Service {
	return &Service{store: s.store, trans: trans}
}

//
// Validation
//

// ValidateForSave runs the pre-persistence checks in order: site length,
// name length, path segments, site charset.  The first violation is
// returned; a nil result means the caller may persist.
func (s *Service) ValidateForSave(w *Website) error {
	if len(w.Site) < MinSiteLength {
		return fmt.Errorf("%w: %s", ErrMinLength,
			s.trans.T("The name is too short (%d characters minimum)", MinSiteLength))
	}
	if len(w.Name) < MinNameLength {
		return fmt.Errorf("%w: %s", ErrMinLength,
			s.trans.T("The name is too short (%d characters minimum)", MinNameLength))
	}
	if hasDotSegment(w.Path) {
		return fmt.Errorf("%w: %s", ErrInvalidPath,
			s.trans.T("The path contains invalid segments"))
	}
	if !validSiteChars(w.Site) {
		return fmt.Errorf("%w: %s", ErrInvalidChars,
			s.trans.T("The identifier contains invalid characters"))
	}
	return nil
}

// hasDotSegment reports whether any path segment is "." or "..".
func hasDotSegment(p string) bool {
	for _, seg := range strings.Split(strings.ReplaceAll(p, "\\", "/"), "/") {
		if seg == "." || seg == ".." {
			return true
		}
	}
	return false
}

// hasParentSegment reports whether any path segment is "..".
func hasParentSegment(p string) bool {
	for _, seg := range strings.Split(strings.ReplaceAll(p, "\\", "/"), "/") {
		if seg == ".." {
			return true
		}
	}
	return false
}

// validSiteChars restricts site slugs to [A-Za-z0-9_-].
func validSiteChars(site string) bool {
	for i := 0; i < len(site); i++ {
		c := site[i]
		switch {
		case c >= 'a' && c <= 'z',
			c >= 'A' && c <= 'Z',
			c >= '0' && c <= '9',
			c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}

//
// Path resolution
//

// ownerView memoizes the owner's storage view on the Website instance.
// One-time initialization; the view is reused for the instance lifetime.
func (s *Service) ownerView(w *Website) *storage.View {
	if w.ownerView == nil {
		w.ownerView = s.store.View(w.UserID)
	}
	return w.ownerView
}

// AbsolutePath resolves the website folder against the owner's storage
// root.  The result always ends with exactly one separator.
func (s *Service) AbsolutePath(w *Website) string {
	abs := s.ownerView(w).AbsolutePath(w.Path)
	if !strings.HasSuffix(abs, "/") {
		abs += "/"
	}
	return abs
}

// RelativePath translates an absolute path back into one relative to the
// website root.  Non-absolute input is returned unchanged.  Absolute input
// that does not lie under the website root fails with ErrInvalidPath
// rather than guessing at a substring.
func (s *Service) RelativePath(w *Website, candidate string) (string, error) {
	if !strings.HasPrefix(candidate, "/") {
		return candidate, nil
	}
	root := s.AbsolutePath(w)
	if !strings.HasPrefix(candidate, root) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath,
			s.trans.T("The path contains invalid segments"))
	}
	return strings.TrimPrefix(candidate, root), nil
}

// AssertContentIsLocal fails with ErrContentNotLocal unless p begins with
// the website's absolute root and climbs no directories.  This defends
// against a content-source option pointing outside the owner's storage.
func (s *Service) AssertContentIsLocal(w *Website, p string) error {
	if !strings.HasPrefix(p, s.AbsolutePath(w)) || hasParentSegment(p) {
		return fmt.Errorf("%w: %s", ErrContentNotLocal,
			s.trans.T("The website content must stay inside the owner folder"))
	}
	return nil
}

//
// Page lookup and access
//

// PageFileID resolves the storage file ID behind a site-relative page
// path.  ErrPageNotFound when the owner's storage has no such entry.
// The resolved path must stay inside the website folder; `..` segments
// that would climb out of it fail with ErrInvalidPath before any lookup.
func (s *Service) PageFileID(ctx context.Context, w *Website, relativeLocal string) (int64, error) {
	root := storage.CleanPath(w.Path)
	rel := storage.CleanPath(root + "/" + relativeLocal)
	if root != "" && !strings.HasPrefix(rel, root+"/") {
		return 0, fmt.Errorf("%w: %s", ErrInvalidPath,
			s.trans.T("The path contains invalid segments"))
	}
	entry, err := s.ownerView(w).EntryByPath(ctx, rel)
	if errors.Is(err, storage.ErrEntryNotFound) {
		return 0, fmt.Errorf("%w: %s", ErrPageNotFound, s.trans.T("Page not found"))
	}
	if err != nil {
		return 0, err
	}
	return entry.FileID, nil
}

// IsReadableByViewer reports whether any storage entry visible to the
// current viewer shares the page's file ID and is marked readable.  Lookup
// failures yield false, never an error; callers decide beforehand whether
// existence should already have been validated.
func (s *Service) IsReadableByViewer(ctx context.Context, w *Website, relativeLocal string) bool {
	if w.Viewer == "" {
		return false
	}
	fileID, err := s.PageFileID(ctx, w, relativeLocal)
	if err != nil {
		return false
	}
	entries, err := s.store.EntriesByFileID(ctx, w.Viewer, fileID)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if e.Readable {
			return true
		}
	}
	return false
}

// IsPageVisible reports whether a page is public.  A page is private iff
// its front matter carries an `access` field equal to "private"
// case-insensitively, or, absent such a field, the website's private
// option equals "1".
func (s *Service) IsPageVisible(w *Website, meta map[string]any) bool {
	if v, ok := meta["access"].(string); ok {
		return !strings.EqualFold(v, "private")
	}
	return w.Option(OptionPrivate) != "1"
}

// AssertViewerHasAccess admits every viewer to public pages.  Private
// pages admit the owner, or a viewer holding a readable share of the
// underlying file; everyone else fails with ErrAccessDenied.
func (s *Service) AssertViewerHasAccess(ctx context.Context, w *Website, relativeLocal string, meta map[string]any) error {
	if s.IsPageVisible(w, meta) {
		return nil
	}
	if w.Viewer != "" && w.Viewer == w.UserID {
		return nil
	}
	if s.IsReadableByViewer(ctx, w, relativeLocal) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrAccessDenied,
		s.trans.T("Access denied to this private website"))
}

// AssertOwnedBy fails with ErrNotOwner unless userID is the owning
// account.
func (s *Service) AssertOwnedBy(w *Website, userID string) error {
	if userID == "" || userID != w.UserID {
		return fmt.Errorf("%w: %s", ErrNotOwner,
			s.trans.T("You are not the owner of this website"))
	}
	return nil
}
