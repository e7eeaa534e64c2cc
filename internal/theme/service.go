// internal/theme/service.go
//
// Theme inventory: built-in themes, custom themes registered in the app
// config store, and themes sitting on disk that nobody registered yet.
//
// Context
// -------
// Built-in themes ship with the platform and are a fixed list.  Custom
// themes are directory names an admin has blessed; the list is persisted as
// one JSON array in app config so it survives restarts without schema
// changes.  The combined list is built-ins followed by custom entries,
// order preserved, duplicates kept—callers that need a set can build one.
//
// Directory scans are recomputed on every call.  The themes root missing or
// unreadable is a configuration error surfaced to the caller unchanged.
package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/yanizio/picohost/internal/appconfig"
	"github.com/yanizio/picohost/internal/l10n"
	"github.com/yanizio/picohost/internal/metrics"
)

var (
	// ErrThemeNotFound marks a theme name absent from the combined list.
	ErrThemeNotFound = errors.New("theme: not found")

	// ErrThemeExists marks an attempt to register a name twice.
	ErrThemeExists = errors.New("theme: already registered")
)

// customThemesKey is the app-config key holding the JSON array of custom
// theme names.
const customThemesKey = "custom_themes"

// builtinThemes ship with the platform.
var builtinThemes = []string{"default"}

// Service answers theme queries.  Safe for concurrent use.
type Service struct {
	dir   string // themes root on disk
	cfg   *appconfig.Store
	trans l10n.Translator
}

// NewService returns a Service over the given themes root and config store.
func NewService(dir string, cfg *appconfig.Store, trans l10n.Translator) *Service {
	return &Service{dir: strings.TrimRight(dir, "/"), cfg: cfg, trans: trans}
}

// WithTranslator returns a copy of the Service rendering messages through
// trans.  The HTTP layer uses it to honor Accept-Language per request.
func (s *Service) WithTranslator(trans l10n.Translator) *Service {
	return &Service{dir: s.dir, cfg: s.cfg, trans: trans}
}

// Themes returns custom themes only, or built-ins followed by custom
// entries.  Order is preserved and duplicates are not removed.
func (s *Service) Themes(ctx context.Context, customOnly bool) ([]string, error) {
	custom, err := s.customThemes(ctx)
	if err != nil {
		return nil, err
	}
	if customOnly {
		return custom, nil
	}
	out := make([]string, 0, len(builtinThemes)+len(custom))
	out = append(out, builtinThemes...)
	return append(out, custom...), nil
}

// ValidateTheme fails with ErrThemeNotFound when name is not in the
// combined list.
func (s *Service) ValidateTheme(ctx context.Context, name string) error {
	all, err := s.Themes(ctx, false)
	if err != nil {
		return err
	}
	if !slices.Contains(all, name) {
		return fmt.Errorf("%w: %s", ErrThemeNotFound, s.trans.T("Theme %s not found", name))
	}
	return nil
}

// NewThemes scans the themes root one level deep and returns directories
// that are not yet in the combined list.  Dot-prefixed entries and plain
// files are skipped.  Scan errors propagate unchanged; a missing themes
// root is a fatal configuration error for this call only.
func (s *Service) NewThemes(ctx context.Context) ([]string, error) {
	known, err := s.Themes(ctx, false)
	if err != nil {
		return nil, err
	}

	metrics.ThemeScanTotal.Inc()
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	found := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if slices.Contains(known, e.Name()) {
			continue
		}
		found = append(found, e.Name())
	}
	return found, nil
}

// AddCustomTheme registers a discovered theme directory.  The directory
// must exist under the themes root, and the name must not already be in
// the combined list.
func (s *Service) AddCustomTheme(ctx context.Context, name string) error {
	all, err := s.Themes(ctx, false)
	if err != nil {
		return err
	}
	if slices.Contains(all, name) {
		return fmt.Errorf("%w: %s", ErrThemeExists, name)
	}

	info, err := os.Stat(s.dir + "/" + name)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrThemeNotFound, s.trans.T("Theme %s not found", name))
	}

	custom, err := s.customThemes(ctx)
	if err != nil {
		return err
	}
	return s.saveCustomThemes(ctx, append(custom, name))
}

// RemoveCustomTheme unregisters a custom theme.  Built-ins cannot be
// removed; unknown names fail with ErrThemeNotFound.
func (s *Service) RemoveCustomTheme(ctx context.Context, name string) error {
	custom, err := s.customThemes(ctx)
	if err != nil {
		return err
	}
	idx := slices.Index(custom, name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrThemeNotFound, s.trans.T("Theme %s not found", name))
	}
	return s.saveCustomThemes(ctx, slices.Delete(custom, idx, idx+1))
}

//
// Persistence helpers
//

// customThemes decodes the persisted JSON array; an unset value is an
// empty list.
func (s *Service) customThemes(ctx context.Context) ([]string, error) {
	raw, err := s.cfg.Value(ctx, customThemesKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return []string{}, nil
	}
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("theme: custom list corrupt: %w", err)
	}
	return names, nil
}

func (s *Service) saveCustomThemes(ctx context.Context, names []string) error {
	raw, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return s.cfg.SetValue(ctx, customThemesKey, string(raw))
}
