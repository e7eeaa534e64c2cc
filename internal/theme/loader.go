// internal/theme/loader.go
//
// Template loading for themes.  One theme directory holds the HTML
// templates a website renders through; parsed sets are kept in a small LRU
// so busy themes are not re-parsed per request.
package theme

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sync"

	"github.com/yanizio/picohost/internal/cache"
)

// Loader parses and caches theme templates.
type Loader struct {
	dir string

	mu    sync.Mutex
	cache *cache.LRU[string, *template.Template]
}

// NewLoader returns a Loader over the themes root.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir, cache: cache.New[string, *template.Template](32)}
}

// Load parses the templates of one theme, serving repeats from cache.  The
// template set must contain `page.html`, the entry point the page handler
// executes.
func (l *Loader) Load(name string) (*template.Template, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if tpl, ok := l.cache.Get(name); ok {
		return tpl, nil
	}

	root := filepath.Join(l.dir, name)
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: no directory at %s", ErrThemeNotFound, root)
	}

	assetPrefix := "/themes/" + name + "/assets/"
	tpl := template.New("").Funcs(template.FuncMap{
		"asset": func(p string) string { return assetPrefix + p },
	})

	files, err := collectHTML(root)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("theme %s has no templates", name)
	}
	if _, err := tpl.ParseFiles(files...); err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", name, err)
	}
	if tpl.Lookup("page.html") == nil {
		return nil, fmt.Errorf("theme %s is missing page.html", name)
	}

	l.cache.Add(name, tpl)
	return tpl, nil
}

// Invalidate drops one theme from the cache, forcing a re-parse on next
// use.  Called after a custom theme is updated on disk.
func (l *Loader) Invalidate(name string) {
	l.mu.Lock()
	l.cache.Remove(name)
	l.mu.Unlock()
}
