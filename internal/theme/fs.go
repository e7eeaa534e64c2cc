// fs.go holds tiny helpers for walking a theme directory when template glob
// patterns such as “**/*.html” are not available in the Go standard library.
package theme

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// collectHTML walks rootDir recursively and returns a list of *.html paths
// in slash form, ready for template.ParseFiles.
func collectHTML(rootDir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil { // propagate filesystem errors immediately
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(d.Name()), ".html") {
			files = append(files, filepath.ToSlash(path))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
