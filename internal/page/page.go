// internal/page/page.go
//
// Page content pipeline: YAML front matter plus Markdown body.
//
// A page file looks like:
//
//	---
//	title: Welcome
//	access: private
//	---
//	# Hello
//
// Parse splits the two halves; Render turns the body into HTML.  Front
// matter drives the visibility rules in internal/website, so parsing must
// succeed before any access decision is made.
package page

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// Meta is the decoded front matter of one page.  A nil Meta is valid and
// means the page declared nothing.
type Meta map[string]any

var delimiter = []byte("---")

// md is the shared converter.  GFM tables and strikethrough are enabled to
// match what the generator renders.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Parse splits raw into front matter and body.  Content without a leading
// `---` line has no front matter; the whole input is the body.  Malformed
// YAML is an error because visibility rules depend on it.
func Parse(raw []byte) (Meta, []byte, error) {
	if !bytes.HasPrefix(raw, delimiter) {
		return nil, raw, nil
	}

	rest := raw[len(delimiter):]
	// The opening delimiter must terminate its line.
	if nl := bytes.IndexByte(rest, '\n'); nl >= 0 && len(bytes.TrimSpace(rest[:nl])) == 0 {
		rest = rest[nl+1:]
	} else {
		return nil, raw, nil
	}

	// The closing fence must start its own line; a `---` inside a value
	// must not cut the metadata short.
	var end int
	if bytes.HasPrefix(rest, delimiter) {
		end = 0
	} else if i := bytes.Index(rest, append([]byte{'\n'}, delimiter...)); i >= 0 {
		end = i + 1
	} else {
		return nil, nil, fmt.Errorf("page: unterminated front matter")
	}

	var meta Meta
	if err := yaml.Unmarshal(rest[:end], &meta); err != nil {
		return nil, nil, fmt.Errorf("page: front matter: %w", err)
	}

	body := rest[end+len(delimiter):]
	if nl := bytes.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	} else {
		body = nil
	}
	return meta, body, nil
}

// Render converts a Markdown body to HTML.
func Render(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Title returns the front-matter title, or fallback when absent.
func (m Meta) Title(fallback string) string {
	if v, ok := m["title"].(string); ok && v != "" {
		return v
	}
	return fallback
}
