// internal/page/page_test.go

package page

import (
	"strings"
	"testing"
)

func TestParseWithFrontMatter(t *testing.T) {
	raw := []byte("---\ntitle: Welcome\naccess: Private\n---\n# Hello\n")

	meta, body, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if meta["title"] != "Welcome" || meta["access"] != "Private" {
		t.Fatalf("meta = %v", meta)
	}
	if string(body) != "# Hello\n" {
		t.Fatalf("body = %q", body)
	}
}

func TestParseWithoutFrontMatter(t *testing.T) {
	raw := []byte("# Just markdown\n")

	meta, body, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if meta != nil {
		t.Fatalf("expected nil meta, got %v", meta)
	}
	if string(body) != string(raw) {
		t.Fatalf("body = %q", body)
	}
}

// A `---` inside a front-matter value must not close the block early; the
// access marker after it still has to reach the visibility rules.
func TestParseFenceInsideValue(t *testing.T) {
	raw := []byte("---\ntitle: one---two\naccess: private\n---\n# Body\n")

	meta, body, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if meta["title"] != "one---two" {
		t.Fatalf("title = %v", meta["title"])
	}
	if meta["access"] != "private" {
		t.Fatalf("access = %v, want private", meta["access"])
	}
	if string(body) != "# Body\n" {
		t.Fatalf("body = %q", body)
	}
}

func TestParseEmptyFrontMatter(t *testing.T) {
	raw := []byte("---\n---\n# Body\n")

	meta, body, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(meta) != 0 {
		t.Fatalf("meta = %v", meta)
	}
	if string(body) != "# Body\n" {
		t.Fatalf("body = %q", body)
	}
}

func TestParseUnterminatedFrontMatter(t *testing.T) {
	raw := []byte("---\ntitle: Broken\n")

	if _, _, err := Parse(raw); err == nil {
		t.Fatal("expected error for unterminated front matter")
	}
}

func TestParseMalformedYAML(t *testing.T) {
	raw := []byte("---\n{invalid\n---\nbody\n")

	if _, _, err := Parse(raw); err == nil {
		t.Fatal("expected error for malformed front matter")
	}
}

func TestRender(t *testing.T) {
	html, err := Render([]byte("# Hello\n"))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(string(html), "<h1") {
		t.Fatalf("rendered %q", html)
	}
}

func TestMetaTitle(t *testing.T) {
	if got := (Meta{"title": "Hi"}).Title("fallback"); got != "Hi" {
		t.Fatalf("Title = %q", got)
	}
	if got := (Meta{}).Title("fallback"); got != "fallback" {
		t.Fatalf("Title = %q", got)
	}
	if got := Meta(nil).Title("fallback"); got != "fallback" {
		t.Fatalf("Title on nil = %q", got)
	}
}
