// internal/website/validate_test.go
//
// Unit-tests for ValidateForSave.  The check order is part of the contract:
// site length, then name length, then path segments, then site charset,
// with early exit on the first violation.

package website

import (
	"errors"
	"testing"

	"github.com/yanizio/picohost/internal/l10n"
)

func newValidateService() *Service {
	// Validation never touches storage.
	return NewService(nil, l10n.New())
}

func TestValidateForSave(t *testing.T) {
	svc := newValidateService()

	cases := []struct {
		label string
		site  string
		name  string
		path  string
		want  error // nil means pass
	}{
		{"site too short", "ab", "abcde", "valid/dir", ErrMinLength},
		{"name too short after valid site", "abc", "abcd", "valid/dir", ErrMinLength},
		{"empty site", "", "abcde", "valid/dir", ErrMinLength},
		{"parent segment in path", "abc", "abcde", "../x", ErrInvalidPath},
		{"dot segment in path", "abc", "abcde", "a/./b", ErrInvalidPath},
		{"trailing parent segment", "abc", "abcde", "a/b/..", ErrInvalidPath},
		{"space in site", "my site", "My Site", "valid/dir", ErrInvalidChars},
		{"slash in site", "my/site", "My Site", "valid/dir", ErrInvalidChars},
		{"at-sign in site", "my@site", "My Site", "valid/dir", ErrInvalidChars},
		{"valid website", "my-site_1", "My Site", "valid/dir", nil},
		{"valid with empty path", "my-site_1", "My Site", "", nil},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			w := &Website{Site: tc.site, Name: tc.name, Path: tc.path}
			err := svc.ValidateForSave(w)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("expected pass, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

// The length check on site must fire before the charset check even when
// both would fail.
func TestValidateOrderLengthBeforeCharset(t *testing.T) {
	svc := newValidateService()

	w := &Website{Site: "a!", Name: "abcde", Path: "ok"}
	if err := svc.ValidateForSave(w); !errors.Is(err, ErrMinLength) {
		t.Fatalf("expected ErrMinLength before charset, got %v", err)
	}
}

// The path check must fire before the charset check.
func TestValidateOrderPathBeforeCharset(t *testing.T) {
	svc := newValidateService()

	w := &Website{Site: "bad site", Name: "abcde", Path: "../escape"}
	if err := svc.ValidateForSave(w); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath before charset, got %v", err)
	}
}
