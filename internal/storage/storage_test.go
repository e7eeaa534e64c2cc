// internal/storage/storage_test.go

package storage

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func TestCleanPath(t *testing.T) {
	cases := []struct{ in, want string }{
		{"a/b/c", "a/b/c"},
		{"/a/b/", "a/b"},
		{"a//b", "a/b"},
		{".", ""},
		{"", ""},
		{"a/../b", "b"},
		{`a\b`, "a/b"},
	}
	for _, tc := range cases {
		if got := CleanPath(tc.in); got != tc.want {
			t.Errorf("CleanPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestViewPaths(t *testing.T) {
	s := New(nil, "/srv/storage/")
	v := s.View("alice")

	if got := v.Root(); got != "/srv/storage/alice/files/" {
		t.Fatalf("Root = %q", got)
	}
	if got := v.AbsolutePath("pico/mysite"); got != "/srv/storage/alice/files/pico/mysite" {
		t.Fatalf("AbsolutePath = %q", got)
	}
	if got := v.AbsolutePath(""); got != "/srv/storage/alice/files/" {
		t.Fatalf("AbsolutePath(\"\") = %q", got)
	}
}

func TestEntryByPathNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, file_id, user_id, path, is_dir, readable FROM storage_entry WHERE user_id = ? AND path = ? LIMIT 1`,
	)).
		WithArgs("alice", "missing.md").
		WillReturnError(sql.ErrNoRows)

	s := New(sqlx.NewDb(db, "sqlmock"), "/srv/storage")
	_, err = s.View("alice").EntryByPath(context.Background(), "missing.md")
	if !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestEntriesByFileID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, file_id, user_id, path, is_dir, readable FROM storage_entry WHERE file_id = ? AND user_id = ?`,
	)).
		WithArgs(int64(42), "bob").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "file_id", "user_id", "path", "is_dir", "readable"}).
			AddRow(9, 42, "bob", "shared/index.md", false, true))

	s := New(sqlx.NewDb(db, "sqlmock"), "/srv/storage")
	entries, err := s.EntriesByFileID(context.Background(), "bob", 42)
	if err != nil {
		t.Fatalf("EntriesByFileID error: %v", err)
	}
	if len(entries) != 1 || !entries[0].Readable {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}
