// internal/website/repository_test.go
//
// Unit-tests for the website repository helpers using sqlmock.

package website

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

var websiteCols = []string{
	"id", "site", "name", "user_id", "path", "theme", "options",
	"created_at", "updated_at",
}

func newRepoDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestBySite(t *testing.T) {
	db, mock := newRepoDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, site, name, user_id, path, theme, options, created_at, updated_at FROM website WHERE site = ? LIMIT 1`,
	)).
		WithArgs("mysite").
		WillReturnRows(sqlmock.NewRows(websiteCols).
			AddRow(7, "mysite", "My Site", "alice", "pico/mysite", "default",
				`{"private":"1"}`, now, now))

	w, err := BySite(context.Background(), db, "mysite")
	if err != nil {
		t.Fatalf("BySite error: %v", err)
	}
	if w.ID != 7 || w.UserID != "alice" {
		t.Fatalf("unexpected row: %+v", w)
	}
	if w.Option(OptionPrivate) != "1" {
		t.Fatalf("options not decoded: %+v", w.Options)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestBySiteNotFound(t *testing.T) {
	db, mock := newRepoDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WithArgs("nope").
		WillReturnError(errNoRows())

	if _, err := BySite(context.Background(), db, "nope"); !errors.Is(err, ErrWebsiteNotFound) {
		t.Fatalf("expected ErrWebsiteNotFound, got %v", err)
	}
}

func TestInsertAssignsID(t *testing.T) {
	db, mock := newRepoDB(t)

	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO website (site, name, user_id, path, theme, options) VALUES (?, ?, ?, ?, ?, ?)`,
	)).
		WithArgs("mysite", "My Site", "alice", "pico/mysite", "default", "{}").
		WillReturnResult(sqlmock.NewResult(7, 1))

	w := &Website{Site: "mysite", Name: "My Site", UserID: "alice", Path: "pico/mysite", Theme: "default"}
	if err := Insert(context.Background(), db, w); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if w.ID != 7 {
		t.Fatalf("ID = %d, want 7", w.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestUpdateMissingRow(t *testing.T) {
	db, mock := newRepoDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE website`)).
		WithArgs("My Site", "pico/mysite", "default", "{}", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := &Website{ID: 99, Name: "My Site", Path: "pico/mysite", Theme: "default"}
	if err := Update(context.Background(), db, w); !errors.Is(err, ErrWebsiteNotFound) {
		t.Fatalf("expected ErrWebsiteNotFound, got %v", err)
	}
}
