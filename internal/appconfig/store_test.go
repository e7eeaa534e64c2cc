// internal/appconfig/store_test.go
//
// Unit-tests for the app_config helpers using sqlmock.

package appconfig

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(sqlx.NewDb(db, "sqlmock"), "picohost"), mock
}

func TestValue(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT value FROM app_config WHERE app = ? AND `key` = ? LIMIT 1",
	)).
		WithArgs("picohost", "custom_themes").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`["night"]`))

	got, err := s.Value(context.Background(), "custom_themes")
	if err != nil {
		t.Fatalf("Value error: %v", err)
	}
	if got != `["night"]` {
		t.Fatalf("Value = %q", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestValueUnsetIsEmpty(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM app_config")).
		WithArgs("picohost", "nothing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	got, err := s.Value(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("Value error: %v", err)
	}
	if got != "" {
		t.Fatalf("Value = %q, want empty", got)
	}
}

func TestSetValue(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO app_config (app, `key`, value) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE value = VALUES(value)",
	)).
		WithArgs("picohost", "custom_themes", `["night"]`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := s.SetValue(context.Background(), "custom_themes", `["night"]`); err != nil {
		t.Fatalf("SetValue error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}
