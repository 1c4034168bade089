package repository

import (
	"context"
	"path/filepath"
	"regexp"
	"testing"

	"biotrack/internal/repository/db"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockExecutor(t *testing.T, dialect db.Dialect) (*db.Executor, sqlmock.Sqlmock, func()) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = sqlDB.Close()
	}
	return db.NewExecutor(sqlDB, dialect), mock, cleanup
}

// newSQLiteRepository opens a fresh file-backed store with schema and seed.
func newSQLiteRepository(t *testing.T) (*Repository, *db.Executor) {
	t.Helper()
	sqlDB, err := db.InitDB(db.Options{
		Dialect: db.DialectSQLite,
		Path:    filepath.Join(t.TempDir(), "repo.db"),
	})
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	exec := db.NewExecutor(sqlDB, db.DialectSQLite)
	return NewRepository(exec), exec
}

func mustCount(t *testing.T, exec *db.Executor, query string, args ...any) int64 {
	t.Helper()
	res, err := exec.Execute(context.Background(), db.ModeOne, query, args...)
	if err != nil {
		t.Fatalf("count query: %v", err)
	}
	row, _ := res.First()
	n, err := colInt64(row, "n")
	if err != nil {
		t.Fatalf("count column: %v", err)
	}
	return n
}

func contains(s, substr string) bool {
	return len(substr) == 0 || (len(s) >= len(substr) && regexp.MustCompile(regexp.QuoteMeta(substr)).FindStringIndex(s) != nil)
}
