package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"biotrack/internal/repository/db"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestFoodRepository_List(t *testing.T) {
	exec, mock, cleanup := newMockExecutor(t, db.DialectMySQL)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectFoodsSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow([]byte("3"), []byte("Apple")).
			AddRow(int64(1), "Banana"))

	foods, err := NewFoodRepository(exec).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(foods) != 2 || foods[0].ID != 3 || foods[0].Name != "Apple" || foods[1].ID != 1 {
		t.Fatalf("unexpected foods: %+v", foods)
	}
}

func TestFoodRepository_List_Error(t *testing.T) {
	exec, mock, cleanup := newMockExecutor(t, db.DialectSQLite)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectFoodsSQL)).WillReturnError(errors.New("no such table"))

	if _, err := NewFoodRepository(exec).List(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestFoodRepository_SQLite_SeededCatalogSortedByName(t *testing.T) {
	repos, _ := newSQLiteRepository(t)

	foods, err := repos.Foods.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(foods) == 0 {
		t.Fatal("expected seeded foods")
	}
	for i := 1; i < len(foods); i++ {
		if foods[i-1].Name > foods[i].Name {
			t.Fatalf("foods not sorted by name: %q before %q", foods[i-1].Name, foods[i].Name)
		}
	}
}
