package product

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var productCols = []string{"id", "name", "description", "price", "image", "stock", "created_at", "updated_at"}

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(productCols).
		AddRow("p2", "Desk Lamp", "Warm LED lamp", 159900, "/img/lamp.jpg", 4, now, now).
		AddRow("p1", "Ceramic Mug", "Hand-glazed mug", 24900, "/img/mug.jpg", 12, now.Add(-time.Hour), now)
	mock.ExpectQuery("FROM products").WillReturnRows(rows)

	products, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 2 || products[0].Name != "Desk Lamp" || products[1].Price != 24900 {
		t.Fatalf("unexpected products: %+v", products)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM products").WithArgs("missing").WillReturnRows(sqlmock.NewRows(productCols))

	if _, err := repo.GetByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresDelete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM products").WithArgs("missing").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
