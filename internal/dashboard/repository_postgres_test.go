package dashboard

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresCounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM products").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery("FROM orders").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(34))
	mock.ExpectQuery("FROM customers").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	ctx := context.Background()
	if n, err := repo.CountProducts(ctx); err != nil || n != 12 {
		t.Fatalf("CountProducts = %d, %v", n, err)
	}
	if n, err := repo.CountOrders(ctx); err != nil || n != 34 {
		t.Fatalf("CountOrders = %d, %v", n, err)
	}
	if n, err := repo.CountCustomers(ctx); err != nil || n != 5 {
		t.Fatalf("CountCustomers = %d, %v", n, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
