package order

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	orderColumns = `id, customer_name, customer_email, customer_phone, customer_address, products, total, status, tracking_url, created_at`

	listOrdersQuery = `
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at DESC
	`
	getOrderByIDQuery = `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`
	updateOrderQuery = `
		UPDATE orders
		SET status = $1, tracking_url = $2
		WHERE id = $3
	`
	insertOrderQuery = `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanOrder maps one row onto an Order, parsing the serialized products and
// address columns so nothing downstream ever sees raw JSON text.
func scanOrder(row rowScanner) (Order, error) {
	var (
		ord      Order
		phone    sql.NullString
		address  []byte
		products []byte
		tracking sql.NullString
	)
	if err := row.Scan(&ord.ID, &ord.CustomerName, &ord.CustomerEmail, &phone, &address, &products, &ord.Total, &ord.Status, &tracking, &ord.CreatedAt); err != nil {
		return Order{}, err
	}
	if phone.Valid && phone.String != "" {
		ord.CustomerPhone = &phone.String
	}
	if tracking.Valid && tracking.String != "" {
		ord.TrackingURL = &tracking.String
	}

	items, err := ParseProducts(products)
	if err != nil {
		return Order{}, err
	}
	ord.Products = items

	addr, err := ParseAddress(address)
	if err != nil {
		return Order{}, err
	}
	ord.CustomerAddress = addr
	return ord, nil
}

func (r *PostgresRepository) List() ([]Order, error) {
	rows, err := r.db.Query(listOrdersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ord)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id string) (Order, error) {
	ord, err := scanOrder(r.db.QueryRow(getOrderByIDQuery, id))
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	return ord, err
}

// Update writes status and tracking URL in a single statement, then re-reads
// the row so the caller gets the stored record back. Zero rows affected means
// the id does not exist.
func (r *PostgresRepository) Update(ord Order) (Order, error) {
	var tracking any
	if ord.TrackingURL != nil {
		tracking = *ord.TrackingURL
	}
	res, err := r.db.Exec(updateOrderQuery, ord.Status, tracking, ord.ID)
	if err != nil {
		return Order{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Order{}, err
	}
	if affected == 0 {
		return Order{}, ErrNotFound
	}
	return r.GetByID(ord.ID)
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	if ord.ID == "" {
		ord.ID = uuid.New().String()
	}
	products, err := json.Marshal(ord.Products)
	if err != nil {
		return Order{}, err
	}
	var address any
	if ord.CustomerAddress != nil {
		b, err := json.Marshal(ord.CustomerAddress)
		if err != nil {
			return Order{}, err
		}
		address = b
	}
	var phone, tracking any
	if ord.CustomerPhone != nil {
		phone = *ord.CustomerPhone
	}
	if ord.TrackingURL != nil {
		tracking = *ord.TrackingURL
	}

	_, err = r.db.Exec(insertOrderQuery,
		ord.ID, ord.CustomerName, ord.CustomerEmail, phone, address,
		products, ord.Total, ord.Status, tracking, ord.CreatedAt)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}
