package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	models "storefront/model"
)

//go:embed migrations.sql
var migrationSQL string

// ErrEmptyOrder is returned when an order without line items is saved.
var ErrEmptyOrder = errors.New("order has no items")

const (
	listProductsSQL    = `SELECT sku, name, price FROM products ORDER BY seq`
	upsertProductSQL   = `INSERT INTO products (sku, name, price) VALUES ($1, $2, $3) ON CONFLICT (sku) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price`
	insertOrderSQL     = `INSERT INTO orders (reference, total_items, total) VALUES ($1, $2, $3) RETURNING id`
	insertOrderItemSQL = `INSERT INTO order_items (order_id, sku, name, quantity, price) VALUES ($1, $2, $3, $4, $5)`
)

// ProductRow is a row of the products table.
type ProductRow struct {
	SKU   string
	Name  string
	Price decimal.Decimal
}

// PostgresStore is a Store backed by Postgres.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresStore{DB: db}, nil
}

func (s *PostgresStore) Close() error { return s.DB.Close() }

// Migrate creates the tables if they do not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, migrationSQL)
	return err
}

// ListProducts returns the products in the order they were first inserted.
func (s *PostgresStore) ListProducts(ctx context.Context) ([]ProductRow, error) {
	rows, err := s.DB.QueryContext(ctx, listProductsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []ProductRow{}
	for rows.Next() {
		var p ProductRow
		if err := rows.Scan(&p.SKU, &p.Name, &p.Price); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Products lists the product table as catalog entries.
func (s *PostgresStore) Products(ctx context.Context) ([]models.Product, error) {
	rows, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.Product{SKU: r.SKU, Name: r.Name, Price: r.Price})
	}
	return out, nil
}

// CreateProduct inserts p, or overwrites name and price if the sku exists.
func (s *PostgresStore) CreateProduct(ctx context.Context, p models.Product) error {
	_, err := s.DB.ExecContext(ctx, upsertProductSQL, p.SKU, p.Name, p.Price)
	return err
}

// SaveOrder writes the order and its line items in one transaction and
// returns the new order id.
func (s *PostgresStore) SaveOrder(ctx context.Context, order models.Order) (int64, error) {
	if len(order.Items) == 0 {
		return 0, ErrEmptyOrder
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	// ensure rollback on early return
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var orderID int64
	if err := tx.QueryRowContext(ctx, insertOrderSQL, order.ID, order.TotalItems, order.Total).Scan(&orderID); err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, insertOrderItemSQL)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, it := range order.Items {
		if _, err := stmt.ExecContext(ctx, orderID, it.SKU, it.Name, it.Qty, it.Price); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return orderID, nil
}

// Submit persists order as the fulfillment step of checkout.
func (s *PostgresStore) Submit(ctx context.Context, order models.Order) error {
	_, err := s.SaveOrder(ctx, order)
	return err
}
