package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type ProductStore struct {
	db *sqlx.DB
}

// Create registers a product. Code and name each carry a unique
// constraint; a violation surfaces as a ConflictError.
func (ps *ProductStore) Create(ctx context.Context, p *Product) error {
	var exists bool
	err := ps.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM products WHERE code = $1 OR name = $2)`,
		p.Code, p.Name)
	if err != nil {
		return Infrastructuref("check product", err)
	}
	if exists {
		return &ConflictError{Field: "code/name", Value: p.Code}
	}

	err = ps.db.QueryRowxContext(ctx, `INSERT INTO products
		(code, name, unit, unit_price, supplier_id, image_path, observation)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, inserted_at`,
		p.Code, p.Name, p.Unit, p.UnitPrice, p.SupplierID, p.ImagePath, p.Observation).
		Scan(&p.ID, &p.InsertedAt)
	if err != nil {
		return mapWriteError("insert product", err)
	}
	return nil
}

func (ps *ProductStore) FindByID(ctx context.Context, id int64) (*Product, error) {
	var p Product
	err := ps.db.GetContext(ctx, &p,
		`SELECT id, code, name, unit, unit_price, supplier_id, image_path, observation, inserted_at
		 FROM products WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	return &p, nil
}

// NameByID resolves only the product name. The purchase recorder uses it
// to derive the denormalized first-product column.
func (ps *ProductStore) NameByID(ctx context.Context, id int64) (string, error) {
	var name string
	err := ps.db.GetContext(ctx, &name, `SELECT name FROM products WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", &NotFoundError{Entity: "product", Key: fmt.Sprint(id)}
	}
	if err != nil {
		return "", Infrastructuref("query product name", err)
	}
	return name, nil
}

// IDByCode resolves a catalog code to the product id. The CSV importer
// uses it to link item rows.
func (ps *ProductStore) IDByCode(ctx context.Context, code string) (int64, error) {
	var id int64
	err := ps.db.GetContext(ctx, &id, `SELECT id FROM products WHERE code = $1`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, &NotFoundError{Entity: "product", Key: code}
	}
	if err != nil {
		return 0, Infrastructuref("query product by code", err)
	}
	return id, nil
}
