package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// LookupStore serves the reference lists the sale and purchase forms
// populate their selects from. Read-only.
type LookupStore struct {
	db *sqlx.DB
}

func (ls *LookupStore) ListSuppliers(ctx context.Context) ([]Supplier, error) {
	var out []Supplier
	err := ls.db.SelectContext(ctx, &out,
		`SELECT id, name, cnpj, phone, email FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return out, nil
}

// SupplierNameByID resolves a supplier id to its name. The purchase flow
// stores the name denormalized on the purchase row.
func (ls *LookupStore) SupplierNameByID(ctx context.Context, id int64) (string, error) {
	var name string
	err := ls.db.GetContext(ctx, &name, `SELECT name FROM suppliers WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", &NotFoundError{Entity: "supplier", Key: fmt.Sprint(id)}
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up supplier name: %w", err)
	}
	return name, nil
}

func (ls *LookupStore) ListCarriers(ctx context.Context) ([]Carrier, error) {
	var out []Carrier
	err := ls.db.SelectContext(ctx, &out,
		`SELECT id, name, phone FROM carriers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list carriers: %w", err)
	}
	return out, nil
}
