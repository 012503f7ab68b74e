package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vbarros/licitasis/internal/billing"
)

type PurchaseStore struct {
	db *sqlx.DB
}

// Create persists a purchase, its line items and the matching
// accounts-payable entry in one transaction. The first_product_* columns
// are derived from item 0 here, never supplied by the caller, so they can
// not drift from line item #1. The item tables exist up front via the
// schema migrations.
func (ps *PurchaseStore) Create(ctx context.Context, p *Purchase, items []PurchaseItem) error {
	if len(items) == 0 {
		return Validationf("at least one product is required")
	}
	if p.SupplierName == "" || p.Invoice == "" || p.Date.IsZero() {
		return Validationf("supplier, invoice number and date are required")
	}

	first := items[0]
	p.FirstProductQty = first.Quantity
	p.FirstProductPrice = first.UnitPrice
	if p.FirstProductName == "" {
		return Validationf("first product name could not be resolved")
	}

	tx, err := ps.db.BeginTxx(ctx, nil)
	if err != nil {
		return Infrastructuref("begin purchase insert", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowxContext(ctx, `INSERT INTO purchases
		(supplier_name, invoice, first_product_name, first_product_qty,
		 first_product_price, total, freight, payment_link, commitment_number,
		 observation, date, receipt_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, inserted_at`,
		p.SupplierName, p.Invoice, p.FirstProductName, p.FirstProductQty,
		p.FirstProductPrice, p.Total, p.Freight, p.PaymentLink,
		p.CommitmentNumber, p.Observation, p.Date, p.ReceiptPath).
		Scan(&p.ID, &p.InsertedAt)
	if err != nil {
		return mapWriteError("insert purchase", err)
	}

	for i := range items {
		items[i].PurchaseID = p.ID
		_, err := tx.ExecContext(ctx, `INSERT INTO purchase_items
			(purchase_id, product_id, quantity, unit_price, total)
			VALUES ($1, $2, $3, $4, $5)`,
			p.ID, items[i].ProductID, items[i].Quantity,
			items[i].UnitPrice, items[i].Total)
		if err != nil {
			return mapWriteError("insert purchase item", err)
		}
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO accounts_payable
		(purchase_id, status, receipt_path)
		VALUES ($1, $2, $3)`,
		p.ID, billing.Pending, p.ReceiptPath)
	if err != nil {
		return mapWriteError("insert accounts payable entry", err)
	}

	if err := tx.Commit(); err != nil {
		return mapWriteError("commit purchase insert", err)
	}
	return nil
}

func (ps *PurchaseStore) FindByID(ctx context.Context, id int64) (*Purchase, error) {
	var p Purchase
	err := ps.db.GetContext(ctx, &p,
		`SELECT id, supplier_name, invoice, first_product_name,
		        first_product_qty, first_product_price, total, freight,
		        payment_link, commitment_number, observation, date,
		        receipt_path, inserted_at
		 FROM purchases WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase: %w", err)
	}
	return &p, nil
}

// UpdatePayableStatus flips the accounts-payable status for a purchase.
// Settling it also stamps the payment date.
func (ps *PurchaseStore) UpdatePayableStatus(ctx context.Context, purchaseID int64, status string) error {
	res, err := ps.db.ExecContext(ctx,
		`UPDATE accounts_payable
		 SET status = $1,
		     payment_date = CASE WHEN $1 IN ($2, $3) THEN NOW() ELSE NULL END
		 WHERE purchase_id = $4`,
		status, string(billing.Paid), string(billing.Concluded), purchaseID)
	if err != nil {
		return Infrastructuref("update payable status", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Infrastructuref("update payable status", err)
	}
	if affected == 0 {
		return &NotFoundError{Entity: "accounts payable entry", Key: fmt.Sprint(purchaseID)}
	}
	return nil
}
