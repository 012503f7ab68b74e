package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vbarros/licitasis/internal/billing"
)

type SaleStore struct {
	db *sqlx.DB
}

// Create persists a sale and all its line items as one unit of work.
// Either the parent row and every item land together, or nothing does.
// Items with a zero product reference were already dropped by the
// aggregator; an empty list is rejected before any write.
func (ss *SaleStore) Create(ctx context.Context, s *Sale, items []SaleItem) error {
	if len(items) == 0 {
		return Validationf("at least one product is required")
	}
	if s.Invoice == "" || s.ClientUASG == "" || s.ClientName == "" ||
		s.Carrier == "" || s.CommitmentID == nil || s.Date.IsZero() {
		return Validationf("invoice, client, commitment, carrier and date are required")
	}

	if s.Status == "" {
		s.Status = billing.NotReceived
	}

	tx, err := ss.db.BeginTxx(ctx, nil)
	if err != nil {
		return Infrastructuref("begin sale insert", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowxContext(ctx, `INSERT INTO sales
		(invoice, client_uasg, client_name, carrier, date, due_date, total,
		 observation, auction, classification, commitment_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, inserted_at`,
		s.Invoice, s.ClientUASG, s.ClientName, s.Carrier, s.Date, s.DueDate,
		s.Total, s.Observation, s.Auction, s.Classification, s.CommitmentID,
		s.Status).
		Scan(&s.ID, &s.InsertedAt)
	if err != nil {
		return mapWriteError("insert sale", err)
	}

	for i := range items {
		items[i].SaleID = s.ID
		_, err := tx.ExecContext(ctx, `INSERT INTO sale_items
			(sale_id, product_id, quantity, unit_price, total, observation)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			s.ID, items[i].ProductID, items[i].Quantity,
			items[i].UnitPrice, items[i].Total, items[i].Observation)
		if err != nil {
			return mapWriteError("insert sale item", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return mapWriteError("commit sale insert", err)
	}
	return nil
}

func (ss *SaleStore) FindByID(ctx context.Context, id int64) (*Sale, error) {
	var s Sale
	err := ss.db.GetContext(ctx, &s,
		`SELECT id, invoice, client_uasg, client_name, carrier, date, due_date,
		        total, observation, auction, classification, commitment_id,
		        status, inserted_at
		 FROM sales WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query sale: %w", err)
	}
	return &s, nil
}

// Delete removes a sale and its line items, children first, in one
// transaction.
func (ss *SaleStore) Delete(ctx context.Context, id int64) error {
	tx, err := ss.db.BeginTxx(ctx, nil)
	if err != nil {
		return Infrastructuref("begin sale delete", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, id); err != nil {
		return Infrastructuref("delete sale items", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return Infrastructuref("delete sale", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Infrastructuref("delete sale", err)
	}
	if affected == 0 {
		return &NotFoundError{Entity: "sale", Key: fmt.Sprint(id)}
	}

	if err := tx.Commit(); err != nil {
		return Infrastructuref("commit sale delete", err)
	}
	return nil
}

// UpdateStatus flips the payment status of one sale. It never touches line
// items or the declared total. Zero rows affected means the sale does not
// exist; any other failure leaves the prior status in place.
func (ss *SaleStore) UpdateStatus(ctx context.Context, id int64, status string) error {
	res, err := ss.db.ExecContext(ctx,
		`UPDATE sales SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return Infrastructuref("update sale status", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Infrastructuref("update sale status", err)
	}
	if affected == 0 {
		return &NotFoundError{Entity: "sale", Key: fmt.Sprint(id)}
	}
	return nil
}
