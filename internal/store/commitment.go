package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type CommitmentStore struct {
	db *sqlx.DB
}

func (cs *CommitmentStore) FindByNumber(ctx context.Context, number string) (*Commitment, error) {
	var c Commitment
	err := cs.db.GetContext(ctx, &c,
		`SELECT id, number, client_uasg, client_name, declared_value, auction,
		        classification, observation, inserted_at
		 FROM commitments WHERE number = $1`, number)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query commitment by number: %w", err)
	}
	return &c, nil
}

// ListForClient returns the {id, number} pairs the sale form offers for a
// client, ordered by number.
func (cs *CommitmentStore) ListForClient(ctx context.Context, uasg string) ([]CommitmentRef, error) {
	var out []CommitmentRef
	err := cs.db.SelectContext(ctx, &out,
		`SELECT id, number FROM commitments WHERE client_uasg = $1 ORDER BY number`, uasg)
	if err != nil {
		return nil, fmt.Errorf("failed to list commitments for client: %w", err)
	}
	return out, nil
}

// LoadDetail loads a commitment header plus its line items joined with the
// product catalog. A commitment with zero items is a valid result: the
// caller gets an empty item list and falls back to manual entry.
func (cs *CommitmentStore) LoadDetail(ctx context.Context, id int64) (*CommitmentDetail, error) {
	var detail CommitmentDetail
	err := cs.db.GetContext(ctx, &detail.Commitment,
		`SELECT id, number, client_uasg, client_name, declared_value, auction,
		        classification, observation, inserted_at
		 FROM commitments WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query commitment: %w", err)
	}

	err = cs.db.SelectContext(ctx, &detail.Items,
		`SELECT ci.id, ci.commitment_id, ci.product_id,
		        p.name AS product_name, p.code AS product_code,
		        ci.quantity, ci.unit_price, ci.total, ci.description
		 FROM commitment_items ci
		 JOIN products p ON p.id = ci.product_id
		 WHERE ci.commitment_id = $1
		 ORDER BY ci.id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query commitment items: %w", err)
	}
	return &detail, nil
}

// Insert records a commitment and its items in one transaction. Used by
// the CSV importer and the registration page.
func (cs *CommitmentStore) Insert(ctx context.Context, c *Commitment, items []CommitmentItem) error {
	tx, err := cs.db.BeginTxx(ctx, nil)
	if err != nil {
		return Infrastructuref("begin commitment insert", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowxContext(ctx, `INSERT INTO commitments
		(number, client_uasg, client_name, declared_value, auction, classification, observation)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, inserted_at`,
		c.Number, c.ClientUASG, c.ClientName, c.DeclaredValue,
		c.Auction, c.Classification, c.Observation).
		Scan(&c.ID, &c.InsertedAt)
	if err != nil {
		return mapWriteError("insert commitment", err)
	}

	for i := range items {
		items[i].CommitmentID = c.ID
		_, err := tx.ExecContext(ctx, `INSERT INTO commitment_items
			(commitment_id, product_id, quantity, unit_price, total, description)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			c.ID, items[i].ProductID, items[i].Quantity,
			items[i].UnitPrice, items[i].Total, items[i].Description)
		if err != nil {
			return mapWriteError("insert commitment item", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return mapWriteError("commit commitment insert", err)
	}
	return nil
}

// ListAll feeds the CSV export.
func (cs *CommitmentStore) ListAll(ctx context.Context) ([]Commitment, error) {
	var out []Commitment
	err := cs.db.SelectContext(ctx, &out,
		`SELECT id, number, client_uasg, client_name, declared_value, auction,
		        classification, observation, inserted_at
		 FROM commitments ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("failed to list commitments: %w", err)
	}
	return out, nil
}
