package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type ClientStore struct {
	db *sqlx.DB
}

// Create registers a client with its phones and emails in one transaction.
// The SELECT pre-checks give a friendly message on the common case; the
// unique constraints on uasg and cnpj remain the authoritative guard, so
// two racing submissions cannot both get through.
func (cs *ClientStore) Create(ctx context.Context, c *Client) error {
	var exists bool
	err := cs.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM clients WHERE uasg = $1)`, c.UASG)
	if err != nil {
		return Infrastructuref("check client uasg", err)
	}
	if exists {
		return &ConflictError{Field: "uasg", Value: c.UASG}
	}

	if c.CNPJ != "" {
		err = cs.db.GetContext(ctx, &exists,
			`SELECT EXISTS (SELECT 1 FROM clients WHERE cnpj = $1)`, c.CNPJ)
		if err != nil {
			return Infrastructuref("check client cnpj", err)
		}
		if exists {
			return &ConflictError{Field: "cnpj", Value: c.CNPJ}
		}
	}

	tx, err := cs.db.BeginTxx(ctx, nil)
	if err != nil {
		return Infrastructuref("begin client insert", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowxContext(ctx, `INSERT INTO clients (uasg, cnpj, org_name, address, observation)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, inserted_at`,
		c.UASG, c.CNPJ, c.OrgName, c.Address, c.Observation).
		Scan(&c.ID, &c.InsertedAt)
	if err != nil {
		return mapWriteError("insert client", err)
	}

	for _, phone := range c.Phones {
		if phone == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO client_phones (client_id, phone) VALUES ($1, $2)`,
			c.ID, phone); err != nil {
			return mapWriteError("insert client phone", err)
		}
	}
	for _, email := range c.Emails {
		if email == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO client_emails (client_id, email) VALUES ($1, $2)`,
			c.ID, email); err != nil {
			return mapWriteError("insert client email", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return mapWriteError("commit client insert", err)
	}
	return nil
}

// FindByUASG resolves a client by its UASG code together with its phones
// and emails. A missing client is not an error: the result is nil.
func (cs *ClientStore) FindByUASG(ctx context.Context, uasg string) (*Client, error) {
	var c Client
	err := cs.db.GetContext(ctx, &c,
		`SELECT id, uasg, cnpj, org_name, address, observation, inserted_at
		 FROM clients WHERE uasg = $1`, uasg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query client by uasg: %w", err)
	}

	if err := cs.db.SelectContext(ctx, &c.Phones,
		`SELECT phone FROM client_phones WHERE client_id = $1 ORDER BY id`, c.ID); err != nil {
		return nil, fmt.Errorf("failed to query client phones: %w", err)
	}
	if err := cs.db.SelectContext(ctx, &c.Emails,
		`SELECT email FROM client_emails WHERE client_id = $1 ORDER BY id`, c.ID); err != nil {
		return nil, fmt.Errorf("failed to query client emails: %w", err)
	}
	return &c, nil
}
