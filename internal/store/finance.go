package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// FinanceStore keeps the free-standing bookkeeping rows of the financeiro
// page. These are loosely linked to sales and purchases by commitment
// number only; no transactional tie.
type FinanceStore struct {
	db *sqlx.DB
}

type FinanceBalance struct {
	TotalRevenue decimal.Decimal `db:"total_revenue" json:"total_revenue"`
	TotalExpense decimal.Decimal `db:"total_expense" json:"total_expense"`
	Net          decimal.Decimal `db:"net" json:"net"`
}

func (fs *FinanceStore) Insert(ctx context.Context, r *FinancialRecord) error {
	if r.Type != RecordRevenue && r.Type != RecordExpense {
		return Validationf("record type must be %s or %s", RecordRevenue, RecordExpense)
	}
	err := fs.db.QueryRowxContext(ctx, `INSERT INTO financial_records
		(commitment_number, client_uasg, products, carrier, value, type, date, observation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		r.CommitmentNumber, r.ClientUASG, r.Products, r.Carrier,
		r.Value, r.Type, r.Date, r.Observation).
		Scan(&r.ID)
	if err != nil {
		return mapWriteError("insert financial record", err)
	}
	return nil
}

func (fs *FinanceStore) List(ctx context.Context, limit int) ([]FinancialRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []FinancialRecord
	err := fs.db.SelectContext(ctx, &out,
		`SELECT id, commitment_number, client_uasg, products, carrier, value,
		        type, date, observation
		 FROM financial_records ORDER BY date DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list financial records: %w", err)
	}
	return out, nil
}

func (fs *FinanceStore) Balance(ctx context.Context) (*FinanceBalance, error) {
	query := `
	SELECT
		COALESCE(SUM(value) FILTER (WHERE type = 'Receita'), 0) AS total_revenue,
		COALESCE(SUM(value) FILTER (WHERE type = 'Despesa'), 0) AS total_expense,
		COALESCE(SUM(CASE WHEN type = 'Receita' THEN value ELSE -value END), 0) AS net
	FROM financial_records`

	var out FinanceBalance
	if err := fs.db.GetContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("failed to query finance balance: %w", err)
	}
	return &out, nil
}
