package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/vbarros/licitasis/internal/money"
)

// LedgerStore is the read side over sales, purchases and the
// accounts-payable entries. Pure projections, no mutations.
type LedgerStore struct {
	db *sqlx.DB
}

// LedgerFilter scopes a summary. Zero values mean "no filter".
type LedgerFilter struct {
	ClientUASG string
	ProductID  int64
	StartDate  time.Time
	EndDate    time.Time
}

type ReceivableSummary struct {
	TotalReceivable decimal.Decimal `db:"total_receivable" json:"total_receivable"`
	TotalReceived   decimal.Decimal `db:"total_received" json:"total_received"`
	TotalPending    decimal.Decimal `db:"total_pending" json:"total_pending"`
	OverdueCount    int             `db:"overdue_count" json:"overdue_count"`
}

type PayableSummary struct {
	TotalPayable decimal.Decimal `db:"total_payable" json:"total_payable"`
	TotalSettled decimal.Decimal `db:"total_settled" json:"total_settled"`
	TotalPending decimal.Decimal `db:"total_pending" json:"total_pending"`
	EntryCount   int             `db:"entry_count" json:"entry_count"`
}

// PurchaseStats summarizes the purchase history of one product. RowCount
// counts every line item; the unit-cost figures only consider rows with a
// positive quantity, so a zero-quantity row never divides by zero.
type PurchaseStats struct {
	RowCount        int             `json:"row_count"`
	AverageUnitCost decimal.Decimal `json:"average_unit_cost"`
	MinUnitCost     decimal.Decimal `json:"min_unit_cost"`
	MaxUnitCost     decimal.Decimal `json:"max_unit_cost"`
}

// saleConditions builds the WHERE clause for the receivable aggregates.
// Absent filters contribute no condition, so an unscoped summary covers
// every row regardless of date.
func (f LedgerFilter) saleConditions() (string, []any) {
	var conds []string
	var args []any
	if !f.StartDate.IsZero() {
		args = append(args, f.StartDate)
		conds = append(conds, fmt.Sprintf("s.date >= $%d", len(args)))
	}
	if !f.EndDate.IsZero() {
		args = append(args, f.EndDate)
		conds = append(conds, fmt.Sprintf("s.date <= $%d", len(args)))
	}
	if f.ClientUASG != "" {
		args = append(args, f.ClientUASG)
		conds = append(conds, fmt.Sprintf("s.client_uasg = $%d", len(args)))
	}
	if f.ProductID != 0 {
		args = append(args, f.ProductID)
		conds = append(conds, fmt.Sprintf("EXISTS (SELECT 1 FROM sale_items si WHERE si.sale_id = s.id AND si.product_id = $%d)", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// payableConditions is the purchase-side counterpart of saleConditions.
// Purchases carry no client reference, so ClientUASG is handled by the
// caller, not here.
func (f LedgerFilter) payableConditions() (string, []any) {
	var conds []string
	var args []any
	if !f.StartDate.IsZero() {
		args = append(args, f.StartDate)
		conds = append(conds, fmt.Sprintf("p.date >= $%d", len(args)))
	}
	if !f.EndDate.IsZero() {
		args = append(args, f.EndDate)
		conds = append(conds, fmt.Sprintf("p.date <= $%d", len(args)))
	}
	if f.ProductID != 0 {
		args = append(args, f.ProductID)
		conds = append(conds, fmt.Sprintf("EXISTS (SELECT 1 FROM purchase_items pi WHERE pi.purchase_id = p.id AND pi.product_id = $%d)", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// ReceivableSummary partitions the sale totals by payment status and
// counts overdue records (not received with a due date in the past).
func (ls *LedgerStore) ReceivableSummary(ctx context.Context, f LedgerFilter) (*ReceivableSummary, error) {
	where, args := f.saleConditions()
	query := fmt.Sprintf(`
	SELECT
		COALESCE(SUM(s.total), 0) AS total_receivable,
		COALESCE(SUM(s.total) FILTER (WHERE s.status = 'Recebido'), 0) AS total_received,
		COALESCE(SUM(s.total) FILTER (WHERE s.status <> 'Recebido'), 0) AS total_pending,
		COUNT(*) FILTER (WHERE s.status <> 'Recebido' AND s.due_date IS NOT NULL AND s.due_date < CURRENT_DATE) AS overdue_count
	FROM sales s
	%s`, where)

	var out ReceivableSummary
	if err := ls.db.GetContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query receivable summary: %w", err)
	}
	return &out, nil
}

// PayableSummary partitions purchase totals by their accounts-payable
// status. Pago and Concluido both count as settled. Purchases are tied to
// suppliers, not clients, so a client scope is rejected rather than
// silently ignored.
func (ls *LedgerStore) PayableSummary(ctx context.Context, f LedgerFilter) (*PayableSummary, error) {
	if f.ClientUASG != "" {
		return nil, Validationf("payables cannot be scoped by client")
	}

	where, args := f.payableConditions()
	query := fmt.Sprintf(`
	SELECT
		COALESCE(SUM(p.total), 0) AS total_payable,
		COALESCE(SUM(p.total) FILTER (WHERE ap.status IN ('Pago', 'Concluido')), 0) AS total_settled,
		COALESCE(SUM(p.total) FILTER (WHERE ap.status = 'Pendente'), 0) AS total_pending,
		COUNT(*) AS entry_count
	FROM purchases p
	JOIN accounts_payable ap ON ap.purchase_id = p.id
	%s`, where)

	var out PayableSummary
	if err := ls.db.GetContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query payable summary: %w", err)
	}
	return &out, nil
}

type unitCostRow struct {
	Quantity int64           `db:"quantity"`
	Total    decimal.Decimal `db:"total"`
}

// ProductPurchaseStats derives per-unit cost statistics from the purchase
// line items of one product. Each row contributes total/quantity; rows
// with quantity zero stay in the count but are excluded from the figures.
func (ls *LedgerStore) ProductPurchaseStats(ctx context.Context, productID int64) (*PurchaseStats, error) {
	var rows []unitCostRow
	err := ls.db.SelectContext(ctx, &rows,
		`SELECT quantity, total FROM purchase_items WHERE product_id = $1`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase items for product: %w", err)
	}

	stats := &PurchaseStats{RowCount: len(rows)}
	var costs []float64
	for _, r := range rows {
		if r.Quantity == 0 {
			continue
		}
		unit, _ := r.Total.Div(decimal.NewFromInt(r.Quantity)).Float64()
		costs = append(costs, unit)
	}
	if len(costs) == 0 {
		return stats, nil
	}

	mean := stat.Mean(costs, nil)
	minCost, maxCost := costs[0], costs[0]
	for _, c := range costs[1:] {
		if c < minCost {
			minCost = c
		}
		if c > maxCost {
			maxCost = c
		}
	}

	stats.AverageUnitCost = money.Round2(decimal.NewFromFloat(mean))
	stats.MinUnitCost = money.Round2(decimal.NewFromFloat(minCost))
	stats.MaxUnitCost = money.Round2(decimal.NewFromFloat(maxCost))
	return stats, nil
}
