package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Storage groups the per-resource stores behind interfaces so handlers and
// tests can swap implementations. Each store owns its own SQL; the sale and
// purchase stores additionally own their transaction boundaries.
type Storage struct {
	Clients interface {
		Create(ctx context.Context, c *Client) error
		FindByUASG(ctx context.Context, uasg string) (*Client, error)
	}

	Products interface {
		Create(ctx context.Context, p *Product) error
		FindByID(ctx context.Context, id int64) (*Product, error)
		NameByID(ctx context.Context, id int64) (string, error)
		IDByCode(ctx context.Context, code string) (int64, error)
	}

	Lookup interface {
		ListSuppliers(ctx context.Context) ([]Supplier, error)
		SupplierNameByID(ctx context.Context, id int64) (string, error)
		ListCarriers(ctx context.Context) ([]Carrier, error)
	}

	Commitments interface {
		FindByNumber(ctx context.Context, number string) (*Commitment, error)
		ListForClient(ctx context.Context, uasg string) ([]CommitmentRef, error)
		LoadDetail(ctx context.Context, id int64) (*CommitmentDetail, error)
		Insert(ctx context.Context, c *Commitment, items []CommitmentItem) error
		ListAll(ctx context.Context) ([]Commitment, error)
	}

	Sales interface {
		Create(ctx context.Context, s *Sale, items []SaleItem) error
		FindByID(ctx context.Context, id int64) (*Sale, error)
		Delete(ctx context.Context, id int64) error
		UpdateStatus(ctx context.Context, id int64, status string) error
	}

	Purchases interface {
		Create(ctx context.Context, p *Purchase, items []PurchaseItem) error
		FindByID(ctx context.Context, id int64) (*Purchase, error)
		UpdatePayableStatus(ctx context.Context, purchaseID int64, status string) error
	}

	Ledger interface {
		ReceivableSummary(ctx context.Context, f LedgerFilter) (*ReceivableSummary, error)
		PayableSummary(ctx context.Context, f LedgerFilter) (*PayableSummary, error)
		ProductPurchaseStats(ctx context.Context, productID int64) (*PurchaseStats, error)
	}

	Finance interface {
		Insert(ctx context.Context, r *FinancialRecord) error
		List(ctx context.Context, limit int) ([]FinancialRecord, error)
		Balance(ctx context.Context) (*FinanceBalance, error)
	}
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{
		Clients:     &ClientStore{db: db},
		Products:    &ProductStore{db: db},
		Lookup:      &LookupStore{db: db},
		Commitments: &CommitmentStore{db: db},
		Sales:       &SaleStore{db: db},
		Purchases:   &PurchaseStore{db: db},
		Ledger:      &LedgerStore{db: db},
		Finance:     &FinanceStore{db: db},
	}
}
