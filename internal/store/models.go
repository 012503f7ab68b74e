package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vbarros/licitasis/internal/billing"
)

// Client represents the 'clients' table. UASG is the business key the
// procurement pages use; CNPJ is the tax id. Both carry unique constraints.
type Client struct {
	ID          int64     `db:"id" json:"id"`
	UASG        string    `db:"uasg" json:"uasg"`
	CNPJ        string    `db:"cnpj" json:"cnpj"`
	OrgName     string    `db:"org_name" json:"org_name"`
	Address     string    `db:"address" json:"address"`
	Observation string    `db:"observation" json:"observation,omitempty"`
	InsertedAt  time.Time `db:"inserted_at" json:"inserted_at"`

	Phones []string `db:"-" json:"phones,omitempty"`
	Emails []string `db:"-" json:"emails,omitempty"`
}

// Product represents the 'products' table. Code and name are both unique.
type Product struct {
	ID          int64           `db:"id" json:"id"`
	Code        string          `db:"code" json:"code"`
	Name        string          `db:"name" json:"name"`
	Unit        string          `db:"unit" json:"unit"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
	SupplierID  *int64          `db:"supplier_id" json:"supplier_id,omitempty"`
	ImagePath   *string         `db:"image_path" json:"image_path,omitempty"`
	Observation string          `db:"observation" json:"observation,omitempty"`
	InsertedAt  time.Time       `db:"inserted_at" json:"inserted_at"`
}

// Supplier represents the 'suppliers' table.
type Supplier struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	CNPJ  string `db:"cnpj" json:"cnpj,omitempty"`
	Phone string `db:"phone" json:"phone,omitempty"`
	Email string `db:"email" json:"email,omitempty"`
}

// Carrier represents the 'carriers' table.
type Carrier struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Phone string `db:"phone" json:"phone,omitempty"`
}

// Commitment represents the 'commitments' table (empenhos). It is created
// independently of sales and is read-only from the sales flow.
type Commitment struct {
	ID             int64           `db:"id" json:"id"`
	Number         string          `db:"number" json:"number"`
	ClientUASG     string          `db:"client_uasg" json:"client_uasg"`
	ClientName     string          `db:"client_name" json:"client_name"`
	DeclaredValue  decimal.Decimal `db:"declared_value" json:"declared_value"`
	Auction        string          `db:"auction" json:"auction,omitempty"`
	Classification string          `db:"classification" json:"classification,omitempty"`
	Observation    string          `db:"observation" json:"observation,omitempty"`
	InsertedAt     time.Time       `db:"inserted_at" json:"inserted_at"`
}

// CommitmentItem is one product line of a commitment, joined with the
// product catalog fields the sale form pre-fills from.
type CommitmentItem struct {
	ID           int64           `db:"id" json:"id"`
	CommitmentID int64           `db:"commitment_id" json:"commitment_id"`
	ProductID    int64           `db:"product_id" json:"product_id"`
	ProductName  string          `db:"product_name" json:"product_name"`
	ProductCode  string          `db:"product_code" json:"product_code"`
	Quantity     int64           `db:"quantity" json:"quantity"`
	UnitPrice    decimal.Decimal `db:"unit_price" json:"unit_price"`
	Total        decimal.Decimal `db:"total" json:"total"`
	Description  string          `db:"description" json:"description,omitempty"`
}

// CommitmentRef is the {id, number} pair the sale form lists per client.
type CommitmentRef struct {
	ID     int64  `db:"id" json:"id"`
	Number string `db:"number" json:"number"`
}

// CommitmentDetail is the header plus its line items.
type CommitmentDetail struct {
	Commitment
	Items []CommitmentItem `json:"items"`
}

// Sale represents the 'sales' table. Status defaults to Não Recebido at
// creation; DueDate is optional.
type Sale struct {
	ID             int64                    `db:"id" json:"id"`
	Invoice        string                   `db:"invoice" json:"invoice"`
	ClientUASG     string                   `db:"client_uasg" json:"client_uasg"`
	ClientName     string                   `db:"client_name" json:"client_name"`
	Carrier        string                   `db:"carrier" json:"carrier"`
	Date           time.Time                `db:"date" json:"date"`
	DueDate        *time.Time               `db:"due_date" json:"due_date,omitempty"`
	Total          decimal.Decimal          `db:"total" json:"total"`
	Observation    string                   `db:"observation" json:"observation,omitempty"`
	Auction        string                   `db:"auction" json:"auction,omitempty"`
	Classification string                   `db:"classification" json:"classification,omitempty"`
	CommitmentID   *int64                   `db:"commitment_id" json:"commitment_id,omitempty"`
	Status         billing.ReceivableStatus `db:"status" json:"status"`
	InsertedAt     time.Time                `db:"inserted_at" json:"inserted_at"`
}

// SaleItem is one product line of a sale.
type SaleItem struct {
	ID          int64           `db:"id" json:"id"`
	SaleID      int64           `db:"sale_id" json:"sale_id"`
	ProductID   int64           `db:"product_id" json:"product_id"`
	Quantity    int64           `db:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
	Total       decimal.Decimal `db:"total" json:"total"`
	Observation string          `db:"observation" json:"observation,omitempty"`
}

// Purchase represents the 'purchases' table. FirstProduct* mirror line
// item #1 for the legacy columns the consultation pages still read; they
// are recomputed from the items on every write, never edited directly.
type Purchase struct {
	ID                int64           `db:"id" json:"id"`
	SupplierName      string          `db:"supplier_name" json:"supplier_name"`
	Invoice           string          `db:"invoice" json:"invoice"`
	FirstProductName  string          `db:"first_product_name" json:"first_product_name"`
	FirstProductQty   int64           `db:"first_product_qty" json:"first_product_qty"`
	FirstProductPrice decimal.Decimal `db:"first_product_price" json:"first_product_price"`
	Total             decimal.Decimal `db:"total" json:"total"`
	Freight           decimal.Decimal `db:"freight" json:"freight"`
	PaymentLink       string          `db:"payment_link" json:"payment_link,omitempty"`
	CommitmentNumber  string          `db:"commitment_number" json:"commitment_number,omitempty"`
	Observation       string          `db:"observation" json:"observation,omitempty"`
	Date              time.Time       `db:"date" json:"date"`
	ReceiptPath       *string         `db:"receipt_path" json:"receipt_path,omitempty"`
	InsertedAt        time.Time       `db:"inserted_at" json:"inserted_at"`
}

// PurchaseItem is one product line of a purchase.
type PurchaseItem struct {
	ID         int64           `db:"id" json:"id"`
	PurchaseID int64           `db:"purchase_id" json:"purchase_id"`
	ProductID  int64           `db:"product_id" json:"product_id"`
	Quantity   int64           `db:"quantity" json:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price" json:"unit_price"`
	Total      decimal.Decimal `db:"total" json:"total"`
}

// PayableEntry is the 'accounts_payable' row created alongside each
// purchase. It carries its own status and payment fields, distinct from
// the purchase record.
type PayableEntry struct {
	ID          int64                 `db:"id" json:"id"`
	PurchaseID  int64                 `db:"purchase_id" json:"purchase_id"`
	Status      billing.PayableStatus `db:"status" json:"status"`
	PaymentDate *time.Time            `db:"payment_date" json:"payment_date,omitempty"`
	Observation string                `db:"observation" json:"observation,omitempty"`
	ReceiptPath *string               `db:"receipt_path" json:"receipt_path,omitempty"`
	InsertedAt  time.Time             `db:"inserted_at" json:"inserted_at"`
}

// FinancialRecord is a free-standing ledger row, not transactionally tied
// to any sale or purchase. Products stays a flattened string here; this is
// bookkeeping text, not a relation.
type FinancialRecord struct {
	ID               int64           `db:"id" json:"id"`
	CommitmentNumber string          `db:"commitment_number" json:"commitment_number,omitempty"`
	ClientUASG       string          `db:"client_uasg" json:"client_uasg,omitempty"`
	Products         string          `db:"products" json:"products,omitempty"`
	Carrier          string          `db:"carrier" json:"carrier,omitempty"`
	Value            decimal.Decimal `db:"value" json:"value"`
	Type             string          `db:"type" json:"type"`
	Date             time.Time       `db:"date" json:"date"`
	Observation      string          `db:"observation" json:"observation,omitempty"`
}

const (
	RecordRevenue = "Receita"
	RecordExpense = "Despesa"
)
