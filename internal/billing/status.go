// Package billing holds the payment-status lifecycle shared by the
// receivable (vendas) and payable (contas a pagar) pages.
package billing

import "fmt"

// ReceivableStatus is the status_pagamento of a sale.
type ReceivableStatus string

const (
	NotReceived ReceivableStatus = "Não Recebido"
	Received    ReceivableStatus = "Recebido"
)

// PayableStatus is the status of a purchase's contas_pagar entry.
// Pago and Concluido are both settled for aggregation purposes.
type PayableStatus string

const (
	Pending   PayableStatus = "Pendente"
	Paid      PayableStatus = "Pago"
	Concluded PayableStatus = "Concluido"
)

// ParseReceivableStatus validates a status value coming off the wire.
func ParseReceivableStatus(s string) (ReceivableStatus, error) {
	switch ReceivableStatus(s) {
	case NotReceived, Received:
		return ReceivableStatus(s), nil
	}
	return "", fmt.Errorf("invalid payment status %q", s)
}

// ParsePayableStatus validates a payable status value coming off the wire.
func ParsePayableStatus(s string) (PayableStatus, error) {
	switch PayableStatus(s) {
	case Pending, Paid, Concluded:
		return PayableStatus(s), nil
	}
	return "", fmt.Errorf("invalid payable status %q", s)
}

// RequiresConfirmation reports whether a receivable transition needs an
// explicit user confirmation before it is committed. Marking a sale as
// received is the low-risk default action; reverting a receipt is a
// correction and must be acknowledged against the record's identifying
// fields first.
func RequiresConfirmation(from, to ReceivableStatus) bool {
	return from == Received && to == NotReceived
}

// Settled reports whether a payable status counts as paid in the
// accounts-payable aggregates.
func Settled(s PayableStatus) bool {
	return s == Paid || s == Concluded
}
