package main

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/vbarros/licitasis/internal/dateparse"
	"github.com/vbarros/licitasis/internal/money"
	"github.com/vbarros/licitasis/internal/order"
	"github.com/vbarros/licitasis/internal/response"
	"github.com/vbarros/licitasis/internal/store"
	"github.com/vbarros/licitasis/internal/upload"
)

const maxPurchaseFormSize = 10 << 20 // 10 MB, receipt included

// handleCreatePurchase accepts the multipart purchase form. Freight joins
// the grand total; the first line item is denormalized onto the purchase
// row; an optional receipt file is stored and its path persisted.
func (app *application) handleCreatePurchase(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPurchaseFormSize); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid form submission")
		return
	}

	supplierRaw := strings.TrimSpace(formValue(r, "fornecedor"))
	invoice := strings.TrimSpace(formValue(r, "numero_nf"))
	dateRaw := strings.TrimSpace(formValue(r, "data"))
	if supplierRaw == "" || invoice == "" || dateRaw == "" {
		writeJSONError(w, http.StatusBadRequest,
			"fornecedor, numero_nf and data are required")
		return
	}

	supplierID, err := strconv.ParseInt(supplierRaw, 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid supplier reference")
		return
	}
	supplierName, err := app.store.Lookup.SupplierNameByID(r.Context(), supplierID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	date, err := dateparse.ParseBR(dateRaw)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	freight := money.ParseOrZero(formValue(r, "frete"))
	if freight.IsNegative() {
		writeJSONError(w, http.StatusBadRequest, "freight cannot be negative")
		return
	}

	rows := order.BuildRows(
		formValues(r, "produto_id"),
		formValues(r, "produto_quantidade"),
		formValues(r, "produto_valor_unitario"),
		nil,
	)
	result, err := order.Aggregate(rows, freight)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(result.Lines) == 0 {
		writeJSONError(w, http.StatusBadRequest, "at least one product is required")
		return
	}

	firstName, err := app.store.Products.NameByID(r.Context(), result.Lines[0].ProductID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	purchase := &store.Purchase{
		SupplierName:     supplierName,
		Invoice:          invoice,
		FirstProductName: firstName,
		Total:            result.GrandTotal,
		Freight:          money.Round2(freight),
		PaymentLink:      strings.TrimSpace(formValue(r, "link_pagamento")),
		CommitmentNumber: strings.TrimSpace(formValue(r, "numero_empenho")),
		Observation:      formValue(r, "observacao"),
		Date:             date,
	}

	if file, header, err := r.FormFile("comprovante_pagamento"); err == nil {
		defer file.Close()
		path, err := upload.SaveReceipt(app.config.uploadDir, header.Filename, file)
		if err != nil {
			if errors.Is(err, upload.ErrDisallowedType) {
				writeJSONError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		purchase.ReceiptPath = &path
	}

	items := make([]store.PurchaseItem, 0, len(result.Lines))
	for _, line := range result.Lines {
		items = append(items, store.PurchaseItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Total:     line.Total,
		})
	}

	if err := app.store.Purchases.Create(r.Context(), purchase, items); err != nil {
		// The receipt was written before the insert; don't leave it orphaned.
		if purchase.ReceiptPath != nil {
			os.Remove(*purchase.ReceiptPath)
		}
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response.APIResponse[*store.Purchase]{
		Success: true,
		Message: "Compra cadastrada com sucesso",
		Data:    purchase,
	})
}
