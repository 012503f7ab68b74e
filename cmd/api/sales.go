package main

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vbarros/licitasis/internal/billing"
	"github.com/vbarros/licitasis/internal/dateparse"
	"github.com/vbarros/licitasis/internal/order"
	"github.com/vbarros/licitasis/internal/response"
	"github.com/vbarros/licitasis/internal/store"
)

// handleCreateSale accepts the form the sale page posts: header fields
// plus parallel product arrays. The grand total is always recomputed from
// the line items; the posted valor_total_venda is ignored.
func (app *application) handleCreateSale(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid form submission")
		return
	}

	invoice := strings.TrimSpace(formValue(r, "numero"))
	clientUASG := strings.TrimSpace(formValue(r, "cliente_uasg"))
	clientName := strings.TrimSpace(formValue(r, "cliente"))
	carrier := strings.TrimSpace(formValue(r, "transportadora"))
	commitmentRaw := strings.TrimSpace(formValue(r, "empenho"))
	dateRaw := strings.TrimSpace(formValue(r, "data"))

	missing := []string{}
	if invoice == "" {
		missing = append(missing, "numero")
	}
	if clientUASG == "" {
		missing = append(missing, "cliente_uasg")
	}
	if clientName == "" {
		missing = append(missing, "cliente")
	}
	if carrier == "" {
		missing = append(missing, "transportadora")
	}
	if commitmentRaw == "" {
		missing = append(missing, "empenho")
	}
	if dateRaw == "" {
		missing = append(missing, "data")
	}
	if len(missing) > 0 {
		writeJSONError(w, http.StatusBadRequest,
			"required fields missing: "+strings.Join(missing, ", "))
		return
	}

	commitmentID, err := strconv.ParseInt(commitmentRaw, 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid commitment reference")
		return
	}

	date, err := dateparse.ParseBR(dateRaw)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var dueDate *time.Time
	if raw := strings.TrimSpace(formValue(r, "data_vencimento")); raw != "" {
		d, err := dateparse.ParseBR(raw)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		dueDate = &d
	}

	rows := order.BuildRows(
		formValues(r, "produto"),
		formValues(r, "quantidade"),
		formValues(r, "valor_unitario"),
		formValues(r, "observacao_produto"),
	)
	result, err := order.Aggregate(rows, decimal.Zero)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(result.Lines) == 0 {
		writeJSONError(w, http.StatusBadRequest, "at least one product is required")
		return
	}

	sale := &store.Sale{
		Invoice:        invoice,
		ClientUASG:     clientUASG,
		ClientName:     clientName,
		Carrier:        carrier,
		Date:           date,
		DueDate:        dueDate,
		Total:          result.GrandTotal,
		Observation:    formValue(r, "observacao"),
		Auction:        strings.TrimSpace(formValue(r, "pregao")),
		Classification: strings.TrimSpace(formValue(r, "classificacao")),
		CommitmentID:   &commitmentID,
		Status:         billing.NotReceived,
	}

	items := make([]store.SaleItem, 0, len(result.Lines))
	for _, line := range result.Lines {
		items = append(items, store.SaleItem{
			ProductID:   line.ProductID,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Total:       line.Total,
			Observation: line.Observation,
		})
	}

	if err := app.store.Sales.Create(r.Context(), sale, items); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response.APIResponse[*store.Sale]{
		Success: true,
		Message: "Venda cadastrada com sucesso",
		Data:    sale,
	})
}

func (app *application) handleDeleteSale(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "invalid sale id")
		return
	}

	if err := app.store.Sales.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.APIResponse[any]{
		Success: true,
		Message: "Venda excluída com sucesso",
	})
}
