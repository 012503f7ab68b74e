package main

import (
	"net/http"

	"github.com/vbarros/licitasis/internal/billing"
	"github.com/vbarros/licitasis/internal/response"
	"github.com/vbarros/licitasis/internal/store"
)

func (app *application) handlePayableSummary(w http.ResponseWriter, r *http.Request) {
	filter, err := ledgerFilterFromQuery(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := app.store.Ledger.PayableSummary(r.Context(), filter)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.APIResponse[*store.PayableSummary]{
		Success: true,
		Data:    summary,
	})
}

// handleUpdatePayableStatus moves a purchase's accounts-payable entry
// between Pendente, Pago and Concluido. Settling stamps the payment date.
func (app *application) handleUpdatePayableStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "invalid purchase id")
		return
	}

	var req updateStatusRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	status, err := billing.ParsePayableStatus(req.Status)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := app.store.Purchases.UpdatePayableStatus(r.Context(), id, string(status)); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.APIResponse[any]{
		Success: true,
		Message: "Status de pagamento atualizado",
	})
}
