package main

import (
	"net/http"
	"strconv"

	"github.com/vbarros/licitasis/internal/billing"
	"github.com/vbarros/licitasis/internal/dateparse"
	"github.com/vbarros/licitasis/internal/money"
	"github.com/vbarros/licitasis/internal/response"
	"github.com/vbarros/licitasis/internal/store"
)

// ledgerFilterFromQuery reads the optional summary filters. Dates use the
// same DD/MM/YYYY form the pages submit.
func ledgerFilterFromQuery(r *http.Request) (store.LedgerFilter, error) {
	var f store.LedgerFilter
	q := r.URL.Query()

	f.ClientUASG = q.Get("client_uasg")
	if raw := q.Get("product_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, err
		}
		f.ProductID = id
	}
	if raw := q.Get("start_date"); raw != "" {
		t, err := dateparse.ParseBR(raw)
		if err != nil {
			return f, err
		}
		f.StartDate = t
	}
	if raw := q.Get("end_date"); raw != "" {
		t, err := dateparse.ParseBR(raw)
		if err != nil {
			return f, err
		}
		f.EndDate = t
	}
	return f, nil
}

func (app *application) handleReceivableSummary(w http.ResponseWriter, r *http.Request) {
	filter, err := ledgerFilterFromQuery(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := app.store.Ledger.ReceivableSummary(r.Context(), filter)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.APIResponse[*store.ReceivableSummary]{
		Success: true,
		Data:    summary,
	})
}

type updateStatusRequest struct {
	Status  string `json:"status"`
	Confirm bool   `json:"confirm"`
}

// receivableRecord carries the fields the confirmation dialog shows before
// a receipt is reverted.
type receivableRecord struct {
	ID      int64  `json:"id"`
	Invoice string `json:"invoice"`
	Client  string `json:"client"`
	Value   string `json:"value"`
	DueDate string `json:"due_date,omitempty"`
}

// handleUpdateReceivableStatus flips a sale between Não Recebido and
// Recebido. Reverting a received sale is a correction: without confirm the
// record is returned untouched and the caller must resubmit acknowledging
// it.
func (app *application) handleUpdateReceivableStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "invalid sale id")
		return
	}

	var req updateStatusRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	target, err := billing.ParseReceivableStatus(req.Status)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	sale, err := app.store.Sales.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if sale == nil {
		writeJSONError(w, http.StatusNotFound, "sale not found")
		return
	}

	if billing.RequiresConfirmation(sale.Status, target) && !req.Confirm {
		record := receivableRecord{
			ID:      sale.ID,
			Invoice: sale.Invoice,
			Client:  sale.ClientName,
			Value:   money.Format(sale.Total),
		}
		if sale.DueDate != nil {
			record.DueDate = dateparse.FormatBR(*sale.DueDate)
		}
		writeJSON(w, http.StatusOK, response.APIResponse[response.ConfirmationRequired[receivableRecord]]{
			Success: false,
			Message: "Confirmação necessária para reverter o recebimento",
			Data: response.ConfirmationRequired[receivableRecord]{
				ConfirmationRequired: true,
				Message:              "Esta venda já está marcada como recebida. Confirme para reverter.",
				Record:               record,
			},
		})
		return
	}

	if err := app.store.Sales.UpdateStatus(r.Context(), id, string(target)); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.APIResponse[any]{
		Success: true,
		Message: "Status de pagamento atualizado",
	})
}
