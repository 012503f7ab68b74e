package main

import (
	"net/http"
	"time"

	"github.com/vbarros/licitasis/internal/ingest"
	"github.com/vbarros/licitasis/internal/response"
	"github.com/vbarros/licitasis/internal/store"
)

// handleListCommitmentsForClient serves the {id, number} pairs the sale
// form lists once a client is chosen.
func (app *application) handleListCommitmentsForClient(w http.ResponseWriter, r *http.Request) {
	uasg := r.URL.Query().Get("client_uasg")
	if uasg == "" {
		writeJSONError(w, http.StatusBadRequest, "client_uasg query parameter is required")
		return
	}

	refs, err := app.store.Commitments.ListForClient(r.Context(), uasg)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.APIResponse[[]store.CommitmentRef]{
		Success: true,
		Data:    refs,
	})
}

// handleGetCommitmentDetail returns the commitment header with its line
// items. A commitment with no items is still a valid response; the sale
// form simply has nothing to pre-fill.
func (app *application) handleGetCommitmentDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "invalid commitment id")
		return
	}

	detail, err := app.store.Commitments.LoadDetail(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if detail == nil {
		writeJSONError(w, http.StatusNotFound, "commitment not found")
		return
	}

	writeJSON(w, http.StatusOK, response.APIResponse[*store.CommitmentDetail]{
		Success: true,
		Data:    detail,
	})
}

func (app *application) handleExportCommitments(w http.ResponseWriter, r *http.Request) {
	commitments, err := app.store.Commitments.ListAll(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	filename := "empenhos_" + time.Now().Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := ingest.ExportCommitments(w, commitments); err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}
