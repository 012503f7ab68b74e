package main

import (
	"net/http"

	"github.com/vbarros/licitasis/internal/response"
	"github.com/vbarros/licitasis/internal/store"
)

func (app *application) handleListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := app.store.Lookup.ListSuppliers(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.APIResponse[[]store.Supplier]{
		Success: true,
		Data:    suppliers,
	})
}

func (app *application) handleListCarriers(w http.ResponseWriter, r *http.Request) {
	carriers, err := app.store.Lookup.ListCarriers(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.APIResponse[[]store.Carrier]{
		Success: true,
		Data:    carriers,
	})
}
