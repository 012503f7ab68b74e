package main

import (
	"net/http"
	"strings"

	"github.com/vbarros/licitasis/internal/money"
	"github.com/vbarros/licitasis/internal/response"
	"github.com/vbarros/licitasis/internal/store"
)

type createProductRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Unit        string `json:"unit"`
	UnitPrice   string `json:"unit_price"`
	SupplierID  *int64 `json:"supplier_id"`
	Observation string `json:"observation"`
}

func (app *application) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	req.Code = strings.TrimSpace(req.Code)
	req.Name = strings.TrimSpace(req.Name)
	if req.Code == "" || req.Name == "" {
		writeJSONError(w, http.StatusBadRequest, "code and name are required")
		return
	}

	price := money.ParseOrZero(req.UnitPrice)
	if price.IsNegative() {
		writeJSONError(w, http.StatusBadRequest, "unit price cannot be negative")
		return
	}

	product := &store.Product{
		Code:        req.Code,
		Name:        req.Name,
		Unit:        strings.TrimSpace(req.Unit),
		UnitPrice:   money.Round2(price),
		SupplierID:  req.SupplierID,
		Observation: req.Observation,
	}

	if err := app.store.Products.Create(r.Context(), product); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response.APIResponse[*store.Product]{
		Success: true,
		Message: "Produto cadastrado com sucesso",
		Data:    product,
	})
}

func (app *application) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := app.store.Products.FindByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if product == nil {
		writeJSONError(w, http.StatusNotFound, "product not found")
		return
	}

	writeJSON(w, http.StatusOK, response.APIResponse[*store.Product]{
		Success: true,
		Data:    product,
	})
}

func (app *application) handleGetProductPurchaseStats(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	stats, err := app.store.Ledger.ProductPurchaseStats(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.APIResponse[*store.PurchaseStats]{
		Success: true,
		Data:    stats,
	})
}
