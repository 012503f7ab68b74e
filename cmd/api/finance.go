package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vbarros/licitasis/internal/dateparse"
	"github.com/vbarros/licitasis/internal/money"
	"github.com/vbarros/licitasis/internal/response"
	"github.com/vbarros/licitasis/internal/store"
)

type createFinancialRecordRequest struct {
	CommitmentNumber string `json:"commitment_number"`
	ClientUASG       string `json:"client_uasg"`
	Products         string `json:"products"`
	Carrier          string `json:"carrier"`
	Value            string `json:"value"`
	Type             string `json:"type"`
	Date             string `json:"date"`
	Observation      string `json:"observation"`
}

func (app *application) handleCreateFinancialRecord(w http.ResponseWriter, r *http.Request) {
	var req createFinancialRecordRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	value, err := money.Parse(req.Value)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if value.IsNegative() {
		writeJSONError(w, http.StatusBadRequest, "value cannot be negative")
		return
	}

	date, err := dateparse.ParseBR(strings.TrimSpace(req.Date))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	record := &store.FinancialRecord{
		CommitmentNumber: strings.TrimSpace(req.CommitmentNumber),
		ClientUASG:       strings.TrimSpace(req.ClientUASG),
		Products:         req.Products,
		Carrier:          strings.TrimSpace(req.Carrier),
		Value:            money.Round2(value),
		Type:             strings.TrimSpace(req.Type),
		Date:             date,
		Observation:      req.Observation,
	}

	if err := app.store.Finance.Insert(r.Context(), record); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response.APIResponse[*store.FinancialRecord]{
		Success: true,
		Message: "Registro financeiro cadastrado com sucesso",
		Data:    record,
	})
}

type financeListing struct {
	Records []store.FinancialRecord `json:"records"`
	Balance *store.FinanceBalance   `json:"balance"`
}

func (app *application) handleListFinancialRecords(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeJSONError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	records, err := app.store.Finance.List(r.Context(), limit)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	balance, err := app.store.Finance.Balance(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.APIResponse[financeListing]{
		Success: true,
		Data:    financeListing{Records: records, Balance: balance},
	})
}
