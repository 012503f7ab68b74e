package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vbarros/licitasis/internal/response"
	"github.com/vbarros/licitasis/internal/store"
)

type createClientRequest struct {
	UASG        string   `json:"uasg"`
	CNPJ        string   `json:"cnpj"`
	OrgName     string   `json:"org_name"`
	Address     string   `json:"address"`
	Observation string   `json:"observation"`
	Phones      []string `json:"phones"`
	Emails      []string `json:"emails"`
}

// digitsOnly strips formatting from a CNPJ so "12.345.678/0001-95" and the
// bare digits compare equal.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (app *application) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	req.UASG = strings.TrimSpace(req.UASG)
	req.OrgName = strings.TrimSpace(req.OrgName)
	if req.UASG == "" || req.OrgName == "" {
		writeJSONError(w, http.StatusBadRequest, "uasg and org_name are required")
		return
	}

	cnpj := digitsOnly(req.CNPJ)
	if cnpj != "" && len(cnpj) != 14 {
		writeJSONError(w, http.StatusBadRequest, "cnpj must have exactly 14 digits")
		return
	}

	client := &store.Client{
		UASG:        req.UASG,
		CNPJ:        cnpj,
		OrgName:     req.OrgName,
		Address:     strings.TrimSpace(req.Address),
		Observation: req.Observation,
		Phones:      req.Phones,
		Emails:      req.Emails,
	}

	if err := app.store.Clients.Create(r.Context(), client); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response.APIResponse[*store.Client]{
		Success: true,
		Message: "Cliente cadastrado com sucesso",
		Data:    client,
	})
}

func (app *application) handleGetClient(w http.ResponseWriter, r *http.Request) {
	uasg := chi.URLParam(r, "uasg")

	client, err := app.store.Clients.FindByUASG(r.Context(), uasg)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if client == nil {
		writeJSONError(w, http.StatusNotFound, "client not found")
		return
	}

	writeJSON(w, http.StatusOK, response.APIResponse[*store.Client]{
		Success: true,
		Data:    client,
	})
}
