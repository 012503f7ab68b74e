package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbarros/licitasis/internal/store"
)

type stubClients struct {
	created *store.Client
	err     error
}

func (s *stubClients) Create(ctx context.Context, c *store.Client) error {
	if s.err != nil {
		return s.err
	}
	c.ID = 1
	s.created = c
	return nil
}

func (s *stubClients) FindByUASG(ctx context.Context, uasg string) (*store.Client, error) {
	if s.created != nil && s.created.UASG == uasg {
		return s.created, nil
	}
	return nil, nil
}

func postJSON(t *testing.T, app *application, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	app.mount().ServeHTTP(rr, req)
	return rr
}

func TestHandleCreateClient(t *testing.T) {
	t.Run("strips cnpj formatting", func(t *testing.T) {
		clients := &stubClients{}
		app := &application{store: store.Storage{Clients: clients}}

		rr := postJSON(t, app, "/v1/clients/", map[string]any{
			"uasg":     "986531",
			"org_name": "Prefeitura de Teste",
			"cnpj":     "12.345.678/0001-95",
		})

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		require.NotNil(t, clients.created)
		assert.Equal(t, "12345678000195", clients.created.CNPJ)
	})

	t.Run("wrong cnpj length rejected", func(t *testing.T) {
		clients := &stubClients{}
		app := &application{store: store.Storage{Clients: clients}}

		rr := postJSON(t, app, "/v1/clients/", map[string]any{
			"uasg":     "986531",
			"org_name": "Prefeitura de Teste",
			"cnpj":     "123",
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Nil(t, clients.created)
	})

	t.Run("empty cnpj allowed", func(t *testing.T) {
		clients := &stubClients{}
		app := &application{store: store.Storage{Clients: clients}}

		rr := postJSON(t, app, "/v1/clients/", map[string]any{
			"uasg":     "986531",
			"org_name": "Prefeitura de Teste",
		})

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Empty(t, clients.created.CNPJ)
	})

	t.Run("duplicate uasg maps to conflict", func(t *testing.T) {
		clients := &stubClients{err: &store.ConflictError{Field: "uasg", Value: "986531"}}
		app := &application{store: store.Storage{Clients: clients}}

		rr := postJSON(t, app, "/v1/clients/", map[string]any{
			"uasg":     "986531",
			"org_name": "Prefeitura de Teste",
		})

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("missing uasg rejected", func(t *testing.T) {
		clients := &stubClients{}
		app := &application{store: store.Storage{Clients: clients}}

		rr := postJSON(t, app, "/v1/clients/", map[string]any{
			"org_name": "Prefeitura de Teste",
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleGetClient(t *testing.T) {
	clients := &stubClients{created: &store.Client{ID: 1, UASG: "986531", OrgName: "Prefeitura"}}
	app := &application{store: store.Storage{Clients: clients}}

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/clients/986531", nil)
		rr := httptest.NewRecorder()
		app.mount().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "986531")
	})

	t.Run("missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/clients/000000", nil)
		rr := httptest.NewRecorder()
		app.mount().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
