package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbarros/licitasis/internal/billing"
	"github.com/vbarros/licitasis/internal/store"
)

func patchStatus(t *testing.T, app *application, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPatch, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	app.mount().ServeHTTP(rr, req)
	return rr
}

func receivedSale() *store.Sale {
	due := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
	return &store.Sale{
		ID:         7,
		Invoice:    "NF-100",
		ClientName: "Prefeitura de Teste",
		Total:      decimal.RequireFromString("42.00"),
		DueDate:    &due,
		Status:     billing.Received,
	}
}

func TestHandleUpdateReceivableStatus(t *testing.T) {
	t.Run("marking received needs no confirmation", func(t *testing.T) {
		sales := &stubSales{existing: &store.Sale{ID: 7, Status: billing.NotReceived}}
		app := newTestApp(sales)

		rr := patchStatus(t, app, "/v1/receivables/7/status",
			map[string]any{"status": "Recebido"})

		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, sales.statusCalled)
		assert.Equal(t, "Recebido", sales.statusValue)
	})

	t.Run("revert without confirm returns the record untouched", func(t *testing.T) {
		sales := &stubSales{existing: receivedSale()}
		app := newTestApp(sales)

		rr := patchStatus(t, app, "/v1/receivables/7/status",
			map[string]any{"status": "Não Recebido"})

		require.Equal(t, http.StatusOK, rr.Code)
		assert.False(t, sales.statusCalled)

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				ConfirmationRequired bool `json:"confirmation_required"`
				Record               struct {
					Invoice string `json:"invoice"`
					Client  string `json:"client"`
					Value   string `json:"value"`
					DueDate string `json:"due_date"`
				} `json:"record"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.True(t, body.Data.ConfirmationRequired)
		assert.Equal(t, "NF-100", body.Data.Record.Invoice)
		assert.Equal(t, "42.00", body.Data.Record.Value)
		assert.Equal(t, "30/04/2024", body.Data.Record.DueDate)
	})

	t.Run("revert with confirm goes through", func(t *testing.T) {
		sales := &stubSales{existing: receivedSale()}
		app := newTestApp(sales)

		rr := patchStatus(t, app, "/v1/receivables/7/status",
			map[string]any{"status": "Não Recebido", "confirm": true})

		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, sales.statusCalled)
		assert.Equal(t, "Não Recebido", sales.statusValue)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		sales := &stubSales{existing: receivedSale()}
		app := newTestApp(sales)

		rr := patchStatus(t, app, "/v1/receivables/7/status",
			map[string]any{"status": "Pago"})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.False(t, sales.statusCalled)
	})

	t.Run("missing sale is not found", func(t *testing.T) {
		sales := &stubSales{}
		app := newTestApp(sales)

		rr := patchStatus(t, app, "/v1/receivables/999/status",
			map[string]any{"status": "Recebido"})

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
