package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbarros/licitasis/internal/billing"
)

func TestHandleCreateSale(t *testing.T) {
	t.Run("creates the sale with a recomputed total", func(t *testing.T) {
		sales := &stubSales{}
		app := newTestApp(sales)

		form := saleForm()
		// Posted grand total is ignored in favor of the line items.
		form.Set("valor_total_venda", "9999.99")

		rr := postForm(t, app, "/v1/sales/", form)

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		require.NotNil(t, sales.created)
		// 3 x 10.50 + 2 x 5.25 = 42.00
		assert.True(t, sales.created.Total.Equal(decimal.RequireFromString("42.00")))
		assert.Equal(t, billing.NotReceived, sales.created.Status)
		require.Len(t, sales.createdItems, 2)
		assert.Equal(t, int64(3), sales.createdItems[0].Quantity)
	})

	t.Run("rows with an empty product are dropped", func(t *testing.T) {
		sales := &stubSales{}
		app := newTestApp(sales)

		form := saleForm()
		form["produto[]"] = []string{"", "2"}
		form["quantidade[]"] = []string{"5", "2"}
		form["valor_unitario[]"] = []string{"100.00", "5.25"}

		rr := postForm(t, app, "/v1/sales/", form)

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		require.Len(t, sales.createdItems, 1)
		assert.Equal(t, int64(2), sales.createdItems[0].ProductID)
		assert.True(t, sales.created.Total.Equal(decimal.RequireFromString("10.50")))
	})

	t.Run("missing required fields rejected", func(t *testing.T) {
		sales := &stubSales{}
		app := newTestApp(sales)

		form := saleForm()
		form.Del("transportadora")

		rr := postForm(t, app, "/v1/sales/", form)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "transportadora")
		assert.Nil(t, sales.created)
	})

	t.Run("all products empty rejected", func(t *testing.T) {
		sales := &stubSales{}
		app := newTestApp(sales)

		form := saleForm()
		form["produto[]"] = []string{"", ""}

		rr := postForm(t, app, "/v1/sales/", form)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "at least one product")
	})

	t.Run("impossible date rejected", func(t *testing.T) {
		sales := &stubSales{}
		app := newTestApp(sales)

		form := saleForm()
		form.Set("data", "31/02/2024")

		rr := postForm(t, app, "/v1/sales/", form)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Nil(t, sales.created)
	})

	t.Run("invalid quantity rejected", func(t *testing.T) {
		sales := &stubSales{}
		app := newTestApp(sales)

		form := saleForm()
		form["quantidade[]"] = []string{"0", "2"}

		rr := postForm(t, app, "/v1/sales/", form)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleDeleteSale(t *testing.T) {
	sales := &stubSales{}
	app := newTestApp(sales)

	req := httptest.NewRequest(http.MethodDelete, "/v1/sales/7", nil)
	rr := httptest.NewRecorder()
	app.mount().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(7), sales.deletedID)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
}
