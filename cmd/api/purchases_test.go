package main

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbarros/licitasis/internal/store"
)

type stubPurchases struct {
	created      *store.Purchase
	createdItems []store.PurchaseItem
	err          error
}

func (s *stubPurchases) Create(ctx context.Context, p *store.Purchase, items []store.PurchaseItem) error {
	if s.err != nil {
		return s.err
	}
	p.ID = 1
	if len(items) > 0 {
		p.FirstProductQty = items[0].Quantity
		p.FirstProductPrice = items[0].UnitPrice
	}
	s.created = p
	s.createdItems = items
	return nil
}

func (s *stubPurchases) FindByID(ctx context.Context, id int64) (*store.Purchase, error) {
	return nil, nil
}

func (s *stubPurchases) UpdatePayableStatus(ctx context.Context, purchaseID int64, status string) error {
	return nil
}

type stubLookup struct{}

func (s *stubLookup) ListSuppliers(ctx context.Context) ([]store.Supplier, error) {
	return nil, nil
}

func (s *stubLookup) SupplierNameByID(ctx context.Context, id int64) (string, error) {
	return "Fornecedor ABC", nil
}

func (s *stubLookup) ListCarriers(ctx context.Context) ([]store.Carrier, error) {
	return nil, nil
}

type stubProducts struct{}

func (s *stubProducts) Create(ctx context.Context, p *store.Product) error { return nil }

func (s *stubProducts) FindByID(ctx context.Context, id int64) (*store.Product, error) {
	return nil, nil
}

func (s *stubProducts) NameByID(ctx context.Context, id int64) (string, error) {
	if id == 1 {
		return "Produto A", nil
	}
	return "Produto B", nil
}

func (s *stubProducts) IDByCode(ctx context.Context, code string) (int64, error) { return 0, nil }

func postMultipart(t *testing.T, app *application, fields map[string][]string) *httptest.ResponseRecorder {
	return postMultipartFile(t, app, fields, "", "")
}

func postMultipartFile(t *testing.T, app *application, fields map[string][]string, fileName, fileContent string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, values := range fields {
		for _, v := range values {
			require.NoError(t, mw.WriteField(name, v))
		}
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("comprovante_pagamento", fileName)
		require.NoError(t, err)
		_, err = fw.Write([]byte(fileContent))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/purchases", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	app.mount().ServeHTTP(rr, req)
	return rr
}

func purchaseForm() map[string][]string {
	return map[string][]string{
		"fornecedor":               {"2"},
		"numero_nf":                {"NF-200"},
		"data":                     {"01/04/2024"},
		"frete":                    {"1,50"},
		"produto_id[]":             {"1", "2"},
		"produto_quantidade[]":     {"3", "1"},
		"produto_valor_unitario[]": {"2.00", "4.00"},
	}
}

func TestHandleCreatePurchase(t *testing.T) {
	t.Run("freight joins the total and the first item is denormalized", func(t *testing.T) {
		purchases := &stubPurchases{}
		app := &application{
			config: config{uploadDir: "uploads"},
			store: store.Storage{
				Purchases: purchases,
				Lookup:    &stubLookup{},
				Products:  &stubProducts{},
			},
		}

		rr := postMultipart(t, app, purchaseForm())

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		require.NotNil(t, purchases.created)
		// 3 x 2.00 + 1 x 4.00 + 1.50 = 11.50
		assert.True(t, purchases.created.Total.Equal(decimal.RequireFromString("11.50")))
		assert.Equal(t, "Fornecedor ABC", purchases.created.SupplierName)
		assert.Equal(t, "Produto A", purchases.created.FirstProductName)
		require.Len(t, purchases.createdItems, 2)
	})

	t.Run("missing invoice number rejected", func(t *testing.T) {
		purchases := &stubPurchases{}
		app := &application{store: store.Storage{Purchases: purchases, Lookup: &stubLookup{}, Products: &stubProducts{}}}

		form := purchaseForm()
		delete(form, "numero_nf")
		rr := postMultipart(t, app, form)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Nil(t, purchases.created)
	})

	t.Run("stores the uploaded receipt path", func(t *testing.T) {
		purchases := &stubPurchases{}
		dir := t.TempDir()
		app := &application{
			config: config{uploadDir: dir},
			store:  store.Storage{Purchases: purchases, Lookup: &stubLookup{}, Products: &stubProducts{}},
		}

		rr := postMultipartFile(t, app, purchaseForm(), "nota.pdf", "conteudo")

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		require.NotNil(t, purchases.created.ReceiptPath)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("failed insert removes the saved receipt", func(t *testing.T) {
		purchases := &stubPurchases{err: store.Infrastructuref("insert purchase", assert.AnError)}
		dir := t.TempDir()
		app := &application{
			config: config{uploadDir: dir},
			store:  store.Storage{Purchases: purchases, Lookup: &stubLookup{}, Products: &stubProducts{}},
		}

		rr := postMultipartFile(t, app, purchaseForm(), "nota.pdf", "conteudo")

		require.Equal(t, http.StatusInternalServerError, rr.Code)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("negative freight rejected", func(t *testing.T) {
		purchases := &stubPurchases{}
		app := &application{store: store.Storage{Purchases: purchases, Lookup: &stubLookup{}, Products: &stubProducts{}}}

		form := purchaseForm()
		form["frete"] = []string{"-5.00"}
		rr := postMultipart(t, app, form)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
