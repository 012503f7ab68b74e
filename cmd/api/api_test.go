package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/vbarros/licitasis/internal/store"
)

type stubSales struct {
	existing     *store.Sale
	created      *store.Sale
	createdItems []store.SaleItem
	deletedID    int64
	statusID     int64
	statusValue  string
	statusCalled bool
}

func (s *stubSales) Create(ctx context.Context, sale *store.Sale, items []store.SaleItem) error {
	sale.ID = 1
	s.created = sale
	s.createdItems = items
	return nil
}

func (s *stubSales) FindByID(ctx context.Context, id int64) (*store.Sale, error) {
	if s.existing != nil && s.existing.ID == id {
		return s.existing, nil
	}
	return nil, nil
}

func (s *stubSales) Delete(ctx context.Context, id int64) error {
	s.deletedID = id
	return nil
}

func (s *stubSales) UpdateStatus(ctx context.Context, id int64, status string) error {
	s.statusCalled = true
	s.statusID = id
	s.statusValue = status
	return nil
}

func newTestApp(sales *stubSales) *application {
	return &application{
		config: config{addr: ":0", uploadDir: "uploads"},
		store:  store.Storage{Sales: sales},
	}
}

func postForm(t *testing.T, app *application, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	app.mount().ServeHTTP(rr, req)
	return rr
}

func saleForm() url.Values {
	return url.Values{
		"numero":           {"NF-100"},
		"cliente_uasg":     {"986531"},
		"cliente":          {"Prefeitura de Teste"},
		"empenho":          {"3"},
		"transportadora":   {"Transportadora X"},
		"data":             {"15/03/2024"},
		"produto[]":        {"1", "2"},
		"quantidade[]":     {"3", "2"},
		"valor_unitario[]": {"10,50", "5.25"},
	}
}
