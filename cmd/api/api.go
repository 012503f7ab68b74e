package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vbarros/licitasis/internal/store"
)

const defaultIdleTime = 15 * time.Minute

type application struct {
	config config
	store  store.Storage
}

type config struct {
	addr      string
	uploadDir string
	db        dbConfig
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleConns int
	maxIdleTime  time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Route("/clients", func(r chi.Router) {
			r.Post("/", app.handleCreateClient)
			r.Get("/{uasg}", app.handleGetClient)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", app.handleCreateProduct)
			r.Get("/{id}", app.handleGetProduct)
			r.Get("/{id}/purchase-stats", app.handleGetProductPurchaseStats)
		})

		r.Get("/suppliers", app.handleListSuppliers)
		r.Get("/carriers", app.handleListCarriers)

		r.Route("/commitments", func(r chi.Router) {
			r.Get("/", app.handleListCommitmentsForClient)
			r.Get("/export", app.handleExportCommitments)
			r.Get("/{id}", app.handleGetCommitmentDetail)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Post("/", app.handleCreateSale)
			r.Delete("/{id}", app.handleDeleteSale)
		})

		r.Post("/purchases", app.handleCreatePurchase)

		r.Route("/receivables", func(r chi.Router) {
			r.Get("/summary", app.handleReceivableSummary)
			r.Patch("/{id}/status", app.handleUpdateReceivableStatus)
		})

		r.Route("/payables", func(r chi.Router) {
			r.Get("/summary", app.handlePayableSummary)
			r.Patch("/{id}/status", app.handleUpdatePayableStatus)
		})

		r.Route("/finance", func(r chi.Router) {
			r.Post("/", app.handleCreateFinancialRecord)
			r.Get("/", app.handleListFinancialRecords)
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 120,
		ReadTimeout:  time.Second * 40,
		IdleTimeout:  time.Minute,
	}

	log.Printf("Server started on %s", app.config.addr)
	return srv.ListenAndServe()
}
