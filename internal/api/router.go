package api

import (
	"food-rescue-dashboard/internal/api/handlers"
	"food-rescue-dashboard/internal/ports"
	"food-rescue-dashboard/internal/services"
	"net/http"

	"github.com/gorilla/mux"
)

type RouterDeps struct {
	Reader         ports.WorkbookReader
	Store          ports.Store
	Aliases        services.FieldAliases
	MaxUploadBytes int64
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps RouterDeps) http.Handler {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware, loggingMiddleware)

	uploadHandler := &handlers.UploadHandler{
		Reader:   deps.Reader,
		Store:    deps.Store,
		Aliases:  deps.Aliases,
		MaxBytes: deps.MaxUploadBytes,
	}
	reconHandler := &handlers.ReconciliationHandler{Store: deps.Store}
	importsHandler := &handlers.ImportsHandler{Repo: deps.Store.Imports}
	statsHandler := &handlers.StatsHandler{Repo: deps.Store.Transactions}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/uploads", uploadHandler.Upload).Methods(http.MethodPost)
	api.HandleFunc("/reconciliation", reconHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/imports", importsHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/stats/inventory", statsHandler.Inventory).Methods(http.MethodGet)

	return r
}
