// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sgchoi-dev/facilitybook/internal/api"
	"github.com/sgchoi-dev/facilitybook/internal/api/facilities"
	"github.com/sgchoi-dev/facilitybook/internal/api/reservations"
	"github.com/sgchoi-dev/facilitybook/internal/booking"
	"github.com/sgchoi-dev/facilitybook/internal/config"
	"github.com/sgchoi-dev/facilitybook/internal/db"
	"github.com/sgchoi-dev/facilitybook/internal/registry"
)

func newServer(cfg *config.Config, database *db.DB) *http.Server {
	reservations.InitHandlers(booking.NewLedger(database))
	facilities.InitHandlers(registry.New(database))

	router := http.NewServeMux()
	registerRoutes(router)

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithCORS(cfg.AllowedOrigins),
	)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Reservation routes
	mux.HandleFunc("GET /reservations", reservations.HandleList)
	mux.HandleFunc("GET /reservations/date/{date}", reservations.HandleListByDate)
	mux.HandleFunc("GET /reservations/range", reservations.HandleListByRange)
	mux.HandleFunc("POST /reservations", reservations.HandleCreate)
	mux.HandleFunc("PUT /reservations/{id}", reservations.HandleUpdate)
	mux.HandleFunc("DELETE /reservations/{id}", reservations.HandleDelete)

	// Facility catalog
	mux.HandleFunc("GET /reservations/facilities", facilities.HandleList)
}
