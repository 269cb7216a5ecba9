package http

import (
	"net/http"

	"appliance-analytics/internal/schedulers"
	"appliance-analytics/internal/shared/loggers"
	"appliance-analytics/internal/shared/metrics"
	"appliance-analytics/internal/stores"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(batchRunner schedulers.BatchRunner, rollupStore stores.RollupStore, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	runRollupHandler := NewRunRollupHandler(batchRunner)
	listRollupsHandler := NewListRollupsHandler(rollupStore)

	// Routes
	router.Post("/rollups/run", errorHandlingAdapter(runRollupHandler))
	router.Get("/devices/{deviceID}/rollups", errorHandlingAdapter(listRollupsHandler))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
