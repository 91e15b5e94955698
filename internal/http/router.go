package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/BlackSenju/techhive-automation/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	r.Get("/", handlers.IndexHandler)
	r.Get("/health", handlers.HealthHandler)
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/products/{id}", handlers.GetProductByIDHandler)
		r.Get("/automation/logs", handlers.GetLogsHandler)

		// Mutating routes: rate limited and, when a secret is configured,
		// token guarded.
		r.Group(func(r chi.Router) {
			r.Use(RateLimitMiddleware)
			r.Use(AuthMiddleware)
			r.Put("/products/{id}", handlers.UpdateProductHandler)
			r.Post("/bulk-edit", handlers.BulkEditHandler)
			r.Post("/automation/optimize-titles", handlers.OptimizeTitlesHandler)
			r.Post("/automation/update-inventory-tags", handlers.UpdateInventoryTagsHandler)
			r.Post("/automation/generate-seo", handlers.GenerateSEOHandler)
			r.Post("/automation/run-all", handlers.RunAllHandler)
		})
	})

	return r
}
