package handlers

import (
	"net/http"
	"time"
)

// HealthHandler godoc
// @Summary Liveness and configuration status
// @Tags meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:            "ok",
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
		ShopifyConfigured: catalog.Configured(),
	})
}

// IndexHandler godoc
// @Summary Self-describing endpoint index
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]any
// @Router / [get]
func IndexHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "TechHive Catalog Automation",
		"endpoints": map[string]string{
			"GET /api/products":                          "list up to 250 products",
			"GET /api/products/{id}":                     "fetch one product",
			"PUT /api/products/{id}":                     "update one product",
			"POST /api/bulk-edit":                        "apply a shared update to many products",
			"POST /api/automation/optimize-titles":       "normalize product titles",
			"POST /api/automation/update-inventory-tags": "recompute stock status tags",
			"POST /api/automation/generate-seo":          "generate placeholder SEO descriptions",
			"POST /api/automation/run-all":               "run all three routines",
			"GET /api/automation/logs":                   "dump the activity log",
			"GET /health":                                "liveness and configuration status",
			"GET /swagger/index.html":                    "API documentation",
		},
		"schedule": map[string]string{
			"title_optimization": "daily at 02:00",
			"inventory_tagging":  "every 6 hours",
			"seo_generation":     "weekly on Sunday at 03:00",
		},
	})
}
