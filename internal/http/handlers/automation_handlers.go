package handlers

import (
	"context"
	"net/http"

	"github.com/BlackSenju/techhive-automation/internal/automation"
)

// triggerRoutine enqueues a routine on the worker pool and answers
// immediately; the work continues after the response is written.
func triggerRoutine(w http.ResponseWriter, name, message string, run func(context.Context) (int, error)) {
	if !pool.Submit(name, func(ctx context.Context) {
		_, _ = run(ctx)
	}) {
		writeError(w, http.StatusServiceUnavailable, "service is shutting down")
		return
	}
	writeJSON(w, http.StatusAccepted, MessageResponse{Message: message})
}

// OptimizeTitlesHandler godoc
// @Summary Trigger title optimization
// @Tags automation
// @Produce json
// @Security BearerAuth
// @Success 202 {object} MessageResponse
// @Router /api/automation/optimize-titles [post]
func OptimizeTitlesHandler(w http.ResponseWriter, r *http.Request) {
	triggerRoutine(w, automation.ActionTitles, "Title optimization started", autoSvc.OptimizeTitles)
}

// UpdateInventoryTagsHandler godoc
// @Summary Trigger inventory tagging
// @Tags automation
// @Produce json
// @Security BearerAuth
// @Success 202 {object} MessageResponse
// @Router /api/automation/update-inventory-tags [post]
func UpdateInventoryTagsHandler(w http.ResponseWriter, r *http.Request) {
	triggerRoutine(w, automation.ActionInventory, "Inventory tag update started", autoSvc.UpdateInventoryTags)
}

// GenerateSEOHandler godoc
// @Summary Trigger SEO description generation
// @Tags automation
// @Produce json
// @Security BearerAuth
// @Success 202 {object} MessageResponse
// @Router /api/automation/generate-seo [post]
func GenerateSEOHandler(w http.ResponseWriter, r *http.Request) {
	triggerRoutine(w, automation.ActionSEO, "SEO description generation started", autoSvc.GenerateSEODescriptions)
}

// RunAllHandler godoc
// @Summary Trigger all three automation routines
// @Tags automation
// @Produce json
// @Security BearerAuth
// @Success 202 {object} MessageResponse
// @Router /api/automation/run-all [post]
func RunAllHandler(w http.ResponseWriter, r *http.Request) {
	ok := pool.Submit(automation.ActionTitles, func(ctx context.Context) { _, _ = autoSvc.OptimizeTitles(ctx) })
	ok = pool.Submit(automation.ActionInventory, func(ctx context.Context) { _, _ = autoSvc.UpdateInventoryTags(ctx) }) && ok
	ok = pool.Submit(automation.ActionSEO, func(ctx context.Context) { _, _ = autoSvc.GenerateSEODescriptions(ctx) }) && ok
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "service is shutting down")
		return
	}
	writeJSON(w, http.StatusAccepted, MessageResponse{Message: "All automation routines started"})
}

// GetLogsHandler godoc
// @Summary Dump the activity log
// @Tags automation
// @Produce json
// @Success 200 {object} LogsResponse
// @Router /api/automation/logs [get]
func GetLogsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LogsResponse{Logs: activityLog.Entries()})
}
