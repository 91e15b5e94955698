// Package automation implements the catalog-scanning passes: title
// normalization, inventory-status tagging and SEO description generation,
// plus the shared bulk-edit operation.
package automation

import (
	"context"
	"fmt"
	"sync"

	"github.com/BlackSenju/techhive-automation/internal/activity"
	"github.com/BlackSenju/techhive-automation/internal/models"
	"github.com/BlackSenju/techhive-automation/internal/obs"
	"github.com/BlackSenju/techhive-automation/internal/shopify"
)

// Routine action tags used in activity entries.
const (
	ActionTitles    = "title_optimization"
	ActionInventory = "inventory_tagging"
	ActionSEO       = "seo_generation"
	ActionBulkEdit  = "bulk_edit"
)

// Service runs the automation routines against a remote catalog. Each
// routine holds its own lock so a manual trigger firing while the schedule
// also fires cannot interleave writes of the same pass; the overlapping
// invocation is skipped.
type Service struct {
	catalog shopify.Catalog
	log     *activity.Log

	titlesMu    sync.Mutex
	inventoryMu sync.Mutex
	seoMu       sync.Mutex
}

func NewService(catalog shopify.Catalog, log *activity.Log) *Service {
	return &Service{catalog: catalog, log: log}
}

// scan is the shared routine skeleton: guard on configuration, fetch one
// page of up to 250 products (pages beyond the first are not visited), then
// hand each product to step. A fetch failure logs a single error entry and
// aborts the pass. A step failure is isolated to that product. Already-sent
// writes are never rolled back. Returns the number of products changed.
func (s *Service) scan(ctx context.Context, action string, mu *sync.Mutex, step func(context.Context, models.Product) (bool, error), summary func(updated int) string) (int, error) {
	if !mu.TryLock() {
		obs.Logger.Warn("routine_already_running", "routine", action)
		return 0, nil
	}
	defer mu.Unlock()

	if !s.catalog.Configured() {
		obs.Logger.Info("routine_skipped", "routine", action, "reason", "shopify not configured")
		return 0, nil
	}

	products, err := s.catalog.ListProducts(ctx, shopify.MaxPageSize)
	if err != nil {
		s.log.RecordError(action, "Failed to fetch products: "+err.Error())
		return 0, err
	}

	updated := 0
	for _, p := range products {
		changed, err := step(ctx, p)
		if err != nil {
			s.log.RecordError(action, fmt.Sprintf("Product %d: %v", p.ID, err))
			continue
		}
		if changed {
			updated++
		}
	}

	s.log.Record(action, summary(updated))
	return updated, nil
}
