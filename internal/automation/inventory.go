package automation

import (
	"context"
	"fmt"
	"strings"

	"github.com/BlackSenju/techhive-automation/internal/models"
)

// stockTagPrefix marks the tags this routine owns; any stale ones are
// replaced on each pass.
const stockTagPrefix = "stock-"

// StockTag maps a total inventory quantity to its status tag.
func StockTag(total int) string {
	switch {
	case total <= 0:
		return "stock-out"
	case total < 10:
		return "stock-low"
	default:
		return "stock-available"
	}
}

// RetagStock rebuilds a comma-separated tag string: every existing tag is
// trimmed, tags carrying the stock- prefix are dropped, and exactly one
// fresh status tag for the given total is appended.
func RetagStock(tags string, total int) string {
	kept := make([]string, 0, 8)
	for _, t := range strings.Split(tags, ",") {
		t = strings.TrimSpace(t)
		if t == "" || strings.HasPrefix(t, stockTagPrefix) {
			continue
		}
		kept = append(kept, t)
	}
	kept = append(kept, StockTag(total))
	return strings.Join(kept, ", ")
}

// UpdateInventoryTags recomputes the stock status tag for every product from
// the sum of its variant quantities, writing back only when the tag string
// actually changes.
func (s *Service) UpdateInventoryTags(ctx context.Context) (int, error) {
	return s.scan(ctx, ActionInventory, &s.inventoryMu,
		func(ctx context.Context, p models.Product) (bool, error) {
			retagged := RetagStock(p.Tags, p.TotalInventory())
			if retagged == p.Tags {
				return false, nil
			}
			if _, err := s.catalog.UpdateProduct(ctx, p.ID, map[string]any{"tags": retagged}); err != nil {
				return false, err
			}
			return true, nil
		},
		func(updated int) string {
			return fmt.Sprintf("Updated inventory tags on %d products", updated)
		})
}
