package automation

import (
	"context"
	"fmt"
)

// BulkEditResult is the per-product outcome of a bulk edit.
type BulkEditResult struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// BulkEdit applies the same partial update to every listed product. One
// product failing does not stop the rest; each ID gets its own outcome.
// Returns the per-ID results and the number that succeeded.
func (s *Service) BulkEdit(ctx context.Context, ids []int64, fields map[string]any) ([]BulkEditResult, int) {
	results := make([]BulkEditResult, 0, len(ids))
	successful := 0

	for _, id := range ids {
		if _, err := s.catalog.UpdateProduct(ctx, id, fields); err != nil {
			results = append(results, BulkEditResult{ID: id, Status: "error", Error: err.Error()})
			continue
		}
		results = append(results, BulkEditResult{ID: id, Status: "success"})
		successful++
	}

	s.log.Record(ActionBulkEdit, fmt.Sprintf("Bulk edit updated %d of %d products", successful, len(ids)))
	return results, successful
}
