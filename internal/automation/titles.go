package automation

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/BlackSenju/techhive-automation/internal/models"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// OptimizeTitle normalizes a product title: runs of whitespace collapse to a
// single space, the result is trimmed, and every space-delimited token is
// title-cased (first rune upper, remainder lower). Idempotent.
func OptimizeTitle(title string) string {
	title = strings.TrimSpace(whitespaceRun.ReplaceAllString(title, " "))
	if title == "" {
		return ""
	}

	words := strings.Split(title, " ")
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	}
	return strings.Join(words, " ")
}

// OptimizeTitles rewrites every title whose normalized form differs from the
// current one. Each change is logged individually as "original -> optimized".
func (s *Service) OptimizeTitles(ctx context.Context) (int, error) {
	return s.scan(ctx, ActionTitles, &s.titlesMu,
		func(ctx context.Context, p models.Product) (bool, error) {
			optimized := OptimizeTitle(p.Title)
			if optimized == p.Title {
				return false, nil
			}
			if _, err := s.catalog.UpdateProduct(ctx, p.ID, map[string]any{"title": optimized}); err != nil {
				return false, err
			}
			s.log.Record(ActionTitles, fmt.Sprintf("%s -> %s", p.Title, optimized))
			return true, nil
		},
		func(updated int) string {
			return fmt.Sprintf("Optimized %d product titles", updated)
		})
}
