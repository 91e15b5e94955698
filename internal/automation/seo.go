package automation

import (
	"context"
	"fmt"
	"strings"

	"github.com/BlackSenju/techhive-automation/internal/models"
)

// minDescriptionLength is the threshold below which a description counts as
// placeholder-worthy.
const minDescriptionLength = 50

// NeedsSEODescription reports whether a product qualifies for regeneration:
// its description is absent or shorter than 50 characters.
func NeedsSEODescription(p models.Product) bool {
	return len(p.BodyHTML) < minDescriptionLength
}

// GenerateSEODescription builds the placeholder description from the fixed
// store template. Category and Brand clauses are emitted only when the
// product carries those fields.
func GenerateSEODescription(p models.Product) string {
	var b strings.Builder
	b.WriteString("Shop " + p.Title + " at TechHive. ")
	if p.ProductType != "" {
		b.WriteString("Category: " + p.ProductType + ". ")
	}
	if p.Vendor != "" {
		b.WriteString("Brand: " + p.Vendor + ". ")
	}
	b.WriteString("Fast shipping and great prices!")
	return b.String()
}

// GenerateSEODescriptions writes a generated description to every qualifying
// product. Unlike the other passes there is no equality check: a qualifying
// product is always written.
func (s *Service) GenerateSEODescriptions(ctx context.Context) (int, error) {
	return s.scan(ctx, ActionSEO, &s.seoMu,
		func(ctx context.Context, p models.Product) (bool, error) {
			if !NeedsSEODescription(p) {
				return false, nil
			}
			description := GenerateSEODescription(p)
			if _, err := s.catalog.UpdateProduct(ctx, p.ID, map[string]any{"body_html": description}); err != nil {
				return false, err
			}
			return true, nil
		},
		func(updated int) string {
			return fmt.Sprintf("Generated SEO descriptions for %d products", updated)
		})
}
