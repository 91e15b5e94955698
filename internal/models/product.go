package models

// Product mirrors the Shopify Admin REST product shape for the fields this
// service reads or writes. The catalog is the source of truth; products are
// fetched fresh on every run and never stored locally.
type Product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	BodyHTML    string    `json:"body_html"`
	Vendor      string    `json:"vendor"`
	ProductType string    `json:"product_type"`
	Tags        string    `json:"tags"`
	Variants    []Variant `json:"variants"`
}

// Variant is a sellable variation of a product. A missing inventory_quantity
// decodes to zero.
type Variant struct {
	ID                int64  `json:"id"`
	Title             string `json:"title,omitempty"`
	SKU               string `json:"sku,omitempty"`
	InventoryQuantity int    `json:"inventory_quantity"`
}

// TotalInventory sums inventory_quantity across all variants.
func (p Product) TotalInventory() int {
	total := 0
	for _, v := range p.Variants {
		total += v.InventoryQuantity
	}
	return total
}
