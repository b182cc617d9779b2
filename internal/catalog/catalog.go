package catalog

// Item is one sellable material from the cost sheet. CostPerSqFt is what we
// pay the vendor per square foot, not what the customer is charged.
type Item struct {
	ID          string  `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	CostPerSqFt float64 `json:"cost_per_sqft"`
	SetupFee    float64 `json:"setup_fee"`
	Notes       string  `json:"notes"`
	CategoryID  string  `json:"category_id"`
}

// Category groups items for presentation. It carries no pricing semantics.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Catalog is the immutable reference list of materials. It is built once at
// startup and shared read-only for the process lifetime.
type Catalog struct {
	categories []Category
	byID       map[string]Item
}

// New builds a Catalog from ordered categories.
func New(categories []Category) *Catalog {
	byID := make(map[string]Item)
	for _, cat := range categories {
		for _, item := range cat.Items {
			byID[item.ID] = item
		}
	}
	return &Catalog{categories: categories, byID: byID}
}

// Categories returns the ordered categories with their items.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// ItemByID resolves an item by identifier. Unknown identifiers return
// (Item{}, false) rather than an error: an estimate line may reference a
// material that has since been removed from the sheet.
func (c *Catalog) ItemByID(id string) (Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}
