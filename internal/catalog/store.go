package catalog

import (
	"database/sql"
	"fmt"
)

// Load reads all categories and their items from the database and returns the
// assembled immutable Catalog.
func Load(db *sql.DB) (*Catalog, error) {
	categories, err := loadCategories(db)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT id, category_id, COALESCE(sku, ''), name, cost_per_sqft, setup_fee, COALESCE(notes, '')
		FROM catalog_items
		ORDER BY category_id, position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query catalog items: %w", err)
	}
	defer rows.Close()

	itemsByCategory := make(map[string][]Item)
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.CategoryID, &item.SKU, &item.Name, &item.CostPerSqFt, &item.SetupFee, &item.Notes); err != nil {
			return nil, fmt.Errorf("scan catalog item: %w", err)
		}
		itemsByCategory[item.CategoryID] = append(itemsByCategory[item.CategoryID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog items: %w", err)
	}

	for i := range categories {
		categories[i].Items = itemsByCategory[categories[i].ID]
	}

	return New(categories), nil
}

func loadCategories(db *sql.DB) ([]Category, error) {
	rows, err := db.Query(`
		SELECT id, name
		FROM categories
		ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		var cat Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}
