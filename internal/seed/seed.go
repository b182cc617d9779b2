package seed

import (
	"database/sql"
	"fmt"

	"github.com/coastalgraphics/estimator/internal/catalog"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run seeds the stock material catalog in an idempotent way. Existing rows are
// left untouched so cost adjustments made through the database survive
// restarts.
func Run(db *sql.DB) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	for position, cat := range stockCategories {
		if err := ensureCategory(tx, cat, position, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
		for itemPosition, item := range cat.Items {
			if err := ensureItem(tx, cat.ID, item, itemPosition, &stats); err != nil {
				_ = tx.Rollback()
				return Stats{}, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureCategory(tx *sql.Tx, cat catalog.Category, position int, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM categories WHERE id = ? LIMIT 1)`, cat.ID).Scan(&exists); err != nil {
		return fmt.Errorf("check category %s existence: %w", cat.ID, err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO categories (id, name, position)
		VALUES (?, ?, ?)
	`, cat.ID, cat.Name, position); err != nil {
		return fmt.Errorf("insert category %s: %w", cat.ID, err)
	}
	stats.Inserts++
	return nil
}

func ensureItem(tx *sql.Tx, categoryID string, item catalog.Item, position int, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM catalog_items WHERE id = ? LIMIT 1)`, item.ID).Scan(&exists); err != nil {
		return fmt.Errorf("check catalog item %s existence: %w", item.ID, err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO catalog_items (id, category_id, sku, name, cost_per_sqft, setup_fee, notes, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, item.ID, categoryID, item.SKU, item.Name, item.CostPerSqFt, item.SetupFee, item.Notes, position); err != nil {
		return fmt.Errorf("insert catalog item %s: %w", item.ID, err)
	}
	stats.Inserts++
	return nil
}
