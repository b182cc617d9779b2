package seed

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/coastalgraphics/estimator/internal/db"
	"github.com/coastalgraphics/estimator/internal/migrations"
)

func TestRunIsIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "seed-test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database, "../../migrations"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	// 5 categories plus 29 materials on the stock sheet.
	const expectedFirstRun = 34

	for i := 0; i < 10; i++ {
		stats, err := Run(database)
		if err != nil {
			t.Fatalf("run seed (iteration=%d): %v", i, err)
		}
		if i == 0 {
			if stats.Inserts != expectedFirstRun {
				t.Fatalf("expected %d inserts in first run, got %d", expectedFirstRun, stats.Inserts)
			}
			continue
		}
		if stats.Inserts != 0 {
			t.Fatalf("expected 0 inserts in iteration %d, got %d", i, stats.Inserts)
		}
	}

	assertCount(t, database, `SELECT COUNT(*) FROM categories`, 5)
	assertCount(t, database, `SELECT COUNT(*) FROM catalog_items`, 29)
	assertCount(t, database, `SELECT COUNT(*) FROM catalog_items WHERE category_id = 'rigid_board'`, 13)

	var costPerSqFt float64
	if err := database.QueryRow(`SELECT cost_per_sqft FROM catalog_items WHERE id = 'banner_13oz'`).Scan(&costPerSqFt); err != nil {
		t.Fatalf("query banner cost: %v", err)
	}
	if costPerSqFt != 4.25 {
		t.Fatalf("expected 13oz banner cost 4.25, got %v", costPerSqFt)
	}
}

func TestRunPreservesLocalEdits(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "seed-edit-test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database, "../../migrations"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	if _, err := Run(database); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	if _, err := database.Exec(`UPDATE catalog_items SET cost_per_sqft = 4.95 WHERE id = 'banner_13oz'`); err != nil {
		t.Fatalf("update cost: %v", err)
	}

	if _, err := Run(database); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	var costPerSqFt float64
	if err := database.QueryRow(`SELECT cost_per_sqft FROM catalog_items WHERE id = 'banner_13oz'`).Scan(&costPerSqFt); err != nil {
		t.Fatalf("query banner cost: %v", err)
	}
	if costPerSqFt != 4.95 {
		t.Fatalf("expected local edit to survive reseed, got %v", costPerSqFt)
	}
}

func assertCount(t *testing.T, database *sql.DB, query string, expected int) {
	t.Helper()

	var count int
	if err := database.QueryRow(query).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != expected {
		t.Fatalf("expected count %d, got %d", expected, count)
	}
}
