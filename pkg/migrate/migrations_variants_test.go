package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/migrate"
)

func TestVariantsMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_variants_tables.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no variants migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS variants",
		"CREATE TABLE IF NOT EXISTS variant_values",
		"CREATE TABLE IF NOT EXISTS variant_combinations",
		"CREATE TABLE IF NOT EXISTS variant_group_prices",
		"FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE",
		"CHECK (stock_quantity >= 0)",
		"CREATE UNIQUE INDEX IF NOT EXISTS uq_combination_product_key",
		"CREATE UNIQUE INDEX IF NOT EXISTS uq_group_price_product_value",
		"DROP TABLE IF EXISTS variant_combinations",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestMigrationsDirectoryValidates(t *testing.T) {
	t.Parallel()

	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations failed validation: %v", err)
	}
}
