package variants

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/db/models"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/types"
)

var repoDBSeq atomic.Int64

const repoSchema = `
CREATE TABLE variants (
	id TEXT PRIMARY KEY,
	product_id TEXT NOT NULL,
	name TEXT NOT NULL,
	position INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME,
	updated_at DATETIME
);
CREATE TABLE variant_values (
	id TEXT PRIMARY KEY,
	variant_id TEXT NOT NULL,
	value TEXT NOT NULL,
	position INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME
);
CREATE TABLE variant_combinations (
	id TEXT PRIMARY KEY,
	product_id TEXT NOT NULL,
	value_ids TEXT NOT NULL,
	value_key TEXT NOT NULL,
	price NUMERIC,
	compare_at_price NUMERIC,
	cost NUMERIC,
	stock_quantity INTEGER NOT NULL DEFAULT 0,
	is_active BOOLEAN NOT NULL DEFAULT 1,
	created_at DATETIME,
	updated_at DATETIME,
	UNIQUE (product_id, value_key)
);
CREATE TABLE variant_group_prices (
	id TEXT PRIMARY KEY,
	product_id TEXT NOT NULL,
	variant_value_id TEXT NOT NULL,
	price NUMERIC NOT NULL,
	created_at DATETIME,
	updated_at DATETIME,
	UNIQUE (product_id, variant_value_id)
);
`

func newRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:variants_repo_%d?mode=memory&cache=shared", repoDBSeq.Add(1))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.Exec(repoSchema).Error)
	return conn
}

func TestRepositoryVariantRoundtrip(t *testing.T) {
	repo := NewRepository(newRepoDB(t))
	ctx := context.Background()
	productID := uuid.New()

	// Distinct timestamps keep the creation-order listing deterministic.
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	size := &models.Variant{
		ID:        uuid.New(),
		ProductID: productID,
		Name:      "Size",
		CreatedAt: base,
		Values: []models.VariantValue{
			{ID: uuid.New(), Value: "S", Position: 0, CreatedAt: base},
			{ID: uuid.New(), Value: "M", Position: 1, CreatedAt: base.Add(time.Second)},
		},
	}
	_, err := repo.CreateVariant(ctx, size)
	require.NoError(t, err)

	color := &models.Variant{
		ID:        uuid.New(),
		ProductID: productID,
		Name:      "Color",
		CreatedAt: base.Add(time.Minute),
		Values: []models.VariantValue{
			{ID: uuid.New(), Value: "Red", Position: 0, CreatedAt: base.Add(time.Minute)},
		},
	}
	_, err = repo.CreateVariant(ctx, color)
	require.NoError(t, err)

	variants, err := repo.ListVariantsByProduct(ctx, productID)
	require.NoError(t, err)
	require.Len(t, variants, 2)
	require.Equal(t, "Size", variants[0].Name)
	require.Equal(t, "Color", variants[1].Name)
	require.Len(t, variants[0].Values, 2)
	require.Equal(t, "S", variants[0].Values[0].Value)

	require.NoError(t, repo.DeleteVariant(ctx, size.ID))
	variants, err = repo.ListVariantsByProduct(ctx, productID)
	require.NoError(t, err)
	require.Len(t, variants, 1)
}

func TestRepositoryCombinationUniqueKey(t *testing.T) {
	repo := NewRepository(newRepoDB(t))
	ctx := context.Background()
	productID := uuid.New()
	valueIDs := types.UUIDArray{uuid.New(), uuid.New()}
	key := CombinationKey(valueIDs)

	_, err := repo.CreateCombinations(ctx, []models.VariantCombination{{
		ID:        uuid.New(),
		ProductID: productID,
		ValueIDs:  valueIDs,
		ValueKey:  key,
		IsActive:  true,
	}})
	require.NoError(t, err)

	_, err = repo.CreateCombinations(ctx, []models.VariantCombination{{
		ID:        uuid.New(),
		ProductID: productID,
		ValueIDs:  valueIDs,
		ValueKey:  key,
		IsActive:  true,
	}})
	require.Error(t, err, "duplicate value key must be rejected")

	combos, err := repo.ListCombinationsByProduct(ctx, productID)
	require.NoError(t, err)
	require.Len(t, combos, 1)
	require.Len(t, []uuid.UUID(combos[0].ValueIDs), 2)
}

func TestRepositorySetCombinationPriceIfUnset(t *testing.T) {
	repo := NewRepository(newRepoDB(t))
	ctx := context.Background()
	productID := uuid.New()

	combo := models.VariantCombination{
		ID:        uuid.New(),
		ProductID: productID,
		ValueIDs:  types.UUIDArray{uuid.New()},
		ValueKey:  "k",
		IsActive:  true,
	}
	_, err := repo.CreateCombinations(ctx, []models.VariantCombination{combo})
	require.NoError(t, err)

	updated, err := repo.SetCombinationPriceIfUnset(ctx, combo.ID, decimal.RequireFromString("40"))
	require.NoError(t, err)
	require.True(t, updated)

	// Second write finds the price set and leaves it alone.
	updated, err = repo.SetCombinationPriceIfUnset(ctx, combo.ID, decimal.RequireFromString("99"))
	require.NoError(t, err)
	require.False(t, updated)

	stored, err := repo.FindCombinationByID(ctx, combo.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Price)
	require.True(t, stored.Price.Equal(decimal.RequireFromString("40")), "got %s", stored.Price)
}

func TestRepositoryUpsertGroupPrice(t *testing.T) {
	repo := NewRepository(newRepoDB(t))
	ctx := context.Background()
	productID := uuid.New()
	valueID := uuid.New()

	_, err := repo.UpsertGroupPrice(ctx, &models.VariantGroupPrice{
		ID:             uuid.New(),
		ProductID:      productID,
		VariantValueID: valueID,
		Price:          decimal.RequireFromString("40"),
	})
	require.NoError(t, err)

	_, err = repo.UpsertGroupPrice(ctx, &models.VariantGroupPrice{
		ID:             uuid.New(),
		ProductID:      productID,
		VariantValueID: valueID,
		Price:          decimal.RequireFromString("35"),
	})
	require.NoError(t, err)

	prices, err := repo.ListGroupPricesByProduct(ctx, productID)
	require.NoError(t, err)
	require.Len(t, prices, 1)
	require.True(t, prices[0].Price.Equal(decimal.RequireFromString("35")), "got %s", prices[0].Price)
}
