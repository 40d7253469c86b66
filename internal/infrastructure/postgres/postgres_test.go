package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-manager/pkg/config"
)

// testPool conecta a TEST_DATABASE_URL; sin ella los tests de integración se omiten.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE products, settings`)
	require.NoError(t, err)
	return pool
}

func TestProductRepo_UpsertYList(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := postgres.NewProductRepository(pool, postgres.NewTxRunner(pool))
	now := time.Now().UTC()

	first := &entity.Product{
		ID: "6f1c2a34-0000-4000-8000-000000000001", SKU: "A1", Name: "Tornillo",
		UnitPrice: decimal.RequireFromString("0.25"), ManageStock: true, StockQuantity: 10,
		Status: entity.ProductStatusPublish, UpdatedAt: now,
	}
	require.NoError(t, repo.UpsertProducts(ctx, []*entity.Product{first}))

	again := *first
	again.ID = "6f1c2a34-0000-4000-8000-000000000099"
	again.StockQuantity = 3
	require.NoError(t, repo.UpsertProducts(ctx, []*entity.Product{&again}))

	list, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, 3, list[0].StockQuantity)
	assert.True(t, list[0].UnitPrice.Equal(decimal.RequireFromString("0.25")))

	p, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, p)

	p, err = repo.GetByID(ctx, "no-existe")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProductRepo_ListConservaOrdenDeInsercion(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := postgres.NewProductRepository(pool, postgres.NewTxRunner(pool))
	now := time.Now().UTC()

	mk := func(id, sku string, qty int) *entity.Product {
		return &entity.Product{
			ID: id, SKU: sku, Name: sku, UnitPrice: decimal.NewFromInt(1), ManageStock: true,
			StockQuantity: qty, Status: entity.ProductStatusPublish, UpdatedAt: now,
		}
	}
	// Un único batch: todas las filas comparten created_at.
	require.NoError(t, repo.UpsertProducts(ctx, []*entity.Product{
		mk("6f1c2a34-0000-4000-8000-000000000010", "Z9", 1),
		mk("6f1c2a34-0000-4000-8000-000000000011", "B2", 2),
		mk("6f1c2a34-0000-4000-8000-000000000012", "M5", 3),
	}))
	// Actualizar un SKU existente no lo mueve al final.
	require.NoError(t, repo.UpsertProducts(ctx, []*entity.Product{
		mk("6f1c2a34-0000-4000-8000-000000000020", "Z9", 7),
		mk("6f1c2a34-0000-4000-8000-000000000021", "A0", 4),
	}))

	list, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	skus := make([]string, 0, len(list))
	for _, p := range list {
		skus = append(skus, p.SKU)
	}
	assert.Equal(t, []string{"Z9", "B2", "M5", "A0"}, skus)
	assert.Equal(t, 7, list[0].StockQuantity)
}

func TestSettingsRepo_GetYSave(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := postgres.NewSettingsRepository(pool)

	_, found, err := repo.GetThresholds(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SaveThresholds(ctx, entity.Thresholds{Low: 3, Full: 30}))
	got, found, err := repo.GetThresholds(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, entity.Thresholds{Low: 3, Full: 30}, got)

	_, err = pool.Exec(ctx, `UPDATE settings SET value = 'muchos' WHERE key = 'low_stock_threshold'`)
	require.NoError(t, err)
	_, found, err = repo.GetThresholds(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}
