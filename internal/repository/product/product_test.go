package product

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"easyshop/internal/domain"
	"easyshop/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgres_CreateGetUpdateDelete(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()
	resetTables(ctx, t, pool)
	catID := insertCategory(ctx, t, pool, "Electronics")

	repo := NewPostgres(pool, nil)
	created, err := repo.Create(ctx, domain.Product{
		CategoryID:  catID,
		Name:        "Smartphone",
		Description: "A powerful phone",
		Price:       decimal.RequireFromString("499.99"),
		Color:       "Black",
		Stock:       50,
		ImageURL:    "smartphone.jpg",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Smartphone", got.Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("499.99")), "price %s", got.Price)
	assert.Equal(t, 50, got.Stock)

	got.Name = "Smartphone Pro"
	got.Featured = true
	require.NoError(t, repo.Update(ctx, got.ID, *got))

	updated, err := repo.GetByID(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, "Smartphone Pro", updated.Name)
	assert.True(t, updated.Featured)

	require.NoError(t, repo.Delete(ctx, got.ID))
	_, err = repo.GetByID(ctx, got.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, got.ID), domain.ErrNotFound)
}

func TestPostgres_CreateWithUnknownCategory(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()
	resetTables(ctx, t, pool)

	_, err := NewPostgres(pool, nil).Create(ctx, domain.Product{CategoryID: 404, Name: "Ghost", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostgres_SearchFilters(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()
	resetTables(ctx, t, pool)
	electronics := insertCategory(ctx, t, pool, "Electronics")
	fashion := insertCategory(ctx, t, pool, "Fashion")

	repo := NewPostgres(pool, nil)
	seed := []domain.Product{
		{CategoryID: electronics, Name: "Phone", Price: decimal.RequireFromString("499.99"), Color: "Black"},
		{CategoryID: electronics, Name: "Cable", Price: decimal.RequireFromString("9.99"), Color: "white"},
		{CategoryID: fashion, Name: "Jacket", Price: decimal.RequireFromString("79.50"), Color: "BLACK"},
	}
	for _, p := range seed {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	all, err := repo.Search(ctx, SearchFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	black := "Black"
	byColor, err := repo.Search(ctx, SearchFilter{Color: &black})
	require.NoError(t, err)
	require.Len(t, byColor, 2)
	for _, p := range byColor {
		assert.True(t, strings.EqualFold(p.Color, black), "color %q", p.Color)
	}

	minPrice := decimal.NewFromInt(10)
	maxPrice := decimal.NewFromInt(100)
	inRange, err := repo.Search(ctx, SearchFilter{MinPrice: &minPrice, MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Len(t, inRange, 1)
	assert.Equal(t, "Jacket", inRange[0].Name)

	combined, err := repo.Search(ctx, SearchFilter{CategoryID: &electronics, Color: &black})
	require.NoError(t, err)
	require.Len(t, combined, 1)
	assert.Equal(t, "Phone", combined[0].Name)

	byCategory, err := repo.ListByCategory(ctx, electronics)
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)
}

func TestPostgres_UpdateMissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()
	resetTables(ctx, t, pool)
	catID := insertCategory(ctx, t, pool, "Misc")

	err := NewPostgres(pool, nil).Update(ctx, 12345, domain.Product{CategoryID: catID, Name: "none"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func insertCategory(ctx context.Context, t *testing.T, pool *pgxpool.Pool, name string) int {
	t.Helper()
	var id int
	if err := pool.QueryRow(ctx, `INSERT INTO categories (name) VALUES ($1) RETURNING category_id`, name).Scan(&id); err != nil {
		t.Fatalf("insert category: %v", err)
	}
	return id
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := migrate.Apply(ctx, pool); err != nil {
		pool.Close()
		t.Fatalf("apply migrations: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE shopping_cart, profiles, products, categories, users RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}
