package seed

import (
	"context"
	"os"
	"testing"

	"easyshop/internal/domain"
	"easyshop/internal/migrate"
	categoryrepo "easyshop/internal/repository/category"
	userrepo "easyshop/internal/repository/user"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_Idempotent(t *testing.T) {
	ctx := context.Background()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, migrate.Apply(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE shopping_cart, profiles, products, categories, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	require.NoError(t, Apply(ctx, pool))
	require.NoError(t, Apply(ctx, pool))

	var nProducts, nCategories int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&nProducts))
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&nCategories))
	assert.Equal(t, len(products), nProducts)
	assert.Equal(t, len(categories), nCategories)

	admin, err := userrepo.NewPostgres(pool).GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)

	created, err := categoryrepo.NewPostgres(pool, nil).Create(ctx, domain.Category{Name: "Toys"})
	require.NoError(t, err)
	assert.Greater(t, created.ID, len(categories))
}
