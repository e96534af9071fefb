package product

import (
	"context"
	"testing"

	"github.com/anagarciahdz/grocerhub-backend/pkg/config"
	"github.com/anagarciahdz/grocerhub-backend/pkg/db"
	pkgerrors "github.com/anagarciahdz/grocerhub-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (Service, *db.Client) {
	t.Helper()

	client, err := db.New(context.Background(), config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    testDSN("productsvc"),
	}, nil)
	require.NoError(t, err)
	require.NoError(t, client.DB().Exec(testSchema).Error)
	t.Cleanup(func() { _ = client.Close() })

	seedUnits(t, client.DB())

	svc, err := NewService(NewRepository(client.DB()), client, config.InventoryConfig{
		LowStockThreshold: 10,
		DefaultStockQty:   100,
	})
	require.NoError(t, err)

	return svc, client
}

func requireCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	typed := pkgerrors.As(err)
	require.NotNil(t, typed, "expected typed error, got %v", err)
	require.Equal(t, code, typed.Code())
}

func TestServiceCreateProductDefaultsStock(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	dto, err := svc.CreateProduct(ctx, CreateProductInput{
		Name:         "Oat Milk",
		UomID:        1,
		PricePerUnit: decimal.RequireFromString("3.99"),
	})
	require.NoError(t, err)
	require.Positive(t, dto.ProductID)
	require.Equal(t, 100, dto.StockQuantity)
	require.Equal(t, "each", dto.UomName)
	require.InDelta(t, 3.99, dto.PricePerUnit, 0.0001)
}

func TestServiceCreateProductUnknownUnit(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:         "Mystery",
		UomID:        42,
		PricePerUnit: decimal.RequireFromString("1.00"),
	})
	requireCode(t, err, pkgerrors.CodeValidation)
}

func TestServiceGetProductNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetProduct(context.Background(), 12345)
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestServiceUpdateProduct(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, CreateProductInput{
		Name:         "Eggs",
		UomID:        1,
		PricePerUnit: decimal.RequireFromString("5.99"),
	})
	require.NoError(t, err)

	stock := 30
	updated, err := svc.UpdateProduct(ctx, created.ProductID, UpdateProductInput{
		Name:          "Free Range Eggs",
		UomID:         1,
		PricePerUnit:  decimal.RequireFromString("6.49"),
		StockQuantity: &stock,
	})
	require.NoError(t, err)
	require.Equal(t, "Free Range Eggs", updated.Name)
	require.InDelta(t, 6.49, updated.PricePerUnit, 0.0001)
	require.Equal(t, 30, updated.StockQuantity)

	_, err = svc.UpdateProduct(ctx, 9999, UpdateProductInput{
		Name:          "Ghost",
		UomID:         1,
		PricePerUnit:  decimal.RequireFromString("1.00"),
		StockQuantity: &stock,
	})
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestServiceUpdateProductKeepsStockWhenOmitted(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	stock := 55
	created, err := svc.CreateProduct(ctx, CreateProductInput{
		Name:          "Butter",
		UomID:         1,
		PricePerUnit:  decimal.RequireFromString("4.25"),
		StockQuantity: &stock,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(ctx, created.ProductID, UpdateProductInput{
		Name:         "Salted Butter",
		UomID:        1,
		PricePerUnit: decimal.RequireFromString("4.50"),
	})
	require.NoError(t, err)
	require.Equal(t, 55, updated.StockQuantity)
}

func TestServiceDeleteProduct(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	free, err := svc.CreateProduct(ctx, CreateProductInput{
		Name:         "Cereal",
		UomID:        1,
		PricePerUnit: decimal.RequireFromString("5.10"),
	})
	require.NoError(t, err)
	held, err := svc.CreateProduct(ctx, CreateProductInput{
		Name:         "Yogurt",
		UomID:        1,
		PricePerUnit: decimal.RequireFromString("1.80"),
	})
	require.NoError(t, err)

	conn := client.DB()
	require.NoError(t, conn.Exec(`INSERT INTO customers (name, phone) VALUES ('Ben', '555-0102')`).Error)
	require.NoError(t, conn.Exec(`INSERT INTO orders (customer_id, total) VALUES (1, '1.80')`).Error)
	require.NoError(t, conn.Exec(`INSERT INTO order_details (order_id, product_id, quantity, total_price) VALUES (1, ?, 1, '1.80')`, held.ProductID).Error)

	require.NoError(t, svc.DeleteProduct(ctx, free.ProductID))
	_, err = svc.GetProduct(ctx, free.ProductID)
	requireCode(t, err, pkgerrors.CodeNotFound)

	err = svc.DeleteProduct(ctx, held.ProductID)
	requireCode(t, err, pkgerrors.CodeConflict)

	kept, err := svc.GetProduct(ctx, held.ProductID)
	require.NoError(t, err)
	require.Equal(t, "Yogurt", kept.Name)

	err = svc.DeleteProduct(ctx, 31337)
	requireCode(t, err, pkgerrors.CodeNotFound)
}
