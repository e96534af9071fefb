package product

import (
	"context"
	"testing"

	"github.com/anagarciahdz/grocerhub-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testSchema = `
CREATE TABLE uom (
	uom_id INTEGER PRIMARY KEY AUTOINCREMENT,
	uom_name TEXT NOT NULL
);
CREATE TABLE products (
	product_id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	uom_id INTEGER NOT NULL REFERENCES uom (uom_id),
	price_per_unit NUMERIC NOT NULL CHECK (price_per_unit > 0),
	stock_quantity INTEGER NOT NULL DEFAULT 100
);
CREATE TABLE customers (
	customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	phone TEXT NOT NULL,
	email TEXT,
	address TEXT
);
CREATE TABLE orders (
	order_id INTEGER PRIMARY KEY AUTOINCREMENT,
	customer_id INTEGER NOT NULL REFERENCES customers (customer_id),
	total NUMERIC NOT NULL,
	datetime TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE order_details (
	order_detail_id INTEGER PRIMARY KEY AUTOINCREMENT,
	order_id INTEGER NOT NULL REFERENCES orders (order_id) ON DELETE CASCADE,
	product_id INTEGER NOT NULL REFERENCES products (product_id),
	quantity REAL NOT NULL,
	total_price NUMERIC NOT NULL
);
`

func testDSN(prefix string) string {
	return "file:" + prefix + "_" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(testDSN("products")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(testSchema).Error)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())
	})

	return db
}

func seedUnits(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Exec(`INSERT INTO uom (uom_name) VALUES ('each'), ('kg')`).Error)
}

func TestRepository_ListJoinsUnitNames(t *testing.T) {
	db := newTestDB(t)
	seedUnits(t, db)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Exec(`
		INSERT INTO products (name, uom_id, price_per_unit, stock_quantity)
		VALUES ('Bananas', 2, '1.29', 40), ('Apples', 2, '2.49', 80)
	`).Error)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "Apples", rows[0].Name)
	require.Equal(t, "kg", rows[0].UomName)
	require.True(t, rows[0].PricePerUnit.Equal(decimal.RequireFromString("2.49")))
	require.Equal(t, 80, rows[0].StockQuantity)
	require.Equal(t, "Bananas", rows[1].Name)
}

func TestRepository_FindRowByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	seedUnits(t, db)
	repo := NewRepository(db)

	_, err := repo.FindRowByID(context.Background(), 999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_CreateAssignsID(t *testing.T) {
	db := newTestDB(t)
	seedUnits(t, db)
	repo := NewRepository(db)

	created, err := repo.Create(context.Background(), &models.Product{
		Name:          "Milk",
		UomID:         1,
		PricePerUnit:  decimal.RequireFromString("3.50"),
		StockQuantity: 25,
	})
	require.NoError(t, err)
	require.Positive(t, created.ProductID)

	row, err := repo.FindRowByID(context.Background(), created.ProductID)
	require.NoError(t, err)
	require.Equal(t, "Milk", row.Name)
	require.Equal(t, "each", row.UomName)
}

func TestRepository_UpdateReportsMatchedRows(t *testing.T) {
	db := newTestDB(t)
	seedUnits(t, db)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Product{
		Name:          "Rice",
		UomID:         2,
		PricePerUnit:  decimal.RequireFromString("4.00"),
		StockQuantity: 10,
	})
	require.NoError(t, err)

	affected, err := repo.Update(ctx, &models.Product{
		ProductID:     created.ProductID,
		Name:          "Basmati Rice",
		UomID:         2,
		PricePerUnit:  decimal.RequireFromString("4.75"),
		StockQuantity: 12,
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	affected, err = repo.Update(ctx, &models.Product{
		ProductID:    999,
		Name:         "Ghost",
		UomID:        1,
		PricePerUnit: decimal.RequireFromString("1.00"),
	})
	require.NoError(t, err)
	require.Zero(t, affected)

	row, err := repo.FindRowByID(ctx, created.ProductID)
	require.NoError(t, err)
	require.Equal(t, "Basmati Rice", row.Name)
	require.True(t, row.PricePerUnit.Equal(decimal.RequireFromString("4.75")))
	require.Equal(t, 12, row.StockQuantity)
}

func TestRepository_DeleteUnreferenced(t *testing.T) {
	db := newTestDB(t)
	seedUnits(t, db)
	repo := NewRepository(db)
	ctx := context.Background()

	free, err := repo.Create(ctx, &models.Product{Name: "Free", UomID: 1, PricePerUnit: decimal.RequireFromString("1.00"), StockQuantity: 5})
	require.NoError(t, err)
	held, err := repo.Create(ctx, &models.Product{Name: "Held", UomID: 1, PricePerUnit: decimal.RequireFromString("2.00"), StockQuantity: 5})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`INSERT INTO customers (name, phone) VALUES ('Dana', '555-0101')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO orders (customer_id, total) VALUES (1, '2.00')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO order_details (order_id, product_id, quantity, total_price) VALUES (1, ?, 1, '2.00')`, held.ProductID).Error)

	affected, err := repo.DeleteUnreferenced(ctx, free.ProductID)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	affected, err = repo.DeleteUnreferenced(ctx, held.ProductID)
	require.NoError(t, err)
	require.Zero(t, affected)

	referenced, err := repo.HasOrderReferences(ctx, held.ProductID)
	require.NoError(t, err)
	require.True(t, referenced)

	var count int64
	require.NoError(t, db.Table("products").Count(&count).Error)
	require.EqualValues(t, 1, count)
}
