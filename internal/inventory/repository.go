package inventory

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type summaryRow struct {
	TotalProducts  int64
	OutOfStock     int64
	AvgStock       float64
	InventoryValue decimal.Decimal
}

type stockRow struct {
	ProductID     int64
	Name          string
	UomName       string
	PricePerUnit  decimal.Decimal
	StockQuantity int
}

// Repository runs stock-level queries against the products table.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Summary aggregates catalog-wide stock figures in one query.
func (r *Repository) Summary(ctx context.Context) (*summaryRow, error) {
	var row summaryRow
	err := r.db.WithContext(ctx).
		Table("products").
		Select(`COUNT(*) AS total_products,
			COALESCE(SUM(CASE WHEN stock_quantity = 0 THEN 1 ELSE 0 END), 0) AS out_of_stock,
			COALESCE(AVG(stock_quantity), 0) AS avg_stock,
			COALESCE(SUM(price_per_unit * stock_quantity), 0) AS inventory_value`).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// CountBelow counts products whose stock is strictly under the threshold.
func (r *Repository) CountBelow(ctx context.Context, threshold int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("products").
		Where("stock_quantity < ?", threshold).
		Count(&count).Error
	return count, err
}

// ListBelow returns products strictly under the threshold, emptiest first.
func (r *Repository) ListBelow(ctx context.Context, threshold int) ([]stockRow, error) {
	var rows []stockRow
	err := r.db.WithContext(ctx).
		Table("products").
		Select("products.product_id, products.name, uom.uom_name, products.price_per_unit, products.stock_quantity").
		Joins("JOIN uom ON uom.uom_id = products.uom_id").
		Where("products.stock_quantity < ?", threshold).
		Order("products.stock_quantity").
		Order("products.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindStockRow loads one product's stock row with its unit name.
func (r *Repository) FindStockRow(ctx context.Context, productID int64) (*stockRow, error) {
	var row stockRow
	err := r.db.WithContext(ctx).
		Table("products").
		Select("products.product_id, products.name, uom.uom_name, products.price_per_unit, products.stock_quantity").
		Joins("JOIN uom ON uom.uom_id = products.uom_id").
		Where("products.product_id = ?", productID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// SetStock overwrites one product's stock level and reports how many rows
// matched.
func (r *Repository) SetStock(ctx context.Context, productID int64, quantity int) (int64, error) {
	res := r.db.WithContext(ctx).
		Table("products").
		Where("product_id = ?", productID).
		Update("stock_quantity", quantity)
	return res.RowsAffected, res.Error
}
