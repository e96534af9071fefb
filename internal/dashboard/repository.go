package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type recentOrderRow struct {
	OrderID      int64
	CustomerName string
	Total        decimal.Decimal
	Datetime     time.Time
}

type popularRow struct {
	ProductID     int64
	Name          string
	UomName       string
	PricePerUnit  decimal.Decimal
	StockQuantity int
}

type periodTotals struct {
	Orders  int64
	Revenue decimal.Decimal
}

// Repository runs the read-only aggregate queries behind the dashboard.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// TotalsBetween counts orders and sums revenue for [from, to). Date windows
// are computed by the caller so the query stays portable across dialects.
func (r *Repository) TotalsBetween(ctx context.Context, from, to time.Time) (*periodTotals, error) {
	var out periodTotals
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("COUNT(*) AS orders, COALESCE(SUM(total), 0) AS revenue").
		Where("datetime >= ? AND datetime < ?", from, to).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RecentOrders returns the latest orders with customer names.
func (r *Repository) RecentOrders(ctx context.Context, limit int) ([]recentOrderRow, error) {
	var rows []recentOrderRow
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("orders.order_id, customers.name AS customer_name, orders.total, orders.datetime").
		Joins("JOIN customers ON customers.customer_id = orders.customer_id").
		Order("orders.datetime DESC").
		Order("orders.order_id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// PopularProducts returns the first products by name with their stock level.
func (r *Repository) PopularProducts(ctx context.Context, limit int) ([]popularRow, error) {
	var rows []popularRow
	err := r.db.WithContext(ctx).
		Table("products").
		Select("products.product_id, products.name, uom.uom_name, products.price_per_unit, products.stock_quantity").
		Joins("JOIN uom ON uom.uom_id = products.uom_id").
		Order("products.name").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// AvgOrderTotal averages the grand total across every order.
func (r *Repository) AvgOrderTotal(ctx context.Context) (decimal.Decimal, error) {
	var out struct {
		Avg decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("COALESCE(AVG(total), 0) AS avg").
		Scan(&out).Error
	return out.Avg, err
}

// CountProducts returns the catalog size.
func (r *Repository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("products").Count(&count).Error
	return count, err
}

// CountCustomers returns the number of registered customers.
func (r *Repository) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("customers").Count(&count).Error
	return count, err
}

// CountOrders returns the lifetime order count.
func (r *Repository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("orders").Count(&count).Error
	return count, err
}
