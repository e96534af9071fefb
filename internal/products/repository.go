package product

import (
	"context"

	"github.com/anagarciahdz/grocerhub-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// productRow is the joined read shape scanned from products plus uom.
type productRow struct {
	ProductID     int64
	Name          string
	UomID         int64
	UomName       string
	PricePerUnit  decimal.Decimal
	StockQuantity int
}

const productSelect = "products.product_id, products.name, products.uom_id, products.price_per_unit, products.stock_quantity, uom.uom_name"

// Repository persists products.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// List returns every product joined with its unit name, ordered by name.
func (r *Repository) List(ctx context.Context) ([]productRow, error) {
	var rows []productRow
	err := r.db.WithContext(ctx).
		Table("products").
		Select(productSelect).
		Joins("JOIN uom ON uom.uom_id = products.uom_id").
		Order("products.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindRowByID loads a single joined product row.
func (r *Repository) FindRowByID(ctx context.Context, id int64) (*productRow, error) {
	var row productRow
	err := r.db.WithContext(ctx).
		Table("products").
		Select(productSelect).
		Joins("JOIN uom ON uom.uom_id = products.uom_id").
		Where("products.product_id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts the product and returns it with the generated id.
func (r *Repository) Create(ctx context.Context, row *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Update overwrites the mutable columns and reports how many rows matched.
func (r *Repository) Update(ctx context.Context, row *models.Product) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("product_id = ?", row.ProductID).
		Select("name", "uom_id", "price_per_unit", "stock_quantity").
		Updates(row)
	return res.RowsAffected, res.Error
}

// DeleteUnreferenced removes the product only when no order line points at
// it, in a single statement so the check and the delete cannot race.
func (r *Repository) DeleteUnreferenced(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Exec(`
		DELETE FROM products
		WHERE product_id = ?
		  AND NOT EXISTS (
			SELECT 1 FROM order_details WHERE order_details.product_id = ?
		  )`, id, id)
	return res.RowsAffected, res.Error
}

// HasOrderReferences reports whether any order line references the product.
func (r *Repository) HasOrderReferences(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.OrderDetail{}).
		Where("product_id = ?", id).
		Count(&count).Error
	return count > 0, err
}
