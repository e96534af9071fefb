package order

import (
	"context"
	"time"

	"github.com/anagarciahdz/grocerhub-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderRow is the joined read shape scanned from orders plus customers.
type orderRow struct {
	OrderID      int64
	CustomerID   int64
	CustomerName string
	Total        decimal.Decimal
	Datetime     time.Time
}

// itemRow is one order line joined with product and unit names.
type itemRow struct {
	ProductID   int64
	ProductName string
	UomName     string
	Quantity    float64
	TotalPrice  decimal.Decimal
}

const orderSelect = "orders.order_id, orders.customer_id, customers.name AS customer_name, orders.total, orders.datetime"

// Repository persists orders and their line items.
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

// List returns every order with its customer name, newest first.
func (r *Repository) List(ctx context.Context) ([]orderRow, error) {
	var rows []orderRow
	err := r.db.WithContext(ctx).
		Table("orders").
		Select(orderSelect).
		Joins("JOIN customers ON customers.customer_id = orders.customer_id").
		Order("orders.datetime DESC").
		Order("orders.order_id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindRowByID loads a single joined order row.
func (r *Repository) FindRowByID(ctx context.Context, id int64) (*orderRow, error) {
	var row orderRow
	err := r.db.WithContext(ctx).
		Table("orders").
		Select(orderSelect).
		Joins("JOIN customers ON customers.customer_id = orders.customer_id").
		Where("orders.order_id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListItems returns the line items for one order, joined with product and
// unit names, in insertion order.
func (r *Repository) ListItems(ctx context.Context, orderID int64) ([]itemRow, error) {
	var rows []itemRow
	err := r.db.WithContext(ctx).
		Table("order_details").
		Select("order_details.product_id, products.name AS product_name, uom.uom_name, order_details.quantity, order_details.total_price").
		Joins("JOIN products ON products.product_id = order_details.product_id").
		Joins("JOIN uom ON uom.uom_id = products.uom_id").
		Where("order_details.order_id = ?", orderID).
		Order("order_details.order_detail_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// InsertOrder writes the order header and fills in the generated id.
func (r *Repository) InsertOrder(ctx context.Context, row *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// InsertDetails writes all line items in one batch.
func (r *Repository) InsertDetails(ctx context.Context, rows []models.OrderDetail) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}
