package customer

import (
	"context"

	"github.com/anagarciahdz/grocerhub-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository persists customers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every customer ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.Customer, error) {
	var rows []models.Customer
	err := r.db.WithContext(ctx).Order("name").Find(&rows).Error
	return rows, err
}

// FindByID loads a single customer.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	var row models.Customer
	if err := r.db.WithContext(ctx).First(&row, "customer_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts the customer and returns it with the generated id.
func (r *Repository) Create(ctx context.Context, row *models.Customer) (*models.Customer, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Update overwrites the mutable columns and reports how many rows matched.
func (r *Repository) Update(ctx context.Context, row *models.Customer) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("customer_id = ?", row.CustomerID).
		Select("name", "phone", "email", "address").
		Updates(row)
	return res.RowsAffected, res.Error
}

// Delete removes the customer and reports how many rows matched. Customers
// with recorded orders trip the FK constraint instead.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("customer_id = ?", id).Delete(&models.Customer{})
	return res.RowsAffected, res.Error
}
