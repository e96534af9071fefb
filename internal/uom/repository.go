package uom

import (
	"context"

	"github.com/anagarciahdz/grocerhub-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository reads units of measurement. The application never writes them;
// rows come from the seed migration.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every unit ordered by display name.
func (r *Repository) List(ctx context.Context) ([]models.UOM, error) {
	var rows []models.UOM
	err := r.db.WithContext(ctx).Order("uom_name").Find(&rows).Error
	return rows, err
}
