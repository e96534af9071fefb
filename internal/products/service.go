package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/anagarciahdz/grocerhub-backend/pkg/config"
	"github.com/anagarciahdz/grocerhub-backend/pkg/db"
	"github.com/anagarciahdz/grocerhub-backend/pkg/db/models"
	pkgerrors "github.com/anagarciahdz/grocerhub-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes product catalog management operations.
type Service interface {
	ListProducts(ctx context.Context) ([]ProductDTO, error)
	GetProduct(ctx context.Context, id int64) (*ProductDTO, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, id int64, input UpdateProductInput) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// service implements the product service.
type service struct {
	repo         *Repository
	dbClient     *db.Client
	defaultStock int
}

// NewService constructs a product service instance.
func NewService(repo *Repository, dbClient *db.Client, inventoryCfg config.InventoryConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{
		repo:         repo,
		dbClient:     dbClient,
		defaultStock: inventoryCfg.DefaultStockQty,
	}, nil
}

// ListProducts returns the full catalog with unit names.
func (s *service) ListProducts(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list products")
	}
	out := make([]ProductDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, newProductDTO(row))
	}
	return out, nil
}

// GetProduct loads a single product by id.
func (s *service) GetProduct(ctx context.Context, id int64) (*ProductDTO, error) {
	row, err := s.repo.FindRowByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}
	dto := newProductDTO(*row)
	return &dto, nil
}

// CreateProduct inserts a product. Stock falls back to the configured default
// when the payload omits it.
func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	stock := s.defaultStock
	if input.StockQuantity != nil {
		stock = *input.StockQuantity
	}

	row := &models.Product{
		Name:          input.Name,
		UomID:         input.UomID,
		PricePerUnit:  input.PricePerUnit,
		StockQuantity: stock,
	}
	if _, err := s.repo.Create(ctx, row); err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "uom_id does not reference a known unit")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert product")
	}
	return s.GetProduct(ctx, row.ProductID)
}

// UpdateProduct overwrites all mutable product fields.
func (s *service) UpdateProduct(ctx context.Context, id int64, input UpdateProductInput) (*ProductDTO, error) {
	row := &models.Product{
		ProductID:    id,
		Name:         input.Name,
		UomID:        input.UomID,
		PricePerUnit: input.PricePerUnit,
	}
	if input.StockQuantity != nil {
		row.StockQuantity = *input.StockQuantity
	} else {
		current, err := s.repo.FindRowByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
		}
		row.StockQuantity = current.StockQuantity
	}

	affected, err := s.repo.Update(ctx, row)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "uom_id does not reference a known unit")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update product")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return s.GetProduct(ctx, id)
}

// DeleteProduct removes the product unless an order line still references
// it. The delete and the reference check run in one transaction.
func (s *service) DeleteProduct(ctx context.Context, id int64) error {
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		affected, err := txRepo.DeleteUnreferenced(ctx, id)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete product")
		}
		if affected > 0 {
			return nil
		}

		referenced, err := txRepo.HasOrderReferences(ctx, id)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count product references")
		}
		if referenced {
			return pkgerrors.New(pkgerrors.CodeConflict, "product is referenced by existing orders")
		}
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	})
	if err != nil {
		if pkgerrors.As(err) != nil {
			return err
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	return nil
}
