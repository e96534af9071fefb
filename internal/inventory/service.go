package inventory

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/anagarciahdz/grocerhub-backend/pkg/config"
	pkgerrors "github.com/anagarciahdz/grocerhub-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes stock tracking operations.
type Service interface {
	Summary(ctx context.Context) (*SummaryDTO, error)
	LowStock(ctx context.Context, threshold int) ([]StockItemDTO, error)
	UpdateStock(ctx context.Context, productID int64, quantity int) (*StockItemDTO, error)
}

type service struct {
	repo             *Repository
	defaultThreshold int
}

// NewService constructs an inventory service instance.
func NewService(repo *Repository, inventoryCfg config.InventoryConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	return &service{
		repo:             repo,
		defaultThreshold: inventoryCfg.LowStockThreshold,
	}, nil
}

func (s *service) Summary(ctx context.Context) (*SummaryDTO, error) {
	row, err := s.repo.Summary(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: inventory summary")
	}
	low, err := s.repo.CountBelow(ctx, s.defaultThreshold)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: low stock count")
	}
	return &SummaryDTO{
		TotalProducts:       row.TotalProducts,
		LowStockCount:       low,
		OutOfStock:          row.OutOfStock,
		AvgStock:            math.Round(row.AvgStock*100) / 100,
		TotalInventoryValue: math.Round(row.InventoryValue.InexactFloat64()*100) / 100,
	}, nil
}

// LowStock lists products strictly under the threshold. A non-positive
// threshold falls back to the configured default.
func (s *service) LowStock(ctx context.Context, threshold int) ([]StockItemDTO, error) {
	if threshold <= 0 {
		threshold = s.defaultThreshold
	}
	rows, err := s.repo.ListBelow(ctx, threshold)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: low stock list")
	}
	out := make([]StockItemDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, newStockItemDTO(row))
	}
	return out, nil
}

// UpdateStock overwrites a product's stock level.
func (s *service) UpdateStock(ctx context.Context, productID int64, quantity int) (*StockItemDTO, error) {
	if quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock quantity cannot be negative")
	}

	affected, err := s.repo.SetStock(ctx, productID, quantity)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update stock")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	row, err := s.repo.FindStockRow(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product stock")
	}
	dto := newStockItemDTO(*row)
	return &dto, nil
}

func newStockItemDTO(row stockRow) StockItemDTO {
	return StockItemDTO{
		ProductID:     row.ProductID,
		Name:          row.Name,
		UomName:       row.UomName,
		PricePerUnit:  row.PricePerUnit.InexactFloat64(),
		StockQuantity: row.StockQuantity,
	}
}
