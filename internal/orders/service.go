package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/anagarciahdz/grocerhub-backend/pkg/db"
	"github.com/anagarciahdz/grocerhub-backend/pkg/db/models"
	pkgerrors "github.com/anagarciahdz/grocerhub-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes order recording and lookup operations.
type Service interface {
	ListOrders(ctx context.Context) ([]OrderSummaryDTO, error)
	GetOrder(ctx context.Context, id int64) (*OrderDTO, error)
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderDTO, error)
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

// NewService constructs an order service instance.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

func (s *service) ListOrders(ctx context.Context) ([]OrderSummaryDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list orders")
	}
	out := make([]OrderSummaryDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, newOrderSummaryDTO(row))
	}
	return out, nil
}

func (s *service) GetOrder(ctx context.Context, id int64) (*OrderDTO, error) {
	row, err := s.repo.FindRowByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load order")
	}

	items, err := s.repo.ListItems(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load order items")
	}

	dto := &OrderDTO{
		OrderSummaryDTO: newOrderSummaryDTO(*row),
		Items:           make([]OrderItemDTO, 0, len(items)),
	}
	for _, item := range items {
		dto.Items = append(dto.Items, newOrderItemDTO(item))
	}
	return dto, nil
}

// CreateOrder writes the order header and all line items in one transaction.
// A failed line insert rolls back the header so no partial order survives.
func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderDTO, error) {
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}

	var orderID int64
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		header := &models.Order{
			CustomerID: input.CustomerID,
			Total:      input.Total,
		}
		if _, err := txRepo.InsertOrder(ctx, header); err != nil {
			if db.IsForeignKeyViolation(err) {
				return pkgerrors.New(pkgerrors.CodeValidation, "customer_id does not reference a known customer")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert order")
		}
		orderID = header.OrderID

		details := make([]models.OrderDetail, 0, len(input.Items))
		for _, item := range input.Items {
			details = append(details, models.OrderDetail{
				OrderID:    orderID,
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				TotalPrice: item.TotalPrice,
			})
		}
		if err := txRepo.InsertDetails(ctx, details); err != nil {
			if db.IsForeignKeyViolation(err) {
				return pkgerrors.New(pkgerrors.CodeValidation, "order item references an unknown product")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert order items")
		}
		return nil
	})
	if err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}

	return s.GetOrder(ctx, orderID)
}
