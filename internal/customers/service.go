package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/anagarciahdz/grocerhub-backend/pkg/db"
	"github.com/anagarciahdz/grocerhub-backend/pkg/db/models"
	pkgerrors "github.com/anagarciahdz/grocerhub-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes customer management operations.
type Service interface {
	ListCustomers(ctx context.Context) ([]CustomerDTO, error)
	GetCustomer(ctx context.Context, id int64) (*CustomerDTO, error)
	CreateCustomer(ctx context.Context, input CustomerInput) (*CustomerDTO, error)
	UpdateCustomer(ctx context.Context, id int64, input CustomerInput) (*CustomerDTO, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

type service struct {
	repo *Repository
}

// NewService constructs a customer service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListCustomers(ctx context.Context) ([]CustomerDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list customers")
	}
	out := make([]CustomerDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, newCustomerDTO(row))
	}
	return out, nil
}

func (s *service) GetCustomer(ctx context.Context, id int64) (*CustomerDTO, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load customer")
	}
	dto := newCustomerDTO(*row)
	return &dto, nil
}

func (s *service) CreateCustomer(ctx context.Context, input CustomerInput) (*CustomerDTO, error) {
	row := &models.Customer{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
	}
	if _, err := s.repo.Create(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert customer")
	}
	dto := newCustomerDTO(*row)
	return &dto, nil
}

func (s *service) UpdateCustomer(ctx context.Context, id int64, input CustomerInput) (*CustomerDTO, error) {
	row := &models.Customer{
		CustomerID: id,
		Name:       input.Name,
		Phone:      input.Phone,
		Email:      input.Email,
		Address:    input.Address,
	}
	affected, err := s.repo.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update customer")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
	}
	return s.GetCustomer(ctx, id)
}

// DeleteCustomer removes the customer. The orders FK blocks deleting anyone
// with purchase history; that surfaces as a conflict.
func (s *service) DeleteCustomer(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return pkgerrors.New(pkgerrors.CodeConflict, "customer has recorded orders")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete customer")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
	}
	return nil
}
