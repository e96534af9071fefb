package dashboard

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/anagarciahdz/grocerhub-backend/pkg/errors"
)

const (
	// DefaultRecentLimit caps the recent orders widget.
	DefaultRecentLimit = 10
	// DefaultPopularLimit caps the popular products widget.
	DefaultPopularLimit = 20
)

// Service exposes the read-only dashboard aggregates.
type Service interface {
	Today(ctx context.Context) (*TodayDTO, error)
	RecentOrders(ctx context.Context, limit int) ([]RecentOrderDTO, error)
	PopularProducts(ctx context.Context, limit int) ([]PopularProductDTO, error)
	Stats(ctx context.Context) (*StatsDTO, error)
}

type service struct {
	repo *Repository
	now  func() time.Time
}

// NewService constructs a dashboard service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("dashboard repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

// todayWindow returns the local-midnight boundaries of the current day.
func (s *service) todayWindow() (time.Time, time.Time) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// monthWindow returns the first-of-month boundaries around the current day.
func (s *service) monthWindow() (time.Time, time.Time) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}

func (s *service) Today(ctx context.Context) (*TodayDTO, error) {
	from, to := s.todayWindow()
	totals, err := s.repo.TotalsBetween(ctx, from, to)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: today totals")
	}
	return &TodayDTO{
		Count:   totals.Orders,
		Revenue: totals.Revenue.InexactFloat64(),
	}, nil
}

func (s *service) RecentOrders(ctx context.Context, limit int) ([]RecentOrderDTO, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	rows, err := s.repo.RecentOrders(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: recent orders")
	}
	out := make([]RecentOrderDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, RecentOrderDTO{
			OrderID:      row.OrderID,
			CustomerName: row.CustomerName,
			Total:        row.Total.InexactFloat64(),
			Datetime:     row.Datetime,
		})
	}
	return out, nil
}

func (s *service) PopularProducts(ctx context.Context, limit int) ([]PopularProductDTO, error) {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}
	rows, err := s.repo.PopularProducts(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: popular products")
	}
	out := make([]PopularProductDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, PopularProductDTO{
			ProductID:     row.ProductID,
			Name:          row.Name,
			UomName:       row.UomName,
			PricePerUnit:  row.PricePerUnit.InexactFloat64(),
			StockQuantity: row.StockQuantity,
		})
	}
	return out, nil
}

func (s *service) Stats(ctx context.Context) (*StatsDTO, error) {
	products, err := s.repo.CountProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count products")
	}
	customers, err := s.repo.CountCustomers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count customers")
	}
	orders, err := s.repo.CountOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count orders")
	}

	dayFrom, dayTo := s.todayWindow()
	today, err := s.repo.TotalsBetween(ctx, dayFrom, dayTo)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: today totals")
	}

	monthFrom, monthTo := s.monthWindow()
	month, err := s.repo.TotalsBetween(ctx, monthFrom, monthTo)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: month totals")
	}

	avg, err := s.repo.AvgOrderTotal(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: average order total")
	}

	return &StatsDTO{
		TotalProducts:  products,
		TotalCustomers: customers,
		TotalOrders:    orders,
		TodayOrders:    today.Orders,
		TodayRevenue:   today.Revenue.InexactFloat64(),
		MonthRevenue:   month.Revenue.InexactFloat64(),
		AvgOrderValue:  avg.InexactFloat64(),
	}, nil
}
