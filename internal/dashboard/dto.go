package dashboard

import "time"

// TodayDTO summarizes the current day's order activity.
type TodayDTO struct {
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

// RecentOrderDTO is one row on the recent orders widget.
type RecentOrderDTO struct {
	OrderID      int64     `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	Total        float64   `json:"total"`
	Datetime     time.Time `json:"datetime"`
}

// PopularProductDTO is one product on the storefront highlights widget.
type PopularProductDTO struct {
	ProductID     int64   `json:"product_id"`
	Name          string  `json:"name"`
	UomName       string  `json:"uom_name"`
	PricePerUnit  float64 `json:"price_per_unit"`
	StockQuantity int     `json:"stock_quantity"`
}

// StatsDTO is the headline figure block on the dashboard.
type StatsDTO struct {
	TotalProducts  int64   `json:"total_products"`
	TotalCustomers int64   `json:"total_customers"`
	TotalOrders    int64   `json:"total_orders"`
	TodayOrders    int64   `json:"today_orders"`
	TodayRevenue   float64 `json:"today_revenue"`
	MonthRevenue   float64 `json:"month_revenue"`
	AvgOrderValue  float64 `json:"avg_order_value"`
}
