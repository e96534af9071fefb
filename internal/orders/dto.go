package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderSummaryDTO is the list row for order endpoints, with the customer
// name joined in.
type OrderSummaryDTO struct {
	OrderID      int64     `json:"order_id"`
	CustomerID   int64     `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Total        float64   `json:"total"`
	Datetime     time.Time `json:"datetime"`
}

// OrderItemDTO is one line of an order, joined with product and unit names.
type OrderItemDTO struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	UomName     string  `json:"uom_name"`
	Quantity    float64 `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
}

// OrderDTO is the detail shape: the summary plus every line item.
type OrderDTO struct {
	OrderSummaryDTO
	Items []OrderItemDTO `json:"items"`
}

// OrderItemInput is one validated order line from the client.
type OrderItemInput struct {
	ProductID  int64
	Quantity   float64
	TotalPrice decimal.Decimal
}

// CreateOrderInput holds the validated payload to record an order. The
// client computes and submits the grand total.
type CreateOrderInput struct {
	CustomerID int64
	Total      decimal.Decimal
	Items      []OrderItemInput
}

func newOrderSummaryDTO(row orderRow) OrderSummaryDTO {
	return OrderSummaryDTO{
		OrderID:      row.OrderID,
		CustomerID:   row.CustomerID,
		CustomerName: row.CustomerName,
		Total:        row.Total.InexactFloat64(),
		Datetime:     row.Datetime,
	}
}

func newOrderItemDTO(row itemRow) OrderItemDTO {
	return OrderItemDTO{
		ProductID:   row.ProductID,
		ProductName: row.ProductName,
		UomName:     row.UomName,
		Quantity:    row.Quantity,
		TotalPrice:  row.TotalPrice.InexactFloat64(),
	}
}
