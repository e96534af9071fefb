package controllers

import (
	"net/http"

	"github.com/anagarciahdz/grocerhub-backend/api/responses"
	"github.com/anagarciahdz/grocerhub-backend/api/validators"
	ordersvc "github.com/anagarciahdz/grocerhub-backend/internal/orders"
	pkgerrors "github.com/anagarciahdz/grocerhub-backend/pkg/errors"
	"github.com/anagarciahdz/grocerhub-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// ListOrders returns every order with its customer name, newest first.
func ListOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		orders, err := svc.ListOrders(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders)
	}
}

// GetOrder returns one order with its line items.
func GetOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.GetOrder(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// CreateOrder records an order and its items atomically.
func CreateOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.CreateOrder(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusCreated, map[string]any{
			"order_id": order.OrderID,
			"message":  "Order created successfully",
		})
	}
}

type createOrderRequest struct {
	CustomerID int64              `json:"customer_id" validate:"required,gt=0"`
	Total      float64            `json:"total" validate:"required,gt=0"`
	Items      []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type orderItemRequest struct {
	ProductID  int64   `json:"product_id" validate:"required,gt=0"`
	Quantity   float64 `json:"quantity" validate:"required,gt=0"`
	TotalPrice float64 `json:"total_price" validate:"required,gt=0"`
}

func (o createOrderRequest) toInput() ordersvc.CreateOrderInput {
	items := make([]ordersvc.OrderItemInput, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, ordersvc.OrderItemInput{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			TotalPrice: decimal.NewFromFloat(item.TotalPrice),
		})
	}
	return ordersvc.CreateOrderInput{
		CustomerID: o.CustomerID,
		// The storefront computes and submits the grand total; it is stored
		// as-is rather than recomputed from the item lines.
		Total: decimal.NewFromFloat(o.Total),
		Items: items,
	}
}
