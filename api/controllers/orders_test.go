package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ordersvc "github.com/anagarciahdz/grocerhub-backend/internal/orders"
	pkgerrors "github.com/anagarciahdz/grocerhub-backend/pkg/errors"
)

type stubOrderService struct {
	dto  *ordersvc.OrderDTO
	list []ordersvc.OrderSummaryDTO
	err  error
}

func (s stubOrderService) ListOrders(ctx context.Context) ([]ordersvc.OrderSummaryDTO, error) {
	return s.list, s.err
}

func (s stubOrderService) GetOrder(ctx context.Context, id int64) (*ordersvc.OrderDTO, error) {
	return s.dto, s.err
}

func (s stubOrderService) CreateOrder(ctx context.Context, input ordersvc.CreateOrderInput) (*ordersvc.OrderDTO, error) {
	return s.dto, s.err
}

func TestCreateOrderSuccess(t *testing.T) {
	dto := &ordersvc.OrderDTO{
		OrderSummaryDTO: ordersvc.OrderSummaryDTO{
			OrderID:      12,
			CustomerID:   1,
			CustomerName: "Nina",
			Total:        15.97,
			Datetime:     time.Now(),
		},
	}
	handler := CreateOrder(stubOrderService{dto: dto}, nil)

	body := bytes.NewBufferString(`{
		"customer_id": 1,
		"total": 15.97,
		"items": [
			{"product_id": 1, "quantity": 3, "total_price": 7.47},
			{"product_id": 2, "quantity": 1, "total_price": 3.00}
		]
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", body)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		OrderID int64  `json:"order_id"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.OrderID != 12 {
		t.Fatalf("expected order_id 12 got %d", resp.OrderID)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	handler := CreateOrder(stubOrderService{}, nil)

	cases := map[string]string{
		"no items":         `{"customer_id": 1, "total": 5.00, "items": []}`,
		"missing customer": `{"total": 5.00, "items": [{"product_id": 1, "quantity": 1, "total_price": 5.00}]}`,
		"zero total":       `{"customer_id": 1, "total": 0, "items": [{"product_id": 1, "quantity": 1, "total_price": 5.00}]}`,
		"zero quantity":    `{"customer_id": 1, "total": 5.00, "items": [{"product_id": 1, "quantity": 0, "total_price": 5.00}]}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGetOrderWithItems(t *testing.T) {
	dto := &ordersvc.OrderDTO{
		OrderSummaryDTO: ordersvc.OrderSummaryDTO{
			OrderID:      4,
			CustomerID:   1,
			CustomerName: "Nina",
			Total:        10.72,
			Datetime:     time.Now(),
		},
		Items: []ordersvc.OrderItemDTO{
			{ProductID: 1, ProductName: "Apples", UomName: "kg", Quantity: 3, TotalPrice: 7.47},
			{ProductID: 2, ProductName: "Bread", UomName: "each", Quantity: 1, TotalPrice: 3.25},
		},
	}
	handler := GetOrder(stubOrderService{dto: dto}, nil)

	req := withPathID(httptest.NewRequest(http.MethodGet, "/api/orders/4", nil), "4")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var resp struct {
		OrderID int64 `json:"order_id"`
		Items   []struct {
			ProductName string  `json:"product_name"`
			UomName     string  `json:"uom_name"`
			TotalPrice  float64 `json:"total_price"`
		} `json:"items"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 items got %d", len(resp.Items))
	}
	if resp.Items[0].ProductName != "Apples" || resp.Items[0].UomName != "kg" {
		t.Fatalf("unexpected first item: %+v", resp.Items[0])
	}
}

func TestGetOrderNotFound(t *testing.T) {
	handler := GetOrder(stubOrderService{err: pkgerrors.New(pkgerrors.CodeNotFound, "order not found")}, nil)

	req := withPathID(httptest.NewRequest(http.MethodGet, "/api/orders/99", nil), "99")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}
