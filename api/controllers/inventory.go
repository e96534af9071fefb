package controllers

import (
	"net/http"

	"github.com/anagarciahdz/grocerhub-backend/api/responses"
	"github.com/anagarciahdz/grocerhub-backend/api/validators"
	inventorysvc "github.com/anagarciahdz/grocerhub-backend/internal/inventory"
	pkgerrors "github.com/anagarciahdz/grocerhub-backend/pkg/errors"
	"github.com/anagarciahdz/grocerhub-backend/pkg/logger"
)

// InventorySummary returns catalog-wide stock statistics.
func InventorySummary(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		summary, err := svc.Summary(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

// LowStockProducts lists products under the stock threshold.
func LowStockProducts(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		threshold, err := validators.ParseQueryInt(r, "threshold", 0, 1, 100000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.LowStock(r.Context(), threshold)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

// UpdateStock overwrites one product's stock level.
func UpdateStock(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		var payload updateStockRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.UpdateStock(r.Context(), payload.ProductID, *payload.StockQuantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"message":   "Stock updated successfully",
			"new_stock": updated.StockQuantity,
		})
	}
}

type updateStockRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	// Pointer so an explicit zero passes the required check.
	StockQuantity *int `json:"stock_quantity" validate:"required,gte=0"`
}
