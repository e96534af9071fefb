package product

import "github.com/shopspring/decimal"

// ProductDTO is the read shape for product endpoints, including the joined
// unit name used by listing pages.
type ProductDTO struct {
	ProductID     int64   `json:"product_id"`
	Name          string  `json:"name"`
	UomID         int64   `json:"uom_id"`
	UomName       string  `json:"uom_name"`
	PricePerUnit  float64 `json:"price_per_unit"`
	StockQuantity int     `json:"stock_quantity"`
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Name          string
	UomID         int64
	PricePerUnit  decimal.Decimal
	StockQuantity *int
}

// UpdateProductInput carries the full replacement state for a product. The
// edit form always submits every field, so updates are not partial.
type UpdateProductInput struct {
	Name          string
	UomID         int64
	PricePerUnit  decimal.Decimal
	StockQuantity *int
}

func newProductDTO(row productRow) ProductDTO {
	return ProductDTO{
		ProductID:     row.ProductID,
		Name:          row.Name,
		UomID:         row.UomID,
		UomName:       row.UomName,
		PricePerUnit:  row.PricePerUnit.InexactFloat64(),
		StockQuantity: row.StockQuantity,
	}
}
