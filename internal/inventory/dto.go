package inventory

// SummaryDTO is the stock overview block on the inventory page.
type SummaryDTO struct {
	TotalProducts       int64   `json:"total_products"`
	LowStockCount       int64   `json:"low_stock_count"`
	OutOfStock          int64   `json:"out_of_stock"`
	AvgStock            float64 `json:"avg_stock"`
	TotalInventoryValue float64 `json:"total_inventory_value"`
}

// StockItemDTO is one product row on stock listings.
type StockItemDTO struct {
	ProductID     int64   `json:"product_id"`
	Name          string  `json:"name"`
	UomName       string  `json:"uom_name"`
	PricePerUnit  float64 `json:"price_per_unit"`
	StockQuantity int     `json:"stock_quantity"`
}
