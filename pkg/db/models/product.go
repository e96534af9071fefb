package models

import "github.com/shopspring/decimal"

// Product is a sellable grocery item priced per unit of measurement.
type Product struct {
	ProductID     int64           `gorm:"column:product_id;primaryKey;autoIncrement"`
	Name          string          `gorm:"column:name;size:45;not null"`
	UomID         int64           `gorm:"column:uom_id;not null"`
	PricePerUnit  decimal.Decimal `gorm:"column:price_per_unit;type:numeric(10,2);not null"`
	StockQuantity int             `gorm:"column:stock_quantity;not null;default:100"`
	Uom           *UOM            `gorm:"foreignKey:UomID;references:UomID"`
}

func (Product) TableName() string { return "products" }
