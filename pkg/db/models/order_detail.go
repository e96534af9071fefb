package models

import "github.com/shopspring/decimal"

// OrderDetail is one line of an order. It never outlives its order (cascade)
// and always references an existing product (FK).
type OrderDetail struct {
	OrderDetailID int64           `gorm:"column:order_detail_id;primaryKey;autoIncrement"`
	OrderID       int64           `gorm:"column:order_id;not null"`
	ProductID     int64           `gorm:"column:product_id;not null"`
	Quantity      float64         `gorm:"column:quantity;not null"`
	TotalPrice    decimal.Decimal `gorm:"column:total_price;type:numeric(10,2);not null"`
	Product       *Product        `gorm:"foreignKey:ProductID;references:ProductID"`
}

func (OrderDetail) TableName() string { return "order_details" }
