package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the header row for a customer purchase. It is only ever created
// together with its full item set inside one transaction.
type Order struct {
	OrderID    int64           `gorm:"column:order_id;primaryKey;autoIncrement"`
	CustomerID int64           `gorm:"column:customer_id;not null"`
	Total      decimal.Decimal `gorm:"column:total;type:numeric(10,2);not null"`
	Datetime   time.Time       `gorm:"column:datetime;autoCreateTime"`
	Customer   *Customer       `gorm:"foreignKey:CustomerID;references:CustomerID"`
	Items      []OrderDetail   `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string { return "orders" }
