package models

// Customer holds contact details for a store customer. Only the name is
// required; phone, email, and address are optional.
type Customer struct {
	CustomerID int64  `gorm:"column:customer_id;primaryKey;autoIncrement"`
	Name       string `gorm:"column:name;size:100;not null"`
	Phone      string `gorm:"column:phone;size:15"`
	Email      string `gorm:"column:email;size:100"`
	Address    string `gorm:"column:address;size:500"`
}

func (Customer) TableName() string { return "customers" }
