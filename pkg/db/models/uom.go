package models

// UOM is a unit of measurement (kg, liter, each). Rows are seeded by
// migration and never mutated by the application.
type UOM struct {
	UomID   int64  `gorm:"column:uom_id;primaryKey;autoIncrement"`
	UomName string `gorm:"column:uom_name;not null"`
}

func (UOM) TableName() string { return "uom" }
