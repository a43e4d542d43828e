package entity

import "github.com/shopspring/decimal"

// Receptionist is a clinic front-desk staff record.
type Receptionist struct {
	ID     int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string          `gorm:"type:varchar(100);not null" json:"name"`
	Shift  string          `gorm:"type:varchar(10);not null" json:"shift"`
	Salary decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"salary"`
}

func (Receptionist) TableName() string {
	return "receptionists"
}
