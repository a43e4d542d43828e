package entity

// Patient is a clinic patient record.
type Patient struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
	Age  int    `gorm:"not null" json:"age"`
}

func (Patient) TableName() string {
	return "patients"
}
