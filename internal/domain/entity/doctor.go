package entity

// Doctor is a clinic doctor record.
type Doctor struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"type:text;not null" json:"name"`
	Specialty string `gorm:"type:varchar(100);not null" json:"specialty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
