package repository

import (
	domainRepo "clinic-records/internal/domain/repository"

	"gorm.io/gorm"
)

type recordRepository[T any] struct{}

// NewRecordRepository returns a gorm-backed repository for T. T must be a
// gorm model with an autoincrement "id" primary key.
func NewRecordRepository[T any]() domainRepo.RecordRepository[T] {
	return &recordRepository[T]{}
}

func (r *recordRepository[T]) Create(db *gorm.DB, record *T) error {
	return db.Create(record).Error
}

func (r *recordRepository[T]) FindAll(db *gorm.DB) ([]T, error) {
	records := make([]T, 0)
	if err := db.Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
