package repository

import "gorm.io/gorm"

// RecordRepository persists and reads one flat record type.
type RecordRepository[T any] interface {
	Create(db *gorm.DB, record *T) error
	FindAll(db *gorm.DB) ([]T, error)
}
