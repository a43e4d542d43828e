package repository

import (
	"clinic-records/internal/domain/entity"

	"gorm.io/gorm"
)

// AuditLogFilter narrows an audit trail query. Zero values match everything.
type AuditLogFilter struct {
	Entity string
	Limit  int
}

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	// FindAll returns matching entries, newest first.
	FindAll(db *gorm.DB, filter AuditLogFilter) ([]entity.AuditLog, error)
}
