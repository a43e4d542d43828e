package service

import (
	"context"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, entityName string, entityID int64, newValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate records the creation of entityName/entityID inside tx.
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, entityName string, entityID int64, newValue interface{}) error {
	auditLog := &entity.AuditLog{
		Action:   entity.AuditAction(entityName),
		Entity:   entityName,
		EntityID: entityID,
		Metadata: entity.JSON{
			"new_value": newValue,
		},
	}

	if err := s.auditRepo.Create(tx.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
