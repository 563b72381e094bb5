package service

import (
	"context"
	"sort"
	"time"

	"meditrack/internal/domain/entity"
	"meditrack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AuditService interface {
	LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{})
	LogUpdate(ctx context.Context, action string, entityName string, entityID string, oldValue, newValue interface{})
	LogDelete(ctx context.Context, action string, entityName string, entityID string, oldValue interface{})
	List(ctx context.Context) []*entity.AuditLog
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
	now       func() time.Time
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
		now:       time.Now,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{}) {
	s.record(action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, action string, entityName string, entityID string, oldValue, newValue interface{}) {
	s.record(action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, action string, entityName string, entityID string, oldValue interface{}) {
	s.record(action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	})
}

// List returns audit entries oldest first
func (s *auditService) List(ctx context.Context) []*entity.AuditLog {
	logs := s.auditRepo.FindAll()
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CreatedAt.Before(logs[j].CreatedAt)
	})
	return logs
}

func (s *auditService) record(action string, metadata entity.JSON) {
	auditLog := &entity.AuditLog{
		ID:        uuid.New(),
		Action:    action,
		Metadata:  metadata,
		CreatedAt: s.now(),
	}
	s.auditRepo.Save(auditLog.ID.String(), auditLog)

	s.log.WithFields(logrus.Fields{
		"action":    action,
		"entity":    metadata["entity"],
		"entity_id": metadata["entity_id"],
	}).Debug("Audit entry recorded")
}
