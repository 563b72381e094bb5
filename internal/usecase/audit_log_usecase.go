package usecase

import (
	"context"

	"meditrack/internal/converter"
	"meditrack/internal/delivery/dto"
	"meditrack/internal/service"
)

type AuditLogUsecase interface {
	GetAllAuditLogs(ctx context.Context) *dto.AuditLogListResponse
}

type auditLogUsecase struct {
	auditService service.AuditService
}

func NewAuditLogUsecase(auditService service.AuditService) AuditLogUsecase {
	return &auditLogUsecase{
		auditService: auditService,
	}
}

func (u *auditLogUsecase) GetAllAuditLogs(ctx context.Context) *dto.AuditLogListResponse {
	logs := u.auditService.List(ctx)

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}
}
