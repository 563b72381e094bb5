package converter

import (
	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"
)

func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	return &dto.AuditLogResponse{
		ID:        log.ID.String(),
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
}

func AuditLogsToResponses(logs []*entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for _, log := range logs {
		if resp := AuditLogToResponse(log); resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}
