package dto

import (
	"time"

	"meditrack/internal/domain/entity"
)

// Response DTOs

type AuditLogResponse struct {
	ID        string      `json:"id"`
	Action    string      `json:"action"`
	Metadata  entity.JSON `json:"metadata"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
