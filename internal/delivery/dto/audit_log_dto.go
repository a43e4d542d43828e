package dto

import (
	"time"

	"clinic-records/internal/domain/entity"
)

// Response DTOs

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	Action    string      `json:"action"`
	Entity    string      `json:"entity"`
	EntityID  int64       `json:"entity_id"`
	Metadata  entity.JSON `json:"metadata"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}

// Request DTOs

// AuditLogQuery is read from the query string of GET /api/audit-logs.
type AuditLogQuery struct {
	Entity string
	Limit  int
}
