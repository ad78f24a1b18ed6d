package repository

import (
	"context"

	"shopadmin/internal/domain/model"
)

type AuditLogFilter struct {
	Page         int
	Limit        int
	ResourceType string
	ResourceID   *int64
}

type AuditLogRepository interface {
	Create(ctx context.Context, log model.AuditLog) error
	List(ctx context.Context, f AuditLogFilter) ([]model.AuditLog, int64, error)
}
