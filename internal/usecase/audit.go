package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"shopadmin/internal/domain/model"
	repo "shopadmin/internal/repository"
)

func auditJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// writeAudit keeps the who/what/target/how trail for every admin mutation.
func writeAudit(
	ctx context.Context,
	logs repo.AuditLogRepository,
	actor string,
	action model.AuditAction,
	resourceType model.AuditResourceType,
	resourceID int64,
	before interface{},
	after interface{},
) error {
	err := logs.Create(ctx, model.AuditLog{
		Actor:        actor,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		BeforeJSON:   auditJSON(before),
		AfterJSON:    auditJSON(after),
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
