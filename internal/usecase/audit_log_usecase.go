package usecase

import (
	"context"
	"net/http"

	"shopadmin/internal/domain/model"
	repo "shopadmin/internal/repository"
)

// AuditLogUsecase reads the audit trail; writes happen inside the other
// usecases' mutations.
type AuditLogUsecase struct {
	auditRepo repo.AuditLogRepository
}

// DI
func NewAuditLogUsecase(auditRepo repo.AuditLogRepository) *AuditLogUsecase {
	return &AuditLogUsecase{auditRepo: auditRepo}
}

type ListAuditLogsInput struct {
	Page         int
	Limit        int
	ResourceType string
	ResourceID   *int64
}

type AuditLogListOutput struct {
	Items []model.AuditLog `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

func (u *AuditLogUsecase) List(ctx context.Context, in ListAuditLogsInput) (AuditLogListOutput, error) {
	if in.Page < 1 {
		return AuditLogListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return AuditLogListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	switch model.AuditResourceType(in.ResourceType) {
	case "", model.AuditResourceBrand, model.AuditResourceCategory, model.AuditResourceProduct,
		model.AuditResourceCustomer, model.AuditResourceOrder:
	default:
		return AuditLogListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid resource_type")
	}

	logs, total, err := u.auditRepo.List(ctx, repo.AuditLogFilter{
		Page:         in.Page,
		Limit:        in.Limit,
		ResourceType: in.ResourceType,
		ResourceID:   in.ResourceID,
	})
	if err != nil {
		return AuditLogListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return AuditLogListOutput{Items: logs, Total: total, Page: in.Page, Limit: in.Limit}, nil
}
