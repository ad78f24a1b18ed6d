package usecase

import (
	"context"
	"net/http"
	"strings"

	"shopadmin/internal/domain/model"
	repo "shopadmin/internal/repository"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
	auditRepo    repo.AuditLogRepository
}

func NewCategoryUsecase(categoryRepo repo.CategoryRepository, auditRepo repo.AuditLogRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo, auditRepo: auditRepo}
}

type ListCategoriesInput struct {
	Page  int
	Limit int
	Q     string
}

type CategoryListOutput struct {
	Items []model.Category `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

func (u *CategoryUsecase) List(ctx context.Context, in ListCategoriesInput) (CategoryListOutput, error) {
	if in.Page < 1 {
		return CategoryListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return CategoryListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, total, err := u.categoryRepo.List(ctx, repo.CategoryListQuery{
		Page:  in.Page,
		Limit: in.Limit,
		Q:     strings.TrimSpace(in.Q),
	})
	if err != nil {
		return CategoryListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CategoryListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

func (u *CategoryUsecase) Get(ctx context.Context, id int64) (model.Category, error) {
	if id <= 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	c, err := u.categoryRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CategoryUsecase) Create(ctx context.Context, actor string, name string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, NewFieldError("name", "required")
	}

	c, err := u.categoryRepo.Create(ctx, model.Category{Name: name})
	if err != nil {
		if ce, ok := err.(*repo.ConflictError); ok {
			return model.Category{}, NewFieldError(ce.Field, "already in use")
		}
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := writeAudit(ctx, u.auditRepo, actor, model.AuditActionCreate, model.AuditResourceCategory, c.ID, nil, c); err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (u *CategoryUsecase) Update(ctx context.Context, actor string, id int64, name string) (model.Category, error) {
	if id <= 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, NewFieldError("name", "required")
	}

	before, err := u.categoryRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	after := before
	after.Name = name
	if err := u.categoryRepo.Update(ctx, after); err != nil {
		if ce, ok := err.(*repo.ConflictError); ok {
			return model.Category{}, NewFieldError(ce.Field, "already in use")
		}
		if err == repo.ErrNotFound {
			return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := writeAudit(ctx, u.auditRepo, actor, model.AuditActionUpdate, model.AuditResourceCategory, id, before, after); err != nil {
		return model.Category{}, err
	}
	return after, nil
}

func (u *CategoryUsecase) Delete(ctx context.Context, actor string, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err := u.categoryRepo.SoftDelete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return writeAudit(ctx, u.auditRepo, actor, model.AuditActionDelete, model.AuditResourceCategory, id, nil, nil)
}

func (u *CategoryUsecase) BulkDelete(ctx context.Context, actor string, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "ids required")
	}
	deleted, err := u.categoryRepo.SoftDeleteBulk(ctx, ids)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	for _, id := range ids {
		if err := writeAudit(ctx, u.auditRepo, actor, model.AuditActionDelete, model.AuditResourceCategory, id, nil, nil); err != nil {
			return deleted, err
		}
	}
	return deleted, nil
}
