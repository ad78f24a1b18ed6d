package usecase

import (
	"context"
	"net/http"
	"strings"

	"shopadmin/internal/domain/model"
	repo "shopadmin/internal/repository"
	"shopadmin/internal/validator"
)

type BrandUsecase struct {
	brandRepo   repo.BrandRepository
	productRepo repo.ProductRepository
	auditRepo   repo.AuditLogRepository
}

// DI
func NewBrandUsecase(
	brandRepo repo.BrandRepository,
	productRepo repo.ProductRepository,
	auditRepo repo.AuditLogRepository,
) *BrandUsecase {
	return &BrandUsecase{
		brandRepo:   brandRepo,
		productRepo: productRepo,
		auditRepo:   auditRepo,
	}
}

type ListBrandsInput struct {
	Page  int
	Limit int
	Q     string
	Sort  string
}

type BrandListOutput struct {
	Items []model.Brand `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

func (u *BrandUsecase) List(ctx context.Context, in ListBrandsInput) (BrandListOutput, error) {
	if in.Page < 1 {
		return BrandListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return BrandListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	switch in.Sort {
	case "", "name", "name_desc", "updated":
	default:
		return BrandListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	items, total, err := u.brandRepo.List(ctx, repo.BrandListQuery{
		Page:  in.Page,
		Limit: in.Limit,
		Q:     strings.TrimSpace(in.Q),
		Sort:  in.Sort,
	})
	if err != nil {
		return BrandListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return BrandListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

func (u *BrandUsecase) Get(ctx context.Context, id int64) (model.Brand, error) {
	if id <= 0 {
		return model.Brand{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	b, err := u.brandRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Brand{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Brand{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return b, nil
}

type BrandInput struct {
	Name        string
	URL         string
	Description string
	IsVisible   *bool
	PrimaryHex  string
}

func (in BrandInput) validate() validator.FieldErrors {
	var fe validator.FieldErrors
	if strings.TrimSpace(in.Name) == "" {
		fe.Add("name", "required")
	}
	if strings.TrimSpace(in.URL) == "" {
		fe.Add("url", "required")
	}
	if in.PrimaryHex != "" && !validator.ValidHexColor(in.PrimaryHex) {
		fe.Add("primary_hex", "must be a hex color like #a855f7")
	}
	return fe
}

// Create derives the slug from the name exactly once, here. Edits never
// regenerate it.
func (u *BrandUsecase) Create(ctx context.Context, actor string, in BrandInput) (model.Brand, error) {
	if fe := in.validate(); len(fe) > 0 {
		return model.Brand{}, NewValidationError(fe)
	}

	name := strings.TrimSpace(in.Name)
	s := model.Slugify(name)
	if s == "" {
		return model.Brand{}, NewFieldError("name", "cannot be turned into a slug")
	}

	taken, err := u.brandRepo.ExistsBySlug(ctx, s)
	if err != nil {
		return model.Brand{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if taken {
		return model.Brand{}, NewFieldError("slug", "already in use")
	}

	visible := true
	if in.IsVisible != nil {
		visible = *in.IsVisible
	}

	b, err := u.brandRepo.Create(ctx, model.Brand{
		Name:        name,
		Slug:        s,
		URL:         strings.TrimSpace(in.URL),
		Description: in.Description,
		IsVisible:   visible,
		PrimaryHex:  in.PrimaryHex,
	})
	if err != nil {
		if ce, ok := err.(*repo.ConflictError); ok {
			return model.Brand{}, NewFieldError(ce.Field, "already in use")
		}
		return model.Brand{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := writeAudit(ctx, u.auditRepo, actor, model.AuditActionCreate, model.AuditResourceBrand, b.ID, nil, b); err != nil {
		return model.Brand{}, err
	}
	return b, nil
}

func (u *BrandUsecase) Update(ctx context.Context, actor string, id int64, in BrandInput) (model.Brand, error) {
	if id <= 0 {
		return model.Brand{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if fe := in.validate(); len(fe) > 0 {
		return model.Brand{}, NewValidationError(fe)
	}

	before, err := u.brandRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Brand{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Brand{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	after := before
	after.Name = strings.TrimSpace(in.Name)
	after.URL = strings.TrimSpace(in.URL)
	after.Description = in.Description
	if in.IsVisible != nil {
		after.IsVisible = *in.IsVisible
	}
	after.PrimaryHex = in.PrimaryHex

	if err := u.brandRepo.Update(ctx, after); err != nil {
		if ce, ok := err.(*repo.ConflictError); ok {
			return model.Brand{}, NewFieldError(ce.Field, "already in use")
		}
		if err == repo.ErrNotFound {
			return model.Brand{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Brand{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := writeAudit(ctx, u.auditRepo, actor, model.AuditActionUpdate, model.AuditResourceBrand, id, before, after); err != nil {
		return model.Brand{}, err
	}
	return after, nil
}

func (u *BrandUsecase) Delete(ctx context.Context, actor string, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err := u.brandRepo.SoftDelete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return writeAudit(ctx, u.auditRepo, actor, model.AuditActionDelete, model.AuditResourceBrand, id, nil, nil)
}

func (u *BrandUsecase) BulkDelete(ctx context.Context, actor string, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "ids required")
	}
	deleted, err := u.brandRepo.SoftDeleteBulk(ctx, ids)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	for _, id := range ids {
		if err := writeAudit(ctx, u.auditRepo, actor, model.AuditActionDelete, model.AuditResourceBrand, id, nil, nil); err != nil {
			return deleted, err
		}
	}
	return deleted, nil
}

// Products lists a brand's products, the relation-manager view on the
// brand edit page.
func (u *BrandUsecase) Products(ctx context.Context, brandID int64, page int, limit int) (ProductListOutput, error) {
	if brandID <= 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	if _, err := u.brandRepo.FindByID(ctx, brandID); err != nil {
		if err == repo.ErrNotFound {
			return ProductListOutput{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, total, err := u.productRepo.ListByBrandID(ctx, brandID, page, limit)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ProductListOutput{Items: items, Total: total, Page: page, Limit: limit}, nil
}
