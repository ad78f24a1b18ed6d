package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"shopadmin/internal/domain/model"
	repo "shopadmin/internal/repository"
	"shopadmin/internal/validator"

	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	productRepo  repo.ProductRepository
	brandRepo    repo.BrandRepository
	categoryRepo repo.CategoryRepository
	auditRepo    repo.AuditLogRepository
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	brandRepo repo.BrandRepository,
	categoryRepo repo.CategoryRepository,
	auditRepo repo.AuditLogRepository,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
		auditRepo:    auditRepo,
	}
}

type ListProductsInput struct {
	Page    int
	Limit   int
	Q       string
	Sort    string
	BrandID *int64
	Visible *bool
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *ProductUsecase) List(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	switch in.Sort {
	case "", "name", "price_asc", "price_desc", "published":
	default:
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	items, total, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Page:    in.Page,
		Limit:   in.Limit,
		Q:       strings.TrimSpace(in.Q),
		Sort:    in.Sort,
		BrandID: in.BrandID,
		Visible: in.Visible,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

func (u *ProductUsecase) Get(ctx context.Context, id int64) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	p, err := u.productRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// Options feeds the product dropdown on the order-item form.
func (u *ProductUsecase) Options(ctx context.Context) ([]repo.ProductOption, error) {
	options, err := u.productRepo.ListOptions(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return options, nil
}

type ProductInput struct {
	BrandID     int64
	Name        string
	Description string
	SKU         string
	Price       string // validated against the 6+2 digit rule before parsing
	Quantity    int64
	Type        string
	IsVisible   *bool
	IsFeatured  *bool
	PublishedAt string // YYYY-MM-DD, optional
	CategoryIDs []int64
}

func (in ProductInput) validate() (decimal.Decimal, *time.Time, validator.FieldErrors) {
	var fe validator.FieldErrors

	if strings.TrimSpace(in.Name) == "" {
		fe.Add("name", "required")
	}
	if in.BrandID <= 0 {
		fe.Add("brand_id", "required")
	}
	if strings.TrimSpace(in.SKU) == "" {
		fe.Add("sku", "required")
	}

	price := decimal.Zero
	if !validator.ValidPrice(in.Price) {
		fe.Add("price", "must have at most 6 integer digits and 2 fraction digits")
	} else {
		price, _ = decimal.NewFromString(in.Price)
	}

	if !validator.ValidQuantity(in.Quantity) {
		fe.Add("quantity", "must be between 0 and 100")
	}
	if !model.ValidProductType(model.ProductType(in.Type)) {
		fe.Add("type", "must be downloadable or deliverable")
	}

	var publishedAt *time.Time
	if in.PublishedAt != "" {
		t, err := time.Parse("2006-01-02", in.PublishedAt)
		if err != nil {
			fe.Add("published_at", "must be a YYYY-MM-DD date")
		} else {
			publishedAt = &t
		}
	}

	return price, publishedAt, fe
}

func (u *ProductUsecase) checkAssociations(ctx context.Context, in ProductInput) error {
	if _, err := u.brandRepo.FindByID(ctx, in.BrandID); err != nil {
		if err == repo.ErrNotFound {
			return NewFieldError("brand_id", "unknown brand")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(in.CategoryIDs) > 0 {
		found, err := u.categoryRepo.FindByIDs(ctx, in.CategoryIDs)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(found) != len(in.CategoryIDs) {
			return NewFieldError("category_ids", "unknown category")
		}
	}
	return nil
}

// Create derives the slug from the name exactly once, here. Edits never
// regenerate it.
func (u *ProductUsecase) Create(ctx context.Context, actor string, in ProductInput) (model.Product, error) {
	price, publishedAt, fe := in.validate()
	if len(fe) > 0 {
		return model.Product{}, NewValidationError(fe)
	}
	if err := u.checkAssociations(ctx, in); err != nil {
		return model.Product{}, err
	}

	name := strings.TrimSpace(in.Name)
	s := model.Slugify(name)
	if s == "" {
		return model.Product{}, NewFieldError("name", "cannot be turned into a slug")
	}

	taken, err := u.productRepo.ExistsBySlug(ctx, s)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if taken {
		return model.Product{}, NewFieldError("slug", "already in use")
	}

	skuTaken, err := u.productRepo.ExistsBySKU(ctx, strings.TrimSpace(in.SKU))
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if skuTaken {
		return model.Product{}, NewFieldError("sku", "already in use")
	}

	visible := true
	if in.IsVisible != nil {
		visible = *in.IsVisible
	}
	featured := true
	if in.IsFeatured != nil {
		featured = *in.IsFeatured
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		BrandID:     in.BrandID,
		Name:        name,
		Slug:        s,
		Description: in.Description,
		SKU:         strings.TrimSpace(in.SKU),
		Price:       price,
		Quantity:    in.Quantity,
		Type:        model.ProductType(in.Type),
		IsVisible:   visible,
		IsFeatured:  featured,
		PublishedAt: publishedAt,
	}, in.CategoryIDs)
	if err != nil {
		if ce, ok := err.(*repo.ConflictError); ok {
			return model.Product{}, NewFieldError(ce.Field, "already in use")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := writeAudit(ctx, u.auditRepo, actor, model.AuditActionCreate, model.AuditResourceProduct, p.ID, nil, p); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (u *ProductUsecase) Update(ctx context.Context, actor string, id int64, in ProductInput) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	price, publishedAt, fe := in.validate()
	if len(fe) > 0 {
		return model.Product{}, NewValidationError(fe)
	}
	if err := u.checkAssociations(ctx, in); err != nil {
		return model.Product{}, err
	}

	before, err := u.productRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	after := before
	after.BrandID = in.BrandID
	after.Name = strings.TrimSpace(in.Name)
	after.Description = in.Description
	after.SKU = strings.TrimSpace(in.SKU)
	after.Price = price
	after.Quantity = in.Quantity
	after.Type = model.ProductType(in.Type)
	if in.IsVisible != nil {
		after.IsVisible = *in.IsVisible
	}
	if in.IsFeatured != nil {
		after.IsFeatured = *in.IsFeatured
	}
	after.PublishedAt = publishedAt

	if err := u.productRepo.Update(ctx, after, in.CategoryIDs); err != nil {
		if ce, ok := err.(*repo.ConflictError); ok {
			return model.Product{}, NewFieldError(ce.Field, "already in use")
		}
		if err == repo.ErrNotFound {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := writeAudit(ctx, u.auditRepo, actor, model.AuditActionUpdate, model.AuditResourceProduct, id, before, after); err != nil {
		return model.Product{}, err
	}
	return after, nil
}

// AttachImage records the stored image path; the file itself is written by
// the storage layer before this is called.
func (u *ProductUsecase) AttachImage(ctx context.Context, actor string, id int64, path string) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(path) == "" {
		return NewFieldError("image", "required")
	}

	err := u.productRepo.UpdateImage(ctx, id, path)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return writeAudit(ctx, u.auditRepo, actor, model.AuditActionUpdate, model.AuditResourceProduct, id, nil, map[string]string{"image": path})
}

func (u *ProductUsecase) Delete(ctx context.Context, actor string, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err := u.productRepo.SoftDelete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return writeAudit(ctx, u.auditRepo, actor, model.AuditActionDelete, model.AuditResourceProduct, id, nil, nil)
}

func (u *ProductUsecase) BulkDelete(ctx context.Context, actor string, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "ids required")
	}
	deleted, err := u.productRepo.SoftDeleteBulk(ctx, ids)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	for _, id := range ids {
		if err := writeAudit(ctx, u.auditRepo, actor, model.AuditActionDelete, model.AuditResourceProduct, id, nil, nil); err != nil {
			return deleted, err
		}
	}
	return deleted, nil
}
