package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"shopadmin/internal/domain/model"
	repo "shopadmin/internal/repository"
	"shopadmin/internal/validator"
)

type CustomerUsecase struct {
	customerRepo repo.CustomerRepository
	auditRepo    repo.AuditLogRepository
}

func NewCustomerUsecase(customerRepo repo.CustomerRepository, auditRepo repo.AuditLogRepository) *CustomerUsecase {
	return &CustomerUsecase{customerRepo: customerRepo, auditRepo: auditRepo}
}

type ListCustomersInput struct {
	Page  int
	Limit int
	Q     string
	Sort  string
}

type CustomerListOutput struct {
	Items []model.Customer `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

func (u *CustomerUsecase) List(ctx context.Context, in ListCustomersInput) (CustomerListOutput, error) {
	if in.Page < 1 {
		return CustomerListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return CustomerListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	switch in.Sort {
	case "", "name", "email":
	default:
		return CustomerListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	items, total, err := u.customerRepo.List(ctx, repo.CustomerListQuery{
		Page:  in.Page,
		Limit: in.Limit,
		Q:     strings.TrimSpace(in.Q),
		Sort:  in.Sort,
	})
	if err != nil {
		return CustomerListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CustomerListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

func (u *CustomerUsecase) Get(ctx context.Context, id int64) (model.Customer, error) {
	if id <= 0 {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	c, err := u.customerRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Customer{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

type CustomerInput struct {
	Name        string
	Email       string
	Phone       string
	DateOfBirth string // YYYY-MM-DD, optional
	City        string
	ZipCode     string
	Address     string
}

func (in CustomerInput) validate() (*time.Time, validator.FieldErrors) {
	var fe validator.FieldErrors

	name := strings.TrimSpace(in.Name)
	if name == "" {
		fe.Add("name", "required")
	} else if len(name) > 50 {
		fe.Add("name", "must be at most 50 characters")
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		fe.Add("email", "required")
	} else if !validator.ValidEmail(email) {
		fe.Add("email", "must be a valid email address")
	}

	if strings.TrimSpace(in.City) == "" {
		fe.Add("city", "required")
	}
	if strings.TrimSpace(in.ZipCode) == "" {
		fe.Add("zip_code", "required")
	}
	if strings.TrimSpace(in.Address) == "" {
		fe.Add("address", "required")
	}

	var dob *time.Time
	if in.DateOfBirth != "" {
		t, err := time.Parse("2006-01-02", in.DateOfBirth)
		if err != nil {
			fe.Add("date_of_birth", "must be a YYYY-MM-DD date")
		} else {
			dob = &t
		}
	}

	return dob, fe
}

func (u *CustomerUsecase) Create(ctx context.Context, actor string, in CustomerInput) (model.Customer, error) {
	dob, fe := in.validate()
	if len(fe) > 0 {
		return model.Customer{}, NewValidationError(fe)
	}

	email := strings.TrimSpace(in.Email)
	taken, err := u.customerRepo.ExistsByEmail(ctx, email, 0)
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if taken {
		return model.Customer{}, NewFieldError("email", "already in use")
	}

	c, err := u.customerRepo.Create(ctx, model.Customer{
		Name:        strings.TrimSpace(in.Name),
		Email:       email,
		Phone:       strings.TrimSpace(in.Phone),
		DateOfBirth: dob,
		City:        strings.TrimSpace(in.City),
		ZipCode:     strings.TrimSpace(in.ZipCode),
		Address:     strings.TrimSpace(in.Address),
	})
	if err != nil {
		if ce, ok := err.(*repo.ConflictError); ok {
			return model.Customer{}, NewFieldError(ce.Field, "already in use")
		}
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := writeAudit(ctx, u.auditRepo, actor, model.AuditActionCreate, model.AuditResourceCustomer, c.ID, nil, c); err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

func (u *CustomerUsecase) Update(ctx context.Context, actor string, id int64, in CustomerInput) (model.Customer, error) {
	if id <= 0 {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	dob, fe := in.validate()
	if len(fe) > 0 {
		return model.Customer{}, NewValidationError(fe)
	}

	email := strings.TrimSpace(in.Email)
	taken, err := u.customerRepo.ExistsByEmail(ctx, email, id)
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if taken {
		return model.Customer{}, NewFieldError("email", "already in use")
	}

	before, err := u.customerRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Customer{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	after := before
	after.Name = strings.TrimSpace(in.Name)
	after.Email = email
	after.Phone = strings.TrimSpace(in.Phone)
	after.DateOfBirth = dob
	after.City = strings.TrimSpace(in.City)
	after.ZipCode = strings.TrimSpace(in.ZipCode)
	after.Address = strings.TrimSpace(in.Address)

	if err := u.customerRepo.Update(ctx, after); err != nil {
		if ce, ok := err.(*repo.ConflictError); ok {
			return model.Customer{}, NewFieldError(ce.Field, "already in use")
		}
		if err == repo.ErrNotFound {
			return model.Customer{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := writeAudit(ctx, u.auditRepo, actor, model.AuditActionUpdate, model.AuditResourceCustomer, id, before, after); err != nil {
		return model.Customer{}, err
	}
	return after, nil
}

func (u *CustomerUsecase) Delete(ctx context.Context, actor string, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err := u.customerRepo.SoftDelete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return writeAudit(ctx, u.auditRepo, actor, model.AuditActionDelete, model.AuditResourceCustomer, id, nil, nil)
}

func (u *CustomerUsecase) BulkDelete(ctx context.Context, actor string, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "ids required")
	}
	deleted, err := u.customerRepo.SoftDeleteBulk(ctx, ids)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	for _, id := range ids {
		if err := writeAudit(ctx, u.auditRepo, actor, model.AuditActionDelete, model.AuditResourceCustomer, id, nil, nil); err != nil {
			return deleted, err
		}
	}
	return deleted, nil
}
