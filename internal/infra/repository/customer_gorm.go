package repository

import (
	"context"
	"errors"
	"strings"

	"shopadmin/internal/domain/model"
	repo "shopadmin/internal/repository"

	"gorm.io/gorm"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) List(ctx context.Context, q repo.CustomerListQuery) ([]model.Customer, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Customer{})

	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ? OR city ILIKE ?", like, like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return []model.Customer{}, 0, err
	}

	switch q.Sort {
	case "name":
		tx = tx.Order("name asc").Order("id asc")
	case "email":
		tx = tx.Order("email asc").Order("id asc")
	default:
		tx = tx.Order("id desc")
	}

	var customers []model.Customer
	offset := (q.Page - 1) * q.Limit
	if err := tx.Offset(offset).Limit(q.Limit).Find(&customers).Error; err != nil {
		return []model.Customer{}, 0, err
	}

	return customers, total, nil
}

func (r *CustomerGormRepository) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

func (r *CustomerGormRepository) ExistsByEmail(ctx context.Context, email string, ignoreID int64) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&model.Customer{}).Where("email = ?", email)
	if ignoreID > 0 {
		tx = tx.Where("id <> ?", ignoreID)
	}
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *CustomerGormRepository) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.Customer{}, &repo.ConflictError{Field: "email"}
		}
		return model.Customer{}, err
	}
	return c, nil
}

func (r *CustomerGormRepository) Update(ctx context.Context, c model.Customer) error {
	res := r.db.WithContext(ctx).Model(&model.Customer{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"name":          c.Name,
		"email":         c.Email,
		"phone":         c.Phone,
		"date_of_birth": c.DateOfBirth,
		"city":          c.City,
		"zip_code":      c.ZipCode,
		"address":       c.Address,
	})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return &repo.ConflictError{Field: "email"}
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CustomerGormRepository) SoftDelete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Customer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CustomerGormRepository) SoftDeleteBulk(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Delete(&model.Customer{}, ids)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *CustomerGormRepository) Search(ctx context.Context, q string, limit int) ([]model.Customer, error) {
	like := "%" + strings.TrimSpace(q) + "%"
	var customers []model.Customer
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR email ILIKE ?", like, like).
		Order("name asc").
		Limit(limit).
		Find(&customers).Error
	if err != nil {
		return []model.Customer{}, err
	}
	return customers, nil
}
