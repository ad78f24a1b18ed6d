package repository

import (
	"context"
	"errors"
	"strings"

	"shopadmin/internal/domain/model"
	repo "shopadmin/internal/repository"

	"gorm.io/gorm"
)

type BrandGormRepository struct {
	db *gorm.DB
}

func NewBrandGormRepository(db *gorm.DB) *BrandGormRepository {
	return &BrandGormRepository{db: db}
}

func (r *BrandGormRepository) List(ctx context.Context, q repo.BrandListQuery) ([]model.Brand, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Brand{})

	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("name ILIKE ? OR url ILIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return []model.Brand{}, 0, err
	}

	switch q.Sort {
	case "name":
		tx = tx.Order("name asc").Order("id asc")
	case "name_desc":
		tx = tx.Order("name desc").Order("id desc")
	case "updated":
		tx = tx.Order("updated_at desc").Order("id desc")
	default:
		tx = tx.Order("id desc")
	}

	var brands []model.Brand
	offset := (q.Page - 1) * q.Limit
	if err := tx.Offset(offset).Limit(q.Limit).Find(&brands).Error; err != nil {
		return []model.Brand{}, 0, err
	}

	return brands, total, nil
}

func (r *BrandGormRepository) FindByID(ctx context.Context, id int64) (model.Brand, error) {
	var b model.Brand
	err := r.db.WithContext(ctx).First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Brand{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Brand{}, err
	}
	return b, nil
}

func (r *BrandGormRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Brand{}).Where("slug = ?", slug).Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *BrandGormRepository) Create(ctx context.Context, b model.Brand) (model.Brand, error) {
	if err := r.db.WithContext(ctx).Create(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.Brand{}, &repo.ConflictError{Field: "url"}
		}
		return model.Brand{}, err
	}
	return b, nil
}

// Update never touches slug; it is frozen at creation.
func (r *BrandGormRepository) Update(ctx context.Context, b model.Brand) error {
	res := r.db.WithContext(ctx).Model(&model.Brand{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
		"name":        b.Name,
		"url":         b.URL,
		"description": b.Description,
		"is_visible":  b.IsVisible,
		"primary_hex": b.PrimaryHex,
	})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return &repo.ConflictError{Field: "url"}
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *BrandGormRepository) SoftDelete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Brand{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *BrandGormRepository) SoftDeleteBulk(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Delete(&model.Brand{}, ids)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *BrandGormRepository) Search(ctx context.Context, q string, limit int) ([]model.Brand, error) {
	like := "%" + strings.TrimSpace(q) + "%"
	var brands []model.Brand
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR slug ILIKE ? OR description ILIKE ?", like, like, like).
		Order("name asc").
		Limit(limit).
		Find(&brands).Error
	if err != nil {
		return []model.Brand{}, err
	}
	return brands, nil
}
