package repository

import (
	"context"
	"errors"
	"strings"

	"shopadmin/internal/domain/model"
	repo "shopadmin/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Product{})

	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("name ILIKE ? OR sku ILIKE ?", like, like)
	}
	if q.BrandID != nil {
		tx = tx.Where("brand_id = ?", *q.BrandID)
	}
	if q.Visible != nil {
		tx = tx.Where("is_visible = ?", *q.Visible)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return []model.Product{}, 0, err
	}

	switch q.Sort {
	case "name":
		tx = tx.Order("name asc").Order("id asc")
	case "price_asc":
		tx = tx.Order("price asc").Order("id asc")
	case "price_desc":
		tx = tx.Order("price desc").Order("id desc")
	case "published":
		tx = tx.Order("published_at desc").Order("id desc")
	default:
		tx = tx.Order("id desc")
	}

	var products []model.Product
	offset := (q.Page - 1) * q.Limit
	err := tx.Preload("Brand").Preload("Categories").
		Offset(offset).Limit(q.Limit).Find(&products).Error
	if err != nil {
		return []model.Product{}, 0, err
	}

	return products, total, nil
}

func (r *ProductGormRepository) ListByBrandID(ctx context.Context, brandID int64, page int, limit int) ([]model.Product, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Product{}).Where("brand_id = ?", brandID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return []model.Product{}, 0, err
	}

	var products []model.Product
	offset := (page - 1) * limit
	err := tx.Preload("Categories").Order("id desc").Offset(offset).Limit(limit).Find(&products).Error
	if err != nil {
		return []model.Product{}, 0, err
	}

	return products, total, nil
}

// ListOptions returns every non-deleted product as a dropdown option.
func (r *ProductGormRepository) ListOptions(ctx context.Context) ([]repo.ProductOption, error) {
	var options []repo.ProductOption
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Select("id", "name", "price").
		Order("name asc").
		Scan(&options).Error
	if err != nil {
		return []repo.ProductOption{}, err
	}
	return options, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Preload("Brand").Preload("Categories").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("slug = ?", slug).Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ProductGormRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("sku = ?", sku).Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product, categoryIDs []int64) (model.Product, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &repo.ConflictError{Field: "slug"}
			}
			return err
		}
		if len(categoryIDs) == 0 {
			return nil
		}
		var categories []model.Category
		if err := tx.Find(&categories, categoryIDs).Error; err != nil {
			return err
		}
		return tx.Model(&p).Association("Categories").Replace(categories)
	})
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// Update never touches slug; it is frozen at creation. A nil categoryIDs
// leaves the category associations alone.
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product, categoryIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
			"brand_id":     p.BrandID,
			"name":         p.Name,
			"description":  p.Description,
			"sku":          p.SKU,
			"price":        p.Price,
			"quantity":     p.Quantity,
			"type":         p.Type,
			"is_visible":   p.IsVisible,
			"is_featured":  p.IsFeatured,
			"published_at": p.PublishedAt,
		})
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return &repo.ConflictError{Field: "sku"}
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		if categoryIDs == nil {
			return nil
		}
		var categories []model.Category
		if len(categoryIDs) > 0 {
			if err := tx.Find(&categories, categoryIDs).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.Product{ID: p.ID}).Association("Categories").Replace(categories)
	})
}

func (r *ProductGormRepository) UpdateImage(ctx context.Context, id int64, image string) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Update("image", image)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) SoftDelete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) SoftDeleteBulk(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Delete(&model.Product{}, ids)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *ProductGormRepository) Search(ctx context.Context, q string, limit int) ([]model.Product, error) {
	like := "%" + strings.TrimSpace(q) + "%"
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR slug ILIKE ? OR sku ILIKE ?", like, like, like).
		Order("name asc").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}
