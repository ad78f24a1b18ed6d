package repository

import (
	"context"
	"errors"
	"strings"

	"shopadmin/internal/domain/model"
	repo "shopadmin/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) List(ctx context.Context, q repo.OrderListQuery) ([]model.Order, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Order{})

	if s := strings.TrimSpace(q.Q); s != "" {
		tx = tx.Where("number ILIKE ?", "%"+s+"%")
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.CustomerID != nil {
		tx = tx.Where("customer_id = ?", *q.CustomerID)
	}
	if q.From != nil {
		tx = tx.Where("created_at >= ?", *q.From)
	}
	if q.To != nil {
		tx = tx.Where("created_at <= ?", *q.To)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return []model.Order{}, 0, err
	}

	switch q.Sort {
	case "number":
		tx = tx.Order("number asc")
	case "total_asc":
		tx = tx.Order("total_price asc").Order("id asc")
	case "total_desc":
		tx = tx.Order("total_price desc").Order("id desc")
	case "date":
		tx = tx.Order("created_at desc").Order("id desc")
	default:
		tx = tx.Order("id desc")
	}

	var orders []model.Order
	offset := (q.Page - 1) * q.Limit
	err := tx.Preload("Customer").Preload("Items").
		Offset(offset).Limit(q.Limit).Find(&orders).Error
	if err != nil {
		return []model.Order{}, 0, err
	}

	return orders, total, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, id int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id asc") }).
		First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Where("number = ?", number).Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, o model.Order) (int64, error) {
	// Items are created separately by the order-item repository so that
	// header and items share the caller's transaction explicitly.
	o.Items = nil
	if err := r.db.WithContext(ctx).Create(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, &repo.ConflictError{Field: "number"}
		}
		return 0, err
	}
	return o.ID, nil
}

func (r *OrderGormRepository) Update(ctx context.Context, o model.Order) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", o.ID).Updates(map[string]interface{}{
		"customer_id": o.CustomerID,
		"status":      o.Status,
		"notes":       o.Notes,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) UpdateTotal(ctx context.Context, id int64, total decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Update("total_price", total)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// SoftDelete removes the order and its items together; an order's items
// never outlive it.
func (r *OrderGormRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Order{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		return tx.Where("order_id = ?", id).Delete(&model.OrderItem{}).Error
	})
}

func (r *OrderGormRepository) SoftDeleteBulk(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Order{}, ids)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return tx.Where("order_id IN ?", ids).Delete(&model.OrderItem{}).Error
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func (r *OrderGormRepository) Search(ctx context.Context, q string, limit int) ([]model.Order, error) {
	like := "%" + strings.TrimSpace(q) + "%"
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("number ILIKE ?", like).
		Order("id desc").
		Limit(limit).
		Preload("Customer").
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}
