package repository

import (
	"context"

	"shopadmin/internal/domain/model"
	repo "shopadmin/internal/repository"

	"gorm.io/gorm"
)

type AuditLogGormRepository struct {
	db *gorm.DB
}

func NewAuditLogGormRepository(db *gorm.DB) *AuditLogGormRepository {
	return &AuditLogGormRepository{db: db}
}

func (r *AuditLogGormRepository) Create(ctx context.Context, log model.AuditLog) error {
	return r.db.WithContext(ctx).Create(&log).Error
}

func (r *AuditLogGormRepository) List(ctx context.Context, f repo.AuditLogFilter) ([]model.AuditLog, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 50
	}

	tx := r.db.WithContext(ctx).Model(&model.AuditLog{})
	if f.ResourceType != "" {
		tx = tx.Where("resource_type = ?", f.ResourceType)
	}
	if f.ResourceID != nil {
		tx = tx.Where("resource_id = ?", *f.ResourceID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return []model.AuditLog{}, 0, err
	}

	var logs []model.AuditLog
	offset := (f.Page - 1) * f.Limit
	if err := tx.Order("id desc").Offset(offset).Limit(f.Limit).Find(&logs).Error; err != nil {
		return []model.AuditLog{}, 0, err
	}

	return logs, total, nil
}
