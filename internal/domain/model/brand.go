package model

import (
	"time"

	"gorm.io/gorm"
)

type Brand struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	URL         string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"url"`
	Description string         `gorm:"type:text" json:"description"`
	IsVisible   bool           `gorm:"not null;default:true" json:"is_visible"`
	PrimaryHex  string         `gorm:"type:varchar(7)" json:"primary_hex"`
	Products    []Product      `gorm:"foreignKey:BrandID" json:"products,omitempty"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
