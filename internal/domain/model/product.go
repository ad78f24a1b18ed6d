package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductType string

const (
	ProductTypeDownloadable ProductType = "downloadable"
	ProductTypeDeliverable  ProductType = "deliverable"
)

// ValidProductType reports whether t is one of the known product types.
func ValidProductType(t ProductType) bool {
	return t == ProductTypeDownloadable || t == ProductTypeDeliverable
}

type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	BrandID     int64           `gorm:"not null;index" json:"brand_id"`
	Brand       *Brand          `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Description string          `gorm:"type:text" json:"description"`
	SKU         string          `gorm:"type:varchar(100);not null;uniqueIndex" json:"sku"`
	Price       decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"price"`
	Quantity    int64           `gorm:"not null" json:"quantity"`
	Type        ProductType     `gorm:"type:varchar(20);not null" json:"type"`
	IsVisible   bool            `gorm:"not null;default:true" json:"is_visible"`
	IsFeatured  bool            `gorm:"not null;default:true" json:"is_featured"`
	PublishedAt *time.Time      `json:"published_at"`
	Image       string          `gorm:"type:varchar(500)" json:"image"`
	Categories  []Category      `gorm:"many2many:category_product;" json:"categories,omitempty"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}
