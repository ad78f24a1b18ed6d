package model

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"type:varchar(50);not null" json:"name"`
	Email       string         `gorm:"type:varchar(50);not null;uniqueIndex" json:"email"`
	Phone       string         `gorm:"type:varchar(20)" json:"phone"`
	DateOfBirth *time.Time     `json:"date_of_birth"`
	City        string         `gorm:"type:varchar(100);not null" json:"city"`
	ZipCode     string         `gorm:"type:varchar(20);not null" json:"zip_code"`
	Address     string         `gorm:"type:varchar(255);not null" json:"address"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
