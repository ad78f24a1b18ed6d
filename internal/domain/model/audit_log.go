package model

import "time"

type AuditAction string

const (
	AuditActionCreate            AuditAction = "CREATE"
	AuditActionUpdate            AuditAction = "UPDATE"
	AuditActionDelete            AuditAction = "DELETE"
	AuditActionUpdateOrderStatus AuditAction = "UPDATE_ORDER_STATUS"
)

type AuditResourceType string

const (
	AuditResourceBrand    AuditResourceType = "brand"
	AuditResourceCategory AuditResourceType = "category"
	AuditResourceProduct  AuditResourceType = "product"
	AuditResourceCustomer AuditResourceType = "customer"
	AuditResourceOrder    AuditResourceType = "order"
)

// AuditLog records who changed what in the back office: actor, action,
// target, and before/after snapshots as JSON strings.
type AuditLog struct {
	ID           int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	Actor        string            `gorm:"type:varchar(100);not null;index" json:"actor"`
	Action       AuditAction       `gorm:"type:varchar(50);not null;index" json:"action"`
	ResourceType AuditResourceType `gorm:"type:varchar(50);not null;index" json:"resource_type"`
	ResourceID   int64             `gorm:"not null;index" json:"resource_id"`
	BeforeJSON   string            `gorm:"type:text" json:"before_json"`
	AfterJSON    string            `gorm:"type:text" json:"after_json"`
	CreatedAt    time.Time         `gorm:"not null;index" json:"created_at"`
}
