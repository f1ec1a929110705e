package models

import "time"

// AdminConfig is a small key/value table; today it only carries the admin
// password hash so a password change survives restarts.
type AdminConfig struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (AdminConfig) TableName() string {
	return "admin_config"
}

const AdminPasswordHashKey = "admin_password_hash"

type AdminAudit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	Payload   string    `gorm:"size:2000" json:"payload,omitempty"`
	IP        string    `gorm:"size:64" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

func (AdminAudit) TableName() string {
	return "admin_audit"
}
