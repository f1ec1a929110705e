package models

import "time"

// Story expiry is fixed at creation (24h after submission), independent of
// when an admin approves it. The sweep deletes expired rows whatever their
// status, so the active listing must still filter on expires_at itself.
type Story struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	AuthorName  string     `gorm:"size:255;not null" json:"authorName"`
	AuthorEmail string     `gorm:"size:120" json:"authorEmail,omitempty"`
	Content     string     `gorm:"size:1000" json:"content"`
	MediaURL    string     `gorm:"size:500" json:"mediaUrl,omitempty"`
	Status      string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy  string     `gorm:"size:100" json:"approvedBy,omitempty"`
	ExpiresAt   time.Time  `gorm:"not null;index" json:"expiresAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

const StoryLifetime = 24 * time.Hour
