package models

import "time"

// Post goes through pending -> approved/rejected. Rejected posts are kept
// for audit, only approved ones are served on the public feed.
type Post struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	AuthorName  string     `gorm:"size:255;not null" json:"authorName"`
	AuthorEmail string     `gorm:"size:120" json:"authorEmail,omitempty"`
	Content     string     `gorm:"size:2000;not null" json:"content"`
	ImageURL    string     `gorm:"size:500" json:"imageUrl,omitempty"`
	Status      string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy  string     `gorm:"size:100" json:"approvedBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

const (
	ContentStatusPending  = "pending"
	ContentStatusApproved = "approved"
	ContentStatusRejected = "rejected"
)

func ValidContentStatus(status string) bool {
	switch status {
	case ContentStatusPending, ContentStatusApproved, ContentStatusRejected:
		return true
	}
	return false
}
