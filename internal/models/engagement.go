package models

import "time"

// Engagement covers likes, reactions and comments on posts and stories.
// The unique index enforces at most one row per (content, identity, kind),
// so a duplicate action surfaces as a constraint violation even when two
// requests race past the application-level check. Shares are a separate
// append-only table because re-sharing is allowed.
type Engagement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ContentType string    `gorm:"size:10;not null;uniqueIndex:idx_engagement_identity" json:"contentType"`
	ContentID   uint      `gorm:"not null;uniqueIndex:idx_engagement_identity" json:"contentId"`
	Identity    string    `gorm:"size:120;not null;uniqueIndex:idx_engagement_identity" json:"-"`
	Kind        string    `gorm:"size:20;not null;uniqueIndex:idx_engagement_identity" json:"kind"`
	Value       string    `gorm:"size:500" json:"value,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

const (
	ContentTypePost  = "post"
	ContentTypeStory = "story"
)

const (
	EngagementLike     = "like"
	EngagementReaction = "reaction"
	EngagementComment  = "comment"
)

const (
	ReactionHeart = "heart"
	ReactionThumb = "thumb"
	ReactionLaugh = "laugh"
)

func ValidReaction(reaction string) bool {
	switch reaction {
	case ReactionHeart, ReactionThumb, ReactionLaugh:
		return true
	}
	return false
}

type Share struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ContentType string    `gorm:"size:10;not null;index:idx_share_content" json:"contentType"`
	ContentID   uint      `gorm:"not null;index:idx_share_content" json:"contentId"`
	Identity    string    `gorm:"size:120" json:"-"`
	Method      string    `gorm:"size:20" json:"method,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
