package models

import "time"

type Poll struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Question    string    `gorm:"size:255;not null" json:"question"`
	OptionsJSON string    `gorm:"column:options_json;not null;default:'[]'" json:"-"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

// One ballot per visitor and poll; the unique index is the real guarantee.
type PollVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PollID    uint      `gorm:"not null;uniqueIndex:idx_poll_vote_ip" json:"pollId"`
	Option    string    `gorm:"size:255;not null" json:"option"`
	IP        string    `gorm:"size:64;not null;uniqueIndex:idx_poll_vote_ip" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
