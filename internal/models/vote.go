package models

import "time"

// Vote rows are append-only: a vote is never updated once cast, and rows
// disappear only through the candidate cascade.
type Vote struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CandidateID  uint      `gorm:"not null;index;index:idx_votes_candidate_ip" json:"candidateId"`
	VoterName    string    `gorm:"size:255" json:"voterName,omitempty"`
	VoterContact string    `gorm:"size:120" json:"voterContact,omitempty"`
	IP           string    `gorm:"size:64;index:idx_votes_candidate_ip" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
