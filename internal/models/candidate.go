package models

import "time"

type Candidate struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CandidateCode string    `gorm:"size:20;index" json:"candidateCode"`
	FullName      string    `gorm:"size:255;not null" json:"fullName"`
	Age           *int      `json:"age,omitempty"`
	City          string    `gorm:"size:100" json:"city"`
	Country       string    `gorm:"size:100" json:"country"`
	Email         string    `gorm:"size:120" json:"email"`
	Phone         string    `gorm:"size:30" json:"phone"`
	Whatsapp      string    `gorm:"size:20;not null;uniqueIndex" json:"whatsapp"`
	PhotoURL      string    `gorm:"size:500" json:"photoUrl"`
	QuranLevel    string    `gorm:"size:100" json:"quranLevel"`
	Motivation    string    `gorm:"size:1000" json:"motivation"`
	Status        string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	Votes         []Vote    `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE" json:"-"`
	Scores        []Score   `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
}

const (
	CandidateStatusPending    = "pending"
	CandidateStatusApproved   = "approved"
	CandidateStatusEliminated = "eliminated"
)

func ValidCandidateStatus(status string) bool {
	switch status {
	case CandidateStatusPending, CandidateStatusApproved, CandidateStatusEliminated:
		return true
	}
	return false
}
