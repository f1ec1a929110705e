package models

import "time"

// Score is one judged passage. A candidate accumulates one row per passage;
// there is no uniqueness constraint on (candidate, judge).
type Score struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	CandidateID       uint      `gorm:"not null;index" json:"candidateId"`
	JudgeName         string    `gorm:"size:100;not null" json:"judgeName"`
	ThemeChosenScore  float64   `gorm:"not null;default:0" json:"themeChosenScore"`
	ThemeImposedScore float64   `gorm:"not null;default:0" json:"themeImposedScore"`
	Notes             string    `gorm:"size:500" json:"notes,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}
