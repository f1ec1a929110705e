package models

import "time"

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"size:255;not null" json:"fullName"`
	Email     string    `gorm:"size:120;not null" json:"email"`
	Subject   string    `gorm:"size:255;not null" json:"subject"`
	Message   string    `gorm:"size:2000;not null" json:"message"`
	IP        string    `gorm:"size:64" json:"-"`
	Archived  int       `gorm:"not null;default:0;index" json:"archived"`
	CreatedAt time.Time `json:"createdAt"`
}
