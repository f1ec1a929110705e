package models

import "time"

type Donation struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	DonorName     string    `gorm:"size:255;not null" json:"donorName"`
	DonorEmail    string    `gorm:"size:120" json:"donorEmail,omitempty"`
	Amount        float64   `gorm:"not null" json:"amount"`
	Currency      string    `gorm:"size:10;not null;default:'XOF'" json:"currency"`
	PaymentMethod string    `gorm:"size:50;not null" json:"paymentMethod"`
	Message       string    `gorm:"size:500" json:"message,omitempty"`
	Status        string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

const (
	DonationStatusPending   = "pending"
	DonationStatusConfirmed = "confirmed"
	DonationStatusCancelled = "cancelled"
)

func ValidDonationStatus(status string) bool {
	switch status {
	case DonationStatusPending, DonationStatusConfirmed, DonationStatusCancelled:
		return true
	}
	return false
}

// Supported mobile-money channels. Self-reported donations must name one of
// these; confirmation happens manually on the admin side.
var DonationMethods = []string{"MTN MONEY", "ORANGE MONEY", "MOOV MONEY", "WAVE"}

func ValidDonationMethod(method string) bool {
	for _, m := range DonationMethods {
		if m == method {
			return true
		}
	}
	return false
}
