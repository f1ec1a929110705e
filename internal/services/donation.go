package services

import (
	"errors"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/apperr"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/validation"

	"gorm.io/gorm"
)

// DonationService records self-reported mobile-money donations. Nothing here
// touches a payment provider: the donor claims a transfer, the admin checks
// it by hand and flips the status.
type DonationService struct {
	db *gorm.DB
}

func NewDonationService(db *gorm.DB) *DonationService {
	return &DonationService{db: db}
}

type DonationInput struct {
	DonorName     string  `json:"donorName"`
	DonorEmail    string  `json:"donorEmail"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"paymentMethod"`
	Message       string  `json:"message"`
}

func (s *DonationService) Submit(input DonationInput) (*models.Donation, error) {
	donorName := validation.SanitizeString(input.DonorName, 255)
	if !validation.ValidName(donorName) {
		return nil, apperr.Validation("Nom invalide.")
	}
	if !validation.ValidAmount(input.Amount) {
		return nil, apperr.Validation("Montant invalide.")
	}
	if !models.ValidDonationMethod(input.PaymentMethod) {
		return nil, apperr.Validation("Moyen de paiement non supporté.")
	}
	donorEmail := validation.SanitizeString(input.DonorEmail, validation.MaxEmailLength)
	if donorEmail != "" && !validation.ValidEmail(donorEmail) {
		return nil, apperr.Validation("Email invalide.")
	}

	currency := validation.SanitizeString(input.Currency, 10)
	if currency == "" {
		currency = "XOF"
	}

	donation := models.Donation{
		DonorName:     donorName,
		DonorEmail:    donorEmail,
		Amount:        input.Amount,
		Currency:      currency,
		PaymentMethod: input.PaymentMethod,
		Message:       validation.SanitizeString(input.Message, 500),
		Status:        models.DonationStatusPending,
	}
	if err := s.db.Create(&donation).Error; err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return &donation, nil
}

// SetStatus moves a donation to any status in the allowed set. Transitions
// are deliberately unordered (confirmed back to pending is fine); only the
// value itself is validated.
func (s *DonationService) SetStatus(id uint, status string) (*models.Donation, error) {
	if !models.ValidDonationStatus(status) {
		return nil, apperr.Validation("Statut invalide.")
	}

	var donation models.Donation
	if err := s.db.First(&donation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Donation introuvable.")
		}
		return nil, apperr.Dependency("Erreur serveur", err)
	}

	if err := s.db.Model(&donation).Update("status", status).Error; err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return &donation, nil
}

func (s *DonationService) ListAll() ([]models.Donation, error) {
	var donations []models.Donation
	if err := s.db.Order("created_at DESC").Find(&donations).Error; err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return donations, nil
}

type DonationSummary struct {
	TotalAmount float64           `json:"totalAmount"`
	DonorCount  int64             `json:"donorCount"`
	Recent      []models.Donation `json:"recent"`
}

// PublicSummary sums confirmed donations only; pending and cancelled rows
// never contribute to the public total.
func (s *DonationService) PublicSummary(limit int) (*DonationSummary, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	summary := DonationSummary{}
	row := s.db.Model(&models.Donation{}).
		Select("COALESCE(SUM(amount), 0) AS total_amount, COUNT(id) AS donor_count").
		Where("status = ?", models.DonationStatusConfirmed).
		Row()
	if err := row.Scan(&summary.TotalAmount, &summary.DonorCount); err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}

	err := s.db.Where("status = ?", models.DonationStatusConfirmed).
		Order("created_at DESC").
		Limit(limit).
		Find(&summary.Recent).Error
	if err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return &summary, nil
}

// PendingCount feeds the dashboard stats.
func (s *DonationService) PendingCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.Donation{}).
		Where("status = ?", models.DonationStatusPending).
		Count(&count).Error
	if err != nil {
		return 0, apperr.Dependency("Erreur serveur", err)
	}
	return count, nil
}
