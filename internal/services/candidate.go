package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/apperr"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/mailer"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/validation"

	"gorm.io/gorm"
)

type CandidateService struct {
	db         *gorm.DB
	mail       mailer.Mailer
	codePrefix string
}

func NewCandidateService(db *gorm.DB, mail mailer.Mailer, codePrefix string) *CandidateService {
	return &CandidateService{db: db, mail: mail, codePrefix: codePrefix}
}

type CandidateInput struct {
	FullName   string `json:"fullName"`
	Whatsapp   string `json:"whatsapp"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	Country    string `json:"country"`
	Age        *int   `json:"age"`
	QuranLevel string `json:"quranLevel"`
	Motivation string `json:"motivation"`
	PhotoURL   string `json:"photoUrl"`
	Status     string `json:"status"`
}

// sanitize validates and normalizes a candidate payload. The returned model
// has no ID or code yet.
func (s *CandidateService) sanitize(input CandidateInput) (*models.Candidate, error) {
	fullName := validation.SanitizeString(input.FullName, 255)
	if !validation.ValidName(fullName) {
		return nil, apperr.Validation("Nom invalide.")
	}

	whatsapp := validation.NormalizeWhatsapp(input.Whatsapp)
	if whatsapp == "" {
		return nil, apperr.Validation("Numéro WhatsApp invalide.")
	}

	email := validation.SanitizeString(input.Email, validation.MaxEmailLength)
	if email != "" && !validation.ValidEmail(email) {
		return nil, apperr.Validation("Email invalide.")
	}

	phone := validation.SanitizeString(input.Phone, 30)
	if phone != "" && !validation.ValidPhone(phone) {
		return nil, apperr.Validation("Téléphone invalide.")
	}

	return &models.Candidate{
		FullName:   fullName,
		Whatsapp:   whatsapp,
		Email:      email,
		Phone:      phone,
		City:       validation.SanitizeString(input.City, 100),
		Country:    validation.SanitizeString(input.Country, 100),
		Age:        input.Age,
		QuranLevel: validation.SanitizeString(input.QuranLevel, 100),
		Motivation: validation.SanitizeString(input.Motivation, 1000),
		PhotoURL:   validation.SanitizeString(input.PhotoURL, 500),
	}, nil
}

// Register handles public self-registration. New candidates start as pending
// and only show up publicly once an admin approves them.
func (s *CandidateService) Register(input CandidateInput, settings *models.TournamentSettings) (*models.Candidate, error) {
	if !settings.RegistrationOpen() {
		return nil, apperr.Forbidden("Inscriptions fermées.")
	}

	candidate, err := s.sanitize(input)
	if err != nil {
		return nil, err
	}
	candidate.Status = models.CandidateStatusPending

	// Friendly pre-checks. The whatsapp unique index remains the real
	// guarantee under concurrent submissions.
	var count int64
	s.db.Model(&models.Candidate{}).
		Where("LOWER(full_name) = LOWER(?) AND whatsapp = ?", candidate.FullName, candidate.Whatsapp).
		Count(&count)
	if count > 0 {
		return nil, apperr.Conflict("Utilisateur déjà enregistré.")
	}

	s.db.Model(&models.Candidate{}).Where("whatsapp = ?", candidate.Whatsapp).Count(&count)
	if count > 0 {
		return nil, apperr.Conflict("WhatsApp déjà utilisé.")
	}

	if err := s.insertWithCode(candidate); err != nil {
		return nil, err
	}

	s.mail.Send(candidate.Email,
		fmt.Sprintf("Confirmation d'inscription (%s)", candidate.CandidateCode),
		fmt.Sprintf("Assalamou alaykoum %s,\n\nVotre inscription a été enregistrée avec succès.\nCode candidat: %s\n", candidate.FullName, candidate.CandidateCode))

	return candidate, nil
}

// insertWithCode creates the row and assigns its display code in one
// transaction. The code derives from the generated id, so it cannot go into
// the INSERT itself; the transaction keeps the two steps atomic.
func (s *CandidateService) insertWithCode(candidate *models.Candidate) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(candidate).Error; err != nil {
			return err
		}
		candidate.CandidateCode = fmt.Sprintf("%s-%03d", s.codePrefix, candidate.ID)
		return tx.Model(&models.Candidate{}).
			Where("id = ?", candidate.ID).
			Update("candidate_code", candidate.CandidateCode).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("WhatsApp déjà utilisé.")
		}
		return apperr.Dependency("Erreur serveur", err)
	}
	return nil
}

// AdminUpsert creates (id == 0) or updates a candidate on behalf of the
// operator. Registration gates do not apply; the status defaults to approved
// when absent or unknown.
func (s *CandidateService) AdminUpsert(id uint, input CandidateInput) (*models.Candidate, error) {
	candidate, err := s.sanitize(input)
	if err != nil {
		return nil, err
	}

	candidate.Status = input.Status
	if !models.ValidCandidateStatus(candidate.Status) {
		candidate.Status = models.CandidateStatusApproved
	}

	var count int64
	s.db.Model(&models.Candidate{}).
		Where("whatsapp = ? AND id <> ?", candidate.Whatsapp, id).
		Count(&count)
	if count > 0 {
		return nil, apperr.Conflict("WhatsApp déjà utilisé.")
	}

	if id == 0 {
		if err := s.insertWithCode(candidate); err != nil {
			return nil, err
		}
		return candidate, nil
	}

	var existing models.Candidate
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Candidat introuvable.")
		}
		return nil, apperr.Dependency("Erreur serveur", err)
	}

	updates := map[string]interface{}{
		"full_name":   candidate.FullName,
		"age":         candidate.Age,
		"city":        candidate.City,
		"country":     candidate.Country,
		"email":       candidate.Email,
		"phone":       candidate.Phone,
		"whatsapp":    candidate.Whatsapp,
		"quran_level": candidate.QuranLevel,
		"motivation":  candidate.Motivation,
		"status":      candidate.Status,
	}
	if candidate.PhotoURL != "" {
		updates["photo_url"] = candidate.PhotoURL
	}

	if err := s.db.Model(&models.Candidate{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict("WhatsApp déjà utilisé.")
		}
		return nil, apperr.Dependency("Erreur serveur", err)
	}

	s.db.First(&existing, id)
	return &existing, nil
}

// Delete removes the candidate and, through the cascade, its votes and
// scores. Vote and score rows have no life of their own.
func (s *CandidateService) Delete(id uint) error {
	var candidate models.Candidate
	if err := s.db.First(&candidate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Candidat introuvable.")
		}
		return apperr.Dependency("Erreur serveur", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("candidate_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("candidate_id = ?", id).Delete(&models.Score{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Candidate{}, id).Error
	})
	if err != nil {
		return apperr.Dependency("Erreur serveur", err)
	}
	return nil
}

// BulkReplace swaps the whole roster for a manually curated list. The
// delete-then-reinsert must never be observed half-done, hence the single
// transaction.
func (s *CandidateService) BulkReplace(inputs []CandidateInput) (int, error) {
	sanitized := make([]*models.Candidate, 0, len(inputs))
	for i, input := range inputs {
		candidate, err := s.sanitize(input)
		if err != nil {
			return 0, apperr.Validation(fmt.Sprintf("Ligne %d: %s", i+1, apperr.UserMessage(err)))
		}
		candidate.Status = input.Status
		if !models.ValidCandidateStatus(candidate.Status) {
			candidate.Status = models.CandidateStatusApproved
		}
		sanitized = append(sanitized, candidate)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Score{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Candidate{}).Error; err != nil {
			return err
		}
		for _, candidate := range sanitized {
			if err := tx.Create(candidate).Error; err != nil {
				return err
			}
			candidate.CandidateCode = fmt.Sprintf("%s-%03d", s.codePrefix, candidate.ID)
			if err := tx.Model(&models.Candidate{}).
				Where("id = ?", candidate.ID).
				Update("candidate_code", candidate.CandidateCode).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperr.Conflict("WhatsApp en double dans la liste.")
		}
		return 0, apperr.Dependency("Erreur serveur", err)
	}
	return len(sanitized), nil
}

func (s *CandidateService) Get(id uint) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := s.db.First(&candidate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Candidat introuvable.")
		}
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return &candidate, nil
}

func (s *CandidateService) ListAll() ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := s.db.Order("id DESC").Find(&candidates).Error; err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return candidates, nil
}

type PublicCandidate struct {
	ID            uint      `json:"id"`
	CandidateCode string    `json:"candidateCode"`
	FullName      string    `json:"fullName"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
	PhotoURL      string    `json:"photoUrl"`
	QuranLevel    string    `json:"quranLevel"`
	Motivation    string    `json:"motivation"`
	CreatedAt     time.Time `json:"createdAt"`
	TotalVotes    int64     `json:"totalVotes"`
}

// PublicList returns approved candidates with their all-time vote counts.
func (s *CandidateService) PublicList() ([]PublicCandidate, error) {
	var results []PublicCandidate
	err := s.db.Model(&models.Candidate{}).
		Select(`candidates.id, candidates.candidate_code, candidates.full_name,
			candidates.city, candidates.country, candidates.photo_url,
			candidates.quran_level, candidates.motivation, candidates.created_at,
			COUNT(votes.id) AS total_votes`).
		Joins("LEFT JOIN votes ON votes.candidate_id = candidates.id").
		Where("candidates.status = ?", models.CandidateStatusApproved).
		Group("candidates.id").
		Order("candidates.id ASC").
		Scan(&results).Error
	if err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return results, nil
}

// isUniqueViolation matches both the postgres and sqlite unique-constraint
// error texts, the same way the drivers surface them.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
