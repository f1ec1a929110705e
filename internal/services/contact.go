package services

import (
	"fmt"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/apperr"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/mailer"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/validation"

	"gorm.io/gorm"
)

type ContactService struct {
	db       *gorm.DB
	mail     mailer.Mailer
	notifyTo string
}

func NewContactService(db *gorm.DB, mail mailer.Mailer, notifyTo string) *ContactService {
	return &ContactService{db: db, mail: mail, notifyTo: notifyTo}
}

type ContactInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

func (s *ContactService) Submit(input ContactInput, ip string) error {
	if input.FullName == "" || input.Email == "" || input.Subject == "" || input.Message == "" {
		return apperr.Validation("Tous les champs sont obligatoires.")
	}
	if !validation.ValidEmail(input.Email) {
		return apperr.Validation("Email invalide.")
	}

	message := models.ContactMessage{
		FullName: validation.SanitizeString(input.FullName, 255),
		Email:    input.Email,
		Subject:  validation.SanitizeString(input.Subject, 255),
		Message:  validation.SanitizeString(input.Message, 2000),
		IP:       ip,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return apperr.Dependency("Erreur serveur", err)
	}

	s.mail.Send(s.notifyTo,
		fmt.Sprintf("[Contact] %s", message.Subject),
		fmt.Sprintf("Nouveau message de contact\n\nNom: %s\nEmail: %s\n\n%s\n",
			message.FullName, message.Email, message.Message))

	return nil
}

func (s *ContactService) List(limit int) ([]models.ContactMessage, error) {
	if limit <= 0 || limit > 500 {
		limit = 500
	}
	var messages []models.ContactMessage
	if err := s.db.Order("id DESC").Limit(limit).Find(&messages).Error; err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return messages, nil
}

func (s *ContactService) SetArchived(id uint, archived bool) error {
	flag := 0
	if archived {
		flag = 1
	}
	result := s.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("archived", flag)
	if result.Error != nil {
		return apperr.Dependency("Erreur serveur", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Message introuvable.")
	}
	return nil
}

func (s *ContactService) Delete(id uint) error {
	result := s.db.Delete(&models.ContactMessage{}, id)
	if result.Error != nil {
		return apperr.Dependency("Erreur serveur", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Message introuvable.")
	}
	return nil
}
