package services

import (
	"errors"
	"strings"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/apperr"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/validation"

	"gorm.io/gorm"
)

// EngagementService records likes, reactions, comments and shares on
// moderated content. Everything except shares is deduplicated per
// (content, identity, kind); a duplicate comes back as a distinct
// "already recorded" error so the caller can tell it apart from success.
type EngagementService struct {
	db *gorm.DB
}

func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{db: db}
}

// Identity resolves the dedup key for a visitor: their email when they gave
// one, their IP otherwise. Emails are lowercased so casing does not defeat
// the dedup.
func Identity(email, ip string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" && validation.ValidEmail(email) {
		return "email:" + email
	}
	return "ip:" + ip
}

func (s *EngagementService) contentExists(contentType string, contentID uint) error {
	var err error
	switch contentType {
	case models.ContentTypePost:
		err = s.db.First(&models.Post{}, contentID).Error
	case models.ContentTypeStory:
		err = s.db.First(&models.Story{}, contentID).Error
	default:
		return apperr.Validation("Type de contenu invalide.")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Contenu introuvable.")
	}
	if err != nil {
		return apperr.Dependency("Erreur serveur", err)
	}
	return nil
}

// record inserts one engagement row, relying on the unique index to reject
// duplicates even under concurrent requests.
func (s *EngagementService) record(contentType string, contentID uint, identity, kind, value string) error {
	if err := s.contentExists(contentType, contentID); err != nil {
		return err
	}

	engagement := models.Engagement{
		ContentType: contentType,
		ContentID:   contentID,
		Identity:    identity,
		Kind:        kind,
		Value:       value,
	}
	if err := s.db.Create(&engagement).Error; err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("Déjà enregistré.")
		}
		return apperr.Dependency("Erreur serveur", err)
	}
	return nil
}

func (s *EngagementService) Like(contentType string, contentID uint, identity string) error {
	return s.record(contentType, contentID, identity, models.EngagementLike, "")
}

func (s *EngagementService) React(contentType string, contentID uint, identity, reaction string) error {
	if !models.ValidReaction(reaction) {
		return apperr.Validation("Réaction invalide.")
	}
	return s.record(contentType, contentID, identity, models.EngagementReaction, reaction)
}

func (s *EngagementService) Comment(contentType string, contentID uint, identity, body string) error {
	body = validation.SanitizeString(body, 500)
	if body == "" {
		return apperr.Validation("Commentaire requis.")
	}
	return s.record(contentType, contentID, identity, models.EngagementComment, body)
}

// Share appends a share event. Re-sharing is allowed, so there is no dedup.
func (s *EngagementService) Share(contentType string, contentID uint, identity, method string) error {
	if err := s.contentExists(contentType, contentID); err != nil {
		return err
	}
	share := models.Share{
		ContentType: contentType,
		ContentID:   contentID,
		Identity:    identity,
		Method:      validation.SanitizeString(method, 20),
	}
	if err := s.db.Create(&share).Error; err != nil {
		return apperr.Dependency("Erreur serveur", err)
	}
	return nil
}

func (s *EngagementService) Comments(contentType string, contentID uint) ([]models.Engagement, error) {
	var comments []models.Engagement
	err := s.db.Where("content_type = ? AND content_id = ? AND kind = ?",
		contentType, contentID, models.EngagementComment).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return comments, nil
}
