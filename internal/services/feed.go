package services

import (
	"errors"
	"log"
	"time"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/apperr"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/validation"

	"gorm.io/gorm"
)

// FeedService owns the moderated content: posts and stories. Both follow
// pending -> approved/rejected; stories additionally expire 24h after
// submission and get purged by the sweep.
type FeedService struct {
	db *gorm.DB
}

func NewFeedService(db *gorm.DB) *FeedService {
	return &FeedService{db: db}
}

type PostInput struct {
	AuthorName  string `json:"authorName"`
	AuthorEmail string `json:"authorEmail"`
	Content     string `json:"content"`
	ImageURL    string `json:"imageUrl"`
}

func (s *FeedService) SubmitPost(input PostInput) (*models.Post, error) {
	authorName := validation.SanitizeString(input.AuthorName, 255)
	if !validation.ValidName(authorName) {
		return nil, apperr.Validation("Nom invalide.")
	}
	content := validation.SanitizeString(input.Content, 2000)
	if content == "" {
		return nil, apperr.Validation("Contenu requis.")
	}
	authorEmail := validation.SanitizeString(input.AuthorEmail, validation.MaxEmailLength)
	if authorEmail != "" && !validation.ValidEmail(authorEmail) {
		return nil, apperr.Validation("Email invalide.")
	}

	post := models.Post{
		AuthorName:  authorName,
		AuthorEmail: authorEmail,
		Content:     content,
		ImageURL:    validation.SanitizeString(input.ImageURL, 500),
		Status:      models.ContentStatusPending,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return &post, nil
}

type StoryInput struct {
	AuthorName  string `json:"authorName"`
	AuthorEmail string `json:"authorEmail"`
	Content     string `json:"content"`
	MediaURL    string `json:"mediaUrl"`
}

func (s *FeedService) SubmitStory(input StoryInput) (*models.Story, error) {
	authorName := validation.SanitizeString(input.AuthorName, 255)
	if !validation.ValidName(authorName) {
		return nil, apperr.Validation("Nom invalide.")
	}
	authorEmail := validation.SanitizeString(input.AuthorEmail, validation.MaxEmailLength)
	if authorEmail != "" && !validation.ValidEmail(authorEmail) {
		return nil, apperr.Validation("Email invalide.")
	}

	story := models.Story{
		AuthorName:  authorName,
		AuthorEmail: authorEmail,
		Content:     validation.SanitizeString(input.Content, 1000),
		MediaURL:    validation.SanitizeString(input.MediaURL, 500),
		Status:      models.ContentStatusPending,
		ExpiresAt:   time.Now().Add(models.StoryLifetime),
	}
	if err := s.db.Create(&story).Error; err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return &story, nil
}

// PublicPost is a post with its engagement counters, the shape the feed
// page renders.
type PublicPost struct {
	models.Post
	Likes          int64 `json:"likes"`
	Shares         int64 `json:"shares"`
	ReactionsHeart int64 `json:"reactions_heart"`
	ReactionsThumb int64 `json:"reactions_thumb"`
	ReactionsLaugh int64 `json:"reactions_laugh"`
	Comments       int64 `json:"comments"`
}

// ListApprovedPosts returns the public feed, newest first.
func (s *FeedService) ListApprovedPosts(limit int) ([]PublicPost, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var posts []models.Post
	err := s.db.Where("status = ?", models.ContentStatusApproved).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}

	result := make([]PublicPost, 0, len(posts))
	for _, post := range posts {
		entry := PublicPost{Post: post}
		s.db.Model(&models.Engagement{}).
			Where("content_type = ? AND content_id = ? AND kind = ?",
				models.ContentTypePost, post.ID, models.EngagementLike).
			Count(&entry.Likes)
		s.db.Model(&models.Engagement{}).
			Where("content_type = ? AND content_id = ? AND kind = ?",
				models.ContentTypePost, post.ID, models.EngagementComment).
			Count(&entry.Comments)
		s.db.Model(&models.Share{}).
			Where("content_type = ? AND content_id = ?", models.ContentTypePost, post.ID).
			Count(&entry.Shares)
		for reaction, target := range map[string]*int64{
			models.ReactionHeart: &entry.ReactionsHeart,
			models.ReactionThumb: &entry.ReactionsThumb,
			models.ReactionLaugh: &entry.ReactionsLaugh,
		} {
			s.db.Model(&models.Engagement{}).
				Where("content_type = ? AND content_id = ? AND kind = ? AND value = ?",
					models.ContentTypePost, post.ID, models.EngagementReaction, reaction).
				Count(target)
		}
		result = append(result, entry)
	}
	return result, nil
}

// ListActiveStories returns stories that are both approved and not yet
// expired. The expiry filter is applied here as well as by the sweep: an
// approved story past its expiresAt must never show up, even before the
// next sweep pass deletes it.
func (s *FeedService) ListActiveStories() ([]models.Story, error) {
	var stories []models.Story
	err := s.db.Where("status = ? AND expires_at > ?", models.ContentStatusApproved, time.Now()).
		Order("created_at DESC").
		Find(&stories).Error
	if err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return stories, nil
}

func (s *FeedService) ListPosts() ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return posts, nil
}

func (s *FeedService) ListStories() ([]models.Story, error) {
	var stories []models.Story
	if err := s.db.Order("created_at DESC").Find(&stories).Error; err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return stories, nil
}

// SetPostStatus transitions a post. Approval stamps the time and the acting
// admin; rejected is terminal but the row is kept for audit.
func (s *FeedService) SetPostStatus(id uint, status, adminUser string) (*models.Post, error) {
	if !models.ValidContentStatus(status) {
		return nil, apperr.Validation("Statut invalide.")
	}

	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Publication introuvable.")
		}
		return nil, apperr.Dependency("Erreur serveur", err)
	}

	updates := map[string]interface{}{"status": status}
	if status == models.ContentStatusApproved {
		now := time.Now()
		updates["approved_at"] = &now
		updates["approved_by"] = adminUser
	}
	if err := s.db.Model(&post).Updates(updates).Error; err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return &post, nil
}

func (s *FeedService) SetStoryStatus(id uint, status, adminUser string) (*models.Story, error) {
	if !models.ValidContentStatus(status) {
		return nil, apperr.Validation("Statut invalide.")
	}

	var story models.Story
	if err := s.db.First(&story, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Story introuvable.")
		}
		return nil, apperr.Dependency("Erreur serveur", err)
	}

	updates := map[string]interface{}{"status": status}
	if status == models.ContentStatusApproved {
		now := time.Now()
		updates["approved_at"] = &now
		updates["approved_by"] = adminUser
	}
	if err := s.db.Model(&story).Updates(updates).Error; err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return &story, nil
}

func (s *FeedService) DeletePost(id uint) error {
	result := s.db.Delete(&models.Post{}, id)
	if result.Error != nil {
		return apperr.Dependency("Erreur serveur", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Publication introuvable.")
	}
	return nil
}

func (s *FeedService) DeleteStory(id uint) error {
	result := s.db.Delete(&models.Story{}, id)
	if result.Error != nil {
		return apperr.Dependency("Erreur serveur", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Story introuvable.")
	}
	return nil
}

// PurgeExpiredStories deletes every story past its expiry, whatever its
// status. Called by the periodic sweep.
func (s *FeedService) PurgeExpiredStories() (int64, error) {
	result := s.db.Where("expires_at <= ?", time.Now()).Delete(&models.Story{})
	if result.Error != nil {
		return 0, apperr.Dependency("Erreur serveur", result.Error)
	}
	return result.RowsAffected, nil
}

// RunStorySweep purges expired stories on every tick until stop is closed.
func (s *FeedService) RunStorySweep(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			purged, err := s.PurgeExpiredStories()
			if err != nil {
				log.Printf("story sweep failed: %v", err)
			} else if purged > 0 {
				log.Printf("story sweep removed %d expired stories", purged)
			}
		case <-stop:
			return
		}
	}
}
