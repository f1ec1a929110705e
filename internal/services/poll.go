package services

import (
	"encoding/json"
	"errors"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/apperr"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"

	"gorm.io/gorm"
)

type PollService struct {
	db *gorm.DB
}

func NewPollService(db *gorm.DB) *PollService {
	return &PollService{db: db}
}

type PollView struct {
	ID       uint     `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type PollResult struct {
	Poll   PollView         `json:"poll"`
	Counts map[string]int64 `json:"counts"`
}

// Active returns the current poll with its per-option counts.
func (s *PollService) Active() (*PollResult, error) {
	var poll models.Poll
	err := s.db.Where("active = ?", true).Order("id DESC").First(&poll).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Aucun sondage actif.")
	}
	if err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return s.result(&poll)
}

func (s *PollService) result(poll *models.Poll) (*PollResult, error) {
	options, err := pollOptions(poll)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(options))
	for _, option := range options {
		var count int64
		s.db.Model(&models.PollVote{}).
			Where("poll_id = ? AND option = ?", poll.ID, option).
			Count(&count)
		counts[option] = count
	}

	return &PollResult{
		Poll:   PollView{ID: poll.ID, Question: poll.Question, Options: options},
		Counts: counts,
	}, nil
}

// Vote records one ballot per (poll, ip); the unique index backs the check.
func (s *PollService) Vote(pollID uint, option, ip string) (*PollResult, error) {
	var poll models.Poll
	if err := s.db.First(&poll, pollID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Sondage introuvable.")
		}
		return nil, apperr.Dependency("Erreur serveur", err)
	}

	options, err := pollOptions(&poll)
	if err != nil {
		return nil, err
	}
	valid := false
	for _, opt := range options {
		if opt == option {
			valid = true
			break
		}
	}
	if !valid {
		return nil, apperr.Validation("Option invalide.")
	}

	vote := models.PollVote{PollID: poll.ID, Option: option, IP: ip}
	if err := s.db.Create(&vote).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict("Vote déjà enregistré.")
		}
		return nil, apperr.Dependency("Erreur serveur", err)
	}

	return s.result(&poll)
}

func pollOptions(poll *models.Poll) ([]string, error) {
	var options []string
	if err := json.Unmarshal([]byte(poll.OptionsJSON), &options); err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return options, nil
}
