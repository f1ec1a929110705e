package services

import (
	"errors"
	"time"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/apperr"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/validation"

	"gorm.io/gorm"
)

// VoteWindow is the sliding window during which one IP may vote once per
// candidate. It gates only the admission of new votes; reported totals are
// always all-time.
const VoteWindow = 24 * time.Hour

type VotingService struct {
	db *gorm.DB
}

func NewVotingService(db *gorm.DB) *VotingService {
	return &VotingService{db: db}
}

type VoteInput struct {
	CandidateID  uint   `json:"candidateId"`
	VoterName    string `json:"voterName"`
	VoterContact string `json:"voterContact"`
}

// CastVote records one vote for a candidate. The window check is
// check-then-act with no backing constraint: two truly simultaneous votes
// from one IP can both land. That narrow race is a documented limitation.
func (s *VotingService) CastVote(input VoteInput, ip string, settings *models.TournamentSettings) error {
	if input.CandidateID == 0 {
		return apperr.Validation("Candidate ID requis.")
	}
	if !settings.VotingOpen() {
		return apperr.Forbidden("Votes fermés.")
	}

	var candidate models.Candidate
	if err := s.db.First(&candidate, input.CandidateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Candidat introuvable.")
		}
		return apperr.Dependency("Erreur serveur", err)
	}

	var recent int64
	err := s.db.Model(&models.Vote{}).
		Where("candidate_id = ? AND ip = ? AND created_at > ?",
			input.CandidateID, ip, time.Now().Add(-VoteWindow)).
		Count(&recent).Error
	if err != nil {
		return apperr.Dependency("Erreur serveur", err)
	}
	if recent > 0 {
		return apperr.RateLimited("Vote déjà enregistré pour ce candidat.")
	}

	vote := models.Vote{
		CandidateID:  input.CandidateID,
		VoterName:    validation.SanitizeString(input.VoterName, 255),
		VoterContact: validation.SanitizeString(input.VoterContact, 120),
		IP:           ip,
	}
	if err := s.db.Create(&vote).Error; err != nil {
		return apperr.Dependency("Erreur serveur", err)
	}
	return nil
}

type VoteSummary struct {
	CandidateID uint   `json:"id"`
	FullName    string `json:"fullName"`
	TotalVotes  int64  `json:"totalVotes"`
}

// Summary counts all-time votes per candidate, most voted first.
func (s *VotingService) Summary() ([]VoteSummary, error) {
	var summary []VoteSummary
	err := s.db.Model(&models.Candidate{}).
		Select("candidates.id AS candidate_id, candidates.full_name, COUNT(votes.id) AS total_votes").
		Joins("LEFT JOIN votes ON votes.candidate_id = candidates.id").
		Group("candidates.id, candidates.full_name").
		Order("total_votes DESC").
		Scan(&summary).Error
	if err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return summary, nil
}

// CountFor returns the all-time vote count of one candidate.
func (s *VotingService) CountFor(candidateID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Vote{}).Where("candidate_id = ?", candidateID).Count(&count).Error
	if err != nil {
		return 0, apperr.Dependency("Erreur serveur", err)
	}
	return count, nil
}
