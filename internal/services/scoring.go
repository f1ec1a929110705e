package services

import (
	"errors"
	"sort"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/apperr"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/validation"

	"gorm.io/gorm"
)

type ScoringService struct {
	db *gorm.DB
}

func NewScoringService(db *gorm.DB) *ScoringService {
	return &ScoringService{db: db}
}

type ScoreInput struct {
	CandidateID       uint    `json:"candidateId"`
	JudgeName         string  `json:"judgeName"`
	ThemeChosenScore  float64 `json:"themeChosenScore"`
	ThemeImposedScore float64 `json:"themeImposedScore"`
	Notes             string  `json:"notes"`
}

// SubmitScore records one passage. A judge may score the same candidate any
// number of times; each submission is its own row.
func (s *ScoringService) SubmitScore(input ScoreInput) error {
	if input.CandidateID == 0 || input.JudgeName == "" {
		return apperr.Validation("Candidat et juge obligatoires.")
	}

	var candidate models.Candidate
	if err := s.db.First(&candidate, input.CandidateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Candidat introuvable.")
		}
		return apperr.Dependency("Erreur serveur", err)
	}

	score := models.Score{
		CandidateID:       input.CandidateID,
		JudgeName:         validation.SanitizeString(input.JudgeName, 100),
		ThemeChosenScore:  input.ThemeChosenScore,
		ThemeImposedScore: input.ThemeImposedScore,
		Notes:             validation.SanitizeString(input.Notes, 500),
	}
	if err := s.db.Create(&score).Error; err != nil {
		return apperr.Dependency("Erreur serveur", err)
	}
	return nil
}

type RankingEntry struct {
	CandidateID  uint     `json:"id"`
	FullName     string   `json:"fullName"`
	AverageScore *float64 `json:"averageScore"`
	Passages     int64    `json:"passages"`
}

// Ranking computes, per candidate, the mean of (chosen + imposed) over its
// passages and the passage count. The two are independent: a candidate with
// no passages has a nil average (serialized as null, displayed as "-"),
// never zero. Order is average descending, candidates without scores last.
func (s *ScoringService) Ranking() ([]RankingEntry, error) {
	type rankingRow struct {
		CandidateID  uint
		FullName     string
		AverageScore *float64
		Passages     int64
	}

	var rows []rankingRow
	err := s.db.Model(&models.Candidate{}).
		Select(`candidates.id AS candidate_id, candidates.full_name,
			AVG(scores.theme_chosen_score + scores.theme_imposed_score) AS average_score,
			COUNT(scores.id) AS passages`).
		Joins("LEFT JOIN scores ON scores.candidate_id = candidates.id").
		Group("candidates.id, candidates.full_name").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}

	entries := make([]RankingEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, RankingEntry{
			CandidateID:  row.CandidateID,
			FullName:     row.FullName,
			AverageScore: row.AverageScore,
			Passages:     row.Passages,
		})
	}

	// Nulls last, then highest average first.
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].AverageScore, entries[j].AverageScore
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})

	return entries, nil
}
