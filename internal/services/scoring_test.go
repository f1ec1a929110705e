package services

import (
	"testing"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/apperr"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitScoreValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewScoringService(db)

	err := svc.SubmitScore(ScoreInput{JudgeName: "Juge 1"})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	err = svc.SubmitScore(ScoreInput{CandidateID: 1})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	err = svc.SubmitScore(ScoreInput{CandidateID: 42, JudgeName: "Juge 1"})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestSubmitScoreAllowsMultiplePassages(t *testing.T) {
	db := openTestDB(t)
	svc := NewScoringService(db)
	candidate := seedCandidate(t, db, "Awa Diabaté", "+22501020304", models.CandidateStatusApproved)

	require.NoError(t, svc.SubmitScore(ScoreInput{
		CandidateID: candidate.ID, JudgeName: "Juge 1",
		ThemeChosenScore: 8, ThemeImposedScore: 7,
	}))
	require.NoError(t, svc.SubmitScore(ScoreInput{
		CandidateID: candidate.ID, JudgeName: "Juge 1",
		ThemeChosenScore: 9, ThemeImposedScore: 9,
	}))

	var count int64
	db.Model(&models.Score{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestRankingAveragesAndNullsLast(t *testing.T) {
	db := openTestDB(t)
	svc := NewScoringService(db)

	strong := seedCandidate(t, db, "Awa Diabaté", "+22501020304", models.CandidateStatusApproved)
	weak := seedCandidate(t, db, "Moussa Koné", "+22505060708", models.CandidateStatusApproved)
	unscored := seedCandidate(t, db, "Fatou Traoré", "+22509080706", models.CandidateStatusApproved)

	// strong: (8+7) and (9+9) -> average 16.5 over 2 passages
	require.NoError(t, svc.SubmitScore(ScoreInput{CandidateID: strong.ID, JudgeName: "Juge 1", ThemeChosenScore: 8, ThemeImposedScore: 7}))
	require.NoError(t, svc.SubmitScore(ScoreInput{CandidateID: strong.ID, JudgeName: "Juge 2", ThemeChosenScore: 9, ThemeImposedScore: 9}))
	// weak: (5+5) -> average 10 over 1 passage
	require.NoError(t, svc.SubmitScore(ScoreInput{CandidateID: weak.ID, JudgeName: "Juge 1", ThemeChosenScore: 5, ThemeImposedScore: 5}))

	ranking, err := svc.Ranking()
	require.NoError(t, err)
	require.Len(t, ranking, 3)

	assert.Equal(t, strong.ID, ranking[0].CandidateID)
	require.NotNil(t, ranking[0].AverageScore)
	assert.InDelta(t, 16.5, *ranking[0].AverageScore, 0.001)
	assert.EqualValues(t, 2, ranking[0].Passages)

	assert.Equal(t, weak.ID, ranking[1].CandidateID)
	require.NotNil(t, ranking[1].AverageScore)
	assert.InDelta(t, 10, *ranking[1].AverageScore, 0.001)

	// No passages means a nil average, never zero.
	assert.Equal(t, unscored.ID, ranking[2].CandidateID)
	assert.Nil(t, ranking[2].AverageScore)
	assert.Zero(t, ranking[2].Passages)
}
