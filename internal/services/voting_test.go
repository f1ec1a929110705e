package services

import (
	"testing"
	"time"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/apperr"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastVoteRequiresOpenVoting(t *testing.T) {
	db := openTestDB(t)
	svc := NewVotingService(db)
	candidate := seedCandidate(t, db, "Awa Diabaté", "+22501020304", models.CandidateStatusApproved)

	settings := openSettings(t, db, false, true)
	err := svc.CastVote(VoteInput{CandidateID: candidate.ID}, "1.2.3.4", settings)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	settings = openSettings(t, db, true, true)
	require.NoError(t, svc.CastVote(VoteInput{CandidateID: candidate.ID}, "1.2.3.4", settings))
}

func TestCastVoteUnknownCandidate(t *testing.T) {
	db := openTestDB(t)
	svc := NewVotingService(db)
	settings := openSettings(t, db, true, true)

	err := svc.CastVote(VoteInput{CandidateID: 42}, "1.2.3.4", settings)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	err = svc.CastVote(VoteInput{}, "1.2.3.4", settings)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCastVoteSlidingWindow(t *testing.T) {
	db := openTestDB(t)
	svc := NewVotingService(db)
	settings := openSettings(t, db, true, true)
	candidate := seedCandidate(t, db, "Awa Diabaté", "+22501020304", models.CandidateStatusApproved)
	other := seedCandidate(t, db, "Moussa Koné", "+22505060708", models.CandidateStatusApproved)

	require.NoError(t, svc.CastVote(VoteInput{CandidateID: candidate.ID}, "1.2.3.4", settings))

	// Same IP, same candidate, inside the window.
	err := svc.CastVote(VoteInput{CandidateID: candidate.ID}, "1.2.3.4", settings)
	assert.True(t, apperr.IsKind(err, apperr.KindRateLimited))

	// Another candidate or another IP is fine.
	require.NoError(t, svc.CastVote(VoteInput{CandidateID: other.ID}, "1.2.3.4", settings))
	require.NoError(t, svc.CastVote(VoteInput{CandidateID: candidate.ID}, "5.6.7.8", settings))
}

func TestCastVoteOutsideWindowAccepted(t *testing.T) {
	db := openTestDB(t)
	svc := NewVotingService(db)
	settings := openSettings(t, db, true, true)
	candidate := seedCandidate(t, db, "Awa Diabaté", "+22501020304", models.CandidateStatusApproved)

	old := models.Vote{CandidateID: candidate.ID, IP: "1.2.3.4"}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Model(&models.Vote{}).
		Where("id = ?", old.ID).
		Update("created_at", time.Now().Add(-VoteWindow-time.Hour)).Error)

	require.NoError(t, svc.CastVote(VoteInput{CandidateID: candidate.ID}, "1.2.3.4", settings))

	// The old vote still counts toward the all-time total.
	count, err := svc.CountFor(candidate.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestSummaryOrdersByVotes(t *testing.T) {
	db := openTestDB(t)
	svc := NewVotingService(db)
	first := seedCandidate(t, db, "Awa Diabaté", "+22501020304", models.CandidateStatusApproved)
	second := seedCandidate(t, db, "Moussa Koné", "+22505060708", models.CandidateStatusApproved)

	for _, ip := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		require.NoError(t, db.Create(&models.Vote{CandidateID: second.ID, IP: ip}).Error)
	}
	require.NoError(t, db.Create(&models.Vote{CandidateID: first.ID, IP: "1.1.1.1"}).Error)

	summary, err := svc.Summary()
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, second.ID, summary[0].CandidateID)
	assert.EqualValues(t, 3, summary[0].TotalVotes)
	assert.EqualValues(t, 1, summary[1].TotalVotes)
}
