package services

import (
	"testing"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/apperr"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPoll(t *testing.T, svc *PollService, active bool) *models.Poll {
	t.Helper()
	poll := models.Poll{
		Question:    "Comment suivez-vous la compétition ?",
		OptionsJSON: `["Sur place","En ligne","Les deux"]`,
		Active:      active,
	}
	require.NoError(t, svc.db.Create(&poll).Error)
	return &poll
}

func TestActivePoll(t *testing.T) {
	svc := NewPollService(openTestDB(t))

	_, err := svc.Active()
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	seedPoll(t, svc, false)
	poll := seedPoll(t, svc, true)

	result, err := svc.Active()
	require.NoError(t, err)
	assert.Equal(t, poll.ID, result.Poll.ID)
	assert.Equal(t, []string{"Sur place", "En ligne", "Les deux"}, result.Poll.Options)
	assert.EqualValues(t, 0, result.Counts["Sur place"])
}

func TestPollVoteOncePerIP(t *testing.T) {
	svc := NewPollService(openTestDB(t))
	poll := seedPoll(t, svc, true)

	result, err := svc.Vote(poll.ID, "En ligne", "1.2.3.4")
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Counts["En ligne"])

	// Same IP again, even with a different option.
	_, err = svc.Vote(poll.ID, "Sur place", "1.2.3.4")
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	result, err = svc.Vote(poll.ID, "En ligne", "5.6.7.8")
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.Counts["En ligne"])
}

func TestPollVoteValidation(t *testing.T) {
	svc := NewPollService(openTestDB(t))
	poll := seedPoll(t, svc, true)

	_, err := svc.Vote(poll.ID, "Par télépathie", "1.2.3.4")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.Vote(999, "En ligne", "1.2.3.4")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
