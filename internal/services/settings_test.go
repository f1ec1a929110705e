package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsUpdateAndFlags(t *testing.T) {
	db := openTestDB(t)
	svc := NewSettingsService(db)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.True(t, settings.RegistrationOpen())
	assert.False(t, settings.VotingOpen())

	require.NoError(t, svc.Update(SettingsUpdate{
		VotingEnabled:    1,
		AnnouncementText: "Les votes sont ouverts !",
	}))

	settings, err = svc.Get()
	require.NoError(t, err)
	assert.True(t, settings.VotingOpen())
	assert.Equal(t, "Les votes sont ouverts !", settings.AnnouncementText)

	// Any non-zero flag is treated as enabled.
	require.NoError(t, svc.Update(SettingsUpdate{CompetitionClosed: 7}))
	settings, err = svc.Get()
	require.NoError(t, err)
	assert.False(t, settings.RegistrationOpen())
	assert.False(t, settings.VotingOpen())
}
