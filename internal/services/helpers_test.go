package services

import (
	"testing"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test its own in-memory database. The single
// connection keeps sqlite from seeing a fresh empty :memory: file per
// pooled connection.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Candidate{},
		&models.Vote{},
		&models.Score{},
		&models.TournamentSettings{},
		&models.ContactMessage{},
		&models.Post{},
		&models.Story{},
		&models.Donation{},
		&models.Engagement{},
		&models.Share{},
		&models.Poll{},
		&models.PollVote{},
		&models.MediaStat{},
		&models.AdminConfig{},
		&models.AdminAudit{},
	))

	require.NoError(t, db.Create(&models.TournamentSettings{ID: models.SettingsRowID}).Error)
	return db
}

type fakeMailer struct {
	sent []string
}

func (m *fakeMailer) Send(to, subject, body string) {
	m.sent = append(m.sent, to+": "+subject)
}

func openSettings(t *testing.T, db *gorm.DB, voting, registration bool) *models.TournamentSettings {
	t.Helper()

	votingFlag, lockedFlag := 0, 0
	if voting {
		votingFlag = 1
	}
	if !registration {
		lockedFlag = 1
	}
	err := db.Model(&models.TournamentSettings{}).
		Where("id = ?", models.SettingsRowID).
		Updates(map[string]interface{}{
			"voting_enabled":      votingFlag,
			"registration_locked": lockedFlag,
		}).Error
	require.NoError(t, err)

	var settings models.TournamentSettings
	require.NoError(t, db.First(&settings, models.SettingsRowID).Error)
	return &settings
}

func seedCandidate(t *testing.T, db *gorm.DB, name, whatsapp, status string) *models.Candidate {
	t.Helper()

	candidate := models.Candidate{
		FullName: name,
		Whatsapp: whatsapp,
		Status:   status,
	}
	require.NoError(t, db.Create(&candidate).Error)
	return &candidate
}
