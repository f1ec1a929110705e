package services

import (
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/apperr"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"

	"gorm.io/gorm"
)

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get returns the singleton settings row. Callers that gate on it fetch it
// once per request and pass it down explicitly instead of holding a global.
func (s *SettingsService) Get() (*models.TournamentSettings, error) {
	var settings models.TournamentSettings
	if err := s.db.First(&settings, models.SettingsRowID).Error; err != nil {
		return nil, apperr.Dependency("Erreur serveur", err)
	}
	return &settings, nil
}

type SettingsUpdate struct {
	VotingEnabled      int    `json:"votingEnabled"`
	RegistrationLocked int    `json:"registrationLocked"`
	CompetitionClosed  int    `json:"competitionClosed"`
	AnnouncementText   string `json:"announcementText"`
	ScheduleJSON       string `json:"scheduleJson"`
}

func (s *SettingsService) Update(update SettingsUpdate) error {
	values := map[string]interface{}{
		"voting_enabled":      boolToFlag(update.VotingEnabled),
		"registration_locked": boolToFlag(update.RegistrationLocked),
		"competition_closed":  boolToFlag(update.CompetitionClosed),
		"announcement_text":   update.AnnouncementText,
	}
	if update.ScheduleJSON != "" {
		values["schedule_json"] = update.ScheduleJSON
	}

	err := s.db.Model(&models.TournamentSettings{}).
		Where("id = ?", models.SettingsRowID).
		Updates(values).Error
	if err != nil {
		return apperr.Dependency("Erreur serveur", err)
	}
	return nil
}

// Flags are stored as 0/1 ints; anything non-zero from the client counts as
// enabled.
func boolToFlag(v int) int {
	if v != 0 {
		return 1
	}
	return 0
}
