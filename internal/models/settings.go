package models

import "time"

// TournamentSettings is a singleton row (id is always 1). Every public
// endpoint that gates on registration/voting reads it, only the admin
// writes it.
type TournamentSettings struct {
	ID                      int       `gorm:"primaryKey" json:"id"`
	MaxCandidates           int       `gorm:"not null;default:64" json:"maxCandidates"`
	DirectQualified         int       `gorm:"not null;default:16" json:"directQualified"`
	PlayoffParticipants     int       `gorm:"not null;default:32" json:"playoffParticipants"`
	PlayoffWinners          int       `gorm:"not null;default:16" json:"playoffWinners"`
	GroupsCount             int       `gorm:"not null;default:8" json:"groupsCount"`
	CandidatesPerGroup      int       `gorm:"not null;default:4" json:"candidatesPerGroup"`
	FinalistsFromWinners    int       `gorm:"not null;default:8" json:"finalistsFromWinners"`
	FinalistsFromBestSecond int       `gorm:"not null;default:2" json:"finalistsFromBestSecond"`
	TotalFinalists          int       `gorm:"not null;default:10" json:"totalFinalists"`
	VotingEnabled           int       `gorm:"not null;default:0" json:"votingEnabled"`
	RegistrationLocked      int       `gorm:"not null;default:0" json:"registrationLocked"`
	CompetitionClosed       int       `gorm:"not null;default:0" json:"competitionClosed"`
	AnnouncementText        string    `gorm:"default:''" json:"announcementText"`
	ScheduleJSON            string    `gorm:"column:schedule_json;default:'[]'" json:"scheduleJson"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

func (TournamentSettings) TableName() string {
	return "tournament_settings"
}

const SettingsRowID = 1

func (s *TournamentSettings) RegistrationOpen() bool {
	return s.RegistrationLocked != 1 && s.CompetitionClosed != 1
}

func (s *TournamentSettings) VotingOpen() bool {
	return s.VotingEnabled == 1 && s.CompetitionClosed != 1
}
