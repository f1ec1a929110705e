package database

import (
	"fmt"
	"log"
	"time"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/config"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Bounded pool: requests fail fast instead of queueing behind a stalled
	// database.
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
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
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	Seed(db)
	log.Println("database migrated")
}

// Seed inserts the singleton rows every deployment expects: the settings row
// (id=1) and a default visitor poll. Both inserts are no-ops when the rows
// already exist.
func Seed(db *gorm.DB) {
	db.Where(models.TournamentSettings{ID: models.SettingsRowID}).
		FirstOrCreate(&models.TournamentSettings{ID: models.SettingsRowID, ScheduleJSON: "[]"})

	var pollCount int64
	db.Model(&models.Poll{}).Count(&pollCount)
	if pollCount == 0 {
		db.Create(&models.Poll{
			Question:    "Comment suivez-vous la compétition ?",
			OptionsJSON: `["Sur place","En ligne","Les deux"]`,
			Active:      true,
		})
	}
}

// BackfillCandidateCodes repairs rows left without a code by the historical
// non-transactional insert path.
func BackfillCandidateCodes(db *gorm.DB, codePrefix string) {
	var candidates []models.Candidate
	if err := db.Where("candidate_code IS NULL OR candidate_code = ''").Find(&candidates).Error; err != nil {
		log.Printf("candidate code backfill query failed: %v", err)
		return
	}
	for _, c := range candidates {
		code := fmt.Sprintf("%s-%03d", codePrefix, c.ID)
		if err := db.Model(&models.Candidate{}).Where("id = ?", c.ID).
			Update("candidate_code", code).Error; err != nil {
			log.Printf("candidate code backfill failed for id=%d: %v", c.ID, err)
		}
	}
	if len(candidates) > 0 {
		log.Printf("backfilled %d candidate codes", len(candidates))
	}
}
