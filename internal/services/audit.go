package services

import (
	"encoding/json"
	"log"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"

	"gorm.io/gorm"
)

// AuditService writes admin action rows. Auditing is best-effort: a failed
// write is logged and never fails the action it describes.
type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

func (s *AuditService) Record(action string, payload interface{}, ip string) {
	entry := models.AdminAudit{Action: action, IP: ip}
	if payload != nil {
		if raw, err := json.Marshal(payload); err == nil {
			if len(raw) > 2000 {
				raw = raw[:2000]
			}
			entry.Payload = string(raw)
		}
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("audit write failed for %s: %v", action, err)
	}
}
