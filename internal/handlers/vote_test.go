package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newVoteRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Candidate{}, &models.Vote{}, &models.TournamentSettings{},
	))
	require.NoError(t, db.Create(&models.TournamentSettings{
		ID:            models.SettingsRowID,
		VotingEnabled: 1,
	}).Error)

	handler := NewVoteHandler(services.NewVotingService(db), services.NewSettingsService(db))
	r := gin.New()
	r.POST("/api/votes", handler.Cast)
	r.GET("/api/votes", handler.Summary)
	return r, db
}

func postVote(r *gin.Engine, candidateID uint, ip string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(gin.H{"candidateId": candidateID})
	req := httptest.NewRequest(http.MethodPost, "/api/votes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", ip)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCastVoteEndpoint(t *testing.T) {
	r, db := newVoteRouter(t)
	candidate := models.Candidate{FullName: "Awa Diabaté", Whatsapp: "+22501020304", Status: models.CandidateStatusApproved}
	require.NoError(t, db.Create(&candidate).Error)

	w := postVote(r, candidate.ID, "1.2.3.4")
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp VoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp.Votes)

	// Same IP inside the window.
	w = postVote(r, candidate.ID, "1.2.3.4")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Unknown candidate.
	w = postVote(r, 999, "1.2.3.4")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCastVoteEndpointClosed(t *testing.T) {
	r, db := newVoteRouter(t)
	candidate := models.Candidate{FullName: "Awa Diabaté", Whatsapp: "+22501020304", Status: models.CandidateStatusApproved}
	require.NoError(t, db.Create(&candidate).Error)

	require.NoError(t, db.Model(&models.TournamentSettings{}).
		Where("id = ?", models.SettingsRowID).
		Update("voting_enabled", 0).Error)

	w := postVote(r, candidate.ID, "1.2.3.4")
	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Votes fermés.", resp.Message)
}

func TestVoteSummaryEndpoint(t *testing.T) {
	r, db := newVoteRouter(t)
	candidate := models.Candidate{FullName: "Awa Diabaté", Whatsapp: "+22501020304", Status: models.CandidateStatusApproved}
	require.NoError(t, db.Create(&candidate).Error)
	require.NoError(t, db.Create(&models.Vote{CandidateID: candidate.ID, IP: "1.2.3.4"}).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/votes", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var summary []services.VoteSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.Len(t, summary, 1)
	assert.EqualValues(t, 1, summary[0].TotalVotes)
}
