package handlers

import (
	"net/http"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PublicHandler serves the read-only endpoints the visitor pages poll.
type PublicHandler struct {
	db         *gorm.DB
	candidates *services.CandidateService
	voting     *services.VotingService
	scoring    *services.ScoringService
	settings   *services.SettingsService
}

func NewPublicHandler(
	db *gorm.DB,
	candidates *services.CandidateService,
	voting *services.VotingService,
	scoring *services.ScoringService,
	settings *services.SettingsService,
) *PublicHandler {
	return &PublicHandler{
		db:         db,
		candidates: candidates,
		voting:     voting,
		scoring:    scoring,
		settings:   settings,
	}
}

// Health godoc
// @Summary      Health check
// @Tags         public
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /api/health [get]
func (h *PublicHandler) Health(c *gin.Context) {
	if err := h.db.Exec("SELECT 1").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "database": "error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
}

// Candidates godoc
// @Summary      List approved candidates with vote totals
// @Tags         public
// @Produce      json
// @Success      200 {array} services.PublicCandidate
// @Router       /api/public-candidates [get]
func (h *PublicHandler) Candidates(c *gin.Context) {
	list, err := h.candidates.PublicList()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type PublicSettingsResponse struct {
	VotingEnabled      int    `json:"votingEnabled"`
	RegistrationLocked int    `json:"registrationLocked"`
	CompetitionClosed  int    `json:"competitionClosed"`
	AnnouncementText   string `json:"announcementText"`
	ScheduleJSON       string `json:"scheduleJson"`
}

// Settings godoc
// @Summary      Public feature flags and announcement
// @Tags         public
// @Produce      json
// @Success      200 {object} PublicSettingsResponse
// @Router       /api/tournament-settings [get]
func (h *PublicHandler) Settings(c *gin.Context) {
	settings, err := h.settings.Get()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, PublicSettingsResponse{
		VotingEnabled:      settings.VotingEnabled,
		RegistrationLocked: settings.RegistrationLocked,
		CompetitionClosed:  settings.CompetitionClosed,
		AnnouncementText:   settings.AnnouncementText,
		ScheduleJSON:       settings.ScheduleJSON,
	})
}

type PublicResultsResponse struct {
	Candidates []services.PublicCandidate `json:"candidates"`
	Ranking    []services.RankingEntry    `json:"ranking"`
	Stats      PublicResultsStats         `json:"stats"`
}

type PublicResultsStats struct {
	TotalCandidates int   `json:"totalCandidates"`
	TotalVotes      int64 `json:"totalVotes"`
	Countries       int   `json:"countries"`
	Cities          int   `json:"cities"`
}

// Results godoc
// @Summary      Public results: candidates, ranking and aggregate stats
// @Tags         public
// @Produce      json
// @Success      200 {object} PublicResultsResponse
// @Router       /api/public-results [get]
func (h *PublicHandler) Results(c *gin.Context) {
	candidates, err := h.candidates.PublicList()
	if err != nil {
		respondError(c, err)
		return
	}
	ranking, err := h.scoring.Ranking()
	if err != nil {
		respondError(c, err)
		return
	}

	stats := PublicResultsStats{TotalCandidates: len(candidates)}
	countries := make(map[string]struct{})
	cities := make(map[string]struct{})
	for _, candidate := range candidates {
		stats.TotalVotes += candidate.TotalVotes
		if candidate.Country != "" {
			countries[candidate.Country] = struct{}{}
		}
		if candidate.City != "" {
			cities[candidate.City] = struct{}{}
		}
	}
	stats.Countries = len(countries)
	stats.Cities = len(cities)

	c.JSON(http.StatusOK, PublicResultsResponse{
		Candidates: candidates,
		Ranking:    ranking,
		Stats:      stats,
	})
}
