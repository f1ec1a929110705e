package handlers

import (
	"net/http"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler groups the authenticated surface that does not belong to a
// dedicated resource handler: login, password change, settings, scoring and
// the dashboard aggregate.
type AdminHandler struct {
	auth      *services.AuthService
	settings  *services.SettingsService
	scoring   *services.ScoringService
	dashboard *services.DashboardService
	audit     *services.AuditService
}

func NewAdminHandler(
	auth *services.AuthService,
	settings *services.SettingsService,
	scoring *services.ScoringService,
	dashboard *services.DashboardService,
	audit *services.AuditService,
) *AdminHandler {
	return &AdminHandler{auth: auth, settings: settings, scoring: scoring, dashboard: dashboard, audit: audit}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Login godoc
// @Summary      Admin login, returns a JWT
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} LoginResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide."})
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit.Record("admin.login", gin.H{"username": req.Username}, clientIP(c))
	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword godoc
// @Summary      Admin: change the password
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ChangePasswordRequest true "Current and new password"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/admin/change-password [post]
func (h *AdminHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide."})
		return
	}

	if err := h.auth.ChangePassword(req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	h.audit.Record("admin.change-password", nil, clientIP(c))
	c.JSON(http.StatusOK, MessageResponse{Message: "Mot de passe modifié."})
}

// Dashboard godoc
// @Summary      Admin: full dashboard aggregate
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} services.Dashboard
// @Router       /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.dashboard.Build()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// UpdateSettings godoc
// @Summary      Admin: update tournament settings
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.SettingsUpdate true "Settings flags"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/tournament-settings [put]
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var update services.SettingsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide."})
		return
	}

	if err := h.settings.Update(update); err != nil {
		respondError(c, err)
		return
	}

	h.audit.Record("settings.update", update, clientIP(c))
	c.JSON(http.StatusOK, MessageResponse{Message: "Paramètres mis à jour."})
}

// SubmitScore godoc
// @Summary      Admin: record a judge score for a passage
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.ScoreInput true "Score"
// @Success      201 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/scores [post]
func (h *AdminHandler) SubmitScore(c *gin.Context) {
	var input services.ScoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide."})
		return
	}

	if err := h.scoring.SubmitScore(input); err != nil {
		respondError(c, err)
		return
	}

	h.audit.Record("score.submit", gin.H{"candidateId": input.CandidateID, "judge": input.JudgeName}, clientIP(c))
	c.JSON(http.StatusCreated, MessageResponse{Message: "Note enregistrée."})
}

// Ranking godoc
// @Summary      Jury ranking by average score
// @Tags         scores
// @Produce      json
// @Success      200 {array} services.RankingEntry
// @Router       /api/scores/ranking [get]
func (h *AdminHandler) Ranking(c *gin.Context) {
	ranking, err := h.scoring.Ranking()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranking)
}
