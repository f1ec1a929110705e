package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/config"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/services"

	"github.com/gin-gonic/gin"
)

// CandidateHandler covers public registration and the admin roster CRUD.
type CandidateHandler struct {
	candidates *services.CandidateService
	settings   *services.SettingsService
	audit      *services.AuditService
	cfg        *config.Config
}

func NewCandidateHandler(
	candidates *services.CandidateService,
	settings *services.SettingsService,
	audit *services.AuditService,
	cfg *config.Config,
) *CandidateHandler {
	return &CandidateHandler{candidates: candidates, settings: settings, audit: audit, cfg: cfg}
}

type RegisterResponse struct {
	Message          string `json:"message"`
	CandidateID      uint   `json:"candidateId"`
	CandidateCode    string `json:"candidateCode"`
	WhatsappRedirect string `json:"whatsappRedirect,omitempty"`
}

// Register godoc
// @Summary      Public candidate self-registration
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        request body services.CandidateInput true "Candidate data"
// @Success      201 {object} RegisterResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/register [post]
func (h *CandidateHandler) Register(c *gin.Context) {
	var input services.CandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide."})
		return
	}
	if input.Country == "" {
		input.Country = h.cfg.DefaultCountry
	}

	settings, err := h.settings.Get()
	if err != nil {
		respondError(c, err)
		return
	}

	candidate, err := h.candidates.Register(input, settings)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := RegisterResponse{
		Message:       "Inscription enregistrée. Un email de confirmation vous a été envoyé.",
		CandidateID:   candidate.ID,
		CandidateCode: candidate.CandidateCode,
	}
	if h.cfg.AdminWhatsapp != "" {
		msg := fmt.Sprintf("Assalamou alaykoum, je confirme mon inscription. Mon ID candidat est %d.", candidate.ID)
		resp.WhatsappRedirect = fmt.Sprintf("https://wa.me/%s?text=%s", h.cfg.AdminWhatsapp, url.QueryEscape(msg))
	}
	c.JSON(http.StatusCreated, resp)
}

// AdminCreate godoc
// @Summary      Admin: add a candidate
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.CandidateInput true "Candidate data"
// @Success      201 {object} RegisterResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/admin/candidates [post]
func (h *CandidateHandler) AdminCreate(c *gin.Context) {
	var input services.CandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide."})
		return
	}

	candidate, err := h.candidates.AdminUpsert(0, input)
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit.Record("candidate.create", gin.H{"id": candidate.ID}, clientIP(c))
	c.JSON(http.StatusCreated, RegisterResponse{
		Message:       "Candidat ajouté.",
		CandidateID:   candidate.ID,
		CandidateCode: candidate.CandidateCode,
	})
}

// AdminUpdate godoc
// @Summary      Admin: update a candidate
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Candidate ID"
// @Param        request body services.CandidateInput true "Candidate data"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/candidates/{id} [put]
func (h *CandidateHandler) AdminUpdate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Identifiant invalide."})
		return
	}

	var input services.CandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide."})
		return
	}

	if _, err := h.candidates.AdminUpsert(uint(id), input); err != nil {
		respondError(c, err)
		return
	}

	h.audit.Record("candidate.update", gin.H{"id": id}, clientIP(c))
	c.JSON(http.StatusOK, MessageResponse{Message: "Candidat mis à jour."})
}

// AdminDelete godoc
// @Summary      Admin: delete a candidate and its votes/scores
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Candidate ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/candidates/{id} [delete]
func (h *CandidateHandler) AdminDelete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Identifiant invalide."})
		return
	}

	if err := h.candidates.Delete(uint(id)); err != nil {
		respondError(c, err)
		return
	}

	h.audit.Record("candidate.delete", gin.H{"id": id}, clientIP(c))
	c.JSON(http.StatusOK, MessageResponse{Message: "Candidat supprimé."})
}

type BulkReplaceRequest struct {
	Candidates []services.CandidateInput `json:"candidates"`
}

type BulkReplaceResponse struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
}

// AdminBulkReplace godoc
// @Summary      Admin: replace the whole roster from a curated list
// @Description  Deletes every candidate (with votes and scores) and reinserts the given list in one transaction.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body BulkReplaceRequest true "New roster"
// @Success      200 {object} BulkReplaceResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/admin/candidates/bulk-replace [post]
func (h *CandidateHandler) AdminBulkReplace(c *gin.Context) {
	var req BulkReplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide."})
		return
	}
	if len(req.Candidates) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Liste vide."})
		return
	}

	imported, err := h.candidates.BulkReplace(req.Candidates)
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit.Record("candidate.bulk-replace", gin.H{"count": imported}, clientIP(c))
	c.JSON(http.StatusOK, BulkReplaceResponse{Message: "Liste remplacée.", Imported: imported})
}
