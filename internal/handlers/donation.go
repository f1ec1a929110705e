package handlers

import (
	"net/http"
	"strconv"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/services"

	"github.com/gin-gonic/gin"
)

type DonationHandler struct {
	donations *services.DonationService
	audit     *services.AuditService
}

func NewDonationHandler(donations *services.DonationService, audit *services.AuditService) *DonationHandler {
	return &DonationHandler{donations: donations, audit: audit}
}

type DonationResponse struct {
	Message    string `json:"message"`
	DonationID uint   `json:"donationId"`
}

// Submit godoc
// @Summary      Declare a donation (starts pending)
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        request body services.DonationInput true "Donation"
// @Success      201 {object} DonationResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/donations [post]
func (h *DonationHandler) Submit(c *gin.Context) {
	var input services.DonationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide."})
		return
	}

	donation, err := h.donations.Submit(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, DonationResponse{
		Message:    "Don enregistré. Il apparaîtra après confirmation.",
		DonationID: donation.ID,
	})
}

// Summary godoc
// @Summary      Public donation totals (confirmed only)
// @Tags         donations
// @Produce      json
// @Param        limit query int false "Recent donations to include, default 20"
// @Success      200 {object} services.DonationSummary
// @Router       /api/donations [get]
func (h *DonationHandler) Summary(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	summary, err := h.donations.PublicSummary(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// AdminList godoc
// @Summary      Admin: all donations with status
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Donation
// @Router       /api/admin/donations [get]
func (h *DonationHandler) AdminList(c *gin.Context) {
	donations, err := h.donations.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, donations)
}

// AdminSetStatus godoc
// @Summary      Admin: change a donation status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Donation ID"
// @Param        request body StatusRequest true "New status"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/donations/{id} [put]
func (h *DonationHandler) AdminSetStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Identifiant invalide."})
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide."})
		return
	}

	if _, err := h.donations.SetStatus(uint(id), req.Status); err != nil {
		respondError(c, err)
		return
	}

	h.audit.Record("donation.status", gin.H{"id": id, "status": req.Status}, clientIP(c))
	c.JSON(http.StatusOK, MessageResponse{Message: "Don mis à jour."})
}
