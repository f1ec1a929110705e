package handlers

import (
	"net/http"
	"strconv"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contacts *services.ContactService
	audit    *services.AuditService
}

func NewContactHandler(contacts *services.ContactService, audit *services.AuditService) *ContactHandler {
	return &ContactHandler{contacts: contacts, audit: audit}
}

// Submit godoc
// @Summary      Send a contact message to the organizers
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request body services.ContactInput true "Message"
// @Success      201 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      429 {object} ErrorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var input services.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide."})
		return
	}

	if err := h.contacts.Submit(input, clientIP(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Message envoyé. Nous vous répondrons rapidement."})
}

// AdminList godoc
// @Summary      Admin: list contact messages
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.ContactMessage
// @Router       /api/admin/contact-messages [get]
func (h *ContactHandler) AdminList(c *gin.Context) {
	messages, err := h.contacts.List(500)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

type ArchiveRequest struct {
	Archived bool `json:"archived"`
}

// AdminArchive godoc
// @Summary      Admin: archive or restore a contact message
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Message ID"
// @Param        request body ArchiveRequest true "Archive flag"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/contact-messages/{id} [put]
func (h *ContactHandler) AdminArchive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Identifiant invalide."})
		return
	}

	var req ArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide."})
		return
	}

	if err := h.contacts.SetArchived(uint(id), req.Archived); err != nil {
		respondError(c, err)
		return
	}

	h.audit.Record("contact.archive", gin.H{"id": id, "archived": req.Archived}, clientIP(c))
	c.JSON(http.StatusOK, MessageResponse{Message: "Message mis à jour."})
}

// AdminDelete godoc
// @Summary      Admin: delete a contact message
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Message ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/contact-messages/{id} [delete]
func (h *ContactHandler) AdminDelete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Identifiant invalide."})
		return
	}

	if err := h.contacts.Delete(uint(id)); err != nil {
		respondError(c, err)
		return
	}

	h.audit.Record("contact.delete", gin.H{"id": id}, clientIP(c))
	c.JSON(http.StatusOK, MessageResponse{Message: "Message supprimé."})
}
