package handlers

import (
	"net/http"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/services"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	media *services.MediaService
	audit *services.AuditService
}

func NewMediaHandler(media *services.MediaService, audit *services.AuditService) *MediaHandler {
	return &MediaHandler{media: media, audit: audit}
}

// List godoc
// @Summary      Gallery files with view/download/favorite counters
// @Tags         media
// @Produce      json
// @Success      200 {array} services.MediaItem
// @Router       /api/public-media [get]
func (h *MediaHandler) List(c *gin.Context) {
	items, err := h.media.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Stats godoc
// @Summary      Aggregate gallery counters
// @Tags         media
// @Produce      json
// @Success      200 {object} services.MediaStats
// @Router       /api/public-media/stats [get]
func (h *MediaHandler) Stats(c *gin.Context) {
	stats, err := h.media.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

type MediaEventRequest struct {
	Event string `json:"event"`
}

// Event godoc
// @Summary      Record a view, download or favorite on a gallery file
// @Tags         media
// @Accept       json
// @Produce      json
// @Param        name path string true "File name"
// @Param        request body MediaEventRequest true "Event kind"
// @Success      201 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/public-media/{name}/event [post]
func (h *MediaHandler) Event(c *gin.Context) {
	var req MediaEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide."})
		return
	}

	if err := h.media.RecordEvent(c.Param("name"), req.Event); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Enregistré."})
}

// AdminDelete godoc
// @Summary      Admin: remove a gallery file from disk
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "File name"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/media/{name} [delete]
func (h *MediaHandler) AdminDelete(c *gin.Context) {
	name := c.Param("name")
	if err := h.media.Delete(name); err != nil {
		respondError(c, err)
		return
	}

	h.audit.Record("media.delete", gin.H{"name": name}, clientIP(c))
	c.JSON(http.StatusOK, MessageResponse{Message: "Fichier supprimé."})
}
