package handlers

import (
	"log"
	"net/http"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/apperr"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/middleware"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Message string `json:"message" example:"Requête invalide."`
}

type MessageResponse struct {
	Message string `json:"message" example:"Opération réussie."`
}

// Type aliases so swag can resolve models in annotations.
type Candidate = models.Candidate
type Post = models.Post
type Story = models.Story
type Donation = models.Donation

// respondError maps a service error onto its HTTP status and user message.
// Internal detail is logged, never serialized.
func respondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, ErrorResponse{Message: apperr.UserMessage(err)})
}

func clientIP(c *gin.Context) string {
	return middleware.ClientIP(c)
}

func adminUser(c *gin.Context) string {
	return c.GetString(middleware.AdminUserKey)
}
