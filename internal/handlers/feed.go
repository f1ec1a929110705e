package handlers

import (
	"net/http"
	"strconv"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/services"

	"github.com/gin-gonic/gin"
)

// FeedHandler exposes the community posts and stories feeds plus their
// engagement endpoints (likes, reactions, comments, shares).
type FeedHandler struct {
	feed       *services.FeedService
	engagement *services.EngagementService
	audit      *services.AuditService
}

func NewFeedHandler(feed *services.FeedService, engagement *services.EngagementService, audit *services.AuditService) *FeedHandler {
	return &FeedHandler{feed: feed, engagement: engagement, audit: audit}
}

// SubmitPost godoc
// @Summary      Submit a community post (pending moderation)
// @Tags         feed
// @Accept       json
// @Produce      json
// @Param        request body services.PostInput true "Post"
// @Success      201 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/posts [post]
func (h *FeedHandler) SubmitPost(c *gin.Context) {
	var input services.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide."})
		return
	}

	if _, err := h.feed.SubmitPost(input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Publication soumise. Elle sera visible après modération."})
}

// Posts godoc
// @Summary      Approved posts with engagement counters
// @Tags         feed
// @Produce      json
// @Param        limit query int false "Max posts, default 50"
// @Success      200 {array} services.PublicPost
// @Router       /api/posts [get]
func (h *FeedHandler) Posts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	posts, err := h.feed.ListApprovedPosts(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// SubmitStory godoc
// @Summary      Submit a story (24h lifetime, pending moderation)
// @Tags         feed
// @Accept       json
// @Produce      json
// @Param        request body services.StoryInput true "Story"
// @Success      201 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/stories [post]
func (h *FeedHandler) SubmitStory(c *gin.Context) {
	var input services.StoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide."})
		return
	}

	if _, err := h.feed.SubmitStory(input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Story soumise. Elle sera visible après modération."})
}

// ActiveStories godoc
// @Summary      Approved stories that have not expired yet
// @Tags         feed
// @Produce      json
// @Success      200 {array} models.Story
// @Router       /api/stories/active [get]
func (h *FeedHandler) ActiveStories(c *gin.Context) {
	stories, err := h.feed.ListActiveStories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stories)
}

type EngagementRequest struct {
	Email    string `json:"email"`
	Reaction string `json:"reaction"`
	Comment  string `json:"comment"`
	Method   string `json:"method"`
}

func (h *FeedHandler) engage(c *gin.Context, fn func(contentID uint, identity string, req EngagementRequest) error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Identifiant invalide."})
		return
	}

	var req EngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide."})
		return
	}

	identity := services.Identity(req.Email, clientIP(c))
	if err := fn(uint(id), identity, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Enregistré."})
}

// LikePost godoc
// @Summary      Like a post (one per identity)
// @Tags         feed
// @Accept       json
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        request body EngagementRequest false "Optional email identity"
// @Success      201 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/posts/{id}/like [post]
func (h *FeedHandler) LikePost(c *gin.Context) {
	h.engage(c, func(contentID uint, identity string, _ EngagementRequest) error {
		return h.engagement.Like(models.ContentTypePost, contentID, identity)
	})
}

// ReactPost godoc
// @Summary      React to a post (heart, thumb or laugh)
// @Tags         feed
// @Accept       json
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        request body EngagementRequest true "Reaction"
// @Success      201 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/posts/{id}/reaction [post]
func (h *FeedHandler) ReactPost(c *gin.Context) {
	h.engage(c, func(contentID uint, identity string, req EngagementRequest) error {
		return h.engagement.React(models.ContentTypePost, contentID, identity, req.Reaction)
	})
}

// CommentPost godoc
// @Summary      Comment on a post (one per identity)
// @Tags         feed
// @Accept       json
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        request body EngagementRequest true "Comment body"
// @Success      201 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/posts/{id}/comments [post]
func (h *FeedHandler) CommentPost(c *gin.Context) {
	h.engage(c, func(contentID uint, identity string, req EngagementRequest) error {
		return h.engagement.Comment(models.ContentTypePost, contentID, identity, req.Comment)
	})
}

// SharePost godoc
// @Summary      Record a post share (append-only)
// @Tags         feed
// @Accept       json
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        request body EngagementRequest false "Share method"
// @Success      201 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/posts/{id}/share [post]
func (h *FeedHandler) SharePost(c *gin.Context) {
	h.engage(c, func(contentID uint, identity string, req EngagementRequest) error {
		return h.engagement.Share(models.ContentTypePost, contentID, identity, req.Method)
	})
}

// PostComments godoc
// @Summary      Comments of a post
// @Tags         feed
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200 {array} models.Engagement
// @Router       /api/posts/{id}/comments [get]
func (h *FeedHandler) PostComments(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Identifiant invalide."})
		return
	}

	comments, err := h.engagement.Comments(models.ContentTypePost, uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// LikeStory godoc
// @Summary      Like a story (one per identity)
// @Tags         feed
// @Accept       json
// @Produce      json
// @Param        id path int true "Story ID"
// @Param        request body EngagementRequest false "Optional email identity"
// @Success      201 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/stories/{id}/like [post]
func (h *FeedHandler) LikeStory(c *gin.Context) {
	h.engage(c, func(contentID uint, identity string, _ EngagementRequest) error {
		return h.engagement.Like(models.ContentTypeStory, contentID, identity)
	})
}

// ReactStory godoc
// @Summary      React to a story
// @Tags         feed
// @Accept       json
// @Produce      json
// @Param        id path int true "Story ID"
// @Param        request body EngagementRequest true "Reaction"
// @Success      201 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/stories/{id}/reaction [post]
func (h *FeedHandler) ReactStory(c *gin.Context) {
	h.engage(c, func(contentID uint, identity string, req EngagementRequest) error {
		return h.engagement.React(models.ContentTypeStory, contentID, identity, req.Reaction)
	})
}

// AdminPosts godoc
// @Summary      Admin: all posts regardless of status
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Post
// @Router       /api/admin/posts [get]
func (h *FeedHandler) AdminPosts(c *gin.Context) {
	posts, err := h.feed.ListPosts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// AdminStories godoc
// @Summary      Admin: all stories regardless of status
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Story
// @Router       /api/admin/stories [get]
func (h *FeedHandler) AdminStories(c *gin.Context) {
	stories, err := h.feed.ListStories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stories)
}

type StatusRequest struct {
	Status string `json:"status"`
}

// AdminSetPostStatus godoc
// @Summary      Admin: approve or reject a post
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Param        request body StatusRequest true "New status"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/posts/{id} [put]
func (h *FeedHandler) AdminSetPostStatus(c *gin.Context) {
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

	if _, err := h.feed.SetPostStatus(uint(id), req.Status, adminUser(c)); err != nil {
		respondError(c, err)
		return
	}

	h.audit.Record("post.status", gin.H{"id": id, "status": req.Status}, clientIP(c))
	c.JSON(http.StatusOK, MessageResponse{Message: "Publication mise à jour."})
}

// AdminSetStoryStatus godoc
// @Summary      Admin: approve or reject a story
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Story ID"
// @Param        request body StatusRequest true "New status"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/stories/{id} [put]
func (h *FeedHandler) AdminSetStoryStatus(c *gin.Context) {
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

	if _, err := h.feed.SetStoryStatus(uint(id), req.Status, adminUser(c)); err != nil {
		respondError(c, err)
		return
	}

	h.audit.Record("story.status", gin.H{"id": id, "status": req.Status}, clientIP(c))
	c.JSON(http.StatusOK, MessageResponse{Message: "Story mise à jour."})
}

// AdminDeletePost godoc
// @Summary      Admin: delete a post
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/posts/{id} [delete]
func (h *FeedHandler) AdminDeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Identifiant invalide."})
		return
	}

	if err := h.feed.DeletePost(uint(id)); err != nil {
		respondError(c, err)
		return
	}

	h.audit.Record("post.delete", gin.H{"id": id}, clientIP(c))
	c.JSON(http.StatusOK, MessageResponse{Message: "Publication supprimée."})
}

// AdminDeleteStory godoc
// @Summary      Admin: delete a story
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Story ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/stories/{id} [delete]
func (h *FeedHandler) AdminDeleteStory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Identifiant invalide."})
		return
	}

	if err := h.feed.DeleteStory(uint(id)); err != nil {
		respondError(c, err)
		return
	}

	h.audit.Record("story.delete", gin.H{"id": id}, clientIP(c))
	c.JSON(http.StatusOK, MessageResponse{Message: "Story supprimée."})
}
