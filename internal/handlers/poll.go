package handlers

import (
	"net/http"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/services"

	"github.com/gin-gonic/gin"
)

type PollHandler struct {
	polls *services.PollService
}

func NewPollHandler(polls *services.PollService) *PollHandler {
	return &PollHandler{polls: polls}
}

// Active godoc
// @Summary      Active poll with per-option results
// @Tags         poll
// @Produce      json
// @Success      200 {object} services.PollResult
// @Failure      404 {object} ErrorResponse
// @Router       /api/poll [get]
func (h *PollHandler) Active(c *gin.Context) {
	result, err := h.polls.Active()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type PollVoteRequest struct {
	PollID uint   `json:"pollId"`
	Option string `json:"option"`
}

// Vote godoc
// @Summary      Vote on the poll (one per IP)
// @Tags         poll
// @Accept       json
// @Produce      json
// @Param        request body PollVoteRequest true "Chosen option"
// @Success      201 {object} services.PollResult
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/poll/vote [post]
func (h *PollHandler) Vote(c *gin.Context) {
	var req PollVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide."})
		return
	}

	result, err := h.polls.Vote(req.PollID, req.Option, clientIP(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
