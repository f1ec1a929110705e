package handlers

import (
	"net/http"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/services"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voting   *services.VotingService
	settings *services.SettingsService
}

func NewVoteHandler(voting *services.VotingService, settings *services.SettingsService) *VoteHandler {
	return &VoteHandler{voting: voting, settings: settings}
}

type VoteResponse struct {
	Message string `json:"message"`
	Votes   int64  `json:"votes"`
}

// Cast godoc
// @Summary      Cast a public vote for a candidate
// @Description  One vote per candidate per IP every 24 hours.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        request body services.VoteInput true "Vote payload"
// @Success      201 {object} VoteResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      429 {object} ErrorResponse
// @Router       /api/votes [post]
func (h *VoteHandler) Cast(c *gin.Context) {
	var input services.VoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide."})
		return
	}

	settings, err := h.settings.Get()
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.voting.CastVote(input, clientIP(c), settings); err != nil {
		respondError(c, err)
		return
	}

	count, err := h.voting.CountFor(input.CandidateID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, VoteResponse{Message: "Vote enregistré. Merci !", Votes: count})
}

// Summary godoc
// @Summary      Vote counts per candidate
// @Tags         votes
// @Produce      json
// @Success      200 {array} services.VoteSummary
// @Router       /api/votes [get]
func (h *VoteHandler) Summary(c *gin.Context) {
	counts, err := h.voting.Summary()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
