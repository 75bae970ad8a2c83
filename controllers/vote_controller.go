package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/khizerinam08/deal-checker/services"

	"github.com/gin-gonic/gin"
)

type VoteController struct {
	Svc *services.VoteService
}

func NewVoteController(svc *services.VoteService) *VoteController {
	return &VoteController{Svc: svc}
}

type VoteInput struct {
	DealID        uint     `json:"dealId" binding:"required"`
	SatietyRating *float64 `json:"satietyRating" binding:"required"`
	ValueRating   *float64 `json:"valueRating" binding:"required"`
	EaterType     string   `json:"eaterType" binding:"required"`
}

// POST /vote
func (h *VoteController) SubmitVote(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input VoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vote, created, err := h.Svc.Submit(c.Request.Context(), userID, input.DealID, *input.SatietyRating, *input.ValueRating, input.EaterType)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEaterType), errors.Is(err, services.ErrRatingOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrDealNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"success": true, "vote": vote})
}

// GET /vote/:dealId
func (h *VoteController) GetVote(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	dealID, err := strconv.ParseUint(c.Param("dealId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dealId"})
		return
	}

	vote, err := h.Svc.GetVote(c.Request.Context(), userID, uint(dealID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if vote == nil {
		c.JSON(http.StatusOK, gin.H{"hasVoted": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hasVoted": true, "vote": vote})
}
