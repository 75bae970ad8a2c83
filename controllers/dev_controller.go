// controllers/dev_controller.go
package controllers

import (
	"net/http"

	"github.com/khizerinam08/deal-checker/config"
	"github.com/khizerinam08/deal-checker/services"
	"github.com/khizerinam08/deal-checker/utils"

	"github.com/gin-gonic/gin"
)

// POST /dev/reset-scores
// Puts every deal back to baseValueScore 0 and neutral multipliers.
func ResetDealScores(c *gin.Context) {
	n, err := services.ResetDealScores(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "deals_reset": n})
}

// POST /dev/token  { "userId": "..." }
// Mints a session token for local testing without the auth provider.
func MintDevToken(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateSessionToken(req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
