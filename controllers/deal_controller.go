package controllers

import (
	"net/http"

	"github.com/khizerinam08/deal-checker/services"

	"github.com/gin-gonic/gin"
)

// GET /dominos-deals
func ListDominosDeals(c *gin.Context) {
	deals, err := services.ListDeals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load deals"})
		return
	}
	c.JSON(http.StatusOK, deals)
}

// POST /dominos-deals  { "eaterType": "Medium" }
// An absent or unknown eater type falls back to Medium.
func PersonalizedDominosDeals(c *gin.Context) {
	var body struct {
		EaterType string `json:"eaterType"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deals, err := services.ListDealsForEater(body.EaterType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, deals)
}
