package controllers

import (
	"net/http"

	"github.com/khizerinam08/deal-checker/models"
	"github.com/khizerinam08/deal-checker/services"

	"github.com/gin-gonic/gin"
)

const eaterTypeCookie = "user_eater_size"

// One year, matching the client-side default.
const eaterTypeCookieMaxAge = 365 * 24 * 60 * 60

type EaterTypeController struct {
	Svc *services.EaterTypeService
}

func NewEaterTypeController(svc *services.EaterTypeService) *EaterTypeController {
	return &EaterTypeController{Svc: svc}
}

// POST /eatertype
// Reconciles the cookie with the stored profile; the cookie is rewritten to
// whatever value wins so both sides agree afterwards.
func (h *EaterTypeController) SyncEaterType(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	cookieValue, _ := c.Cookie(eaterTypeCookie)

	eaterType, err := h.Svc.Sync(c.Request.Context(), userID, cookieValue)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Only real types go into the cookie; "None" stays server-side.
	if models.ValidEaterType(eaterType) && eaterType != cookieValue {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(eaterTypeCookie, eaterType, eaterTypeCookieMaxAge, "/", "", false, false)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Sync complete",
		"user_eater_size": eaterType,
	})
}

// GET /eatertype?userId=...
func (h *EaterTypeController) GetEaterType(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	eaterType, err := h.Svc.Lookup(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_eater_size": eaterType,
		"userId":          userID,
	})
}
