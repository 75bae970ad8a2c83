package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/khizerinam08/deal-checker/config"
	"github.com/khizerinam08/deal-checker/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func syncWithCookie(t *testing.T, r *gin.Engine, auth, cookieValue string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/eatertype", nil)
	req.Header.Set("Authorization", auth)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: "user_eater_size", Value: cookieValue})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSyncEaterTypeCookiePersisted(t *testing.T) {
	r := setupTestAPI(t)
	auth := bearerToken(t, "user-1")

	w := syncWithCookie(t, r, auth, models.EaterSmall)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, models.EaterSmall, resp["user_eater_size"])

	var p models.Profile
	require.NoError(t, config.DB.First(&p, "id = ?", "user-1").Error)
	assert.Equal(t, models.EaterSmall, p.EaterType)
}

func TestSyncEaterTypeProfileWinsAndRewritesCookie(t *testing.T) {
	r := setupTestAPI(t)
	require.NoError(t, config.DB.Create(&models.Profile{ID: "user-1", EaterType: models.EaterLarge}).Error)
	auth := bearerToken(t, "user-1")

	w := syncWithCookie(t, r, auth, models.EaterSmall)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, models.EaterLarge, resp["user_eater_size"])

	// The stale cookie gets overwritten with the stored value.
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	found := false
	for _, ck := range cookies {
		if ck.Name == "user_eater_size" {
			found = true
			assert.Equal(t, models.EaterLarge, ck.Value)
			assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
			assert.Equal(t, 365*24*60*60, ck.MaxAge)
		}
	}
	assert.True(t, found)
}

func TestSyncEaterTypeNoCookieNoProfile(t *testing.T) {
	r := setupTestAPI(t)
	auth := bearerToken(t, "user-1")

	w := syncWithCookie(t, r, auth, "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, models.EaterNone, resp["user_eater_size"])
}

func TestSyncEaterTypeRequiresSession(t *testing.T) {
	r := setupTestAPI(t)

	w := syncWithCookie(t, r, "", models.EaterSmall)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetEaterType(t *testing.T) {
	r := setupTestAPI(t)
	require.NoError(t, config.DB.Create(&models.Profile{ID: "user-1", EaterType: models.EaterMedium}).Error)

	w := doJSON(t, r, "GET", "/eatertype?userId=user-1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, models.EaterMedium, resp["user_eater_size"])
	assert.Equal(t, "user-1", resp["userId"])

	w = doJSON(t, r, "GET", "/eatertype?userId=nobody", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody(t, w)
	assert.Equal(t, models.EaterNone, resp["user_eater_size"])

	w = doJSON(t, r, "GET", "/eatertype", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
