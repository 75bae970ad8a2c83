package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/khizerinam08/deal-checker/config"
	"github.com/khizerinam08/deal-checker/middlewares"
	"github.com/khizerinam08/deal-checker/models"
	"github.com/khizerinam08/deal-checker/services"
	"github.com/khizerinam08/deal-checker/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestAPI wires an in-memory database into the global config.DB and
// builds a router mirroring the production route layout.
func setupTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Deal{},
		&models.DealItem{},
		&models.Vote{},
		&models.Profile{},
	))
	config.DB = db

	hub := services.NewScoreHub()
	cache := services.NewVoteCache(5 * time.Minute)
	voteCtl := NewVoteController(services.NewVoteService(db, hub, cache))
	eaterCtl := NewEaterTypeController(services.NewEaterTypeService(db))

	r := gin.New()
	r.GET("/dominos-deals", ListDominosDeals)
	r.POST("/dominos-deals", PersonalizedDominosDeals)
	vote := r.Group("/vote")
	vote.Use(middlewares.AuthMiddleware())
	{
		vote.POST("", voteCtl.SubmitVote)
		vote.GET("/:dealId", voteCtl.GetVote)
	}
	r.POST("/eatertype", middlewares.AuthMiddleware(), eaterCtl.SyncEaterType)
	r.GET("/eatertype", eaterCtl.GetEaterType)
	r.POST("/dev/token", MintDevToken)
	r.POST("/dev/reset-scores", middlewares.AuthMiddleware(), ResetDealScores)

	return r
}

func createDeal(t *testing.T, name string, price int) models.Deal {
	t.Helper()
	deal := models.Deal{
		DealName:         name,
		PricePKR:         price,
		SatietyTier:      "Standard",
		ProductURL:       "https://example.com/" + name,
		Source:           "dominos",
		MultiplierLight:  1.0,
		MultiplierMedium: 1.0,
		MultiplierHeavy:  1.0,
	}
	require.NoError(t, config.DB.Create(&deal).Error)
	return deal
}

func bearerToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := utils.GenerateSessionToken(userID)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, auth string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
