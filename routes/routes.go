package routes

import (
	"time"

	"github.com/khizerinam08/deal-checker/config"
	"github.com/khizerinam08/deal-checker/controllers"
	"github.com/khizerinam08/deal-checker/middlewares"
	"github.com/khizerinam08/deal-checker/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewScoreHub()
	cache := services.NewVoteCache(5 * time.Minute)

	voteCtl := controllers.NewVoteController(services.NewVoteService(config.DB, hub, cache))
	eaterCtl := controllers.NewEaterTypeController(services.NewEaterTypeService(config.DB))
	rtCtl := controllers.NewRealtimeController(hub)

	// Public deal browsing
	r.GET("/dominos-deals", controllers.ListDominosDeals)
	r.POST("/dominos-deals", controllers.PersonalizedDominosDeals)

	// Voting requires a session from the auth provider
	vote := r.Group("/vote")
	vote.Use(middlewares.AuthMiddleware())
	{
		vote.POST("", voteCtl.SubmitVote)
		vote.GET("/:dealId", voteCtl.GetVote)
	}

	// Eater type sync: POST reads the session, GET is a plain lookup
	r.POST("/eatertype", middlewares.AuthMiddleware(), eaterCtl.SyncEaterType)
	r.GET("/eatertype", eaterCtl.GetEaterType)

	r.GET("/ws/scores", rtCtl.ScoresWS)

	dev := r.Group("/dev")
	{
		dev.POST("/token", controllers.MintDevToken)
		dev.POST("/reset-scores", middlewares.AuthMiddleware(), controllers.ResetDealScores)
	}

	return r
}
