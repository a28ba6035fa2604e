package routes

import (
	"sena/auth"
	"sena/desks"
	"sena/display"
	"sena/masterdata"
	"sena/middleware"
	"sena/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/signup", rl.Limit(auth.Signup))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.GET("/api/auth/me", middleware.Authenticate(auth.Me))
}

func AddDeskRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, hub *display.Hub, builder desks.SnapshotBuilder) {
	router.GET("/api/desks", rl.Limit(desks.GetAvailability(builder)))
	router.GET("/ws/desks", display.WebSocketHandler(hub))
}

func AddMasterDataRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/master-data", rl.Limit(masterdata.GetAllMasterData))
	router.GET("/api/master-data/locations", rl.Limit(masterdata.GetLocations))
	router.GET("/api/master-data/slots", rl.Limit(masterdata.GetSlots))
	router.GET("/api/master-data/desk-types", rl.Limit(masterdata.GetDeskTypes))
}
