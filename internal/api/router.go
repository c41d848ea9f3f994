package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Vicky-coder616/dealdish-backend/config"
	"github.com/Vicky-coder616/dealdish-backend/internal/api/handler"
	"github.com/Vicky-coder616/dealdish-backend/internal/api/middleware"
)

type Router struct {
	healthHandler     *handler.HealthHandler
	authHandler       *handler.AuthHandler
	restaurantHandler *handler.RestaurantHandler
	foodItemHandler   *handler.FoodItemHandler
	orderHandler      *handler.OrderHandler
	analyticsHandler  *handler.AnalyticsHandler
	demoHandler       *handler.DemoHandler
	websocketHandler  *handler.WebSocketHandler
	cfg               *config.Config
}

func NewRouter(
	healthHandler *handler.HealthHandler,
	authHandler *handler.AuthHandler,
	restaurantHandler *handler.RestaurantHandler,
	foodItemHandler *handler.FoodItemHandler,
	orderHandler *handler.OrderHandler,
	analyticsHandler *handler.AnalyticsHandler,
	demoHandler *handler.DemoHandler,
	websocketHandler *handler.WebSocketHandler,
	cfg *config.Config,
) *Router {
	return &Router{
		healthHandler:     healthHandler,
		authHandler:       authHandler,
		restaurantHandler: restaurantHandler,
		foodItemHandler:   foodItemHandler,
		orderHandler:      orderHandler,
		analyticsHandler:  analyticsHandler,
		demoHandler:       demoHandler,
		websocketHandler:  websocketHandler,
		cfg:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     r.cfg.CORS.AllowedOrigins,
		AllowMethods:     r.cfg.CORS.AllowedMethods,
		AllowHeaders:     r.cfg.CORS.AllowedHeaders,
		AllowCredentials: true,
	}))

	api := engine.Group("/api")
	{
		api.GET("/health", r.healthHandler.Check)
		api.GET("/analytics/food-waste-saved", r.analyticsHandler.FoodWasteSaved)

		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
		}

		api.GET("/restaurants", r.restaurantHandler.List)
		api.POST("/restaurants", r.restaurantHandler.Create)

		api.GET("/food-items", r.foodItemHandler.List)
		api.POST("/food-items", r.foodItemHandler.Create)

		api.POST("/orders", r.orderHandler.Create)
		api.GET("/orders/:id", r.orderHandler.Get)
		api.GET("/orders/:id/qrcode", r.orderHandler.QRCode)

		// authenticated surface: lifecycle transitions are for restaurant
		// staff, subscriptions are per-caller
		authed := api.Group("")
		authed.Use(middleware.Auth(r.cfg.JWT.Secret))
		{
			authed.GET("/auth/subscription", r.authHandler.GetSubscription)
			authed.PATCH("/orders/:id/status", r.orderHandler.AdvanceStatus)
		}

		api.GET("/ws/orders", r.websocketHandler.Handle)

		api.POST("/demo/populate", r.demoHandler.Populate)
	}

	return engine
}
