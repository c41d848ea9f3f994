package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Vicky-coder616/dealdish-backend/config"
	"github.com/Vicky-coder616/dealdish-backend/internal/api"
	"github.com/Vicky-coder616/dealdish-backend/internal/api/handler"
	"github.com/Vicky-coder616/dealdish-backend/internal/database"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/geocoder"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/pubsub"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/qrcode"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/ws"
	"github.com/Vicky-coder616/dealdish-backend/internal/repository"
	"github.com/Vicky-coder616/dealdish-backend/internal/service"
)

func main() {
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Open(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	log.Printf("Database connected (%s)", cfg.Database.Driver)

	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	if rdb != nil {
		log.Println("Redis connected")
	}

	hub := ws.NewHub()

	// With redis, order events flow through pub/sub so every instance can
	// deliver to its own websocket clients.
	var publisher *pubsub.Publisher
	if rdb != nil {
		publisher = pubsub.NewPublisher(rdb)
		subscriber := pubsub.NewSubscriber(rdb)
		go func() {
			err := subscriber.Subscribe(context.Background(), func(event *pubsub.OrderEvent) {
				_ = hub.SendToUser(event.CustomerID, &ws.OrderUpdate{
					Type:         event.Type,
					OrderID:      event.OrderID,
					RestaurantID: event.RestaurantID,
					Status:       event.Status,
					PickupToken:  event.PickupToken,
				})
			})
			if err != nil && err != context.Canceled {
				log.Printf("Order event subscriber stopped: %v", err)
			}
		}()
	}

	userRepo := repository.NewUserRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	foodItemRepo := repository.NewFoodItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	geoClient := geocoder.NewClient(&cfg.Geocoder, rdb)
	qrGenerator := qrcode.DefaultGenerator{BaseURL: cfg.Server.BaseURL}

	authService := service.NewAuthService(userRepo, subscriptionRepo, cfg)
	restaurantService := service.NewRestaurantService(restaurantRepo, geoClient)
	foodItemService := service.NewFoodItemService(foodItemRepo, restaurantRepo)
	orderService := service.NewOrderService(orderRepo, restaurantRepo, publisher, hub, qrGenerator)
	analyticsService := service.NewAnalyticsService(orderRepo, rdb)
	demoService := service.NewDemoService(db)

	router := api.NewRouter(
		handler.NewHealthHandler(db),
		handler.NewAuthHandler(authService),
		handler.NewRestaurantHandler(restaurantService),
		handler.NewFoodItemHandler(foodItemService),
		handler.NewOrderHandler(orderService),
		handler.NewAnalyticsHandler(analyticsService),
		handler.NewDemoHandler(demoService),
		handler.NewWebSocketHandler(hub, cfg.JWT.Secret),
		cfg,
	)
	engine := router.Setup()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
