package main

import (
	"log"

	"github.com/verstuyftj/ScrumPointPlanner/internal/config"
	"github.com/verstuyftj/ScrumPointPlanner/internal/database"
	"github.com/verstuyftj/ScrumPointPlanner/internal/handlers"
	"github.com/verstuyftj/ScrumPointPlanner/internal/protocol"
	"github.com/verstuyftj/ScrumPointPlanner/internal/services"
	"github.com/verstuyftj/ScrumPointPlanner/internal/store"
	"github.com/verstuyftj/ScrumPointPlanner/internal/ws"

	_ "github.com/verstuyftj/ScrumPointPlanner/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           ScrumPointPlanner API
// @version         1.0
// @description     Real-time planning poker backend: sessions, stories, votes and results
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	var st store.Store
	if cfg.DBDriver == "memory" {
		st = store.NewMemoryStore()
		log.Println("using in-memory store")
	} else {
		db := database.Connect(cfg)
		database.AutoMigrate(db)
		st = store.NewGormStore(db)
	}

	registry := ws.NewRegistry()
	hub := ws.NewHub(registry)

	sessionService := services.NewSessionService(st)
	storyService := services.NewStoryService(st)
	voteService := services.NewVoteService(st)
	aggregationService := services.NewAggregationService()

	protocolHandler := protocol.NewHandler(registry, hub, sessionService, storyService, voteService)

	wsHandler := handlers.NewWSHandler(protocolHandler)
	sessionHandler := handlers.NewSessionHandler(sessionService, storyService, voteService, aggregationService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: false,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		sessions := api.Group("/sessions")
		{
			sessions.GET("", sessionHandler.ListSessions)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.GET("/:id/participants", sessionHandler.ListParticipants)
			sessions.GET("/:id/votes", sessionHandler.ListVotes)
			sessions.GET("/:id/results", sessionHandler.GetResults)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
