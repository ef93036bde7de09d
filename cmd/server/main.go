package main

import (
	"log"
	"path/filepath"

	"github.com/Aysaleh/player-app/internal/config"
	"github.com/Aysaleh/player-app/internal/database"
	"github.com/Aysaleh/player-app/internal/handlers"
	"github.com/Aysaleh/player-app/internal/middleware"
	"github.com/Aysaleh/player-app/internal/services"
	"github.com/Aysaleh/player-app/internal/ws"

	_ "github.com/Aysaleh/player-app/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Player Evaluation API
// @version         1.0
// @description     API for tracking sports players and their evaluations
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	playerService := services.NewPlayerService(db)

	authHandler := handlers.NewAuthHandler(authService)
	playerHandler := handlers.NewPlayerHandler(playerService, hub)
	evalHandler := handlers.NewEvaluationHandler(playerService, hub)
	dashboardHandler := handlers.NewDashboardHandler(playerService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
	r.StaticFile("/app.js", filepath.Join(cfg.StaticDir, "app.js"))
	r.StaticFile("/styles.css", filepath.Join(cfg.StaticDir, "styles.css"))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.SessionAuth(authService), authHandler.Me)
		}

		players := api.Group("/players")
		players.Use(middleware.SessionAuth(authService))
		{
			players.GET("", playerHandler.ListPlayers)
			players.POST("", playerHandler.CreatePlayer)
			players.DELETE("/:id", playerHandler.DeletePlayer)
			players.GET("/:id/evaluations", evalHandler.ListEvaluations)
			players.POST("/:id/evaluations", evalHandler.CreateEvaluation)
		}

		api.GET("/dashboard", middleware.SessionAuth(authService), dashboardHandler.GetDashboard)
	}

	r.GET("/ws/events", middleware.SessionAuth(authService), wsHandler.HandleWebSocket)

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
