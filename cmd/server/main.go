package main

import (
	"flag"

	"github.com/benbeisheim/chessboard-backend/internal/config"
	"github.com/benbeisheim/chessboard-backend/internal/controller"
	"github.com/benbeisheim/chessboard-backend/internal/middleware"
	"github.com/benbeisheim/chessboard-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

func main() {
	configFile := flag.String("config", "", "YAML config file (defaults are used when empty)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.Level())

	// Initialize the application
	app := fiber.New(fiber.Config{
		AppName: "chessboard-backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowHeaders:     "Origin, Content-Type, Accept, X-Client-ID",
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// Initialize services
	gameManager := service.NewGameManager(cfg.MaxGames)
	gameService := service.NewGameService(gameManager)

	// Initialize controllers
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	// Set up WebSocket routes
	app.Use("/ws/*", middleware.EnsureClientID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(gameService.GameExists), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  cfg.WebSocket.ReadBufferSize,
		WriteBufferSize: cfg.WebSocket.WriteBufferSize,
		Origins:         cfg.AllowOrigins,
	}))

	// Set up REST routes
	api := app.Group("/api", middleware.EnsureClientID())
	controller.RegisterRoutes(api, gameController)

	log.Infof("listening on %s", cfg.Listen)
	log.Fatal(app.Listen(cfg.Listen))
}
