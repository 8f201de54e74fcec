package main

import (
	"log"
	"os"

	"github.com/synchromes/esurat-sub001/config"
	"github.com/synchromes/esurat-sub001/routes"
	"github.com/synchromes/esurat-sub001/services"
	"github.com/synchromes/esurat-sub001/utils/events"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	if err := config.Validate(); err != nil {
		log.Fatalf("Konfigurasi tidak valid: %v", err)
	}

	db := config.ConnectDB()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	routes.Register(app, db)

	// Notifier jalan di goroutine sendiri, membaca event bus sampai
	// proses berhenti.
	go services.NewNotifier(db).Run(events.LetterEventBus)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("API running on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
