package main

import (
	"log"

	"github.com/taras/musicstore/config"
	"github.com/taras/musicstore/handlers"
)

func main() {
	cfg := config.Load()

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	router := handlers.SetupRouter(db, cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
