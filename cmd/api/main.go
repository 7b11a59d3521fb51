package main

import (
	"log"

	"github.com/buildtrack/construction-api/config"
	"github.com/buildtrack/construction-api/internal/bootstrap"
	"github.com/buildtrack/construction-api/internal/profanity"
	"github.com/buildtrack/construction-api/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "construction-api",
		Version:     cfg.App.Version,
		DB:          db,
		Filter:      profanity.New(),
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
