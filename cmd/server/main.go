package main

import (
	"log"

	"github.com/redis/go-redis/v9"
	"nexora.lk/campuscore/internal/bootstrap"
	"nexora.lk/campuscore/internal/config"
	"nexora.lk/campuscore/internal/server"
	"nexora.lk/campuscore/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db := database.Connect()

	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if err := bootstrap.SeedAccounts(db); err != nil {
		log.Fatalf("failed to seed accounts: %v", err)
	}

	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedDepartments(db); err != nil {
			log.Fatalf("failed to seed departments: %v", err)
		}
	}

	// Redis is optional; without it login rate limiting is disabled.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	}

	srv := server.NewServer(db, redisClient, cfg)

	log.Printf("listening on :%s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
