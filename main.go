package main

import (
	"fmt"
	"log"

	"github.com/eddietapia/reservations/configs"
	"github.com/eddietapia/reservations/events"
	"github.com/eddietapia/reservations/repository"
	"github.com/eddietapia/reservations/routes"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// Catalog cache (optional)
	var cache *repository.CatalogCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		cache = repository.NewCatalogCache(client, cfg.CacheTTL)
		log.Println("catalog cache enabled:", cfg.RedisAddr)
	}

	// Reservation events (optional)
	publisher := events.NewPublisher(cfg.KafkaBroker, cfg.KafkaTopic)
	if publisher != nil {
		defer publisher.Close()
		log.Println("reservation events enabled:", cfg.KafkaBroker, cfg.KafkaTopic)
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg, cache, publisher)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
