package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"nurse-route-service/internal/adapters/cache"
	"nurse-route-service/internal/adapters/floorplan"
	"nurse-route-service/internal/adapters/repositories"
	"nurse-route-service/internal/api"
	"nurse-route-service/internal/config"
	"nurse-route-service/internal/platform/db"
	"nurse-route-service/internal/ports"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (built-in plans, Postgres, Redis) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	builtin := floorplan.NewStaticFloorPlanRepository()
	var floorPlans ports.FloorPlanRepository = builtin
	var routes ports.RouteRepository
	var legCache ports.LegCache

	if cfg.DatabaseURL != "" {
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		if err := repositories.InitSchema(ctx, conn); err != nil {
			log.Fatal(err)
		}

		// Plans stored in Postgres shadow the built-in ones of the same name.
		floorPlans = floorplan.NewLayeredFloorPlanRepository(repositories.NewPostgresFloorPlanRepository(conn), builtin)
		routes = repositories.NewPostgresRouteRepository(conn)
		log.Println("Postgres enabled: floor plans and route history")
	}

	if cfg.RedisURL != "" {
		client, err := openRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal(err)
		}
		defer client.Close()

		legCache = cache.NewRedisLegCache(client, cfg.LegCacheTTL)
		log.Printf("Redis leg cache enabled ttl=%s", cfg.LegCacheTTL)
	}

	router := api.NewRouter(floorPlans, routes, legCache, cfg.DefaultFloorPlan)

	log.Printf("Server listening addr=:%s floor_plan=%s", cfg.Port, cfg.DefaultFloorPlan)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("openRedis: parse url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("openRedis: verify connection: %w", err)
	}

	return client, nil
}
