package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"voyage-fuel-service/internal/adapters/cache"
	"voyage-fuel-service/internal/adapters/repositories"
	"voyage-fuel-service/internal/api"
	"voyage-fuel-service/internal/config"
	"voyage-fuel-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/voyages.json")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteVoyageRepository(db)
	refs := repositories.NewSqliteReferenceRepository(db)

	// Plan cache is optional; the service recomputes from scratch on
	// every request when Redis is not configured.
	var planCache ports.PlanCache
	if config.GetBool("REDIS_ENABLED", false) {
		rc, err := cache.NewRedisPlanCache(
			config.Get("REDIS_ADDR", "localhost:6379"),
			config.Get("REDIS_PASSWORD", ""),
			config.GetInt("REDIS_DB", 0),
			config.GetDuration("PLAN_CACHE_TTL", time.Hour),
		)
		if err != nil {
			log.Fatal(err)
		}
		defer rc.Close()
		planCache = rc
	}

	router := api.NewRouter(repo, refs, planCache)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
