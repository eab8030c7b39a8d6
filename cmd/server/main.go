package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/actuallystonmai/stream-aggregator/internal/cache"
	"github.com/actuallystonmai/stream-aggregator/internal/catalog"
	"github.com/actuallystonmai/stream-aggregator/internal/config"
	"github.com/actuallystonmai/stream-aggregator/internal/handler"
	"github.com/actuallystonmai/stream-aggregator/internal/index"
	"github.com/actuallystonmai/stream-aggregator/internal/intent"
	"github.com/actuallystonmai/stream-aggregator/internal/platform"
	"github.com/actuallystonmai/stream-aggregator/internal/ratelimit"
	"github.com/actuallystonmai/stream-aggregator/internal/repository"
	"github.com/actuallystonmai/stream-aggregator/internal/router"
	"github.com/actuallystonmai/stream-aggregator/internal/search"
	"github.com/actuallystonmai/stream-aggregator/internal/service"
	"github.com/actuallystonmai/stream-aggregator/migrations"
	"github.com/actuallystonmai/stream-aggregator/seeds"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config %v", err)
	}

	ctx := context.Background()

	// ------------ Catalog source ---------------
	var source catalog.Source = catalog.Embedded()
	if cfg.CatalogFile != "" {
		source = catalog.File(cfg.CatalogFile)
	}

	// ------------ PostgreSQL (optional) ---------------
	if cfg.DatabaseURL != "" {
		pool, err := openDB(ctx, cfg)
		if err != nil {
			log.Fatalf("failed to connect to database %v", err)
		}
		defer pool.Close()
		log.Println("connected to PostgreSQL")

		// for migrate-down using CLI command
		if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
			if _, err := pool.Exec(ctx, migrations.Down); err != nil {
				log.Fatalf("failed to migrate down %v", err)
			}
			log.Println("migrations dropped")
			return
		}

		if _, err := pool.Exec(ctx, migrations.Up); err != nil {
			log.Fatalf("failed to migrate up %v", err)
		}
		log.Println("migrations applied successfully")

		repo := repository.NewRepository(pool)
		if err := checkSeed(ctx, pool, repo, source); err != nil {
			log.Fatalf("failed to check seed %v", err)
		}
		source = repo
	}

	// ------------ Content index ---------------
	table, err := source.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load catalog %v", err)
	}
	idx := index.New(table)
	platforms := platform.NewCatalog(table.DomainPlatforms())
	log.Printf("[index] built %d items across %d platforms", idx.Len(), len(platforms.All()))

	// ------------ Redis (optional) ---------------
	var resultCache service.ResultCache
	var limiter ratelimit.Limiter
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to parse redis url %v", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		c := cache.NewCache(rdb, cfg.CacheTTL)
		if err := c.Ping(ctx); err != nil {
			log.Printf("redis not reachable, continuing without cache: %v", err)
		} else {
			if err := c.Flush(ctx); err != nil {
				log.Printf("failed to flush stale search cache: %v", err)
			}
			resultCache = c
			limiter = ratelimit.NewRedisLimiter(rdb, cfg.RateLimit, cfg.RateWindow)
			log.Println("connected to Redis")
		}
	}

	// ---------------- Server --------------------
	svc := service.NewService(
		search.NewEngine(idx, platforms),
		intent.NewParser(platforms),
		platforms,
		resultCache,
	)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.Setup(handler.NewHandler(svc), router.Options{Limiter: limiter, Timeout: cfg.RequestTimeout}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("received %s, shutting down", sig)

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func openDB(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}
	if err := waitForDB(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		log.Printf("waiting for database... (%d/30)", i+1)
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database connection timeout after 30s")
}

// checkSeed fills an empty catalog from the configured file or embedded table.
func checkSeed(ctx context.Context, pool *pgxpool.Pool, repo *repository.Repository, source catalog.Source) error {
	titles, err := repo.CountTitles(ctx)
	if err != nil {
		return err
	}
	platforms, err := repo.CountPlatforms(ctx)
	if err != nil {
		return err
	}
	if titles > 0 && platforms > 0 {
		log.Printf("catalog already seeded (%d titles, %d platforms), skipping", titles, platforms)
		return nil
	}
	table, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load seed catalog: %w", err)
	}
	return seeds.Setup(ctx, pool, table)
}
