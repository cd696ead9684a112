package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/solestore/storefront-service/internal/api"
	"github.com/solestore/storefront-service/internal/api/middleware"
	"github.com/solestore/storefront-service/internal/cache"
	"github.com/solestore/storefront-service/internal/config"
	"github.com/solestore/storefront-service/internal/db/migrations"
	"github.com/solestore/storefront-service/internal/metrics"
	"github.com/solestore/storefront-service/internal/repository"
	"github.com/solestore/storefront-service/internal/service"
	"github.com/solestore/storefront-service/pkg/db"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	dbCfg, _ := db.LoadPostgresConfig()
	conn, err := db.NewPostgresConnection(dbCfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer conn.Close()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	if err := migrations.Apply(migrateCtx, conn); err != nil {
		cancelMigrate()
		log.Fatalf("migrate: %v", err)
	}
	cancelMigrate()

	// catalog cache is optional; without Redis every listing hits Postgres
	var catalogCache *cache.CatalogCache
	if cfg.RedisAddr != "" {
		rdb, err := db.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("redis connect: %v", err)
		}
		defer rdb.Close()
		catalogCache = cache.NewCatalogCache(rdb, cfg.CatalogCacheTTL)
	}

	auth := service.NewAuthService(repository.NewUserRepo(conn), cfg.JWTSecret, cfg.TokenTTL)
	carts := service.NewCartService(conn, repository.NewCartRepo(conn))

	handler := api.NewRouter(api.Deps{
		DB:           conn,
		Auth:         auth,
		Carts:        carts,
		CatalogCache: catalogCache,
		Limiter:      middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Log:          log,
	})

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	r := chi.NewRouter()
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics(m))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Mount("/", handler)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c
		// we received an interrupt signal, shut down.
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	log.Infof("starting storefront-service on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %s", err)
	}

	<-idleConnsClosed
	log.Info("server stopped")
}
