package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cabinadmin/internal/httpapi"
	"cabinadmin/internal/prefs"
	"cabinadmin/pkg/config"
	"cabinadmin/pkg/db"
	"cabinadmin/pkg/kv"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer conn.Close()

	if cfg.MigrationsPath != "" {
		if err := db.MigrateConfig(cfg.MigrationsPath, cfg); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	var prefsKV prefs.KV = prefs.NewMemoryKV()
	redisClient, err := kv.NewRedisClient(ctx, cfg.Redis)
	switch {
	case err != nil:
		log.Printf("redis unavailable, dashboard prefs kept in memory: %v", err)
	case redisClient == nil:
		log.Printf("REDIS_ADDR not set, dashboard prefs kept in memory")
	default:
		defer redisClient.Close()
		prefsKV = prefs.NewRedisKV(redisClient, cfg.PrefsKeyPrefix)
	}

	router := httpapi.NewRouter(httpapi.Dependencies{
		Cfg:   cfg,
		DB:    conn,
		Prefs: prefsKV,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("http listening on %s (env=%s)", cfg.HTTPAddr, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http serve: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(shutdownCtx)
}
