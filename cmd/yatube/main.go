package main

import (
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kirill-tkachenko7/yatube/internal/logging"
	"github.com/kirill-tkachenko7/yatube/internal/pagecache"
	"github.com/kirill-tkachenko7/yatube/internal/storage"
	"github.com/kirill-tkachenko7/yatube/internal/web"
)

func main() {
	logger := logging.New()
	cfg := web.ConfigFromEnv()

	db, err := storage.Open(logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to the database")
	}
	if err := storage.Migrate(db); err != nil {
		logger.WithError(err).Fatal("Failed to migrate the database")
	}

	var cache pagecache.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		logger.WithField("addr", addr).Info("Using Redis page cache")
		cache = pagecache.NewRedis(redis.NewClient(&redis.Options{Addr: addr}), logger)
	} else {
		cache = pagecache.NewMemory()
	}

	app := web.NewApp(cfg, logger, db, cache)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.WithField("addr", cfg.Addr).Info("Server starting")
	if err := srv.ListenAndServe(); err != nil {
		logger.WithError(err).Fatal("Server stopped")
	}
}
