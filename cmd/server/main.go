package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/youruser/cardforge/internal/api"
	"github.com/youruser/cardforge/internal/artifacts"
	"github.com/youruser/cardforge/internal/batch"
	"github.com/youruser/cardforge/internal/config"
	"github.com/youruser/cardforge/internal/generator"
	"github.com/youruser/cardforge/internal/logging"
	"github.com/youruser/cardforge/internal/style"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.Logger.Options())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, cleanup := newStore(ctx, cfg)
	defer cleanup()

	gen := generator.New(style.NewCatalog(cfg.Render.FontDir), cfg.Render.ArtifactTTL)
	h := api.NewHandler(gen, batch.NewDriver(gen, cfg.Render.BatchWorkers), store, cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = cfg.Limits.MaxUploadBytes
	api.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:              cfg.Server.Host + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logging.Info("starting server", "addr", srv.Addr, "storage", cfg.Storage.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("shutdown", "error", err)
	}
	logging.Info("server exited")
}

// newStore picks the artifact backend. The returned func releases it.
func newStore(ctx context.Context, cfg config.Config) (artifacts.Store, func()) {
	if cfg.Storage.Backend == "redis" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisHost, DB: cfg.Cache.ArtifactDB})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logging.Warn("redis not reachable at startup", "addr", cfg.Cache.RedisHost, "error", err)
		}
		return artifacts.NewRedisStore(rdb), func() { _ = rdb.Close() }
	}

	j := artifacts.NewJanitor()
	fs, err := artifacts.NewFileStore(cfg.Storage.ExportDir, j)
	if err != nil {
		panic("export dir: " + err.Error())
	}
	return fs, func() {
		logging.Info("dropping pending artifact deletions", "pending", j.Pending())
		j.Stop()
	}
}
