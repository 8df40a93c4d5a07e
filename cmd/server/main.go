// Command server starts the blog platform HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/vkazmin/blogcore/internal/config"
	"github.com/vkazmin/blogcore/internal/limiter"
	"github.com/vkazmin/blogcore/internal/migrate"
	"github.com/vkazmin/blogcore/internal/repository/postgres"
	httpserver "github.com/vkazmin/blogcore/internal/server/http"
	"github.com/vkazmin/blogcore/internal/service"
	"github.com/vkazmin/blogcore/internal/token"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations, and serves the API until
// SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
	)

	if cfg.InsecureSecret() {
		logger.Warn("JWT_SECRET is unset, using the built-in development key")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.DatabaseDSN); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("pgxpool.New", zap.Error(err))
	}
	defer pool.Close()

	db := &postgres.DB{Pool: pool}
	users := postgres.NewUserRepo(db)
	blogs := postgres.NewBlogRepo(db)
	comments := postgres.NewCommentRepo(db)

	lim := limiter.NewPG(pool, cfg.LoginFailWindow, cfg.LoginMaxFails, cfg.LoginBlockFor)
	tokens := token.New([]byte(cfg.JWTSecret), cfg.TokenTTL)

	srv := httpserver.New(
		logger,
		service.NewAuthService(users, tokens, lim),
		service.NewBlogService(blogs),
		service.NewCommentService(comments, blogs),
		service.NewUserService(users),
		tokens,
		users,
	)

	hs := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		errCh <- hs.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(shCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
			_ = hs.Close()
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("shutdown complete")
}
