package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipebox/backend/config"
	"github.com/pageza/recipebox/backend/internal/api"
	"github.com/pageza/recipebox/backend/internal/middleware"
	"github.com/pageza/recipebox/backend/internal/service"
)

const shutdownTimeout = 5 * time.Second

// Options carries the dependencies of a Server. Redis and Images are
// optional.
type Options struct {
	Config *config.Config
	DB     *gorm.DB
	Log    *zap.Logger
	Redis  *redis.Client
	Images service.ImageStore
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	log    *zap.Logger
}

// New wires services, middleware and routes.
func New(opts Options) *Server {
	if opts.Config.Env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(opts.Log),
		middleware.Logger(opts.Log),
		middleware.Metrics(),
		middleware.CORS(opts.Config.CORSAllowedOrigins),
	)

	router.GET("/health", api.HealthCheck(opts.DB, opts.Log))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	var authLimit gin.HandlerFunc
	if opts.Redis != nil {
		authLimit = middleware.NewAuthRateLimiter(opts.Redis, opts.Log).Middleware()
	} else {
		opts.Log.Info("redis not configured, auth rate limiting disabled")
	}

	api.RegisterRoutes(router, api.Services{
		Accounts: service.NewAccountService(opts.DB),
		Recipes:  service.NewRecipeService(opts.DB, opts.Images),
		Sets:     service.NewSetService(opts.DB),
	}, authLimit, opts.Log)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              opts.Config.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: opts.Log,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting server", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Stop(shutdownCtx)
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
