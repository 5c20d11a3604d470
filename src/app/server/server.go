// Package server assembles the gin engine for the joke site and runs it.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jokeshare/src/app/auth"
	"jokeshare/src/app/http/handler"
	"jokeshare/src/app/http/response"
	"jokeshare/src/app/middleware"
	"jokeshare/src/app/web"
	"jokeshare/src/core/ports"
	"jokeshare/src/core/usecase"
	"jokeshare/src/infra/config"
	"jokeshare/src/infra/logger"
)

// Deps are the adapters the server is built from.
type Deps struct {
	Users  ports.UserRepository
	Jokes  ports.JokeRepository
	Hasher ports.PasswordHasher
	Codec  ports.SessionCodec

	// Health lists the components pinged by /health/detailed.
	Health map[string]ports.Repository
	// Collectors are registered next to the HTTP metrics.
	Collectors []prometheus.Collector
}

// Server is the configured HTTP server.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server
}

// New builds the services, session manager and routes from deps.
func New(cfg *config.Config, log *slog.Logger, deps Deps) (*Server, error) {
	mode := gin.ReleaseMode
	if cfg.Log.Level == "debug" {
		mode = gin.DebugMode
	}
	gin.SetMode(mode)

	templates, err := web.Templates()
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	registry.MustRegister(deps.Collectors...)

	authService := usecase.NewAuthService(deps.Users, deps.Hasher, logger.WithComponent(log, "auth"))
	jokeService := usecase.NewJokeService(deps.Jokes, logger.WithComponent(log, "jokes"))
	sessions := auth.NewSessions(deps.Codec, authService, cfg.App.IsProduction(), logger.WithComponent(log, "sessions"))

	router := gin.New()
	router.SetHTMLTemplate(templates)
	router.Use(
		middleware.Recovery(log),
		middleware.RequestID(log),
		middleware.NewMetrics(registry).Handler(),
		middleware.Logging(log),
	)

	health := handler.NewHealthHandler(usecase.NewHealthService(log, deps.Health))
	router.GET("/health", health.Health)
	router.GET("/health/detailed", health.DetailedHealth)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{EnableOpenMetrics: true})))

	pages := handler.NewPagesHandler()
	login := handler.NewLoginHandler(authService, sessions, log)
	jokes := handler.NewJokesHandler(jokeService, sessions, log)

	site := router.Group("/", middleware.CurrentUser(sessions))
	site.GET("/", pages.Home)
	site.GET("/login", login.Show)
	site.POST("/login", login.Submit)
	site.GET("/logout", login.LogoutPage)
	site.POST("/logout", login.Logout)
	site.GET("/jokes", jokes.Random)
	site.GET("/jokes/new", jokes.New)
	site.POST("/jokes/new", jokes.Create)
	site.GET("/jokes/:jokeId", jokes.Show)
	site.POST("/jokes/:jokeId", jokes.Delete)

	router.NoRoute(func(c *gin.Context) {
		response.ErrorPage(c, http.StatusNotFound, "Page not found.", middleware.GetRequestID(c))
	})

	return &Server{
		cfg:    cfg,
		log:    log,
		router: router,
		http: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.http.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		s.log.Info("shutdown requested", "cause", context.Cause(ctx))
	}
	return s.Shutdown()
}

// Shutdown stops accepting connections and waits for active ones.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}

// Router exposes the engine to tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
