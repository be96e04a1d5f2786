package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SHOEB091/code-IDE/config"
	"github.com/SHOEB091/code-IDE/internal/db"
	"github.com/SHOEB091/code-IDE/internal/execution"
	"github.com/SHOEB091/code-IDE/internal/handlers"
	"github.com/SHOEB091/code-IDE/internal/services"
	"github.com/SHOEB091/code-IDE/internal/storage"
	"github.com/SHOEB091/code-IDE/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
}

// New constructs a Server: database, repositories, services, the
// execution dispatcher, and the route table. All configuration comes
// in through cfg; nothing below this point reads the environment.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	userRepo := store.NewUserRepository(dbConn)
	projectRepo := store.NewProjectRepository(dbConn)

	userService := services.NewUserService(userRepo, cfg.JWTSecret)
	projectService := services.NewProjectService(projectRepo)
	dispatcher := execution.NewDispatcher(cfg.Execution)

	avatars, err := storage.NewAvatars(ctx, cfg.Storage)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}
	if avatars != nil {
		if err := avatars.EnsureBucket(ctx); err != nil {
			_ = dbConn.Close()
			return nil, err
		}
	}

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)

	// Requests without an Origin header always pass; disallowed
	// origins get a bare CORS rejection.
	router.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler)

	router.Get("/healthz", handlers.Healthz)
	handlers.AuthRouter(router, userService)
	handlers.ProjectRouter(router, projectService, userService)
	handlers.ExecuteRouter(router, dispatcher)
	if avatars != nil {
		handlers.ProfileRouter(router, userService, avatars)
	}

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
