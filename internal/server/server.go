package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"

	"aiobackend/internal/database"
	"aiobackend/internal/middlewares"
	"aiobackend/internal/repositories"
	"aiobackend/internal/services"
)

const defaultPort = 8000

type Server struct {
	port        int
	httpServer  *http.Server
	db          database.Service
	newsService services.NewsService
}

func NewServer() *Server {
	port := defaultPort
	if portStr := os.Getenv("PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			log.Warn().Str("port", portStr).Int("default", defaultPort).Msg("Invalid PORT environment variable, using default")
		} else {
			port = p
		}
	}

	// A missing store is not fatal: the server still serves the liveness and
	// diagnostic endpoints so the misconfiguration is observable.
	db, err := database.New()
	if err != nil {
		log.Error().Err(err).Msg("Document store not available, starting without it")
		db = nil
	}

	newsRepo := repositories.NewNewsRepository(db)

	s := &Server{
		port:        port,
		db:          db,
		newsService: services.NewNewsService(newsRepo),
	}

	go middlewares.CleanupVisitors()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

func (s *Server) Start() error {
	log.Info().Int("port", s.port).Msg("Starting server")
	return s.httpServer.ListenAndServe()
}

func (s *Server) GracefulShutdown(done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown with error")
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing database connection")
		}
	}

	log.Info().Msg("Server exiting")
	done <- true
}
