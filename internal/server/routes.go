package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"aiobackend/internal/handlers"
	"aiobackend/internal/middlewares"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	r.Use(middlewares.CorsMiddleware)
	r.Use(middlewares.RateLimit)
	r.Use(middlewares.Prometheus)

	ch := handlers.NewCommonHandler(s.db)
	r.HandleFunc("/", ch.HelloWorldHandler).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/hello", ch.HelloAPIHandler).Methods("GET", "OPTIONS")
	r.HandleFunc("/health", ch.HealthHandler).Methods("GET", "OPTIONS")
	r.HandleFunc("/test", ch.DiagnosticHandler).Methods("GET", "OPTIONS")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	s.registerNewsRoutes(r)

	return r
}

func (s *Server) registerNewsRoutes(r *mux.Router) {
	nh := handlers.NewNewsHandler(s.newsService)

	// Fixed paths are registered before the {id} pattern so "featured" and
	// "seed" are never treated as identifiers.
	r.HandleFunc("/api/news/featured", nh.FeaturedNews).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/news/seed", nh.SeedNews).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/news", nh.ListNews).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/news", nh.CreateNews).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/news/{id}", nh.GetNewsByID).Methods("GET", "OPTIONS")
}
