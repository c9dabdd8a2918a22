package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rmachado/logkeep/internal/commons"
	"github.com/rmachado/logkeep/internal/handler"
	api_middleware "github.com/rmachado/logkeep/internal/middleware"
	"github.com/rmachado/logkeep/internal/service"
)

func (s *Server) registerRoutes(logService *service.LogService) {
	router := chi.NewRouter()
	router.Use(middleware.Logger)

	router.Get("/healthz", handler.HandlerReadiness)
	logHandler := handler.NewLogHandler(logService)
	router.Route("/logs", func(r chi.Router) {
		r.With(api_middleware.RateLimitMiddleware).Post("/", logHandler.WriteLog)
		r.With(api_middleware.RateLimitMiddleware).Get("/", logHandler.ReadLogs)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		commons.RespondWithError(w, http.StatusNotFound, "unknown operation: "+r.URL.Path)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		commons.RespondWithError(w, http.StatusMethodNotAllowed, "method not allowed for "+r.URL.Path)
	})

	s.router = router
}
