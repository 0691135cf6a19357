package rest

import (
	"context"
	"fmt"
	"net/http"

	core_ports "catalog-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_ports.LoggerPort
}

// NewServer создает и настраивает роутер и HTTP-сервер каталога.
func NewServer(port string, allowedOrigin string,
	propertyHandlers *PropertyHandlers,
	ownerHandlers *OwnerHandlers,
	imageHandlers *PropertyImageHandlers,
	traceHandlers *PropertyTraceHandlers,
	baseLogger core_ports.LoggerPort) *Server {

	r := chi.NewRouter()

	// Стандартные middleware
	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		// AllowedOrigins - список доменов, с которых разрешены запросы
		AllowedOrigins: []string{allowedOrigin},

		// AllowedMethods - список разрешенных HTTP-методов.
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},

		// AllowedHeaders - список разрешенных заголовков в запросе
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},

		// AllowCredentials - разрешает отправку cookies и Authorization хедера
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/properties", func(r chi.Router) {
			r.Get("/", propertyHandlers.HandleSearchProperties)
			r.Post("/", propertyHandlers.HandleCreateProperty)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", propertyHandlers.HandleGetPropertyByID)
				r.Put("/", propertyHandlers.HandleUpdateProperty)
				r.Delete("/", propertyHandlers.HandleDeleteProperty)

				r.Route("/images", func(r chi.Router) {
					r.Get("/", imageHandlers.HandleListPropertyImages)
					r.Post("/", imageHandlers.HandleAddPropertyImage)
					r.Put("/{imageId}/enabled", imageHandlers.HandleSetImageEnabled)
					r.Delete("/{imageId}", imageHandlers.HandleDeletePropertyImage)
				})

				r.Route("/traces", func(r chi.Router) {
					r.Get("/", traceHandlers.HandleListPropertyTraces)
					r.Post("/", traceHandlers.HandleAddPropertyTrace)
					r.Delete("/{traceId}", traceHandlers.HandleDeletePropertyTrace)
				})
			})
		})

		r.Route("/owners", func(r chi.Router) {
			r.Post("/", ownerHandlers.HandleCreateOwner)
			r.Get("/{id}", ownerHandlers.HandleGetOwnerByID)
			r.Put("/{id}", ownerHandlers.HandleUpdateOwner)
			r.Delete("/{id}", ownerHandlers.HandleDeleteOwner)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

// Start запускает HTTP-сервер
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_ports.Fields{"address": s.httpServer.Addr})
	// ListenAndServe будет работать, пока не получит ошибку или команду Shutdown
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
