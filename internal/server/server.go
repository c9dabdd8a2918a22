package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rmachado/logkeep/internal/commons"
	"github.com/rmachado/logkeep/internal/logger"
	"github.com/rmachado/logkeep/internal/mirror"
	"github.com/rmachado/logkeep/internal/repository"
	"github.com/rmachado/logkeep/internal/service"
	"github.com/rmachado/logkeep/internal/store"
)

type Server struct {
	port       int
	router     http.Handler
	config     Config
	dispatcher *mirror.Dispatcher
	partitions *logger.PartitionManager
}

func NewServer(config Config) (*Server, error) {
	fileStore, err := store.NewFileStore(config.LogDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize log store: %w", err)
	}

	server := &Server{
		port:   int(config.ServerPort),
		config: config,
	}

	var diagRepo repository.DiagRepository
	if config.DiagDB != "" {
		pgRepo, err := repository.NewPostgresDiagRepository(config.DiagDB, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize diagnostics repository: %w", err)
		}
		diagRepo = pgRepo
		server.partitions = logger.NewPartitionManager(pgRepo)
	}
	logger.InitLogger(diagRepo)

	sink, err := newSink(config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize collector sink: %w", err)
	}

	var forwarder mirror.Forwarder
	if sink != nil {
		server.dispatcher = mirror.NewDispatcher(sink, config.CollectorSource, config.CollectorTags, config.CollectorTimeout)
		forwarder = server.dispatcher
	}

	logService := service.NewLogService(fileStore, forwarder)
	server.registerRoutes(logService)
	return server, nil
}

func newSink(config Config) (mirror.Sink, error) {
	switch config.CollectorKind {
	case CollectorKindHTTP:
		return mirror.NewHTTPSink(config.CollectorHost, config.CollectorPort), nil
	case CollectorKindRedis:
		return mirror.NewRedisSink(config.RedisAddr, config.RedisPass)
	default:
		return nil, nil
	}
}

func (s *Server) Start(ctx context.Context) error {
	logger.Infof("starting server on port %d", s.port)
	ch := make(chan error, 1)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.router,
		IdleTimeout:  commons.ServerIdleTimeout,
		ReadTimeout:  commons.ServerReadTimeout,
		WriteTimeout: commons.ServerWriteTimeout,
	}

	if s.partitions != nil {
		if err := s.partitions.Start(ctx); err != nil {
			logger.Errorf("failed to start partition manager: %v", err)
		}
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			ch <- fmt.Errorf("failed to start server: %w", err)
		}
		close(ch)
	}()

	select {
	case err := <-ch:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if s.dispatcher != nil {
			if err := s.dispatcher.Close(shutdownCtx); err != nil {
				logger.Errorf("failed to close mirror dispatcher: %v", err)
			}
		}
		return logger.Shutdown(shutdownCtx)
	}
}
