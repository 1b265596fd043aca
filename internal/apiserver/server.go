package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"

	vcmiddleware "github.com/verctl/verctl/internal/apiserver/middleware"
	"github.com/verctl/verctl/internal/apiserver/versioning"
	"github.com/verctl/verctl/internal/config"
	"github.com/verctl/verctl/internal/contract"
)

const gracefulShutdownTimeout = 5 * time.Second

type Server struct {
	log       logrus.FieldLogger
	cfg       *config.Config
	registry  *versioning.Registry
	documents contract.Documents
	listener  net.Listener
}

// New returns a new instance of a verctl server.
func New(
	log logrus.FieldLogger,
	cfg *config.Config,
	registry *versioning.Registry,
	documents contract.Documents,
	listener net.Listener,
) *Server {
	return &Server{
		log:       log,
		cfg:       cfg,
		registry:  registry,
		documents: documents,
		listener:  listener,
	}
}

func (s *Server) Run(ctx context.Context) error {
	s.log.Println("Initializing API server")

	router := chi.NewRouter()

	// request size limits come before logging to keep oversized requests
	// out of the logs
	router.Use(
		middleware.RequestSize(int64(s.cfg.Service.HttpMaxRequestSize)),
		vcmiddleware.RequestSizeLimiter(s.cfg.Service.HttpMaxUrlLength, s.cfg.Service.HttpMaxNumHeaders),
		vcmiddleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
	)

	router.Use(versioning.Middleware(s.registry))

	router.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(60, time.Minute))
		r.Get("/api/versions", s.handleListVersions)
		r.Get("/api/docs", s.handleDisplayOptions)
		r.Get("/api/{version}/openapi.json", s.handleDocument)
	})

	server := &http.Server{
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		s.log.Println("Shutdown signal received")
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()
		_ = server.Shutdown(ctxTimeout)
	}()

	s.log.Printf("Listening on %s...", s.listener.Addr().String())
	if err := server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
