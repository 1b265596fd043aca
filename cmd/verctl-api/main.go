package main

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	"github.com/verctl/verctl/internal/apiserver"
	"github.com/verctl/verctl/internal/apiserver/versioning"
	"github.com/verctl/verctl/internal/catalog"
	"github.com/verctl/verctl/internal/config"
	"github.com/verctl/verctl/internal/contract"
	"github.com/verctl/verctl/pkg/log"
)

func main() {
	logger := log.InitLogs()
	logger.Println("Starting API service")
	defer logger.Println("API service stopped")

	cfg, err := config.LoadOrGenerate(config.ConfigFile())
	if err != nil {
		logger.Fatalf("reading configuration: %v", err)
	}
	logger.Printf("Using config: %s", cfg)
	log.WithLevel(logger, cfg.Service.LogLevel)

	// An invalid version configuration must abort startup, never be served.
	registry, err := versioning.NewRegistryFromConfig(cfg)
	if err != nil {
		logger.Fatalf("validating version configuration: %v", err)
	}

	builder := contract.NewBuilder(registry)
	catalog.Register(builder)

	// All documents are built once here, before the listener opens.
	documents, err := builder.BuildAll()
	if err != nil {
		logger.Fatalf("building contract documents: %v", err)
	}

	listener, err := net.Listen("tcp", cfg.Service.Address)
	if err != nil {
		logger.Fatalf("creating listener: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	server := apiserver.New(logger, cfg, registry, documents, listener)
	if err := server.Run(ctx); err != nil {
		logger.Fatalf("running server: %v", err)
	}
}
