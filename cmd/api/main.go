package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/go-verify-api/internal/application/verification"
	"github.com/go-verify-api/internal/config"
	"github.com/go-verify-api/internal/infrastructure/dynamo"
	"github.com/go-verify-api/internal/infrastructure/postgres"
	"github.com/go-verify-api/internal/pkg/validate"
	transporthttp "github.com/go-verify-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	if err := validate.Struct(cfg); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	store, cleanup, err := newLookupStore(cfg)
	if err != nil {
		log.Fatalf("store init: %v", err)
	}
	defer cleanup()

	deps := &transporthttp.Deps{
		Resolver: verification.NewService(store, cfg),
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s backend=%s serviceRole=%t)",
			cfg.AppPort, cfg.AppEnv, cfg.Backend, cfg.ServiceRoleConfigured())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}

// newLookupStore wires the backend selected by VERIFICATION_BACKEND.
func newLookupStore(cfg *config.Config) (verification.LookupStore, func(), error) {
	switch cfg.Backend {
	case config.BackendDynamo:
		client, err := dynamo.NewClient(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("dynamo client: %w", err)
		}
		return dynamo.NewStore(client), func() {}, nil
	default:
		store, err := postgres.New(cfg)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	}
}
