package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"museum-concierge/internal/adaptor"
	"museum-concierge/internal/data/repository"
	"museum-concierge/internal/tasks"
	"museum-concierge/internal/usecase"
	"museum-concierge/internal/wire"
	"museum-concierge/pkg/database"
	"museum-concierge/pkg/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RunServer wires the application together and serves until interrupted.
func RunServer(config *utils.Config, log *zap.Logger) error {
	db, err := database.InitDB(config.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	verifier, err := utils.NewFirebaseVerifier(context.Background(), config.Firebase.CredentialsFile)
	if err != nil {
		return fmt.Errorf("init identity verifier: %w", err)
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	}
	queue := asynq.NewClient(redisOpt)
	defer queue.Close()

	repo := repository.NewRepository(db, log)
	service := usecase.NewService(repo, queue, config, log)
	defer service.Concierge.Stop()

	worker := tasks.StartWorker(config.Redis, repo.Booking, log)
	defer worker.Shutdown()

	handler := adaptor.NewHandler(service, log)
	router := wire.SetupRouter(handler, verifier, log)

	server := &http.Server{
		Addr:         ":" + config.App.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server listening", zap.String("port", config.App.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
