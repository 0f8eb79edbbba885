package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/logistics-net-api/internal/application/account"
	"github.com/logistics-net-api/internal/application/catalog"
	"github.com/logistics-net-api/internal/application/otp"
	"github.com/logistics-net-api/internal/config"
	"github.com/logistics-net-api/internal/domain"
	"github.com/logistics-net-api/internal/infrastructure/dynamo"
	"github.com/logistics-net-api/internal/infrastructure/mail"
	"github.com/logistics-net-api/internal/infrastructure/memory"
	"github.com/logistics-net-api/internal/infrastructure/predictor"
	redisinfra "github.com/logistics-net-api/internal/infrastructure/redis"
	s3infra "github.com/logistics-net-api/internal/infrastructure/s3"
	"github.com/logistics-net-api/internal/pkg/logger"
	transporthttp "github.com/logistics-net-api/internal/transport/http"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	slog.SetDefault(logger.New(os.Stdout, cfg.LogLevel))
	if envErr != nil {
		slog.Info("no .env file found, reading from environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	deps, err := buildDeps(ctx, cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      transporthttp.NewRouter(ctx, cfg, deps),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Predictor.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.AppPort, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

func buildDeps(ctx context.Context, cfg *config.Config) (*transporthttp.Deps, error) {
	needDynamo := cfg.OTP.Store == "dynamo" || cfg.AccountStore == "dynamo"

	var dynamoClient *dynamodb.Client
	if needDynamo {
		client, err := dynamo.NewClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		// Creates tables if they don't exist.
		dynamo.Bootstrap(ctx, client, cfg.DynamoTables, cfg.OTP.Store == "dynamo")
		dynamoClient = client
	}

	var ledger otp.Ledger
	switch cfg.OTP.Store {
	case "dynamo":
		ledger = dynamo.NewOTPRepo(dynamoClient, cfg.DynamoTables.OTPs)
	case "redis":
		rdb, err := redisinfra.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		ledger = redisinfra.NewOTPStore(rdb)
	case "memory":
		slog.Warn("OTP codes are kept in process memory; use only for local development")
		ledger = memory.NewOTPStore()
	default:
		return nil, fmt.Errorf("unknown OTP_STORE %q", cfg.OTP.Store)
	}

	stores := map[domain.Variant]account.Store{}
	switch cfg.AccountStore {
	case "dynamo":
		stores[domain.VariantStartup] = dynamo.NewAccountRepo(dynamoClient, cfg.DynamoTables.Startups)
		stores[domain.VariantBusiness] = dynamo.NewAccountRepo(dynamoClient, cfg.DynamoTables.Businesses)
		stores[domain.VariantCustomer] = dynamo.NewAccountRepo(dynamoClient, cfg.DynamoTables.Customers)
	case "memory":
		slog.Warn("accounts are kept in process memory; use only for local development")
		for _, v := range domain.Variants {
			stores[v] = memory.NewAccountStore()
		}
	default:
		return nil, fmt.Errorf("unknown ACCOUNT_STORE %q", cfg.AccountStore)
	}

	mailer, err := mail.New(cfg.Mail)
	if err != nil {
		return nil, err
	}

	cat := catalog.NewService()
	if cfg.CatalogBucket != "" && cfg.CatalogKey != "" {
		s3Client, err := s3infra.NewClient(ctx, cfg)
		if err != nil {
			slog.Warn("S3 client not available; using built-in catalog", "err", err)
		} else {
			cat = catalog.Load(ctx, s3infra.NewStore(s3Client, cfg.CatalogBucket), cfg.CatalogKey)
		}
	}

	return &transporthttp.Deps{
		OTPLedger:     ledger,
		AccountStores: stores,
		Mailer:        mailer,
		Predictor:     predictor.New(cfg.Predictor),
		Catalog:       cat,
	}, nil
}
