package main

import (
	"context"
	"log"
	"net/http"

	_ "upay_gateway/docs"
	"upay_gateway/internal/adapter/http/handlers"
	"upay_gateway/internal/adapter/http/routes"
	"upay_gateway/internal/adapter/persistence/repository"
	"upay_gateway/internal/infrastructure/config"
	"upay_gateway/internal/infrastructure/database"
	"upay_gateway/internal/infrastructure/logger"
	"upay_gateway/internal/infrastructure/payments"
	"upay_gateway/internal/usecase"
	"upay_gateway/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Upay Gateway API
// @version         1.0
// @description     Relay for the Upay payment gateway: payment init, status lookups and bulk refunds.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(cfg.App, cfg.Logger)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	zapLogger.Info("starting upay gateway api",
		zap.String("port", cfg.Server.Port),
		zap.String("env", cfg.App.Env),
		zap.String("upay_base_url", cfg.Upay.BaseURL),
		zap.Bool("gateway_mock", cfg.Upay.Mock),
		zap.Bool("audit_enabled", cfg.App.AuditEnabled),
	)

	var gateway interfaces.IPaymentGateway
	if cfg.Upay.Mock {
		gateway = payments.NewMockUpayGateway(cfg.Upay.BaseURL, zapLogger)
	} else {
		gateway = payments.NewUpayGateway(payments.Credentials{
			BaseURL:     cfg.Upay.BaseURL,
			MerchantID:  cfg.Upay.MerchantID,
			MerchantKey: cfg.Upay.MerchantKey,
		}, &http.Client{Timeout: cfg.Upay.RequestTimeout}, zapLogger)
	}

	var callRepo interfaces.IGatewayCallRepository
	if cfg.App.AuditEnabled {
		ddb, err := database.ConnectDynamoDB(context.Background(), cfg.DynamoDB)
		if err != nil {
			zapLogger.Fatal("failed to create dynamodb client", zap.Error(err))
		}
		callRepo = repository.NewGatewayCallDynamoRepository(ddb, cfg.DynamoDB.GatewayCallsTable)
	}

	paymentUseCase := usecase.NewUpayPaymentUseCase(gateway, callRepo, zapLogger)
	paymentHandler := handlers.NewUpayPaymentHandler(paymentUseCase, zapLogger)

	router := routes.NewRouter(zapLogger, paymentHandler)
	if err := routes.Run(cfg.Server, router, zapLogger); err != nil {
		zapLogger.Fatal("server failed", zap.Error(err))
	}
}
