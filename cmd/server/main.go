package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"phygital/internal/phygital/chain"
	"phygital/internal/phygital/config"
	"phygital/internal/phygital/handler"
	"phygital/internal/phygital/repository"
	"phygital/internal/phygital/router"
	"phygital/internal/phygital/util"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// 0. Load .env when present; real env wins
	envErr := godotenv.Load()

	// 1. Init Logger
	util.InitLogger(os.Getenv("LOG_LEVEL"))
	logger := util.GetLogger()
	if envErr != nil && !os.IsNotExist(envErr) {
		logger.Warn("Failed to read .env", "error", envErr)
	}

	// 2. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 3. Chain registry
	registry, err := chain.NewRegistryFromEnv()
	if err != nil {
		logger.Error("Failed to build chain registry", "error", err)
		os.Exit(1)
	}
	for _, c := range registry.All() {
		if c.RPCURL == "" {
			logger.Warn("No RPC endpoint configured", "chain", c.Key)
		}
	}
	chainSvc := chain.NewService(registry, chain.FamilyDialer{}, cfg.RPCTimeout)
	chainSvc.Logger = logger

	// 4. Init MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}

	db := client.Database(cfg.DBName)
	users := repository.NewMongoUserRepository(db, cfg.UsersCollection)
	healthChecks := repository.NewMongoHealthCheckRepository(db, cfg.HealthCheckCollection)

	if err := healthChecks.EnsureHealthCheckIndexes(ctx); err != nil {
		logger.Warn("Failed to ensure health check indexes", "error", err)
	}

	h := handler.NewHandler(users, healthChecks, chainSvc)
	h.RecordHealthChecks = cfg.RecordHealthChecks
	h.Logger = logger
	guard := handler.NewPermissionGuard(users, logger)

	// 5. Init Echo & Routes
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
			)
			return nil
		},
	}))

	router.RegisterRoutes(e, h, guard)

	// 6. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port, "env", cfg.Env, "chains", registry.Keys())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("shutting down the server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server Shutdown Failed", "error", err)
	}

	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Error("Failed to disconnect DB", "error", err)
	}

	logger.Info("Server exited properly")
}
