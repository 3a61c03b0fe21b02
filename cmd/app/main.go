package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ForumApp/community-service/internal/cli"
	"github.com/ForumApp/community-service/internal/config"
	"github.com/ForumApp/community-service/internal/handler"
	"github.com/ForumApp/community-service/internal/repository"
	"github.com/ForumApp/community-service/internal/server"
	"github.com/ForumApp/community-service/internal/service"
	"github.com/ForumApp/community-service/internal/storage"
	"github.com/ForumApp/community-service/internal/storage/filestore"
	"github.com/ForumApp/community-service/internal/storage/postgres"
	"github.com/ForumApp/community-service/internal/storage/redisstore"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()

	if err := loadEnv(); err != nil {
		logger.Warn("no .env file found, relying on process environment")
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}

	store := initStorage(ctx, logger)

	repo := repository.New(logger, store)
	if err := repo.Load(ctx); err != nil {
		logger.Sugar().Panicf("failed to load collections: %s", err.Error())
	}
	logger.Info("Collections loaded")

	services := service.New(logger, repo)
	handlers := handler.New(services)

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	}
	go func() {
		if err := srv.Run(serverConfig); err != nil {
			logger.Sugar().Infof("http server stopped: %s", err.Error())
		}
	}()

	logger.Info("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	// the terminal prompt runs alongside the server; typing "exit" (or
	// closing stdin) shuts the whole service down
	prompt := cli.New(services, os.Stdin, os.Stdout)
	go func() {
		prompt.Run(ctx)
		quit <- syscall.SIGTERM
	}()

	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shutdown http server: %s", err.Error())
	}
}

func loadEnv() error {
	return godotenv.Load()
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}

func initStorage(ctx context.Context, logger *zap.Logger) storage.Storage {
	switch backend := viper.GetString("storage.backend"); backend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr: os.Getenv("REDIS_ADDR"),
		})
		pong, err := rdb.Ping(ctx).Result()
		if err != nil {
			logger.Sugar().Panicf("failed to ping redis: %s", err.Error())
		}
		logger.Sugar().Infof("Successfully connected to Redis: %s", pong)

		return redisstore.New(rdb)
	case "postgres":
		dbConfig := config.DBConfig{
			Username: os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			DBName:   os.Getenv("POSTGRES_DATABASE"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}
		db, err := postgres.DB(ctx, dbConfig)
		if err != nil {
			logger.Sugar().Panicf("failed to connect to postgres: %s", err.Error())
		}
		if err := db.Ping(ctx); err != nil {
			logger.Sugar().Panicf("failed to ping postgres: %s", err.Error())
		}
		logger.Info("Successfully connected to PostgreSQL")

		store, err := postgres.New(ctx, db)
		if err != nil {
			logger.Sugar().Panicf("failed to initialize postgres storage: %s", err.Error())
		}

		return store
	case "file", "":
		dir := viper.GetString("storage.dir")
		if dir == "" {
			dir = "data"
		}

		return filestore.New(dir)
	default:
		logger.Sugar().Panicf("unknown storage backend: %s", backend)
		return nil
	}
}
