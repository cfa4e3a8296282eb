package server

import (
	"context"
	"fmt"
	"time"

	"ecotrack/internal/config"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	router *gin.Engine
	mongo  *mongo.Client
}

// New connects to MongoDB, wires the application layers and prepares the
// router. Indexes are created and seed data populated before the first
// request is served.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	mongoClient, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	repos := InitRepositories(db)
	services := InitServices(cfg, repos)
	handlers := InitHandlers(services)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := ensureIndexes(ctx, repos); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}
	if cfg.Seed {
		if err := PopulateInitialData(ctx, repos); err != nil {
			return nil, fmt.Errorf("failed to populate initial data: %w", err)
		}
	}

	router := setupRouter(cfg, logger, handlers, repos)

	return &Server{
		cfg:    cfg,
		logger: logger,
		router: router,
		mongo:  mongoClient,
	}, nil
}

func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// Run starts the server
func (s *Server) Run() error {
	s.logger.Info("server listening", zap.String("address", s.cfg.Server.Address()))
	return s.router.Run(s.cfg.Server.Address())
}

// Close disconnects the MongoDB client
func (s *Server) Close() error {
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}
