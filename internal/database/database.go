package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultDatabaseName = "aio"

type Service interface {
	Health() map[string]string
	Client() *mongo.Client
	Database() *mongo.Database
	Close() error
}

type service struct {
	client *mongo.Client
	name   string
}

// New connects to the document store named by DATABASE_URL. A missing or
// rejected URL is returned as an error rather than exiting: the server must
// still come up so the diagnostic endpoint can report the misconfiguration.
func New() (Service, error) {
	uri := os.Getenv("DATABASE_URL")
	if uri == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	name := os.Getenv("DATABASE_NAME")
	if name == "" {
		name = defaultDatabaseName
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	log.Info().Str("database", name).Msg("Connected to MongoDB")
	return &service{client: client, name: name}, nil
}

func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := s.client.Ping(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("Database health check failed")
		return map[string]string{
			"message": "db down",
			"error":   err.Error(),
		}
	}

	return map[string]string{
		"message": "It's healthy",
	}
}

func (s *service) Client() *mongo.Client {
	return s.client
}

func (s *service) Database() *mongo.Database {
	return s.client.Database(s.name)
}

func (s *service) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
