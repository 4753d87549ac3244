package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by the portal.
const (
	AppointmentsCollection = "appointments"
	UsersCollection        = "users"
	DoctorsCollection      = "doctors"
)

const connectTimeout = 30 * time.Second

// Connect opens the shared client and pings the primary before returning it.
func Connect(ctx context.Context, uri string, logger *zerolog.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongodb connection failed: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	logger.Info().Msg("connected to MongoDB")
	return client, nil
}

// Disconnect closes the client, waiting at most until ctx is done.
func Disconnect(ctx context.Context, client *mongo.Client, logger *zerolog.Logger) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Error().Err(err).Msg("mongodb disconnection error")
		return
	}
	logger.Info().Msg("mongodb disconnected")
}
