package database

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client
var DB *mongo.Database

// DefaultMongoDatabase is used when the URI names no database.
const DefaultMongoDatabase = "mindjournal"

// Connect connects to MongoDB and selects the database named in the URI.
func Connect(mongoURI string) error {
	// Use longer timeout for Atlas connections
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURI)
	clientOptions.SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer pingCancel()

	if err = client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return err
	}

	Client = client
	DB = client.Database(MongoDatabaseName(mongoURI))
	return nil
}

// MongoDatabaseName extracts the database from mongodb://host/name?opts.
func MongoDatabaseName(mongoURI string) string {
	parts := strings.Split(mongoURI, "/")
	if len(parts) > 3 {
		if dbPart := strings.Split(parts[len(parts)-1], "?")[0]; dbPart != "" {
			return dbPart
		}
	}
	return DefaultMongoDatabase
}

func Disconnect() error {
	if Client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return Client.Disconnect(ctx)
}

// MaskURI hides the password of a connection string for logging.
func MaskURI(uri string) string {
	at := strings.LastIndex(uri, "@")
	if at == -1 {
		return uri
	}
	scheme := strings.Index(uri, "://")
	creds := uri[:at]
	if scheme != -1 {
		creds = uri[scheme+3 : at]
	}
	colon := strings.Index(creds, ":")
	if colon == -1 {
		return uri
	}
	prefix := uri[:at-len(creds)]
	return prefix + creds[:colon] + ":***" + uri[at:]
}
