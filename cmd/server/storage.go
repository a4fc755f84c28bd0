package main

import (
	"fmt"

	"github.com/AnshRaj112/mindjournal-backend/internal/config"
	"github.com/AnshRaj112/mindjournal-backend/internal/database"
	"github.com/AnshRaj112/mindjournal-backend/internal/logger"
	"github.com/AnshRaj112/mindjournal-backend/internal/storage"
	"github.com/AnshRaj112/mindjournal-backend/pkg/utils"
)

// redisKeyPrefix namespaces journal keys inside a shared Redis.
const redisKeyPrefix = "mindjournal:"

// openStore connects the backend named by STORAGE_DRIVER and wraps it in the
// encrypting store when ENCRYPTION_KEY is set. The returned func releases
// the connection.
func openStore(cfg *config.Config, log *logger.Logger) (storage.Store, func(), error) {
	var (
		store   storage.Store
		release = func() {}
	)

	switch cfg.StorageDriver {
	case config.StorageMemory:
		log.Warn().Msg("using in-memory storage; data is lost on restart")
		store = storage.NewMemory()

	case config.StorageDisk:
		disk, err := storage.NewDisk(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("dir", cfg.DataDir).Msg("using disk storage")
		store = disk

	case config.StorageRedis:
		log.Info().Str("uri", database.MaskURI(cfg.RedisURI)).Msg("connecting to Redis")
		if err := database.ConnectRedis(cfg.RedisURI); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		store = storage.NewRedis(database.RedisClient, redisKeyPrefix)
		release = func() { database.DisconnectRedis() }

	case config.StoragePostgres:
		log.Info().Str("uri", database.MaskURI(cfg.PostgresURI)).Msg("connecting to PostgreSQL")
		if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		store = storage.NewPostgres(database.PostgresDB)
		release = func() { database.DisconnectPostgres() }

	case config.StorageMongo:
		log.Info().Str("uri", database.MaskURI(cfg.MongoURI)).Msg("connecting to MongoDB")
		if err := database.Connect(cfg.MongoURI); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		store = storage.NewMongo(database.DB)
		release = func() { database.Disconnect() }

	default:
		return nil, nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if cfg.EncryptionKey == "" {
		log.Warn().Msg("ENCRYPTION_KEY not set; journal data is stored unencrypted (generate one with: openssl rand -base64 32)")
		return store, release, nil
	}

	cipher, err := utils.NewCipher(cfg.EncryptionKey)
	if err != nil {
		release()
		return nil, nil, fmt.Errorf("ENCRYPTION_KEY is invalid (must be base64-encoded 32 bytes): %w", err)
	}
	log.Info().Msg("encryption at rest enabled")
	return storage.NewEncrypted(store, cipher), release, nil
}
