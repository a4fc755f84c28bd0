package database

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"

	"github.com/AnshRaj112/mindjournal-backend/migrations"
)

var PostgresDB *sql.DB

// ConnectPostgres connects to PostgreSQL and applies the kv_store migrations
func ConnectPostgres(postgresURI string) error {
	var err error

	PostgresDB, err = sql.Open("postgres", postgresURI)
	if err != nil {
		return err
	}

	// Set connection pool settings
	PostgresDB.SetMaxOpenConns(25)
	PostgresDB.SetMaxIdleConns(5)
	PostgresDB.SetConnMaxLifetime(5 * time.Minute)

	if err = PostgresDB.Ping(); err != nil {
		return err
	}

	return migrations.Migrate(PostgresDB)
}

// DisconnectPostgres closes the PostgreSQL connection
func DisconnectPostgres() error {
	if PostgresDB != nil {
		return PostgresDB.Close()
	}
	return nil
}
