package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"hotel/config"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection holds the read replica and the write primary. Every transaction runs on Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	Username string
	Password string
	Host     string
	Port     string
	Name     string
	SSLMode  string
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  CreatePostgresReadConn(*config),
		Write: CreatePostgresWriteConn(*config),
	}
}

// Ping checks both pools; used by the health endpoint.
func (c *Connection) Ping(ctx context.Context) error {
	if c.Read == nil || c.Write == nil {
		return errors.New("database connection not established")
	}

	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("ping write database: %w", err)
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("ping read database: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	var errs []error

	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}
		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// DBName returns the database name with prefix if configured
func DBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// WriteDSN is the connection string of the primary, shared with the migration runner.
func WriteDSN(config config.Config) string {
	return dsn(writeEndpoint(config))
}

func writeEndpoint(config config.Config) endpoint {
	w := config.DB.Postgres.Write

	return endpoint{
		Username: w.Username,
		Password: w.Password,
		Host:     w.Host,
		Port:     w.Port,
		Name:     DBName(config, w.Name),
		SSLMode:  w.SSLMode,
	}
}

func readEndpoint(config config.Config) endpoint {
	r := config.DB.Postgres.Read

	return endpoint{
		Username: r.Username,
		Password: r.Password,
		Host:     r.Host,
		Port:     r.Port,
		Name:     DBName(config, r.Name),
		SSLMode:  r.SSLMode,
	}
}

func dsn(e endpoint) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		e.Username,
		e.Password,
		net.JoinHostPort(e.Host, e.Port),
		e.Name,
		e.SSLMode,
	)
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection("write", writeEndpoint(config), config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection("read", readEndpoint(config), config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime)
}

// CreatePostgresConnection creates a database connection, retrying maxRetry times.
func CreatePostgresConnection(name string, e endpoint, maxRetry, waitTime int) *sqlx.DB {
	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", dsn(e))
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", e.Host).
				Str("port", e.Port).
				Str("dbName", e.Name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", e.Host).
			Str("port", e.Port).
			Str("dbName", e.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Str("name", name).Msg("Exhausted database connection retries")

	return nil
}
