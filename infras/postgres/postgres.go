package postgres

//nolint:revive
import (
	"errors"
	"facttodo/config"
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"
)

var errNoAttempt = errors.New("no connection attempt was made")

// Connection owns the bounded connection pool. Callers check connections out per call
// and must return them; nothing holds a connection across calls.
type Connection struct {
	Pool           *sqlx.DB
	AcquireTimeout time.Duration
}

// New opens the pool described by the config and returns a cleanup that closes it.
func New(config *config.Config) (*Connection, func(), error) {
	pg := config.DB.Postgres

	db, err := CreatePostgresConnection(
		Descriptor(pg.Username, pg.Password, pg.Host, pg.Port, pg.Name, pg.SSLMode),
		pg.Host,
		pg.Port,
		pg.Name,
		pg.MaxRetry,
		pg.RetryWaitTime,
	)
	if err != nil {
		return nil, nil, err
	}

	conn := NewConnection(db, pg.MaxOpenConnections, pg.MaxIdleConnections, time.Duration(pg.AcquireTimeoutSeconds)*time.Second)

	cleanup := func() {
		if err := conn.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database pool")

			return
		}

		log.Info().Msg("Database pool closed")
	}

	return conn, cleanup, nil
}

// NewConnection sizes an already opened pool.
func NewConnection(db *sqlx.DB, maxOpen, maxIdle int, acquireTimeout time.Duration) *Connection {
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)

	return &Connection{
		Pool:           db,
		AcquireTimeout: acquireTimeout,
	}
}

func (c *Connection) Close() error {
	return c.Pool.Close() //nolint:wrapcheck
}

func Descriptor(username, password, host, port, dbName, sslMode string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

// CreatePostgresConnection creates a database connection, retrying up to maxRetry times.
func CreatePostgresConnection(descriptor, host, port, dbName string, maxRetry, waitTime int) (*sqlx.DB, error) {
	lastErr := errNoAttempt

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect(driverName, descriptor)
		if err == nil {
			log.
				Info().
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")

			return sqlDB, nil
		}

		lastErr = err

		log.
			Error().
			Err(err).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		if retry < maxRetry-1 {
			time.Sleep(time.Duration(waitTime) * time.Second)
		}
	}

	return nil, fmt.Errorf("failed connecting to database after %d attempts: %w", maxRetry, lastErr)
}
