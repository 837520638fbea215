package database

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"studio/config"
	"studio/shared/constant"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	sqliteBusyTimeoutMillis   = 5000
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Connection holds the read and write handles. SQLite shares one handle for both.
type Connection struct {
	Read   *sqlx.DB
	Write  *sqlx.DB
	Driver string
}

func New(config *config.Config) (*Connection, error) {
	switch config.DB.Driver {
	case constant.DriverPostgres, "":
		read := CreatePostgresReadConn(*config)
		write := CreatePostgresWriteConn(*config)

		if read == nil || write == nil {
			return nil, fmt.Errorf("failed to connect to postgres after %d attempts", config.DB.Postgres.MaxRetry)
		}

		return &Connection{Read: read, Write: write, Driver: constant.DriverPostgres}, nil
	case constant.DriverSQLite:
		db, err := CreateSQLiteConnection(config.DB.SQLite.Path)
		if err != nil {
			return nil, err
		}

		return &Connection{Read: db, Write: db, Driver: constant.DriverSQLite}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, config.DB.Driver)
	}
}

// Ping reports whether the write handle is reachable.
func (c *Connection) Ping() error {
	if c == nil || c.Write == nil {
		return errors.New("database not connected")
	}

	if err := c.Write.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

func (c *Connection) Close() {
	if c == nil {
		return
	}

	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close read connection")
		}
	}

	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close write connection")
		}
	}
}

// getDBName returns the database name with prefix if configured
func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}
	return baseName
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"write",
		config.DB.Postgres.Write.Username,
		config.DB.Postgres.Write.Password,
		config.DB.Postgres.Write.Host,
		config.DB.Postgres.Write.Port,
		getDBName(config, config.DB.Postgres.Write.Name),
		config.DB.Postgres.Write.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"read",
		config.DB.Postgres.Read.Username,
		config.DB.Postgres.Read.Password,
		config.DB.Postgres.Read.Host,
		config.DB.Postgres.Read.Port,
		getDBName(config, config.DB.Postgres.Read.Name),
		config.DB.Postgres.Read.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// PostgresURL builds the connection URL shared by the pool and the migrator.
func PostgresURL(username, password, host, port, dbName, sslMode string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(username),
		url.QueryEscape(password),
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

// CreatePostgresConnection creates a database connection.
func CreatePostgresConnection(name, username, password, host, port, dbName, sslMode string, maxRetry, waitTime int) *sqlx.DB {
	descriptor := PostgresURL(username, password, host, port, dbName, sslMode)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect(constant.DriverPostgres, descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}

// SQLiteDSN appends the pragmas every SQLite handle is opened with.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("%s?_busy_timeout=%d&_foreign_keys=on", path, sqliteBusyTimeoutMillis)
}

// CreateSQLiteConnection opens a single writer handle on the database file.
func CreateSQLiteConnection(path string) (*sqlx.DB, error) {
	sqlDB, err := sqlx.Connect(constant.DriverSQLite, SQLiteDSN(path))
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed opening sqlite database")

		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)

	log.Info().Str("path", path).Msg("Connected to database")

	return sqlDB, nil
}
