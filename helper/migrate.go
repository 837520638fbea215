package helper

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"sync"

	"studio/config"
	"studio/infras/database"
	"studio/migrations"
	"studio/shared/constant"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var (
	ErrUnknownAction = errors.New("unknown migration action")

	// migrateMu keeps two callers in one process from racing on the schema version table.
	migrateMu sync.Mutex
)

// Seeder inserts the initial rows once the schema exists.
type Seeder interface {
	Seed(ctx context.Context) (bool, error)
}

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func databaseURL(config *config.Config) (driver, url string, err error) {
	switch config.DB.Driver {
	case constant.DriverPostgres, "":
		url = database.PostgresURL(
			config.DB.Postgres.Write.Username,
			config.DB.Postgres.Write.Password,
			config.DB.Postgres.Write.Host,
			config.DB.Postgres.Write.Port,
			getDBName(config, config.DB.Postgres.Write.Name),
			config.DB.Postgres.Write.SSLMode,
		)

		return constant.DriverPostgres, url + "&x-migrations-table=" + config.DB.Postgres.MigrationTable, nil
	case constant.DriverSQLite:
		url = fmt.Sprintf("sqlite3://%s&x-migrations-table=%s", database.SQLiteDSN(config.DB.SQLite.Path), config.DB.Postgres.MigrationTable)

		return constant.DriverSQLite, url, nil
	default:
		return "", "", fmt.Errorf("%w: %s", database.ErrUnsupportedDriver, config.DB.Driver)
	}
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	driver, connectionString, err := databaseURL(config)
	if err != nil {
		return nil, err
	}

	source, err := iofs.New(migrations.FS, driver)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, connectionString)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	mig, err := getConnection(config)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("Failed closing migrate instance")
		}
	}()

	switch action {
	case ActionUp:
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case ActionDown:
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	case ActionStepUp:
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case ActionDrop:
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnknownAction, action)
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}

// Initialize brings the schema up to date and seeds the admin account.
// It is idempotent and safe to call concurrently.
func Initialize(ctx context.Context, config *config.Config, seeder Seeder) error {
	if err := Up(config); err != nil {
		log.Error().Err(err).Msg("failed to migrate database")

		return fmt.Errorf("failed to migrate database: %w", err)
	}

	created, err := seeder.Seed(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to seed admin")

		return fmt.Errorf("failed to seed admin: %w", err)
	}

	log.Info().Bool("seeded", created).Msg("Database initialized")

	return nil
}
