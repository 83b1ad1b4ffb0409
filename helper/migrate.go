package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"railbook/config"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

// Versions of migrations/postgres. The catalog seed sits on top of the schema so an
// environment can be brought to the bare schema and seeded separately.
const (
	SchemaVersion uint = 3
	SeedVersion   uint = 4
)

type Action string

const (
	ActionUp      Action = "up"
	ActionDown    Action = "down"
	ActionStepUp  Action = "step-up"
	ActionDrop    Action = "drop"
	ActionSchema  Action = "schema"
	ActionSeed    Action = "seed"
	ActionVersion Action = "version"
)

var actions = []Action{ActionUp, ActionDown, ActionStepUp, ActionDrop, ActionSchema, ActionSeed, ActionVersion}

var (
	ErrUnknownAction = errors.New("unknown migration action")
	ErrDirty         = errors.New("database schema is dirty")
)

// Migrator is the part of *migrate.Migrate the actions drive.
type Migrator interface {
	Up() error
	Down() error
	Steps(n int) error
	Migrate(version uint) error
	Version() (version uint, dirty bool, err error)
}

func ParseAction(value string) (Action, error) {
	action := Action(strings.ToLower(strings.TrimSpace(value)))

	for _, known := range actions {
		if action == known {
			return action, nil
		}
	}

	return "", fmt.Errorf("%w %q, use one of %s", ErrUnknownAction, value, ActionNames())
}

func ActionNames() string {
	names := make([]string, 0, len(actions))
	for _, action := range actions {
		names = append(names, string(action))
	}

	return strings.Join(names, ", ")
}

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// ConnectionString points golang-migrate at the write database.
func ConnectionString(config *config.Config) string {
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		config.DB.Postgres.Write.Username,
		config.DB.Postgres.Write.Password,
		net.JoinHostPort(config.DB.Postgres.Write.Host, config.DB.Postgres.Write.Port),
		getDBName(config, config.DB.Postgres.Write.Name),
		config.DB.Postgres.Write.SSLMode,
	)

	if config.DB.Postgres.MigrationTable != "" {
		dsn += "&x-migrations-table=" + config.DB.Postgres.MigrationTable
	}

	return dsn
}

// Apply runs one action. Having nothing to do is not an error.
func Apply(mig Migrator, action Action) error {
	var err error

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	case ActionSchema:
		err = mig.Migrate(SchemaVersion)
	case ActionSeed:
		err = mig.Migrate(SeedVersion)
	case ActionVersion:
	default:
		return fmt.Errorf("%w %q", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run %s migration: %w", action, err)
	}

	return reportVersion(mig, action)
}

func reportVersion(mig Migrator, action Action) error {
	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Info().Str("action", string(action)).Msg("Database has no migrations applied")

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	if dirty {
		return fmt.Errorf("%w at version %d, fix it and force the version", ErrDirty, version)
	}

	log.Info().
		Str("action", string(action)).
		Uint("version", version).
		Bool("seeded", version >= SeedVersion).
		Msg("Database migrations are up to date")

	return nil
}

func Run(config *config.Config, action Action) error {
	mig, err := migrate.New(migrationSource, ConnectionString(config))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrate instance")
		}
	}()

	return Apply(mig, action)
}

func Up(config *config.Config) error {
	return Run(config, ActionUp)
}
